package dto

import (
	"github.com/buildwise/buildwise-backend/models"
)

type ConflictsBody struct {
	InterventionIds []int64 `json:"intervention_ids" binding:"required"`
}

type ConflictResultDto struct {
	AId          int64  `json:"a_id"`
	BId          int64  `json:"b_id"`
	ConflictType string `json:"conflict_type"`
	Reason       string `json:"reason,omitempty"`
}

func AdaptConflictResultDto(result models.ConflictResult) ConflictResultDto {
	return ConflictResultDto{
		AId:          result.AId,
		BId:          result.BId,
		ConflictType: result.ConflictType,
		Reason:       result.Reason,
	}
}
