package dto

import (
	"github.com/buildwise/buildwise-backend/models"
)

type EffectResultDto struct {
	Target         string  `json:"target"`
	AdjustedRating float64 `json:"adjusted_rating"`
	Note           string  `json:"note,omitempty"`
}

func AdaptEffectResultDto(result models.EffectResult) EffectResultDto {
	return EffectResultDto{
		Target:         result.Target,
		AdjustedRating: result.AdjustedRating,
		Note:           result.Note,
	}
}
