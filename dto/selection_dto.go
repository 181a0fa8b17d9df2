package dto

import (
	"github.com/buildwise/buildwise-backend/models"
)

type SaveSelectionBody struct {
	InterventionIds []int64 `json:"intervention_ids"`
}

type SelectionChangeDto struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Total   int `json:"total"`
}

func AdaptSelectionChangeDto(change models.SelectionChange) SelectionChangeDto {
	return SelectionChangeDto{
		Added:   change.Added,
		Removed: change.Removed,
		Total:   change.Total,
	}
}
