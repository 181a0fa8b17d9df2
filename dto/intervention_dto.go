package dto

import (
	"github.com/buildwise/buildwise-backend/models"
)

type InterventionDto struct {
	Id                 int64   `json:"id"`
	Class              string  `json:"class"`
	Theme              string  `json:"theme"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	CostLevel          int     `json:"cost_level"`
	CostRange          string  `json:"cost_range"`
	InterventionRating float64 `json:"intervention_rating"`
	Stage              int     `json:"stage"`
}

func AdaptInterventionDto(intervention models.Intervention) InterventionDto {
	return InterventionDto{
		Id:                 intervention.Id,
		Class:              intervention.ClassName,
		Theme:              intervention.Theme,
		Name:               intervention.Name,
		Description:        intervention.Description,
		CostLevel:          intervention.CostLevel,
		CostRange:          intervention.CostRange,
		InterventionRating: intervention.InterventionRating,
		Stage:              intervention.Stage,
	}
}
