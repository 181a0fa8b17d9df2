package dto

import (
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
)

type RecommendationsBody struct {
	ProjectId   string         `json:"project_id"`
	Metrics     map[string]any `json:"metrics"`
	SelectedIds []int64        `json:"selected_ids"`
	Class       string         `json:"class"`
}

type RecommendedInterventionDto struct {
	Id                 int64   `json:"id"`
	Name               string  `json:"name"`
	Theme              string  `json:"theme"`
	Class              string  `json:"class"`
	Description        string  `json:"description"`
	CostLevel          int     `json:"cost_level"`
	CostRange          string  `json:"cost_range"`
	InterventionRating float64 `json:"intervention_rating"`
	Stage              int     `json:"stage"`
	Selected           bool    `json:"selected"`
}

type ThemeGroupDto struct {
	Theme         string                       `json:"theme"`
	Label         string                       `json:"label"`
	TargetRating  float64                      `json:"target_rating"`
	Interventions []RecommendedInterventionDto `json:"interventions"`
}

type RecommendationSetDto struct {
	MaxStage int             `json:"max_stage"`
	Groups   []ThemeGroupDto `json:"groups"`
}

func AdaptRecommendationSetDto(result models.RecommendationSet) RecommendationSetDto {
	return RecommendationSetDto{
		MaxStage: result.MaxStage,
		Groups: pure_utils.Map(result.Groups, func(group models.ThemeGroup) ThemeGroupDto {
			return ThemeGroupDto{
				Theme:        group.Theme,
				Label:        group.Label,
				TargetRating: group.TargetRating,
				Interventions: pure_utils.Map(group.Interventions,
					adaptRecommendedInterventionDto),
			}
		}),
	}
}

func adaptRecommendedInterventionDto(intervention models.RecommendedIntervention) RecommendedInterventionDto {
	return RecommendedInterventionDto{
		Id:                 intervention.Id,
		Name:               intervention.Name,
		Theme:              intervention.Theme,
		Class:              intervention.ClassName,
		Description:        intervention.Description,
		CostLevel:          intervention.CostLevel,
		CostRange:          intervention.CostRange,
		InterventionRating: intervention.InterventionRating,
		Stage:              intervention.Stage,
		Selected:           intervention.Selected,
	}
}
