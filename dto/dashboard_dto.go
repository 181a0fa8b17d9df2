package dto

import (
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
)

type ClassTargetDto struct {
	ClassName    string  `json:"class_name"`
	TargetRating float64 `json:"target_rating"`
}

type DashboardSummaryDto struct {
	TotalProjects  int              `json:"total_projects"`
	LatestProjects []ProjectDto     `json:"latest_projects"`
	ClassTargets   []ClassTargetDto `json:"class_targets"`
}

func AdaptDashboardSummaryDto(summary models.DashboardSummary) DashboardSummaryDto {
	return DashboardSummaryDto{
		TotalProjects:  summary.TotalProjects,
		LatestProjects: pure_utils.Map(summary.LatestProjects, AdaptProjectDto),
		ClassTargets: pure_utils.Map(summary.ClassTargets, func(target models.ClassTarget) ClassTargetDto {
			return ClassTargetDto{
				ClassName:    target.ClassName,
				TargetRating: target.TargetRating,
			}
		}),
	}
}
