package recommend

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
)

// selectedRatingBoost is the display boost applied to interventions the user
// already picked.
const selectedRatingBoost = 1.1

// MaxSelectedStage computes the stage cutoff: the highest stage among the
// selected interventions, 0 when nothing is selected.
func MaxSelectedStage(interventions []models.Intervention, selectedIds *set.Set[int64]) int {
	maxStage := 0
	if selectedIds == nil || selectedIds.Empty() {
		return maxStage
	}
	for _, intervention := range interventions {
		if selectedIds.Contains(intervention.Id) && intervention.Stage > maxStage {
			maxStage = intervention.Stage
		}
	}
	return maxStage
}

// ApplyStageAndBoost drops interventions below the selection's stage cutoff
// (progressive reveal: picking a later-stage item hides earlier stages, never
// the reverse), boosts the rating of selected items and groups the survivors
// by theme class. With an empty selection the input set passes through
// unchanged.
func ApplyStageAndBoost(interventions []models.Intervention, selectedIds *set.Set[int64]) models.RecommendationSet {
	hasSelection := selectedIds != nil && !selectedIds.Empty()
	maxStage := MaxSelectedStage(interventions, selectedIds)

	recommended := make([]models.RecommendedIntervention, 0, len(interventions))
	for _, intervention := range interventions {
		if hasSelection && intervention.Stage < maxStage {
			continue
		}

		rating := intervention.InterventionRating
		selected := hasSelection && selectedIds.Contains(intervention.Id)
		if selected {
			rating *= selectedRatingBoost
		}

		recommended = append(recommended, models.RecommendedIntervention{
			Id:                 intervention.Id,
			Name:               intervention.Name,
			Theme:              intervention.Theme,
			ClassName:          intervention.ClassName,
			Description:        intervention.Description,
			CostLevel:          intervention.CostLevel,
			CostRange:          intervention.CostRange,
			InterventionRating: pure_utils.RoundToTwoDecimals(rating),
			Stage:              intervention.Stage,
			Selected:           selected,
		})
	}

	return models.RecommendationSet{
		MaxStage: maxStage,
		Groups:   groupByTheme(recommended),
	}
}

// groupByTheme buckets interventions under the fixed UI classes, in the
// ThemeClasses order, keeping insertion order within each group. Blank or
// unmapped themes land in "Other". Empty groups are not emitted.
func groupByTheme(interventions []models.RecommendedIntervention) []models.ThemeGroup {
	buckets := make(map[string][]models.RecommendedIntervention)
	for _, intervention := range interventions {
		key := models.ThemeClassKey(intervention.Theme)
		buckets[key] = append(buckets[key], intervention)
	}

	groups := make([]models.ThemeGroup, 0, len(models.ThemeClasses))
	for _, class := range models.ThemeClasses {
		bucket, ok := buckets[class.Key]
		if !ok {
			continue
		}
		groups = append(groups, models.ThemeGroup{
			Theme:         class.Key,
			Label:         class.Label,
			TargetRating:  class.TargetRating,
			Interventions: bucket,
		})
	}
	return groups
}
