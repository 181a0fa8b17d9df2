package recommend

import (
	"testing"

	"github.com/hashicorp/go-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildwise/buildwise-backend/models"
)

func stagedCatalog() []models.Intervention {
	return []models.Intervention{
		{Id: 1, Name: "Solar PV", Theme: "Operational Carbon", InterventionRating: 4.5, Stage: 1},
		{Id: 2, Name: "Battery Storage", Theme: "Operational Carbon", InterventionRating: 3.0, Stage: 2},
		{Id: 3, Name: "Rainwater Harvesting", Theme: "Water Use", InterventionRating: 3.5, Stage: 1},
		{Id: 4, Name: "Greywater Recycling", Theme: "Water Use", InterventionRating: 2.5, Stage: 3},
	}
}

func TestMaxSelectedStage(t *testing.T) {
	catalog := stagedCatalog()

	assert.Equal(t, 0, MaxSelectedStage(catalog, nil))
	assert.Equal(t, 0, MaxSelectedStage(catalog, set.New[int64](0)))
	assert.Equal(t, 1, MaxSelectedStage(catalog, set.From([]int64{1, 3})))
	assert.Equal(t, 3, MaxSelectedStage(catalog, set.From([]int64{1, 4})))
	// ids not in the catalog contribute nothing
	assert.Equal(t, 0, MaxSelectedStage(catalog, set.From([]int64{99})))
}

func TestApplyStageAndBoost_empty_selection_passes_through(t *testing.T) {
	result := ApplyStageAndBoost(stagedCatalog(), nil)

	assert.Equal(t, 0, result.MaxStage)
	total := 0
	for _, group := range result.Groups {
		total += len(group.Interventions)
		for _, intervention := range group.Interventions {
			assert.False(t, intervention.Selected)
		}
	}
	assert.Equal(t, 4, total)
}

func TestApplyStageAndBoost_drops_earlier_stages(t *testing.T) {
	result := ApplyStageAndBoost(stagedCatalog(), set.From([]int64{2}))

	assert.Equal(t, 2, result.MaxStage)
	for _, group := range result.Groups {
		for _, intervention := range group.Interventions {
			assert.GreaterOrEqual(t, intervention.Stage, 2)
		}
	}
}

func TestApplyStageAndBoost_boosts_selected_ratings(t *testing.T) {
	result := ApplyStageAndBoost(stagedCatalog(), set.From([]int64{1}))

	var solar *models.RecommendedIntervention
	for _, group := range result.Groups {
		for i := range group.Interventions {
			if group.Interventions[i].Id == 1 {
				solar = &group.Interventions[i]
			}
		}
	}
	require.NotNil(t, solar)
	assert.True(t, solar.Selected)
	assert.Equal(t, 4.95, solar.InterventionRating)
}

func TestApplyStageAndBoost_is_idempotent_over_reselection(t *testing.T) {
	selected := set.From([]int64{2})
	first := ApplyStageAndBoost(stagedCatalog(), selected)
	second := ApplyStageAndBoost(stagedCatalog(), selected)
	assert.Equal(t, first, second)
}

func TestGroupByTheme_fixed_class_order(t *testing.T) {
	interventions := []models.Intervention{
		{Id: 1, Name: "Rainwater Harvesting", Theme: "Water Efficiency", InterventionRating: 3.5},
		{Id: 2, Name: "Solar PV", Theme: "Embodied Carbon", InterventionRating: 4.5},
		{Id: 3, Name: "Mystery Box", Theme: "Unmapped Theme", InterventionRating: 1.0},
	}
	result := ApplyStageAndBoost(interventions, nil)

	require.Len(t, result.Groups, 3)
	assert.Equal(t, "carbon", result.Groups[0].Theme)
	assert.Equal(t, 80.0, result.Groups[0].TargetRating)
	assert.Equal(t, "water", result.Groups[1].Theme)
	// unknown themes fall through to the trailing catch-all group
	assert.Equal(t, models.ThemeOther, result.Groups[2].Theme)
	require.Len(t, result.Groups[2].Interventions, 1)
	assert.Equal(t, int64(3), result.Groups[2].Interventions[0].Id)
}
