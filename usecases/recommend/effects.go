package recommend

import (
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
)

// AdjustedRating applies one effect edge to a target's base rating. The raw
// effect value is normalized so that +-10 moves the rating by at most +-20%,
// scaling linearly in between; a missing effect value leaves the rating
// unchanged. The result is rounded to two decimals for display.
func AdjustedRating(baseRating float64, effectValue *float64) float64 {
	if effectValue == nil {
		return pure_utils.RoundToTwoDecimals(baseRating)
	}
	factor := *effectValue / 10 * models.MaxEffectSwing
	return pure_utils.RoundToTwoDecimals(baseRating * (1 + factor))
}
