package rules_eval

import (
	"strings"

	"github.com/buildwise/buildwise-backend/models"
)

// ResolveField reads a rule's field from the metrics context. A field of the
// form "numerator/denominator" computes a derived ratio; the derived value is
// nil when either side is missing or the denominator is zero, and every
// comparison against nil then follows the evaluator's null handling rules.
func ResolveField(metrics models.MetricsContext, field string) any {
	numeratorField, denominatorField, isRatio := strings.Cut(field, "/")
	if !isRatio {
		return metrics.Get(field)
	}

	numerator, ok := PromoteToFloat64(metrics.Get(strings.TrimSpace(numeratorField)))
	if !ok {
		return nil
	}
	denominator, ok := PromoteToFloat64(metrics.Get(strings.TrimSpace(denominatorField)))
	if !ok || denominator == 0 {
		return nil
	}
	return numerator / denominator
}
