package recommend

import (
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/usecases/rules_eval"
)

// PassesDependencies checks the coarse numeric min/max gates of one
// intervention. A dependency whose metric is absent, null or not numeric is
// skipped (non-blocking); every present, coercible one must sit inside its
// bounds.
func PassesDependencies(metrics models.MetricsContext, dependencies []models.Dependency) bool {
	for _, dependency := range dependencies {
		value, ok := coerceDependencyValue(metrics.Get(dependency.MetricName))
		if !ok {
			continue
		}
		if dependency.MinValue != nil && value < *dependency.MinValue {
			return false
		}
		if dependency.MaxValue != nil && value > *dependency.MaxValue {
			return false
		}
	}
	return true
}

func coerceDependencyValue(raw any) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	return rules_eval.PromoteToFloat64(raw)
}
