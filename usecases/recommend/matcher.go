package recommend

import (
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/usecases/rules_eval"
)

// MatchesRules returns true iff every rule passes for this metrics context.
// Rules combine with AND, so evaluation short-circuits on the first failure.
// An empty rule set matches unconditionally.
func MatchesRules(metrics models.MetricsContext, rules []models.Rule) bool {
	for _, rule := range rules {
		metricValue := rules_eval.ResolveField(metrics, rule.FieldName)
		if !rules_eval.Evaluate(metricValue, rule.Operator, rule.Value) {
			return false
		}
	}
	return true
}
