// Package rules_eval evaluates single field-operator-value conditions
// against a project's metrics. It never returns errors: coercion failures
// degrade per operator family, and an unknown operator evaluates to true
// (fail-open) so that a typo in imported reference data hides no
// recommendations. That fail-open default is deliberate and lives only here.
package rules_eval

import (
	"strings"

	"github.com/buildwise/buildwise-backend/models"
)

// Evaluate applies one operator comparison between a metric-derived value and
// the stored rule value.
func Evaluate(metricValue any, operator models.RuleOperator, ruleValue string) bool {
	switch operator {
	case models.OperatorTrue:
		return isTruthy(metricValue)
	case models.OperatorFalse:
		return !isTruthy(metricValue)
	case models.OperatorEmpty:
		return isEmptyValue(metricValue)
	case models.OperatorNempty:
		return !isEmptyValue(metricValue)
	case models.OperatorContains:
		return evalContains(metricValue, ruleValue)
	case models.OperatorNcontains:
		return !evalContains(metricValue, ruleValue)
	case models.OperatorIn:
		return evalMembership(metricValue, ruleValue)
	case models.OperatorNin:
		return !evalMembership(metricValue, ruleValue)
	case models.OperatorEq:
		return evalEquality(metricValue, ruleValue)
	case models.OperatorNeq:
		return !evalEquality(metricValue, ruleValue)
	case models.OperatorGt, models.OperatorGte, models.OperatorLt, models.OperatorLte:
		return evalOrdering(metricValue, operator, ruleValue)
	default:
		// fail-open for unknown operators, see package doc
		return true
	}
}

// evalEquality compares numerically when both sides coerce, then falls back
// to a case-insensitive string comparison. A nil metric value never equals
// anything.
func evalEquality(metricValue any, ruleValue string) bool {
	left, leftOk := PromoteToFloat64(metricValue)
	right, rightOk := PromoteToFloat64(ruleValue)
	if leftOk && rightOk {
		return left == right
	}
	if metricValue == nil {
		return false
	}
	return strings.EqualFold(stringify(metricValue), ruleValue)
}

// evalOrdering only compares numbers; a side that fails coercion makes the
// comparison non-matching rather than erroring.
func evalOrdering(metricValue any, operator models.RuleOperator, ruleValue string) bool {
	left, leftOk := PromoteToFloat64(metricValue)
	right, rightOk := PromoteToFloat64(ruleValue)
	if !leftOk || !rightOk {
		return false
	}
	switch operator {
	case models.OperatorGt:
		return left > right
	case models.OperatorGte:
		return left >= right
	case models.OperatorLt:
		return left < right
	case models.OperatorLte:
		return left <= right
	default:
		return false
	}
}

// evalMembership tests the stringified metric value against a comma
// separated rule list, trimmed and case-insensitive. Membership of a nil
// value is false, so "in" fails closed and "nin" passes.
func evalMembership(metricValue any, ruleValue string) bool {
	if metricValue == nil {
		return false
	}
	needle := strings.ToLower(stringify(metricValue))
	for _, token := range strings.Split(ruleValue, ",") {
		if strings.ToLower(strings.TrimSpace(token)) == needle {
			return true
		}
	}
	return false
}

// evalContains is a case-insensitive substring test of the rule value inside
// the stringified metric value, with nil treated as the empty string.
func evalContains(metricValue any, ruleValue string) bool {
	return strings.Contains(
		strings.ToLower(stringify(metricValue)),
		strings.ToLower(ruleValue),
	)
}
