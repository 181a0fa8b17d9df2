package rules_eval

import (
	"strconv"
	"strings"
)

// PromoteToFloat64 is the best-effort numeric coercion used by every
// comparison. Returns false when the value has no sensible numeric reading,
// the caller decides whether that fails the rule or falls back to strings.
func PromoteToFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// stringify renders a metric value for string operators. Nil becomes the
// empty string so that contains/ncontains degrade instead of erroring.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// isTruthy implements the "true"/"false" operators: non-nil, non-zero,
// non-empty values are truthy.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	default:
		f, ok := PromoteToFloat64(value)
		return ok && f != 0
	}
}

// isEmptyValue implements the "empty"/"nempty" operators: a value is empty
// when it is nil, the empty string, numeric zero or false.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	default:
		f, ok := PromoteToFloat64(value)
		return ok && f == 0
	}
}
