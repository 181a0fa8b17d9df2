package rules_eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildwise/buildwise-backend/models"
)

func TestEvaluate_ordering_numeric_coercion(t *testing.T) {
	assert.True(t, Evaluate(150.0, models.OperatorGt, "100"))
	assert.False(t, Evaluate(50.0, models.OperatorGt, "100"))
	assert.True(t, Evaluate("150", models.OperatorGte, "150"))
	assert.True(t, Evaluate(99.9, models.OperatorLt, "100"))
	assert.True(t, Evaluate(100.0, models.OperatorLte, "100"))
}

func TestEvaluate_ordering_failed_coercion_is_non_matching(t *testing.T) {
	assert.False(t, Evaluate("tall building", models.OperatorGt, "100"))
	assert.False(t, Evaluate(100.0, models.OperatorLt, "not a number"))
	assert.False(t, Evaluate(nil, models.OperatorGt, "0"))
	assert.False(t, Evaluate(nil, models.OperatorLt, "0"))
}

func TestEvaluate_equality(t *testing.T) {
	// numeric equality when both sides coerce
	assert.True(t, Evaluate(100.0, models.OperatorEq, "100"))
	assert.True(t, Evaluate("100.0", models.OperatorEq, "100"))
	// case-insensitive string fallback
	assert.True(t, Evaluate("residential", models.OperatorEq, "Residential"))
	assert.False(t, Evaluate("commercial", models.OperatorEq, "Residential"))
	assert.True(t, Evaluate("commercial", models.OperatorNeq, "Residential"))
	// a nil metric value never equals anything
	assert.False(t, Evaluate(nil, models.OperatorEq, "Residential"))
	assert.True(t, Evaluate(nil, models.OperatorNeq, "Residential"))
}

func TestEvaluate_membership(t *testing.T) {
	assert.True(t, Evaluate("B", models.OperatorIn, "a, b, c"))
	assert.False(t, Evaluate("B", models.OperatorNin, "a, b, c"))
	assert.False(t, Evaluate("d", models.OperatorIn, "a, b, c"))
	assert.True(t, Evaluate("d", models.OperatorNin, "a, b, c"))
	// numbers are stringified before the membership test
	assert.True(t, Evaluate(2.0, models.OperatorIn, "1, 2, 3"))
}

func TestEvaluate_membership_of_nil_fails_closed(t *testing.T) {
	assert.False(t, Evaluate(nil, models.OperatorIn, "a, b, c"))
	assert.True(t, Evaluate(nil, models.OperatorNin, "a, b, c"))
}

func TestEvaluate_contains(t *testing.T) {
	assert.True(t, Evaluate("Green Roof Retrofit", models.OperatorContains, "roof"))
	assert.False(t, Evaluate("Green Roof Retrofit", models.OperatorNcontains, "roof"))
	assert.False(t, Evaluate("Solar Array", models.OperatorContains, "roof"))
	// nil metric value is treated as the empty string
	assert.False(t, Evaluate(nil, models.OperatorContains, "roof"))
	assert.True(t, Evaluate(nil, models.OperatorNcontains, "roof"))
}

func TestEvaluate_truthiness(t *testing.T) {
	assert.True(t, Evaluate(true, models.OperatorTrue, ""))
	assert.True(t, Evaluate(1.0, models.OperatorTrue, ""))
	assert.True(t, Evaluate("yes", models.OperatorTrue, ""))
	assert.False(t, Evaluate(false, models.OperatorTrue, ""))
	assert.False(t, Evaluate(0.0, models.OperatorTrue, ""))
	assert.False(t, Evaluate(nil, models.OperatorTrue, ""))
	assert.True(t, Evaluate(false, models.OperatorFalse, ""))
	assert.True(t, Evaluate(nil, models.OperatorFalse, ""))
}

func TestEvaluate_emptiness_negation_is_exact(t *testing.T) {
	cases := []any{nil, "", 0.0, false, "x", 12.5, true}
	for _, value := range cases {
		empty := Evaluate(value, models.OperatorEmpty, "")
		nempty := Evaluate(value, models.OperatorNempty, "")
		assert.NotEqual(t, empty, nempty, "empty and nempty must negate each other for %v", value)
	}
	assert.True(t, Evaluate(nil, models.OperatorEmpty, ""))
	assert.True(t, Evaluate("", models.OperatorEmpty, ""))
	assert.True(t, Evaluate(0.0, models.OperatorEmpty, ""))
	assert.False(t, Evaluate("x", models.OperatorEmpty, ""))
}

func TestEvaluate_unknown_operator_fails_open(t *testing.T) {
	assert.True(t, Evaluate(1.0, models.RuleOperator("betwen"), "1,10"))
	assert.True(t, Evaluate(nil, models.RuleOperator(""), ""))
}

func TestResolveField_simple(t *testing.T) {
	metrics := models.MapMetrics{"gifa_m2": 1200.0}
	assert.Equal(t, 1200.0, ResolveField(metrics, "gifa_m2"))
	assert.Nil(t, ResolveField(metrics, "roof_area_m2"))
}

func TestResolveField_ratio(t *testing.T) {
	metrics := models.MapMetrics{
		"external_openings_m2":  50.0,
		"external_wall_area_m2": 200.0,
	}
	assert.Equal(t, 0.25, ResolveField(metrics, "external_openings_m2/external_wall_area_m2"))
}

func TestResolveField_ratio_zero_denominator_is_nil(t *testing.T) {
	metrics := models.MapMetrics{
		"external_openings_m2":  50.0,
		"external_wall_area_m2": 0.0,
	}
	derived := ResolveField(metrics, "external_openings_m2/external_wall_area_m2")
	assert.Nil(t, derived)
	// and any comparison against it is false, never a panic
	assert.False(t, Evaluate(derived, models.OperatorGt, "0"))
	assert.False(t, Evaluate(derived, models.OperatorLt, "1"))
	assert.False(t, Evaluate(derived, models.OperatorEq, "0"))
}

func TestResolveField_ratio_missing_numerator_is_nil(t *testing.T) {
	metrics := models.MapMetrics{"external_wall_area_m2": 200.0}
	assert.Nil(t, ResolveField(metrics, "external_openings_m2/external_wall_area_m2"))
}
