package models

// RuleOperator is the fixed operator vocabulary of imported rules.
type RuleOperator string

const (
	OperatorEq        RuleOperator = "eq"
	OperatorNeq       RuleOperator = "neq"
	OperatorGt        RuleOperator = "gt"
	OperatorGte       RuleOperator = "gte"
	OperatorLt        RuleOperator = "lt"
	OperatorLte       RuleOperator = "lte"
	OperatorIn        RuleOperator = "in"
	OperatorNin       RuleOperator = "nin"
	OperatorContains  RuleOperator = "contains"
	OperatorNcontains RuleOperator = "ncontains"
	OperatorTrue      RuleOperator = "true"
	OperatorFalse     RuleOperator = "false"
	OperatorEmpty     RuleOperator = "empty"
	OperatorNempty    RuleOperator = "nempty"
)

// Rule is a single field-operator-value condition gating one intervention.
// All the rules of one intervention are combined with AND; an intervention
// without rules is unconditionally eligible.
//
// FieldName is either a metrics field or a derived "numerator/denominator"
// ratio expression. Value is the raw imported string, interpreted per
// operator (comma separated list for in/nin, scalar otherwise).
type Rule struct {
	Id             int64
	InterventionId int64
	FieldName      string
	Operator       RuleOperator
	Value          string
}

// Dependency is a numeric min/max gate on one intervention, independent of
// Rule. A nil bound is unconstrained on that side.
type Dependency struct {
	Id             int64
	InterventionId int64
	MetricName     string
	MinValue       *float64
	MaxValue       *float64
}
