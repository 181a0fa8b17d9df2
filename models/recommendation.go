package models

// RecommendedIntervention is one intervention surviving the filter pipeline,
// with its display rating after selection boost.
type RecommendedIntervention struct {
	Id                 int64
	Name               string
	Theme              string
	ClassName          string
	Description        string
	CostLevel          int
	CostRange          string
	InterventionRating float64
	Stage              int
	Selected           bool
}

// ThemeGroup is the interventions of one UI class, in catalog order.
type ThemeGroup struct {
	Theme         string
	Label         string
	TargetRating  float64
	Interventions []RecommendedIntervention
}

// RecommendationSet is the themed grouping returned to the rendering layer.
// Groups follow the fixed ThemeClasses order; interventions keep their
// insertion order within a group, so identical inputs always produce
// identical output.
type RecommendationSet struct {
	MaxStage int
	Groups   []ThemeGroup
}

// SelectionChange is the result of one idempotent full-replace selection
// save.
type SelectionChange struct {
	Added   int
	Removed int
	Total   int
}
