package models

// Effect is a directed rating-adjustment edge between two interventions,
// keyed by the stored intervention names. It is only applied when the source
// intervention is part of the user's selection.
type Effect struct {
	Id          int64
	SourceName  string
	TargetName  string
	EffectValue *float64
	Note        string
}

// EffectResult is one propagated adjustment, display-only unless the caller
// explicitly persists it.
type EffectResult struct {
	Target         string
	AdjustedRating float64
	Note           string
}

// MaxEffectSwing bounds the rating adjustment: an effect value of +-10 moves
// the target rating by +-20%.
const MaxEffectSwing = 0.2
