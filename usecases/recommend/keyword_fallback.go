package recommend

import (
	"strings"

	"github.com/buildwise/buildwise-backend/models"
)

// KeywordFallbackPolicy is the historical eligibility heuristic for catalogs
// imported without rules: it sniffs the intervention name and description for
// feature keywords and suppresses the intervention when the matching metric
// is absent. It is content-specific by nature, which is why it is an opt-in
// policy and not part of the evaluator.
type KeywordFallbackPolicy struct {
	// Keywords maps a lowercase keyword to the metrics field that must be
	// non-empty for matching interventions to stay eligible.
	Keywords map[string]string
}

// DefaultKeywordFallback covers the building features the original catalogs
// keyed on.
func DefaultKeywordFallback() KeywordFallbackPolicy {
	return KeywordFallbackPolicy{
		Keywords: map[string]string{
			"basement":  "basement_size_m2",
			"roof":      "roof_area_m2",
			"apartment": "num_apartments",
			"hotel":     "num_keys",
		},
	}
}

func (p KeywordFallbackPolicy) Eligible(metrics models.MetricsContext, intervention models.Intervention) bool {
	text := strings.ToLower(intervention.Name + " " + intervention.Description)
	for keyword, field := range p.Keywords {
		if !strings.Contains(text, keyword) {
			continue
		}
		value := metrics.Get(field)
		if value == nil {
			return false
		}
		if f, ok := value.(float64); ok && f == 0 {
			return false
		}
	}
	return true
}
