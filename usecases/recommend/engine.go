// Package recommend implements the intervention filter pipeline: dependency
// thresholds first, field rules second, then stage gating, selection boost
// and themed grouping. Every step is a pure function of its inputs.
package recommend

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/buildwise/buildwise-backend/models"
)

// FallbackPolicy decides eligibility for interventions that carry no rules at
// all. The default engine has none installed: no rules means eligible.
type FallbackPolicy interface {
	Eligible(metrics models.MetricsContext, intervention models.Intervention) bool
}

type Engine struct {
	fallback FallbackPolicy
}

type Option func(*Engine)

// WithFallbackPolicy installs a fallback eligibility policy for rule-less
// interventions.
func WithFallbackPolicy(policy FallbackPolicy) Option {
	return func(e *Engine) {
		e.fallback = policy
	}
}

func NewEngine(opts ...Option) Engine {
	var engine Engine
	for _, opt := range opts {
		opt(&engine)
	}
	return engine
}

// Eligible runs the two filter stages for one intervention: the dependency
// thresholds and the rule set. Both must pass.
func (e Engine) Eligible(
	metrics models.MetricsContext,
	intervention models.Intervention,
	rules []models.Rule,
	dependencies []models.Dependency,
) bool {
	if !PassesDependencies(metrics, dependencies) {
		return false
	}
	return e.matchesRules(metrics, intervention, rules)
}

// Recommend evaluates the whole candidate catalog against one project's
// metrics and returns the themed recommendation set. Rules and dependencies
// are passed grouped by intervention id; selectedIds may be nil.
func (e Engine) Recommend(
	metrics models.MetricsContext,
	catalog []models.Intervention,
	rulesByIntervention map[int64][]models.Rule,
	dependenciesByIntervention map[int64][]models.Dependency,
	selectedIds *set.Set[int64],
) models.RecommendationSet {
	eligible := make([]models.Intervention, 0, len(catalog))
	for _, intervention := range catalog {
		if e.Eligible(metrics, intervention,
			rulesByIntervention[intervention.Id],
			dependenciesByIntervention[intervention.Id]) {
			eligible = append(eligible, intervention)
		}
	}
	return ApplyStageAndBoost(eligible, selectedIds)
}

func (e Engine) matchesRules(
	metrics models.MetricsContext,
	intervention models.Intervention,
	rules []models.Rule,
) bool {
	if len(rules) == 0 {
		if e.fallback != nil {
			return e.fallback.Eligible(metrics, intervention)
		}
		return true
	}
	return MatchesRules(metrics, rules)
}

// GroupRulesByIntervention indexes a flat rule list the way Recommend
// consumes it.
func GroupRulesByIntervention(rules []models.Rule) map[int64][]models.Rule {
	out := make(map[int64][]models.Rule, len(rules))
	for _, rule := range rules {
		out[rule.InterventionId] = append(out[rule.InterventionId], rule)
	}
	return out
}

func GroupDependenciesByIntervention(dependencies []models.Dependency) map[int64][]models.Dependency {
	out := make(map[int64][]models.Dependency, len(dependencies))
	for _, dependency := range dependencies {
		out[dependency.InterventionId] = append(out[dependency.InterventionId], dependency)
	}
	return out
}
