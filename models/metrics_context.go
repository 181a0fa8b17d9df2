package models

import "github.com/guregu/null/v5"

// MetricsContext is the typed key-value view of a project's metrics consumed
// by the rule evaluator and the dependency filter. Get returns nil for fields
// that are unknown, not yet entered, or stored as null; the evaluator's
// null-handling rules take it from there.
type MetricsContext interface {
	Get(field string) any
}

// MapMetrics adapts a transient mapping (e.g. a request payload that was
// never persisted) to a MetricsContext.
type MapMetrics map[string]any

func (m MapMetrics) Get(field string) any {
	return m[field]
}

type projectMetrics struct {
	fields map[string]any
}

// ProjectMetrics builds the MetricsContext for a persisted project. The field
// names are the vocabulary rules and dependencies reference by string key.
func ProjectMetrics(p Project) MetricsContext {
	fields := map[string]any{
		"project_name":     p.ProjectName,
		"location":         p.Location,
		"building_type":    p.BuildingType,
		"basement_present": p.BasementPresent,
	}
	// "project_type" predates "building_type" in imported rule sets, both
	// point at the same column.
	fields["project_type"] = p.BuildingType

	fields["gifa_m2"] = nullFloat(p.GifaM2)
	fields["roof_area_m2"] = nullFloat(p.RoofAreaM2)
	fields["roof_percent_gifa"] = nullFloat(p.RoofPercentGifa)
	fields["external_wall_area_m2"] = nullFloat(p.ExternalWallAreaM2)
	fields["external_openings_m2"] = nullFloat(p.ExternalOpeningsM2)
	fields["building_footprint_m2"] = nullFloat(p.BuildingFootprintM2)
	fields["basement_size_m2"] = nullFloat(p.BasementSizeM2)
	fields["basement_percent_gifa"] = nullFloat(p.BasementPercentGifa)
	fields["estimated_auto_budget_aud"] = nullFloat(p.EstimatedAutoBudgetAud)
	fields["num_apartments"] = nullInt(p.NumApartments)
	fields["num_keys"] = nullInt(p.NumKeys)
	fields["num_wcs"] = nullInt(p.NumWcs)

	return projectMetrics{fields: fields}
}

func (m projectMetrics) Get(field string) any {
	return m.fields[field]
}

func nullFloat(v null.Float) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

func nullInt(v null.Int) any {
	if !v.Valid {
		return nil
	}
	return float64(v.Int64)
}
