package models

import "strings"

// Intervention is one candidate sustainability measure from the reference
// catalog. The catalog is created by import and only read by the engine.
type Intervention struct {
	Id                 int64
	ClassName          string
	Theme              string
	Name               string
	Description        string
	CostLevel          int
	CostRange          string
	InterventionRating float64
	// Stage is the ordinal gating level used for progressive reveal. Zero
	// means the intervention is visible from the start.
	Stage int
}

// ListInterventionsFilters narrows a catalog read. ClassKey is a UI class
// key or a raw theme label, matched case-insensitively through the alias
// table.
type ListInterventionsFilters struct {
	ClassKey string
}

// ThemeClass is one of the fixed UI classes interventions are grouped under.
type ThemeClass struct {
	Key          string
	Label        string
	TargetRating float64
}

const ThemeOther = "other"

// ThemeClasses is the fixed, ordered list of UI classes. Recommendation
// groups are emitted in this order.
var ThemeClasses = []ThemeClass{
	{Key: "carbon", Label: "Carbon", TargetRating: 80},
	{Key: "health", Label: "Health & Wellbeing", TargetRating: 60},
	{Key: "water", Label: "Water Use", TargetRating: 30},
	{Key: "circular", Label: "Circular Economy", TargetRating: 40},
	{Key: "resilience", Label: "Resilience", TargetRating: 60},
	{Key: "value", Label: "Value & Cost", TargetRating: 10},
	{Key: "biodiversity", Label: "Biodiversity", TargetRating: 20},
	{Key: ThemeOther, Label: "Other", TargetRating: 0},
}

// themeAliases maps each UI class key to the free-text theme labels found in
// the imported catalog.
var themeAliases = map[string][]string{
	"carbon":       {"carbon", "carbon emissions", "operating carbon", "operational carbon", "embodied carbon"},
	"health":       {"health", "health & wellbeing", "health and wellbeing"},
	"water":        {"water", "water use", "water efficiency"},
	"circular":     {"circular", "circular economy"},
	"resilience":   {"resilience"},
	"biodiversity": {"biodiversity"},
	"value":        {"value", "value & cost", "value and cost"},
}

// reverseThemeAliases is built once at package init, lowercase alias to
// canonical class key.
var reverseThemeAliases = func() map[string]string {
	out := make(map[string]string)
	for key, aliases := range themeAliases {
		for _, alias := range aliases {
			out[strings.ToLower(alias)] = key
		}
	}
	return out
}()

// ThemeClassKey resolves a free-text catalog theme to its canonical UI class
// key, falling back to "other" for blank or unmapped themes.
func ThemeClassKey(theme string) string {
	if key, ok := reverseThemeAliases[strings.ToLower(strings.TrimSpace(theme))]; ok {
		return key
	}
	return ThemeOther
}

// ThemeAliasesFor returns the catalog theme labels matching a UI class key.
// An unknown key matches itself, so that filtering on a raw theme still works.
func ThemeAliasesFor(classKey string) []string {
	key := strings.ToLower(strings.TrimSpace(classKey))
	if aliases, ok := themeAliases[key]; ok {
		return aliases
	}
	return []string{key}
}
