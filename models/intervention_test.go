package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeClassKey(t *testing.T) {
	assert.Equal(t, "carbon", ThemeClassKey("carbon"))
	assert.Equal(t, "carbon", ThemeClassKey("Embodied Carbon"))
	assert.Equal(t, "carbon", ThemeClassKey("  operational carbon "))
	assert.Equal(t, "water", ThemeClassKey("Water Efficiency"))
	assert.Equal(t, "health", ThemeClassKey("Health and Wellbeing"))
	assert.Equal(t, ThemeOther, ThemeClassKey(""))
	assert.Equal(t, ThemeOther, ThemeClassKey("something new"))
}

func TestThemeAliasesFor(t *testing.T) {
	assert.Contains(t, ThemeAliasesFor("carbon"), "embodied carbon")
	assert.Contains(t, ThemeAliasesFor("Water"), "water use")
	// unknown keys match themselves so raw theme filters still work
	assert.Equal(t, []string{"something new"}, ThemeAliasesFor("Something New"))
}

func TestThemeClasses_every_alias_key_is_a_class(t *testing.T) {
	keys := make(map[string]bool, len(ThemeClasses))
	for _, class := range ThemeClasses {
		keys[class.Key] = true
	}
	for key := range themeAliases {
		assert.True(t, keys[key], "alias key %q has no theme class", key)
	}
}
