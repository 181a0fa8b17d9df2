package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "harbour-view-tower", Slugify("Harbour View Tower"))
	assert.Equal(t, "42-wallaby-way", Slugify("  42 Wallaby Way!  "))
	assert.Equal(t, "a-b", Slugify("a---b"))
	assert.Equal(t, "", Slugify("!!!"))
}
