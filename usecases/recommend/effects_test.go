package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustedRating(t *testing.T) {
	value := func(f float64) *float64 { return &f }

	t.Run("nil effect leaves the rating unchanged", func(t *testing.T) {
		assert.Equal(t, 3.5, AdjustedRating(3.5, nil))
	})

	t.Run("positive effect raises the rating", func(t *testing.T) {
		assert.Equal(t, 3.85, AdjustedRating(3.5, value(5)))
	})

	t.Run("negative effect lowers the rating", func(t *testing.T) {
		assert.Equal(t, 3.15, AdjustedRating(3.5, value(-5)))
	})

	t.Run("full swing caps at plus or minus twenty percent", func(t *testing.T) {
		assert.Equal(t, 4.2, AdjustedRating(3.5, value(10)))
		assert.Equal(t, 2.8, AdjustedRating(3.5, value(-10)))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		assert.Equal(t, 3.4, AdjustedRating(3.333, value(1)))
	})
}
