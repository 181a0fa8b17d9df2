package pure_utils

import "math"

// RoundToTwoDecimals rounds display ratings the way the rendering layer
// expects them.
func RoundToTwoDecimals(f float64) float64 {
	return math.Round(f*100) / 100
}
