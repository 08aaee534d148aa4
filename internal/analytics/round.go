package analytics

import "math"

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// sanitizeCurrency rounds to display precision and collapses values within
// 0.005 of zero to exactly 0 so serialized output never shows "-0.00".
func sanitizeCurrency(v float64) float64 {
	if math.Abs(v) < 0.005 {
		return 0
	}
	return round(v, 2)
}
