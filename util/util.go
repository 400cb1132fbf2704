package util

import (
	"math/rand"
)

// RandomRange returns a value in [min, max). A nil rng uses the global source.
func RandomRange(rng *rand.Rand, min float64, max float64) float64 {
	var r float64
	if rng == nil {
		r = rand.Float64()
	} else {
		r = rng.Float64()
	}
	return r*(max-min) + min
}
