// Package builder provides helper types for drawing link costs and
// frequencies in network constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DrawFn produces a non-negative link attribute given an optional RNG.
// It must be deterministic for a given RNG state.
type DrawFn func(rng *rand.Rand) float64

// ConstantFn returns a DrawFn that always yields value.
// Panics if value < 0.
func ConstantFn(value float64) DrawFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformFn returns a DrawFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil rng it yields min.
func UniformFn(min, max float64) DrawFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// HeadwayFn returns a frequency DrawFn whose headway (1/f) is uniform in
// [min, max). Panics unless 0 < min ≤ max.
func HeadwayFn(min, max float64) DrawFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("HeadwayFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	headway := UniformFn(min, max)

	return func(rng *rand.Rand) float64 {
		return 1 / headway(rng)
	}
}
