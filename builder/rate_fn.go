// SPDX-License-Identifier: MIT
// Package: negcycle/builder
//
// rate_fn.go: exchange-rate distributions for random quotes.

package builder

import (
	"fmt"
	"math/rand"
)

// Default bounds of the synthetic rate distribution.
const (
	DefaultMinRate = 0.5
	DefaultMaxRate = 2.0
)

// RateFn produces an exchange rate from the given RNG. It must be
// deterministic for a given RNG state and return a positive finite value.
type RateFn func(rng *rand.Rand) float64

// DefaultRateFn samples uniformly in [DefaultMinRate, DefaultMaxRate).
func DefaultRateFn(rng *rand.Rand) float64 {
	return DefaultMinRate + rng.Float64()*(DefaultMaxRate-DefaultMinRate)
}

// UniformRateFn returns a RateFn sampling uniformly in [min, max).
// Panics unless 0 < min ≤ max.
func UniformRateFn(min, max float64) RateFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("UniformRateFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		return min + rng.Float64()*span
	}
}

// ConstantRateFn returns a RateFn that always yields rate. The RNG is not
// consumed. Panics unless rate > 0.
func ConstantRateFn(rate float64) RateFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ConstantRateFn: rate must be > 0, got %g", rate))
	}

	return func(_ *rand.Rand) float64 {
		return rate
	}
}
