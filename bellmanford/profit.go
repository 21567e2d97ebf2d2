// SPDX-License-Identifier: MIT
//
// File: profit.go
// Role: Metrics derivation. Pure functions of a cycle's total weight W.

package bellmanford

import "math"

// ProfitFactor returns e^(-W), the multiplicative return of one trip around a
// cycle whose edge weights sum to W.
func ProfitFactor(totalWeight float64) float64 {
	return math.Exp(-totalWeight)
}

// IsArbitrage reports whether a cycle of total weight W is profitable,
// i.e. ProfitFactor(W) > 1.
func IsArbitrage(totalWeight float64) bool {
	return ProfitFactor(totalWeight) > 1
}

// FinalAmount projects startAmount after one full cycle.
func FinalAmount(totalWeight, startAmount float64) float64 {
	return startAmount * ProfitFactor(totalWeight)
}

// ProfitPercent returns the gain of one full cycle in percent; negative for a loss.
func ProfitPercent(totalWeight float64) float64 {
	return (ProfitFactor(totalWeight) - 1) * 100
}
