// SPDX-License-Identifier: MIT
// Package: negcycle/builder
//
// impl_cycle.go: ProfitableCycle() constructor.
//
// Contract:
//   - Picks the first min(4, n) currencies, shuffles them with cfg.rng and
//     walks four hops over positions i mod len, closing back on the first.
//   - Hop rates are CycleRates in order; with four currencies the loop
//     multiplies to CycleProfit() ≈ 1.0811.
//   - With fewer than four currencies positions repeat; self hops are skipped.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).

package builder

import "fmt"

// cycleHops is the number of hops (and distinct currencies when n ≥ 4) of
// the inserted loop.
const cycleHops = 4

// CycleRates are the hop rates of the inserted loop, in walk order.
var CycleRates = [cycleHops]float64{1.05, 0.98, 1.02, 1.03}

// CycleProfit returns the product of CycleRates.
func CycleProfit() float64 {
	p := 1.0
	for _, r := range CycleRates {
		p *= r
	}

	return p
}

// ProfitableCycle returns a Constructor appending the known arbitrage loop.
//
// Complexity: O(1).
func ProfitableCycle() Constructor {
	return func(d *draft, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodProfitableCycle, ErrNeedRandSource)
		}

		k := cycleHops
		if d.n < k {
			k = d.n
		}
		positions := make([]int, k)
		for i := range positions {
			positions[i] = i
		}
		cfg.rng.Shuffle(k, func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

		var nodes [cycleHops + 1]int
		for i := 0; i < cycleHops; i++ {
			nodes[i] = positions[i%k]
		}
		nodes[cycleHops] = nodes[0]

		for i := 0; i < cycleHops; i++ {
			if nodes[i] == nodes[i+1] {
				continue
			}
			d.add(nodes[i], nodes[i+1], CycleRates[i])
		}

		return nil
	}
}
