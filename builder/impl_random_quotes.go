// SPDX-License-Identifier: MIT
// Package: negcycle/builder
//
// impl_random_quotes.go: RandomQuotes(m) constructor.
//
// Contract:
//   - m ≥ 0 (else ErrBadSize).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for m == 0.
//   - Each trial draws u, v uniformly from [0, n); u == v is dropped.
//   - The rate of a kept trial comes from cfg.rateFn after both endpoints.
//
// Determinism:
//   - Fixed draw order per trial: u, v, rate.

package builder

import "fmt"

// RandomQuotes returns a Constructor performing m random quote trials.
//
// Complexity: O(m) time, O(m) space for the appended quotes.
func RandomQuotes(m int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodRandomQuotes, m, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomQuotes, ErrNeedRandSource)
		}

		rng := cfg.rng
		var i, u, v int
		for i = 0; i < m; i++ {
			u = rng.Intn(d.n)
			v = rng.Intn(d.n)
			if u == v {
				continue
			}
			d.add(u, v, cfg.rateFn(rng))
		}

		return nil
	}
}
