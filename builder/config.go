// SPDX-License-Identifier: MIT
// Package: negcycle/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil            (stochastic constructors then fail fast)
//   • rateFn      = DefaultRateFn  (uniform on [0.5, 2.0])
//   • insertCycle = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng         *rand.Rand // nil means "no randomness available"
	rateFn      RateFn     // rate generator for random quotes
	insertCycle bool       // RandomMarket appends ProfitableCycle
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rateFn: DefaultRateFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
