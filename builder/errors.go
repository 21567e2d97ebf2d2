// SPDX-License-Identifier: MIT
// Package: negcycle/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method name first).
//   • Invalid rates surface as core.ErrInvalidEdge from graph construction.

package builder

import "errors"

// ErrTooFewVertices indicates a currency count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates an invalid non-topology size, e.g. a negative
// transaction count or an empty snapshot list.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownCurrency indicates a currency code that a snapshot does not quote,
// or a code listed twice.
var ErrUnknownCurrency = errors.New("builder: unknown currency")
