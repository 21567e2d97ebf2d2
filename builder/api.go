// SPDX-License-Identifier: MIT
// Package: negcycle/builder
//
// api.go: thin public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Resolves cfg, runs
//     cons in order against a quote draft, then freezes it into a core.Graph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs, edge order included.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/negcycle/core"
)

// Method names used as error context.
const (
	methodBuildGraph      = "BuildGraph"
	methodRandomMarket    = "RandomMarket"
	methodRandomQuotes    = "RandomQuotes"
	methodProfitableCycle = "ProfitableCycle"
	methodSnapshotQuotes  = "SnapshotQuotes"
	methodCrossRates      = "CrossRates"
)

// draft accumulates quotes over a fixed vertex range until BuildGraph
// freezes it into an immutable core.Graph.
type draft struct {
	n      int
	quotes []core.Quote
}

// add appends one quote; validation is deferred to core.FromQuotes.
func (d *draft) add(from, to int, rate float64) {
	d.quotes = append(d.quotes, core.Quote{From: from, To: to, Rate: rate})
}

// Constructor appends quotes to a draft using the resolved builderConfig.
// Constructors validate parameters first and return sentinel errors; they
// never panic.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies cons in order over vertexCount vertices
// and builds the graph. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ constructor cost + O(V + E) to freeze.
func BuildGraph(vertexCount int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if vertexCount < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodBuildGraph, vertexCount, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(bopts...)

	d := &draft{n: vertexCount}
	for _, con := range cons {
		if err := con(d, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	g, err := core.FromQuotes(d.n, d.quotes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}

	return g, nil
}

// RandomMarket builds a synthetic market of numCurrencies currencies and up
// to numTransactions random quotes (self pairs are drawn but dropped, so the
// edge count is usually a little lower). With WithInsertedCycle(true) the
// known loop of ProfitableCycle (profit factor CycleProfit() ≈ 1.0811) is
// appended after the random quotes.
//
// Requires an RNG (WithSeed or WithRand).
func RandomMarket(numCurrencies, numTransactions int, opts ...BuilderOption) (*core.Graph, error) {
	cons := []Constructor{RandomQuotes(numTransactions)}
	if newBuilderConfig(opts...).insertCycle {
		cons = append(cons, ProfitableCycle())
	}

	g, err := BuildGraph(numCurrencies, opts, cons...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomMarket, err)
	}

	return g, nil
}

// CrossRates builds a market over codes (codes[0] is the base currency with
// rate 1) from reference-rate snapshots. Every snapshot contributes an edge
// for every ordered pair of listed currencies it quotes, so multi-day input
// yields parallel edges.
func CrossRates(codes []string, snapshots []Snapshot) (*core.Graph, error) {
	g, err := BuildGraph(len(codes), nil, SnapshotQuotes(codes, snapshots))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCrossRates, err)
	}

	return g, nil
}
