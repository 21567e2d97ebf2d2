// SPDX-License-Identifier: MIT

// Package bellmanford finds arbitrage cycles in an exchange-rate graph by
// detecting negative-weight cycles with the Bellman-Ford algorithm.
//
// Overview:
//
//   - Weights are -ln(rate), so a cycle whose weights sum below zero is a cycle
//     whose rates multiply above one: an arbitrage opportunity.
//   - Run performs up to K relaxation passes over the edge list and stops early
//     on the first pass that changes nothing.
//   - FindCycle looks for a witness edge that is still relaxable and walks the
//     predecessor links back to recover the cycle.
//   - Detect glues both together and derives the profit metrics.
//
// Performance safeguards:
//
//   - Iteration cap K (default min(V, 1000)). A cycle needing more than K hops
//     from the source can be missed; set K ≥ V-1 for the classical guarantee.
//   - Early termination after a quiet pass, the dominant saving on graphs
//     without negative cycles.
//   - Edge sampling: above 10,000 edges detection examines a seeded sample of
//     10,000 edges. This trades a small chance of missing a cycle for bounded
//     latency; it is not a correctness guarantee. WithoutSampling disables it.
//   - Infinity-safe arithmetic: relaxation never passes through an unreached
//     vertex, and NaN candidates are ignored.
//
// Outcomes (never panics at run time):
//
//   - Report != nil: a cycle was found. IsArbitrage tells whether it pays.
//   - Report == nil: no cycle reachable within K passes. Result.CapReached
//     says whether that answer is only a lower bound.
//   - ErrInconsistentTables: an internal invariant broke; treat as a bug.
//
// Complexity:
//
//   - Time:  O(K·E) relaxation + O(E + V) detection.
//   - Space: O(V) for the distance and predecessor tables.
//
// Concurrency:
//
//   - A run is single-threaded and allocates its own tables. A *core.Graph is
//     read-only and may be shared by any number of concurrent runs.
//   - There is no cancellation primitive beyond K; WithPassHook lets a caller
//     stop between passes, e.g. on a wall-clock deadline.
//
// Example:
//
//	g, _ := core.NewGraph(4, []core.Edge{
//	    {From: 0, To: 1, Weight: 0.1},
//	    {From: 1, To: 2, Weight: 0.1},
//	    {From: 2, To: 3, Weight: 0.1},
//	    {From: 3, To: 0, Weight: -0.5},
//	})
//	rep, found, err := bellmanford.DetectArbitrage(g, 0, 4)
//	// found == true, rep.TotalWeight ≈ -0.2, rep.ProfitFactor ≈ 1.2214
package bellmanford
