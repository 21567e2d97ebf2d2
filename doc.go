// SPDX-License-Identifier: MIT

// Package negcycle finds currency arbitrage by looking for negative cycles
// in a graph of exchange rates.
//
// Every rate r from currency A to currency B becomes a directed edge of
// weight -ln(r). A loop of trades multiplies its rates, so the loop is
// profitable exactly when its weights sum below zero. Bellman-Ford detects
// such a loop and the profit factor is e^(-total weight).
//
// Under the hood, everything is organized under these subpackages:
//
//	core/          immutable directed multigraph over dense integer vertices
//	bellmanford/   capped relaxation, witness scan, cycle walk, profit report
//	bfs/           breadth-first reachability from a start vertex
//	builder/       synthetic markets and ECB cross-rate markets
//	ecb/           European Central Bank feed client, daily cache, fallback
//	market/        data-provider capability (synthetic or ECB-backed)
//	scan/          caller-side runs: cancellation, labels, sweeps, metrics
//	cmd/negcycle/  cobra CLI (one-shot scan and watch mode)
//
// Quick example, a 20% loop over four currencies:
//
//	g, _ := core.NewGraph(4, []core.Edge{
//		{From: 0, To: 1, Weight: 0.1},
//		{From: 1, To: 2, Weight: 0.1},
//		{From: 2, To: 3, Weight: 0.1},
//		{From: 3, To: 0, Weight: -0.5},
//	})
//	d, _ := bellmanford.Detect(g, bellmanford.WithVirtualSource())
//	//             d.Found() == true, d.Report.ProfitFactor ≈ e^0.2
package negcycle
