// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explores vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result with the visit Order and per-vertex Depth, Parent and
//     ParentEdge (Unreached where nothing applies).
//   - Supports an OnVisit hook that may abort with an error, edge filtering
//     via WithFilterEdge and a MaxDepth limit.
//
// Why
//
//	Single-source Bellman-Ford only sees cycles reachable from its source.
//	Reachable tells a caller how much of the market a run actually covered.
//
// Determinism
//
//	Out-edges are followed in input order, so the visit sequence is fully
//	reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
