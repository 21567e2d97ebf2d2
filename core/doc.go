// SPDX-License-Identifier: MIT

// Package core defines the immutable exchange-rate Graph consumed by the
// negative-cycle algorithms in this module.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are dense integer IDs in [0, VertexCount()). Labels such as
//     currency codes are owned by the data provider, not by the graph.
//   - Edges are directed and carry a float64 weight, normally -ln(rate).
//   - Parallel edges between the same ordered pair are allowed (different
//     timestamps, different providers) and keep their input order.
//   - Self-loops are rejected: a currency does not trade against itself, and
//     every reported cycle must span at least two distinct vertices.
//
// Construction validates every edge up front and fails with ErrInvalidEdge on
// the first violation, so algorithms never run on corrupt input:
//
//	– an endpoint outside [0, V)
//	– a self-loop (From == To)
//	– a rate that is not strictly positive and finite (FromQuotes)
//	– a weight that is NaN or ±Inf (NewGraph)
//
// Once built, a Graph is read-only. All accessors are safe for concurrent use
// by any number of goroutines without locking.
//
// Example:
//
//	g, err := core.FromQuotes(3, []core.Quote{
//	    {From: 0, To: 1, Rate: 0.9},
//	    {From: 1, To: 2, Rate: 1.2},
//	    {From: 2, To: 0, Rate: 0.95},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.VertexCount(), g.EdgeCount()) // 3 3
package core
