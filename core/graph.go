// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Validating constructors and read-only accessors.
// Determinism:
//   - Edges(), EdgesBetween() and OutEdges() preserve input order.
// Concurrency:
//   - Graph is never mutated after construction; no locks are needed.

package core

import (
	"fmt"
	"math"
)

// NewGraph builds a Graph with vertexCount vertices from pre-computed edge
// weights. The edges slice is copied; later changes by the caller are not seen.
//
// Errors:
//   - ErrInvalidVertexCount if vertexCount < 0.
//   - ErrInvalidEdge (wrapped with the edge index) if an endpoint is outside
//     [0, vertexCount) or the weight is NaN or ±Inf.
//
// Self-loops and parallel edges are kept as given.
//
// Complexity: O(V + E) time and space.
func NewGraph(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", vertexCount, ErrInvalidVertexCount)
	}

	g := &Graph{
		n:     vertexCount,
		edges: make([]Edge, len(edges)),
		out:   make([][]int, vertexCount),
	}

	var (
		i int
		e Edge
	)
	for i, e = range edges {
		if err := checkEndpoints(vertexCount, e.From, e.To); err != nil {
			return nil, fmt.Errorf("NewGraph: edge %d (%d→%d): %s: %w", i, e.From, e.To, err.Error(), ErrInvalidEdge)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("NewGraph: edge %d (%d→%d): weight %v is not finite: %w", i, e.From, e.To, e.Weight, ErrInvalidEdge)
		}
		g.edges[i] = e
		g.out[e.From] = append(g.out[e.From], i)
	}

	return g, nil
}

// FromQuotes builds a Graph from exchange-rate quotes, converting every rate
// to the weight -ln(rate).
//
// Errors:
//   - ErrInvalidVertexCount if vertexCount < 0.
//   - ErrInvalidEdge (wrapped with the quote index) for out-of-range endpoints
//     or a rate that is not strictly positive and finite.
//
// Complexity: O(V + E).
func FromQuotes(vertexCount int, quotes []Quote) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("FromQuotes(%d): %w", vertexCount, ErrInvalidVertexCount)
	}

	edges := make([]Edge, len(quotes))
	var (
		i   int
		q   Quote
		w   float64
		err error
	)
	for i, q = range quotes {
		if err = checkEndpoints(vertexCount, q.From, q.To); err != nil {
			return nil, fmt.Errorf("FromQuotes: quote %d (%d→%d): %s: %w", i, q.From, q.To, err.Error(), ErrInvalidEdge)
		}
		if w, err = WeightFromRate(q.Rate); err != nil {
			return nil, fmt.Errorf("FromQuotes: quote %d (%d→%d): %w", i, q.From, q.To, err)
		}
		edges[i] = Edge{From: q.From, To: q.To, Weight: w}
	}

	return NewGraph(vertexCount, edges)
}

// WeightFromRate returns -ln(rate). The rate must be strictly positive and
// finite; otherwise ErrInvalidEdge is returned.
func WeightFromRate(rate float64) (float64, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return 0, fmt.Errorf("rate %v must be positive and finite: %w", rate, ErrInvalidEdge)
	}

	return -math.Log(rate), nil
}

// checkEndpoints reports why (from,to) is not a valid vertex pair for n vertices.
func checkEndpoints(n, from, to int) error {
	if from < 0 || from >= n {
		return fmt.Errorf("from vertex out of range [0,%d)", n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("to vertex out of range [0,%d)", n)
	}
	return nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns |E|, counting parallel edges individually.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the i-th edge in input order. It panics if i is out of range,
// like a slice index.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the edge list in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeList exposes the backing edge slice without copying. Callers must treat
// it as read-only; it exists so hot loops can range over edges directly.
func (g *Graph) EdgeList() []Edge { return g.edges }

// HasVertex reports whether v is in [0, V).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// OutEdges returns the indices of edges leaving v, in input order, or nil for
// an unknown vertex. The returned slice must not be modified.
func (g *Graph) OutEdges(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.out[v]
}

// OutDegree returns the number of edges leaving v (parallel edges counted).
func (g *Graph) OutDegree(v int) int { return len(g.OutEdges(v)) }

// EdgesBetween returns the indices of every edge u→v in input order.
// Complexity: O(outdeg(u)).
func (g *Graph) EdgesBetween(u, v int) []int {
	var idx []int
	for _, i := range g.OutEdges(u) {
		if g.edges[i].To == v {
			idx = append(idx, i)
		}
	}

	return idx
}

// HasEdge reports whether at least one edge u→v exists.
func (g *Graph) HasEdge(u, v int) bool {
	for _, i := range g.OutEdges(u) {
		if g.edges[i].To == v {
			return true
		}
	}

	return false
}
