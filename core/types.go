// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Quote and Graph declarations plus the sentinel error set.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidVertexCount indicates a negative vertex count.
	ErrInvalidVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrInvalidEdge indicates an edge that references a vertex outside
	// [0, V), or whose rate/weight cannot be used for relaxation.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge is a directed, weighted connection From→To.
//
// Weight is the additive cost used by shortest-path algorithms. For exchange
// rates it is -ln(rate), so a cycle whose weights sum below zero is a cycle
// whose rates multiply above one.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Rate converts the weight back into a multiplicative exchange rate, e^(-Weight).
func (e Edge) Rate() float64 {
	return math.Exp(-e.Weight)
}

// Quote is an exchange-rate observation as supplied by a data provider:
// one unit of From buys Rate units of To.
type Quote struct {
	From int
	To   int
	Rate float64
}

// Graph is an immutable directed multigraph over dense integer vertices.
//
// edges keeps input order; algorithms iterate it directly and tie-break on it.
// out holds, per vertex, the indices of its outgoing edges in input order.
type Graph struct {
	n     int
	edges []Edge
	out   [][]int
}
