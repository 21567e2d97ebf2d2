// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Public entry points combining relaxation, detection and metrics.

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/negcycle/core"
)

// PathEdge is one hop of a reported cycle.
type PathEdge struct {
	Index  int     // edge index in the graph's input order
	From   int     // source vertex
	To     int     // destination vertex
	Weight float64 // -ln(Rate)
	Rate   float64 // e^(-Weight)
}

// Report describes a detected cycle together with its profit metrics.
type Report struct {
	Vertices     []int      // closed sequence, first vertex repeated at the end
	Edges        []PathEdge // hops aligned with Vertices
	TotalWeight  float64    // Σ Edges[i].Weight
	ProfitFactor float64    // e^(-TotalWeight)
	IsArbitrage  bool       // ProfitFactor > 1
	Sampled      bool       // detection examined only a sample of the edges
}

// FinalAmount projects startAmount after one trip around the cycle.
func (r *Report) FinalAmount(startAmount float64) float64 {
	return startAmount * r.ProfitFactor
}

// ProfitPercent returns the per-cycle gain in percent.
func (r *Report) ProfitPercent() float64 {
	return (r.ProfitFactor - 1) * 100
}

// NewReport derives the metrics for c.
func NewReport(c *Cycle) *Report {
	r := &Report{
		Vertices:     append([]int(nil), c.Vertices...),
		Edges:        make([]PathEdge, len(c.Edges)),
		TotalWeight:  c.TotalWeight,
		ProfitFactor: ProfitFactor(c.TotalWeight),
		Sampled:      c.Sampled,
	}
	r.IsArbitrage = r.ProfitFactor > 1

	for i, e := range c.Edges {
		r.Edges[i] = PathEdge{
			Index:  c.EdgeIndices[i],
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			Rate:   e.Rate(),
		}
	}

	return r
}

// Detection is the typed outcome of Detect: either a cycle was found
// (Report != nil) or not, with the relaxation tables and flags always present.
type Detection struct {
	Report *Report // nil when no cycle was found
	Result *Result // relaxation tables and Passes/Converged/CapReached flags
}

// Found reports whether a cycle was detected.
func (d *Detection) Found() bool { return d.Report != nil }

// Detect runs relaxation, detection and metrics derivation on g.
//
// A graph without a reachable negative cycle yields a Detection with a nil
// Report and a nil error. Errors are limited to invalid arguments
// (ErrNilGraph, ErrSourceOutOfRange) and ErrInconsistentTables.
//
// Complexity: O(K·E) time, O(V) extra space.
func Detect(g *core.Graph, opts ...Option) (*Detection, error) {
	res, err := Run(g, opts...)
	if err != nil {
		return nil, err
	}

	d := &Detection{Result: res}
	c, ok, err := FindCycle(g, res)
	if err != nil {
		return d, err
	}
	if ok {
		d.Report = NewReport(c)
	}

	return d, nil
}

// DetectArbitrage is the compact form of Detect: relax from source for at most
// maxIterations passes (AutoIterations for min(V, 1000)) and report the cycle,
// if any.
func DetectArbitrage(g *core.Graph, source, maxIterations int) (*Report, bool, error) {
	if source < 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrSourceOutOfRange, source)
	}
	if maxIterations < 0 && maxIterations != AutoIterations {
		return nil, false, fmt.Errorf("%w: %d", ErrBadMaxIterations, maxIterations)
	}
	opts := []Option{Source(source)}
	if maxIterations != AutoIterations {
		opts = append(opts, WithMaxIterations(maxIterations))
	}

	d, err := Detect(g, opts...)
	if err != nil {
		return nil, false, err
	}

	return d.Report, d.Found(), nil
}
