// SPDX-License-Identifier: MIT
//
// File: bellmanford.go
// Role: Relaxation engine. Bounded Bellman-Ford passes over the edge list with
//       early termination, producing the distance and predecessor tables.

package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/negcycle/core"
)

// Result holds the tables and flags produced by one relaxation run.
//
// The tables are sized V, or V+1 with a virtual source (which then lives at
// index V). dist, pred and predEdge are always written together.
type Result struct {
	dist     []float64 // tentative shortest distance per vertex; +Inf if unreached
	pred     []int     // predecessor vertex, noPredecessor, or V for the virtual source
	predEdge []int     // index of the edge that set dist[v], or noPredecessor/virtualEdge

	n       int  // real vertex count V
	source  int  // index the run started from (V when virtual)
	virtual bool // whether the virtual source was used

	lastRelaxed int     // last real edge relaxed in the final pass, or -1
	opts        Options // resolved options, reused by FindCycle

	// Passes is the number of relaxation passes executed.
	Passes int
	// MaxIterations is the resolved pass cap K.
	MaxIterations int
	// Converged is true when a pass made no update (fixed point).
	Converged bool
	// Stopped is true when the PassHook ended relaxation early.
	Stopped bool
	// CapReached is true when relaxation ended without reaching a fixed point.
	// Distances are then only upper bounds and a cycle may be out of reach.
	CapReached bool
}

// Run executes the relaxation engine on g.
//
// Steps:
//  1. Resolve options; validate graph and source.
//  2. dist = +Inf, dist[source] = 0, predecessors cleared.
//  3. Up to K passes: relax every edge in input order, then (with a virtual
//     source) the implicit 0-weight edges. Stop after the first quiet pass or
//     when the PassHook returns false.
//
// Complexity: O(K·(E+V)) time, O(V) space.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := resolveOptions(opts)
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if !cfg.VirtualSource && !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	r := newResult(n, cfg)
	r.relax(g.EdgeList())

	return r, nil
}

// newResult allocates and initialises the tables for one run.
func newResult(n int, cfg Options) *Result {
	size := n
	source := cfg.Source
	if cfg.VirtualSource {
		size = n + 1
		source = n
	}

	r := &Result{
		dist:          make([]float64, size),
		pred:          make([]int, size),
		predEdge:      make([]int, size),
		n:             n,
		source:        source,
		virtual:       cfg.VirtualSource,
		lastRelaxed:   -1,
		opts:          cfg,
		MaxIterations: cfg.iterationCap(n),
	}

	inf := math.Inf(1)
	var v int
	for v = 0; v < size; v++ {
		r.dist[v] = inf
		r.pred[v] = noPredecessor
		r.predEdge[v] = noPredecessor
	}
	r.dist[source] = 0

	return r
}

// relax runs the bounded pass loop.
func (r *Result) relax(edges []core.Edge) {
	var (
		pass, relaxed, last int
		i                   int
		e                   core.Edge
		du, cand            float64
	)
	for pass = 0; pass < r.MaxIterations; pass++ {
		relaxed, last = 0, -1
		for i, e = range edges {
			du = r.dist[e.From]
			// Never relax through an unreached vertex: Inf + w would compare as
			// equal or, for -Inf weights, produce NaN.
			if math.IsInf(du, 1) {
				continue
			}
			cand = du + e.Weight
			// A NaN candidate compares false and is skipped.
			if cand < r.dist[e.To] {
				r.dist[e.To] = cand
				r.pred[e.To] = e.From
				r.predEdge[e.To] = i
				relaxed++
				last = i
			}
		}
		if r.virtual {
			relaxed += r.relaxVirtual()
		}

		r.Passes = pass + 1
		if relaxed == 0 {
			r.Converged = true
			break
		}
		r.lastRelaxed = last
		if r.opts.PassHook != nil && !r.opts.PassHook(r.Passes, relaxed) {
			r.Stopped = true
			break
		}
	}

	r.CapReached = !r.Converged
}

// relaxVirtual relaxes the implicit edges source→v (weight 0) for every real v.
func (r *Result) relaxVirtual() int {
	var v, relaxed int
	for v = 0; v < r.n; v++ {
		if 0 < r.dist[v] {
			r.dist[v] = 0
			r.pred[v] = r.source
			r.predEdge[v] = virtualEdge
			relaxed++
		}
	}

	return relaxed
}

// VertexCount returns the number of real vertices the tables cover.
func (r *Result) VertexCount() int { return r.n }

// Source returns the source vertex, or (-1, false) for a virtual-source run.
func (r *Result) Source() (int, bool) {
	if r.virtual {
		return -1, false
	}

	return r.source, true
}

// Distance returns the tentative distance of v (+Inf if unreached or unknown).
func (r *Result) Distance(v int) float64 {
	if v < 0 || v >= r.n {
		return math.Inf(1)
	}

	return r.dist[v]
}

// Distances returns a copy of the distance table over the real vertices.
func (r *Result) Distances() []float64 {
	out := make([]float64, r.n)
	copy(out, r.dist[:r.n])

	return out
}

// Predecessor returns the vertex that last improved v's distance. ok is false
// when v is unreached, is the source, or was reached from the virtual source.
func (r *Result) Predecessor(v int) (u int, ok bool) {
	if v < 0 || v >= r.n {
		return noPredecessor, false
	}
	u = r.pred[v]
	if u == noPredecessor || (r.virtual && u == r.source) {
		return noPredecessor, false
	}

	return u, true
}

// PredecessorEdge returns the index of the edge that last improved v's
// distance, with the same ok semantics as Predecessor.
func (r *Result) PredecessorEdge(v int) (int, bool) {
	if _, ok := r.Predecessor(v); !ok {
		return noPredecessor, false
	}

	return r.predEdge[v], true
}

// Relaxable reports whether edge e still improves a distance under the
// current tables, which is the witness test used by detection.
func (r *Result) Relaxable(e core.Edge) bool {
	du := r.dist[e.From]
	if math.IsInf(du, 1) {
		return false
	}

	return du+e.Weight < r.dist[e.To]
}
