// SPDX-License-Identifier: MIT
//
// File: detect.go
// Role: Negative-cycle detection. Scans (or samples) edges for a witness that
//       is still relaxable, then hands its head vertex to the extractor.
// Determinism:
//   - Witnesses are tried in ascending edge index order.
//   - Sampling uses a seeded math/rand stream; equal seeds give equal samples.

package bellmanford

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/negcycle/core"
)

// Cycle is a negative cycle recovered from the predecessor tables.
type Cycle struct {
	// Vertices is the closed walk in forward order; the first vertex is
	// repeated at the end.
	Vertices []int
	// EdgeIndices[i] is the index (in g's input order) of the edge
	// Vertices[i]→Vertices[i+1].
	EdgeIndices []int
	// Edges holds the traversed edges, aligned with EdgeIndices.
	Edges []core.Edge
	// TotalWeight is the sum of the traversed edge weights.
	TotalWeight float64
	// Sampled is true when detection examined only a sample of the edges.
	Sampled bool
}

// Len returns the number of edges (equivalently distinct vertices) in the cycle.
func (c *Cycle) Len() int { return len(c.EdgeIndices) }

// FindCycle searches the tables in res for a negative cycle of g.
//
// Returns (cycle, true, nil) on success and (nil, false, nil) when no witness
// leads to a cycle, which is the ordinary "no arbitrage" outcome. The only
// error besides argument validation is ErrInconsistentTables.
//
// Witness order:
//  1. Edges still relaxable, in ascending index order. When |E| exceeds the
//     sample threshold only a seeded sample of SampleSize edges is examined.
//  2. If the sample found nothing but relaxation hit its cap, the last edge
//     relaxed in the final pass is tried as a start point.
//
// Complexity: O(E + V) for a full scan; O(S log S + V) sampled, plus O(E)
// to draw the sample.
func FindCycle(g *core.Graph, res *Result) (*Cycle, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if res == nil {
		return nil, false, ErrNilResult
	}
	if g.VertexCount() != res.n {
		return nil, false, fmt.Errorf("%w: tables cover %d vertices, graph has %d", ErrInconsistentTables, res.n, g.VertexCount())
	}

	edges := g.EdgeList()
	w := newWalker(res, edges)

	candidates, sampled := witnessOrder(len(edges), res.opts)
	var (
		i   int
		c   *Cycle
		ok  bool
		err error
	)
	for _, i = range candidates {
		if !res.Relaxable(edges[i]) {
			continue
		}
		if c, ok, err = w.cycleFrom(edges[i].To); err != nil || ok {
			if c != nil {
				c.Sampled = sampled
			}
			return c, ok, err
		}
	}

	if sampled && res.CapReached && res.lastRelaxed >= 0 {
		if c, ok, err = w.cycleFrom(edges[res.lastRelaxed].To); err != nil || ok {
			if c != nil {
				c.Sampled = sampled
			}
			return c, ok, err
		}
	}

	return nil, false, nil
}

// witnessOrder returns the edge indices to examine, ascending, and whether
// they are a sample rather than the whole edge list.
func witnessOrder(total int, o Options) ([]int, bool) {
	if o.SampleThreshold > 0 && total > o.SampleThreshold && o.SampleSize < total {
		return sampleIndices(total, o.SampleSize, o.Seed), true
	}

	all := make([]int, total)
	var i int
	for i = 0; i < total; i++ {
		all[i] = i
	}

	return all, false
}

// sampleIndices draws size distinct indices from [0,total) with a partial
// Fisher–Yates shuffle seeded by seed, and returns them sorted ascending.
// Requires 0 < size < total.
//
// Complexity: O(total + size log size) time, O(total) space.
func sampleIndices(total, size int, seed int64) []int {
	rng := rngFromSeed(seed)

	idx := make([]int, total)
	var i, j int
	for i = 0; i < total; i++ {
		idx[i] = i
	}
	for i = 0; i < size; i++ {
		j = i + rng.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := idx[:size]
	sort.Ints(out)

	return out
}

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 selects defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
