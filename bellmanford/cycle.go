// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: Cycle extraction by walking predecessor links.
//
// The walk first steps back V times from the witness head so that it stands on
// the cycle rather than on a tail leading into it, then records vertices until
// one repeats. Everything lives in fixed-size index arrays allocated once per
// detection; there is no recursion.

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/negcycle/core"
)

// walker carries the scratch arrays shared by every witness tried in one
// detection pass.
type walker struct {
	res   *Result
	edges []core.Edge
	n     int

	// rooted[v] is set once v's predecessor chain is known to end at a root
	// (source, virtual source, or an unreached vertex) or at a lone self-loop,
	// so later witnesses whose chains merge into it stop immediately. This
	// keeps the total cost of failed walks at O(V) per detection.
	rooted []bool
	// seen[v] is the position of v in the recorded sequence, or -1.
	seen  []int
	trail []int
}

func newWalker(res *Result, edges []core.Edge) *walker {
	w := &walker{
		res:    res,
		edges:  edges,
		n:      res.n,
		rooted: make([]bool, res.n),
		seen:   make([]int, res.n),
		trail:  make([]int, 0, res.n),
	}
	var v int
	for v = 0; v < w.n; v++ {
		w.seen[v] = -1
	}

	return w
}

// step returns the predecessor of v. root is true when v has none in the
// real graph. An index outside [0,V) is reported as ErrInconsistentTables.
func (w *walker) step(v int) (p int, root bool, err error) {
	p = w.res.pred[v]
	if p == noPredecessor || (w.res.virtual && p == w.res.source) {
		return p, true, nil
	}
	if p < 0 || p >= w.n {
		return p, false, fmt.Errorf("%w: pred[%d] = %d outside [0,%d)", ErrInconsistentTables, v, p, w.n)
	}

	return p, false, nil
}

// cycleFrom tries to recover a cycle on the predecessor chain of v.
// It returns ok == false when the chain ends at a root instead, or when the
// loop it reaches is a single self-loop, which is not a trade cycle.
func (w *walker) cycleFrom(v int) (*Cycle, bool, error) {
	// Phase 1: step back V times to land on the cycle.
	w.trail = w.trail[:0]
	x := v
	var (
		i    int
		p    int
		root bool
		err  error
	)
	for i = 0; i < w.n; i++ {
		if w.rooted[x] {
			w.markRooted()
			return nil, false, nil
		}
		w.trail = append(w.trail, x)
		if p, root, err = w.step(x); err != nil {
			return nil, false, err
		}
		if root {
			w.markRooted()
			return nil, false, nil
		}
		x = p
	}

	// Phase 2: record backwards from x until a vertex repeats. After V steps
	// x is on the cycle, so this closes within V steps; anything else means
	// the tables changed under us or were built for another graph.
	seq := make([]int, 0, 8)
	var at int
	for i = 0; i <= w.n; i++ {
		if at = w.seen[x]; at >= 0 {
			if len(seq[at:]) < 2 {
				// Every vertex on the trail drains into this self-loop.
				w.clearSeen(seq)
				w.markRooted()
				return nil, false, nil
			}
			c, cerr := w.build(seq[at:])
			w.clearSeen(seq)
			return c, cerr == nil, cerr
		}
		w.seen[x] = len(seq)
		seq = append(seq, x)
		if p, root, err = w.step(x); err != nil {
			w.clearSeen(seq)
			return nil, false, err
		}
		if root {
			w.clearSeen(seq)
			return nil, false, fmt.Errorf("%w: chain from %d left the cycle at %d", ErrInconsistentTables, v, x)
		}
		x = p
	}
	w.clearSeen(seq)

	return nil, false, fmt.Errorf("%w: walk from %d did not close within %d steps", ErrInconsistentTables, v, w.n)
}

// build turns a backward vertex sequence [c0, pred(c0), pred(pred(c0)), ...]
// into a forward, closed Cycle and looks up the traversed edges.
//
// For each forward pair a→b the authoritative edge is predEdge[b]: the edge
// that performed b's last relaxation. Among parallel edges of equal weight that
// is always the first in input order, because later ones never strictly improve.
func (w *walker) build(back []int) (*Cycle, error) {
	k := len(back)
	c := &Cycle{
		Vertices:    make([]int, k+1),
		EdgeIndices: make([]int, k),
		Edges:       make([]core.Edge, k),
	}
	var i int
	for i = 0; i < k; i++ {
		c.Vertices[i] = back[k-1-i]
	}
	c.Vertices[k] = c.Vertices[0]

	var (
		a, b, idx int
		e         core.Edge
	)
	for i = 0; i < k; i++ {
		a, b = c.Vertices[i], c.Vertices[i+1]
		idx = w.res.predEdge[b]
		if idx < 0 || idx >= len(w.edges) {
			return nil, fmt.Errorf("%w: predEdge[%d] = %d", ErrInconsistentTables, b, idx)
		}
		e = w.edges[idx]
		if e.From != a || e.To != b {
			return nil, fmt.Errorf("%w: predEdge[%d] is %d→%d, want %d→%d", ErrInconsistentTables, b, e.From, e.To, a, b)
		}
		c.EdgeIndices[i] = idx
		c.Edges[i] = e
		c.TotalWeight += e.Weight
	}

	return c, nil
}

// markRooted flags every vertex on the current trail as root-bound.
func (w *walker) markRooted() {
	for _, v := range w.trail {
		w.rooted[v] = true
	}
}

// clearSeen resets the positions recorded for seq so the arrays can be reused.
func (w *walker) clearSeen(seq []int) {
	for _, v := range seq {
		w.seen[v] = -1
	}
}
