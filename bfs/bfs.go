// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/negcycle/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the visit hook.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:      make([]int, 0, n),
			Depth:      filled(n),
			Parent:     filled(n),
			ParentEdge: filled(n),
		},
	}

	w.enqueue(start, 0, Unreached, Unreached)

	return w.res, w.loop()
}

// Reachable returns the number of vertices reachable from start, start
// included.
func Reachable(g *core.Graph, start int) (int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return 0, err
	}

	return res.Count(), nil
}

func filled(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = Unreached
	}

	return s
}

// enqueue marks v reached at depth d through edge e from parent.
func (w *walker) enqueue(v, d, parent, e int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.res.ParentEdge[v] = e
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors follows out-edges in input order, so the visit sequence
// is reproducible.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, ei := range w.graph.OutEdges(item.v) {
		if !w.opts.FilterEdge(ei) {
			continue
		}
		to := w.graph.Edge(ei).To
		if w.res.Depth[to] == Unreached {
			w.enqueue(to, next, item.v, ei)
		}
	}
}
