// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/negcycle/bfs"
	"github.com/katalvlaran/negcycle/core"
)

func mustGraph(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = core.Edge{From: p[0], To: p[1]}
	}
	g, err := core.NewGraph(n, edges)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, 2)
	if _, err := bfs.BFS(g, 2); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, -1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("negative start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DirectedLayers checks order, depths and parents on a directed
// graph where 3 is only reachable the long way round.
func TestBFS_DirectedLayers(t *testing.T) {
	// 0→1, 0→2, 1→3, 3→0, 4→0 (4 unreachable from 0)
	g := mustGraph(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{3, 0}, [2]int{4, 0})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 1, 2, bfs.Unreached}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{bfs.Unreached, 0, 0, 1, bfs.Unreached}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
	if res.ParentEdge[3] != 2 {
		t.Errorf("ParentEdge[3] = %d; want 2", res.ParentEdge[3])
	}
	if res.Reached(4) || !res.Reached(3) || res.Reached(9) {
		t.Error("Reached disagrees with Depth")
	}
	if res.Count() != 4 {
		t.Errorf("Count = %d; want 4", res.Count())
	}

	path, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}
	if _, err = res.PathTo(4); !errors.Is(err, bfs.ErrUnreachable) {
		t.Errorf("PathTo(4): want ErrUnreachable, got %v", err)
	}
}

func TestBFS_ParallelEdgesUseFirst(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 1}, [2]int{0, 1})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.ParentEdge[1] != 0 {
		t.Errorf("ParentEdge[1] = %d; want 0", res.ParentEdge[1])
	}
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	// chain 0→1→2→3
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth 2: Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, 0, bfs.WithFilterEdge(func(e int) bool { return e != 1 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered: Order = %v; want %v", res.Order, want)
	}
}

func TestBFS_HookAndCancel(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")

	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}

func TestReachable(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{2, 3})
	tests := []struct {
		start, want int
	}{
		{0, 2}, {1, 1}, {2, 2}, {3, 1},
	}
	for _, tc := range tests {
		got, err := bfs.Reachable(g, tc.start)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("Reachable(%d) = %d; want %d", tc.start, got, tc.want)
		}
	}
	if _, err := bfs.Reachable(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("want ErrStartVertexNotFound, got %v", err)
	}
}
