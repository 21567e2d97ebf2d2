// SPDX-License-Identifier: MIT

package bellmanford_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/negcycle/bellmanford"
	"github.com/katalvlaran/negcycle/core"
)

// randomGraph builds a market-like graph: m quotes between n currencies with
// rates uniform in [0.5, 2.0]. Self pairs are skipped.
func randomGraph(t require.TestingT, n, m int, seed int64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	quotes := make([]core.Quote, 0, m)
	for len(quotes) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		quotes = append(quotes, core.Quote{From: u, To: v, Rate: 0.5 + 1.5*rng.Float64()})
	}
	g, err := core.FromQuotes(n, quotes)
	require.NoError(t, err)

	return g
}

// quarterGraph builds a graph whose weights are multiples of 0.25, so every
// path sum is exact in float64.
func quarterGraph(t require.TestingT, rng *rand.Rand, n, m, low, high int) *core.Graph {
	edges := make([]core.Edge, 0, m)
	for len(edges) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		w := float64(low+rng.Intn(high-low+1)) / 4
		edges = append(edges, core.Edge{From: u, To: v, Weight: w})
	}
	g, err := core.NewGraph(n, edges)
	require.NoError(t, err)

	return g
}

// reachableNegativeCycle asks gonum's Bellman-Ford whether a negative cycle
// is reachable from src. Parallel edges collapse to the cheapest one.
func reachableNegativeCycle(g *core.Graph, src int) bool {
	og := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		og.AddNode(simple.Node(v))
	}
	for _, e := range g.EdgeList() {
		from, to := simple.Node(e.From), simple.Node(e.To)
		if w, ok := og.Weight(int64(e.From), int64(e.To)); ok && w <= e.Weight {
			continue
		}
		og.SetWeightedEdge(og.NewWeightedEdge(from, to, e.Weight))
	}
	_, ok := path.BellmanFordFrom(simple.Node(src), og)

	return !ok
}

func TestDetect_AgreesWithReferenceBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 300; trial++ {
		n := 2 + rng.Intn(7)
		m := rng.Intn(3 * n)
		g := quarterGraph(t, rng, n, m, -3, 8)

		d, err := bellmanford.Detect(g, bellmanford.WithoutSampling())
		require.NoError(t, err)

		want := reachableNegativeCycle(g, 0)
		require.Equalf(t, want, d.Found(), "trial %d: n=%d edges=%v", trial, n, g.EdgeList())
		if d.Found() {
			requireValidCycle(t, g, d.Report)
			require.Less(t, d.Report.TotalWeight, 0.0)
			require.True(t, d.Report.IsArbitrage)
		}
	}
}

func TestDetect_EdgeOrderDoesNotChangeDistances(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		n := 3 + rng.Intn(10)
		g := quarterGraph(t, rng, n, 4*n, 0, 12)

		base, err := bellmanford.Run(g)
		require.NoError(t, err)
		require.True(t, base.Converged)

		edges := g.Edges()
		rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
		shuffled, err := core.NewGraph(n, edges)
		require.NoError(t, err)

		res, err := bellmanford.Run(shuffled)
		require.NoError(t, err)
		require.True(t, res.Converged)
		require.Equal(t, base.Distances(), res.Distances(), "trial %d", trial)
	}
}

func TestDetect_RandomMarketsYieldValidCycles(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGraph(t, 25, 200, seed)

		d, err := bellmanford.Detect(g, bellmanford.WithVirtualSource(), bellmanford.WithMaxIterations(300))
		require.NoError(t, err)
		if !d.Found() {
			continue
		}
		requireValidCycle(t, g, d.Report)
		require.Less(t, d.Report.TotalWeight, 0.0)
		require.Greater(t, d.Report.ProfitFactor, 1.0)

		product := 1.0
		for _, pe := range d.Report.Edges {
			product *= pe.Rate
		}
		require.InEpsilon(t, d.Report.ProfitFactor, product, 1e-9)
	}
}
