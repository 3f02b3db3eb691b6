package gpartition_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tit-go/geomgraph/coarsen"
	"github.com/tit-go/geomgraph/gpartition"
	"github.com/tit-go/geomgraph/wgraph"
)

// path builds an n-node symmetric path graph 0-1-...-(n-1), unit node
// and edge weights.
func path(n int) *wgraph.Graph {
	g := wgraph.NewGraph()
	for i := 0; i < n; i++ {
		neighbors := map[int]int64{}
		if i > 0 {
			neighbors[i-1] = 1
		}
		if i < n-1 {
			neighbors[i+1] = 1
		}
		g.AppendNode(1, neighbors)
	}
	return g
}

func checkFullCover(t *testing.T, parts []int, numParts int) {
	t.Helper()
	seen := make([]bool, numParts)
	for _, p := range parts {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, numParts)
		seen[p] = true
	}
	for p, ok := range seen {
		require.True(t, ok, "part %d received no nodes", p)
	}
}

func TestConnectedComponentsSplitsDisjointGraph(t *testing.T) {
	g := wgraph.NewGraph()
	g.AppendNode(1, map[int]int64{1: 1})
	g.AppendNode(1, map[int]int64{0: 1})
	g.AppendNode(1, nil)

	comps := gpartition.ConnectedComponents(g, nil)
	require.Len(t, comps, 2)

	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	require.ElementsMatch(t, []int{2, 1}, sizes)
}

func TestConnectedComponentsRespectsActiveMask(t *testing.T) {
	g := path(4)
	active := []bool{true, false, true, true}
	comps := gpartition.ConnectedComponents(g, active)
	require.Len(t, comps, 2)
}

func TestGreedyCoversAndBalancesAllNodes(t *testing.T) {
	g := path(12)
	parts := make([]int, g.NumNodes())
	gpartition.Greedy(g, parts, 3, 0)
	checkFullCover(t, parts, 3)

	weight := make([]int64, 3)
	for v, p := range parts {
		weight[p] += g.Weight(v)
	}
	for _, w := range weight {
		require.InDelta(t, 4, w, 1)
	}
}

func TestGreedyHonorsInitPartOffset(t *testing.T) {
	g := path(6)
	parts := make([]int, g.NumNodes())
	gpartition.Greedy(g, parts, 2, 10)
	for _, p := range parts {
		require.GreaterOrEqual(t, p, 10)
		require.Less(t, p, 12)
	}
}

func TestMultilevelWithHEMCoversAllNodes(t *testing.T) {
	g := path(40)
	parts := make([]int, g.NumNodes())
	gpartition.Multilevel(g, parts, 4, 0, coarsen.HEM)
	checkFullCover(t, parts, 4)
}

func TestMultilevelFallsBackToGreedyOnSmallGraphs(t *testing.T) {
	g := path(4)
	parts := make([]int, g.NumNodes())
	gpartition.Multilevel(g, parts, 2, 0, coarsen.HEM)
	checkFullCover(t, parts, 2)
}

func TestMultilevelNilCoarsenerUsesGreedy(t *testing.T) {
	g := path(10)
	parts := make([]int, g.NumNodes())
	gpartition.Multilevel(g, parts, 2, 0, nil)
	checkFullCover(t, parts, 2)
}
