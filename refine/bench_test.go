package refine_test

import (
	"math/rand"
	"testing"

	"github.com/tit-go/geomgraph/refine"
	"github.com/tit-go/geomgraph/wgraph"
)

// ringOfCliques builds numCliques disjoint triangles connected in a ring by
// single light bridge edges, a cheap stand-in for a coarsened interaction
// graph with a clear community structure to refine against.
func ringOfCliques(numCliques int) *wgraph.Graph {
	g := wgraph.NewGraph()
	rng := rand.New(rand.NewSource(7))
	n := numCliques * 3
	adj := make([]map[int]int64, n)
	for i := range adj {
		adj[i] = map[int]int64{}
	}
	addEdge := func(u, v int, w int64) {
		adj[u][v] = w
		adj[v][u] = w
	}
	for c := 0; c < numCliques; c++ {
		base := c * 3
		addEdge(base, base+1, 10+rng.Int63n(5))
		addEdge(base+1, base+2, 10+rng.Int63n(5))
		addEdge(base, base+2, 10+rng.Int63n(5))
		next := (base + 3) % n
		addEdge(base, next, 1)
	}
	for _, m := range adj {
		g.AppendNode(1, m)
	}
	return g
}

// BenchmarkFM measures one Fiduccia-Mattheyses refinement call against a
// partition that places every other clique in the wrong part.
func BenchmarkFM(b *testing.B) {
	const numCliques = 200
	g := ringOfCliques(numCliques)
	numParts := 2

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parts := make([]int, g.NumNodes())
		for v := range parts {
			parts[v] = (v / 3) % numParts
		}
		refine.FM(g, parts, numParts)
	}
}
