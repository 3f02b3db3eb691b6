package coarsen

import (
	"sort"

	"github.com/tit-go/geomgraph/internal/rng"
	"github.com/tit-go/geomgraph/wgraph"
)

// GEM coarsens fine by Graph Edge Matching: edges are visited heaviest
// first (ties broken by ascending min endpoint weight, then hash), and
// each edge pairs its endpoints if both are still unmatched. Nodes left
// over after the sweep stand alone. GEM carries a 1/2-optimality
// guarantee on total matched-edge weight that HEM lacks. It returns the
// coarse graph together with the coarse-to-fine and fine-to-coarse
// mappings.
func GEM(fine *wgraph.Graph) (coarse *wgraph.Graph, coarseToFine, fineToCoarse []int) {
	n := fine.NumNodes()
	edges := fine.AllWEdges()
	sort.Slice(edges, func(i, j int) bool {
		ei, ej := edges[i], edges[j]
		if ei.Weight != ej.Weight {
			return ei.Weight > ej.Weight
		}
		mi := minInt64(fine.Weight(ei.U), fine.Weight(ei.V))
		mj := minInt64(fine.Weight(ej.U), fine.Weight(ej.V))
		if mi != mj {
			return mi < mj
		}
		return rng.Hash(ei.U, ei.V) < rng.Hash(ej.U, ej.V)
	})

	fineToCoarse = make([]int, n)
	for i := range fineToCoarse {
		fineToCoarse[i] = -1
	}
	coarseToFine = make([]int, 0, n)

	coarseNode := 0
	for _, e := range edges {
		if fineToCoarse[e.U] != -1 || fineToCoarse[e.V] != -1 {
			continue
		}
		fineToCoarse[e.U] = coarseNode
		fineToCoarse[e.V] = coarseNode
		coarseToFine = append(coarseToFine, e.U, e.V)
		coarseNode++
	}
	for _, u := range fine.Nodes() {
		if fineToCoarse[u] != -1 {
			continue
		}
		fineToCoarse[u] = coarseNode
		coarseToFine = append(coarseToFine, u)
		coarseNode++
	}

	coarse = buildCoarseGraph(fine, coarseToFine, fineToCoarse)
	return coarse, coarseToFine, fineToCoarse
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
