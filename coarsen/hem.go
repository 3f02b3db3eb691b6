package coarsen

import (
	"sort"

	"github.com/tit-go/geomgraph/internal/rng"
	"github.com/tit-go/geomgraph/wgraph"
)

// HEM coarsens fine by Heavy Edge Matching: nodes are visited lightest
// first (hash-broken ties), and each unmatched node is paired with its
// heaviest-edge unmatched neighbor (node-weight, then hash, as
// tie-break); a node with no unmatched neighbor stands alone. It returns
// the coarse graph together with the coarse-to-fine and fine-to-coarse
// mappings.
func HEM(fine *wgraph.Graph) (coarse *wgraph.Graph, coarseToFine, fineToCoarse []int) {
	n := fine.NumNodes()
	order := fine.Nodes()
	sort.Slice(order, func(i, j int) bool {
		u, v := order[i], order[j]
		wu, wv := fine.Weight(u), fine.Weight(v)
		if wu != wv {
			return wu < wv
		}
		return rng.Hash(u) < rng.Hash(v)
	})

	fineToCoarse = make([]int, n)
	for i := range fineToCoarse {
		fineToCoarse[i] = -1
	}
	coarseToFine = make([]int, 0, n)

	coarseNode := 0
	for _, u := range order {
		if fineToCoarse[u] != -1 {
			continue
		}
		fineToCoarse[u] = coarseNode
		coarseToFine = append(coarseToFine, u)

		bestNeighbor := -1
		var bestEdgeWeight, bestNodeWeight int64
		for _, we := range fine.WEdges(u) {
			v := we.Neighbor
			if fineToCoarse[v] != -1 {
				continue
			}
			vw := fine.Weight(v)
			replace := false
			switch {
			case bestNeighbor == -1:
				replace = true
			case we.Weight > bestEdgeWeight:
				replace = true
			case we.Weight == bestEdgeWeight:
				switch {
				case vw > bestNodeWeight:
					replace = true
				case vw == bestNodeWeight:
					replace = rng.Hash(u, v) > rng.Hash(u, bestNeighbor)
				}
			}
			if replace {
				bestNeighbor, bestEdgeWeight, bestNodeWeight = v, we.Weight, vw
			}
		}
		if bestNeighbor != -1 {
			fineToCoarse[bestNeighbor] = coarseNode
			coarseToFine = append(coarseToFine, bestNeighbor)
		}
		coarseNode++
	}

	coarse = buildCoarseGraph(fine, coarseToFine, fineToCoarse)
	return coarse, coarseToFine, fineToCoarse
}
