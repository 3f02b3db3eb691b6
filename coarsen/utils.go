package coarsen

import "github.com/tit-go/geomgraph/wgraph"

// buildCoarseGraph rebuilds the weighted graph over coarse node ids, given
// coarseToFine (fine ids in coarse-id order, grouped contiguously by
// coarse id) and its inverse fineToCoarse. Coarse node weight is the sum
// of its fine weights; coarse edge weight is the sum of every fine edge
// weight whose endpoints map to that coarse pair.
func buildCoarseGraph(fine *wgraph.Graph, coarseToFine, fineToCoarse []int) *wgraph.Graph {
	coarse := wgraph.NewGraph()
	n := len(coarseToFine)
	for i := 0; i < n; {
		cid := fineToCoarse[coarseToFine[i]]
		var weight int64
		neighbors := make(map[int]int64)
		j := i
		for j < n && fineToCoarse[coarseToFine[j]] == cid {
			fn := coarseToFine[j]
			weight += fine.Weight(fn)
			for _, we := range fine.WEdges(fn) {
				cn := fineToCoarse[we.Neighbor]
				if cn == cid {
					continue
				}
				neighbors[cn] += we.Weight
			}
			j++
		}
		coarse.AppendNode(weight, neighbors)
		i = j
	}
	return coarse
}
