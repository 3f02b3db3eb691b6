package gpartition

import "github.com/tit-go/geomgraph/wgraph"

// ConnectedComponents returns the connected components of g, each a
// slice of node ids, restricted to the nodes named by active (nil means
// every node). This is the BFS engine Greedy uses internally to find the
// smallest unassigned component to seed next (spec.md §4.10 step 2),
// generalized from lvlath/gridgraph's BFS-over-equal-value-cells to
// BFS-over-an-arbitrary-weighted-graph restricted to a caller-chosen
// active set; exposed on its own since callers validating connectivity
// before partitioning need exactly this.
func ConnectedComponents(g *wgraph.Graph, active []bool) [][]int {
	n := g.NumNodes()
	if active == nil {
		active = make([]bool, n)
		for i := range active {
			active[i] = true
		}
	}

	visited := make([]bool, n)
	var comps [][]int
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if !active[s] || visited[s] {
			continue
		}
		visited[s] = true
		queue = queue[:0]
		queue = append(queue, s)
		comp := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, nb := range g.Edges(v) {
				if !active[nb] || visited[nb] {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
				comp = append(comp, nb)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
