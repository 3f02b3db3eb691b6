package wgraph

import "github.com/tit-go/geomgraph/internal/assert"

// WEdge is a single weighted adjacency-list entry.
type WEdge struct {
	Neighbor int
	Weight   int64
}

// Edge is an undirected edge with both endpoints, as produced by
// Graph.AllWEdges (the unique-edge iterator).
type Edge struct {
	U, V   int
	Weight int64
}

// WNode pairs a node id with its weight, as produced by Graph.WNodes.
type WNode struct {
	ID     int
	Weight int64
}

// Graph is a forward-star (compressed adjacency) weighted graph. Nodes
// are identified by their append order, 0..NumNodes()-1. Every edge is
// expected to be stored from both endpoints (spec.md §3): the graph
// itself does not enforce symmetry, since a node's reverse edges are
// typically known and supplied by the caller before that neighbor node
// is ever appended.
//
// Node weights must be positive; edge weights must be positive.
type Graph struct {
	offsets     []int
	edges       []int
	edgeWeights []int64
	nodeWeights []int64
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{offsets: []int{0}}
}

// Clear resets g to the empty graph, reusing its backing storage.
func (g *Graph) Clear() {
	g.offsets = g.offsets[:1]
	g.offsets[0] = 0
	g.edges = g.edges[:0]
	g.edgeWeights = g.edgeWeights[:0]
	g.nodeWeights = g.nodeWeights[:0]
}

// NumNodes returns the number of nodes appended so far.
func (g *Graph) NumNodes() int { return len(g.offsets) - 1 }

// NumEdges returns the number of directed adjacency-list entries (i.e.
// twice the number of undirected edges, for a symmetric graph).
func (g *Graph) NumEdges() int { return len(g.edges) }

// AppendNode appends a new node with the given weight and adjacency map
// (neighbor id -> edge weight), and returns its id.
func (g *Graph) AppendNode(weight int64, neighbors map[int]int64) int {
	assert.True(weight > 0, "wgraph: node weight must be positive, got %d", weight)
	for n, w := range neighbors {
		assert.True(w > 0, "wgraph: edge weight to neighbor %d must be positive, got %d", n, w)
	}
	id := g.NumNodes()
	g.nodeWeights = append(g.nodeWeights, weight)
	for n, w := range neighbors {
		g.edges = append(g.edges, n)
		g.edgeWeights = append(g.edgeWeights, w)
	}
	g.offsets = append(g.offsets, len(g.edges))
	return id
}

// AppendEdges appends a new node with the given weight and parallel
// neighbor/weight slices, and returns its id. It is the bulk-append
// counterpart to AppendNode, used when the caller already has its
// adjacency in deterministic slice form (e.g. partition's grid-graph
// builder, which collects each cell's axis neighbors into slices) and
// would rather not allocate a map.
func (g *Graph) AppendEdges(weight int64, neighbors []int, edgeWeights []int64) int {
	assert.True(weight > 0, "wgraph: node weight must be positive, got %d", weight)
	assert.True(len(neighbors) == len(edgeWeights), "wgraph: neighbors/edgeWeights length mismatch %d vs %d", len(neighbors), len(edgeWeights))
	for _, w := range edgeWeights {
		assert.True(w > 0, "wgraph: edge weight must be positive, got %d", w)
	}
	id := g.NumNodes()
	g.nodeWeights = append(g.nodeWeights, weight)
	g.edges = append(g.edges, neighbors...)
	g.edgeWeights = append(g.edgeWeights, edgeWeights...)
	g.offsets = append(g.offsets, len(g.edges))
	return id
}

// Weight returns the weight of node v.
func (g *Graph) Weight(v int) int64 {
	assert.True(v >= 0 && v < g.NumNodes(), "wgraph: node %d out of range [0,%d)", v, g.NumNodes())
	return g.nodeWeights[v]
}

// Edges returns the neighbor ids of v.
func (g *Graph) Edges(v int) []int {
	assert.True(v >= 0 && v < g.NumNodes(), "wgraph: node %d out of range [0,%d)", v, g.NumNodes())
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// WEdges returns the (neighbor, weight) pairs of v.
func (g *Graph) WEdges(v int) []WEdge {
	assert.True(v >= 0 && v < g.NumNodes(), "wgraph: node %d out of range [0,%d)", v, g.NumNodes())
	lo, hi := g.offsets[v], g.offsets[v+1]
	out := make([]WEdge, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = WEdge{Neighbor: g.edges[i], Weight: g.edgeWeights[i]}
	}
	return out
}

// Nodes returns every node id, 0..NumNodes()-1.
func (g *Graph) Nodes() []int {
	out := make([]int, g.NumNodes())
	for i := range out {
		out[i] = i
	}
	return out
}

// WNodes returns every (id, weight) pair.
func (g *Graph) WNodes() []WNode {
	out := make([]WNode, g.NumNodes())
	for i := range out {
		out[i] = WNode{ID: i, Weight: g.nodeWeights[i]}
	}
	return out
}

// AllWEdges returns every undirected edge exactly once, filtering out
// the duplicate direction (neighbor < v is skipped on the higher-ID
// side, matching "wedges() (unique edges)" in spec.md §4.8).
func (g *Graph) AllWEdges() []Edge {
	out := make([]Edge, 0, len(g.edges)/2)
	for v := 0; v < g.NumNodes(); v++ {
		lo, hi := g.offsets[v], g.offsets[v+1]
		for i := lo; i < hi; i++ {
			n := g.edges[i]
			if n < v {
				continue
			}
			out = append(out, Edge{U: v, V: n, Weight: g.edgeWeights[i]})
		}
	}
	return out
}
