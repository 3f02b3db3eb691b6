package index

import (
	"github.com/tit-go/geomgraph/bisect"
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/par"
	"github.com/tit-go/geomgraph/spatial"
	"github.com/tit-go/geomgraph/vecmath"
)

// kdNode is either a leaf (perm non-nil, left/right nil) or an internal
// node (left/right set, cutLeft/cutRight/axis meaningful).
type kdNode[N vecmath.Float] struct {
	axis             int
	cutLeft, cutRight N
	left, right      *kdNode[N]
	perm             []int
}

// KDTree is a balanced spatial index built by recursively
// median-splitting along the longest-extent axis, stopping at
// maxLeafSize. Node storage comes from a single par.Arena, so it is
// built on a single goroutine even though sfc's sorts use goroutines at
// the same size threshold — the arena contract is single-thread-only.
type KDTree[N vecmath.Float] struct {
	points      []vecmath.Vec[N]
	maxLeafSize int
	root        *kdNode[N]
	treeBox     spatial.BBox[N]
	arena       *par.Arena[kdNode[N]]
}

// BuildKDTree indexes points for radius search, splitting until no leaf
// holds more than maxLeafSize points (default 1 if maxLeafSize <= 0).
func BuildKDTree[N vecmath.Float](points []vecmath.Vec[N], maxLeafSize int) *KDTree[N] {
	assert.True(len(points) > 0, "index: BuildKDTree requires non-empty input")
	if maxLeafSize <= 0 {
		maxLeafSize = 1
	}

	perm := make([]int, len(points))
	for i := range perm {
		perm[i] = i
	}

	t := &KDTree[N]{points: points, maxLeafSize: maxLeafSize, arena: par.NewArena[kdNode[N]](par.DefaultSlabSize)}
	t.root, t.treeBox = t.buildSubtree(perm)
	return t
}

func (t *KDTree[N]) newNode() *kdNode[N] {
	return &t.arena.Allocate(1)[0]
}

func (t *KDTree[N]) buildSubtree(perm []int) (*kdNode[N], spatial.BBox[N]) {
	box := spatial.ComputeBBox(t.points, perm)
	node := t.newNode()

	if len(perm) <= t.maxLeafSize {
		node.perm = perm
		return node, box
	}

	axis := box.LargestExtentAxis()
	median := len(perm) / 2
	bisect.CoordMedianSplit(t.points, perm, median, axis)
	left, right := perm[:median], perm[median:]

	node.axis = axis
	leftTree, leftBox := t.buildSubtree(left)
	node.left = leftTree
	node.cutLeft = leftBox.High.At(axis)

	rightTree, rightBox := t.buildSubtree(right)
	node.right = rightTree
	node.cutRight = rightBox.Low.At(axis)

	return node, box
}

// Search returns every point index within radius r of q, optionally
// filtered by pred.
func (t *KDTree[N]) Search(q vecmath.Vec[N], r N, pred func(i int) bool) []int {
	assert.True(r > 0, "index: search radius must be positive")
	searchDist := r * r
	dim := q.Dim()

	clamped := t.treeBox.Clamp(q)
	dists := make([]N, dim)
	for d := 0; d < dim; d++ {
		diff := q.At(d) - clamped.At(d)
		dists[d] = diff * diff
	}

	var out []int
	t.searchSubtree(t.root, dists, q, searchDist, &out, pred)
	return out
}

func (t *KDTree[N]) searchSubtree(node *kdNode[N], dists []N, q vecmath.Vec[N], searchDist N, out *[]int, pred func(int) bool) {
	if node.left == nil {
		for _, i := range node.perm {
			d := vecmath.Norm2(vecmath.Sub(q, t.points[i]))
			if d < searchDist && (pred == nil || pred(i)) {
				*out = append(*out, i)
			}
		}
		return
	}

	axis := node.axis
	deltaLeft := q.At(axis) - node.cutLeft
	deltaRight := node.cutRight - q.At(axis)

	var cutDist N
	var first, second *kdNode[N]
	if deltaLeft < deltaRight {
		cutDist = deltaRight * deltaRight
		first, second = node.left, node.right
	} else {
		cutDist = deltaLeft * deltaLeft
		first, second = node.right, node.left
	}

	t.searchSubtree(first, dists, q, searchDist, out, pred)

	sum := N(0)
	for _, d := range dists {
		sum += d
	}
	if sum < searchDist {
		old := dists[axis]
		dists[axis] = cutDist
		t.searchSubtree(second, dists, q, searchDist, out, pred)
		dists[axis] = old
	}
}
