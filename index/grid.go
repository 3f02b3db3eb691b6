package index

import (
	"math"

	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/spatial"
	"github.com/tit-go/geomgraph/vecmath"
	"github.com/tit-go/geomgraph/wgraph"
)

// GridIndex buckets points into a uniform grid of cells approximately
// sizeHint wide, for fast radius queries over roughly-uniform point
// clouds.
type GridIndex[N vecmath.Float] struct {
	points     []vecmath.Vec[N]
	bbox       spatial.BBox[N]
	numCells   []int
	cellSize   vecmath.Vec[N]
	cellPoints *wgraph.Multivector[int]
}

// BuildGridIndex buckets points into cells of approximately sizeHint
// extent. Panics on empty input or non-positive sizeHint.
func BuildGridIndex[N vecmath.Float](points []vecmath.Vec[N], sizeHint N) *GridIndex[N] {
	assert.True(len(points) > 0, "index: BuildGridIndex requires non-empty input")
	assert.True(sizeHint > 0, "index: sizeHint must be positive")

	box := spatial.ComputeBBox(points, nil).Grow(sizeHint / 2)
	dim := box.Dim()
	extents := box.Extents()

	numCells := make([]int, dim)
	cellSize := vecmath.Zero[N](dim)
	total := 1
	for d := 0; d < dim; d++ {
		n := int(math.Ceil(float64(extents.At(d)) / float64(sizeHint)))
		if n < 1 {
			n = 1
		}
		numCells[d] = n
		cellSize.Set(d, extents.At(d)/N(n))
		total *= n
	}

	g := &GridIndex[N]{points: points, bbox: box, numCells: numCells, cellSize: cellSize}

	bucket := make([]int, len(points))
	value := make([]int, len(points))
	for i, p := range points {
		bucket[i] = g.CellIndex(p)
		value[i] = i
	}
	g.cellPoints = wgraph.AssembleBuckets(total, bucket, value)
	return g
}

// cellMDIndex returns the per-axis cell coordinate of p, clamped into
// [0, numCells[d]) on every axis.
func (g *GridIndex[N]) cellMDIndex(p vecmath.Vec[N]) []int {
	dim := g.bbox.Dim()
	md := make([]int, dim)
	for d := 0; d < dim; d++ {
		idx := int(float64(p.At(d)-g.bbox.Low.At(d)) / float64(g.cellSize.At(d)))
		if idx < 0 {
			idx = 0
		}
		if idx >= g.numCells[d] {
			idx = g.numCells[d] - 1
		}
		md[d] = idx
	}
	return md
}

// LinearIndex packs a per-axis cell coordinate into a single bucket
// index, row-major with axis 0 the slowest-varying.
func (g *GridIndex[N]) LinearIndex(md []int) int {
	idx := md[0]
	for d := 1; d < len(md); d++ {
		idx = g.numCells[d]*idx + md[d]
	}
	return idx
}

// CellIndex returns the linear cell index containing p.
func (g *GridIndex[N]) CellIndex(p vecmath.Vec[N]) int {
	return g.LinearIndex(g.cellMDIndex(p))
}

// NumCells returns the per-axis cell counts.
func (g *GridIndex[N]) NumCells() []int { return g.numCells }

// BBox returns the grid's (grown) bounding box.
func (g *GridIndex[N]) BBox() spatial.BBox[N] { return g.bbox }

// CellPoints returns the point indices bucketed into cell (by linear
// index), for callers (e.g. partition's grid-graph mode) that need to
// walk every populated cell directly.
func (g *GridIndex[N]) CellPoints(cell int) []int { return g.cellPoints.At(cell) }

// Search returns every point index within radius r of q, optionally
// filtered by pred.
func (g *GridIndex[N]) Search(q vecmath.Vec[N], r N, pred func(i int) bool) []int {
	assert.True(r > 0, "index: search radius must be positive")
	dim := g.bbox.Dim()
	searchDist := r * r

	halfCell := vecmath.Scale(g.cellSize, N(0.5))
	rVec := vecmath.Fill[N](dim, r)
	searchBox := spatial.BBox[N]{
		Low:  vecmath.Sub(vecmath.Sub(q, rVec), halfCell),
		High: vecmath.Add(vecmath.Add(q, rVec), halfCell),
	}

	lowPt := vecmath.Add(g.bbox.Clamp(searchBox.Low), halfCell)
	highPt := vecmath.Sub(g.bbox.Clamp(searchBox.High), halfCell)
	mdLow := g.cellMDIndex(lowPt)
	mdHigh := g.cellMDIndex(highPt)

	var out []int
	cur := append([]int(nil), mdLow...)
	for {
		cell := g.LinearIndex(cur)
		for _, i := range g.cellPoints.At(cell) {
			d := vecmath.Norm2(vecmath.Sub(q, g.points[i]))
			if float64(d) < float64(searchDist) && (pred == nil || pred(i)) {
				out = append(out, i)
			}
		}
		// Odometer increment over [mdLow, mdHigh] inclusive per axis.
		axis := dim - 1
		for axis >= 0 {
			cur[axis]++
			if cur[axis] <= mdHigh[axis] {
				break
			}
			cur[axis] = mdLow[axis]
			axis--
		}
		if axis < 0 {
			break
		}
	}
	return out
}
