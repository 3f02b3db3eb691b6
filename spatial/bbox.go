package spatial

import (
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/vecmath"
)

// BBox is an axis-aligned bounding box [Low, High] in a fixed dimension
// 1-4. Low and High are inclusive corners; a degenerate box (Low==High)
// represents a single point.
type BBox[N vecmath.Float] struct {
	Low, High vecmath.Vec[N]
}

// PointBox returns the degenerate box containing exactly p.
func PointBox[N vecmath.Float](p vecmath.Vec[N]) BBox[N] {
	return BBox[N]{Low: p, High: p}
}

// Dim reports the dimension of the box.
func (b BBox[N]) Dim() int { return b.Low.Dim() }

// Center returns the midpoint of the box.
func (b BBox[N]) Center() vecmath.Vec[N] {
	return vecmath.Scale(vecmath.Add(b.Low, b.High), N(0.5))
}

// Extents returns High - Low.
func (b BBox[N]) Extents() vecmath.Vec[N] {
	return vecmath.Sub(b.High, b.Low)
}

// Contains reports whether p lies within the closed box.
func (b BBox[N]) Contains(p vecmath.Vec[N]) bool {
	return vecmath.LessEqual(b.Low, p).All() && vecmath.LessEqual(p, b.High).All()
}

// Clamp returns p projected onto the closed box, component-wise.
func (b BBox[N]) Clamp(p vecmath.Vec[N]) vecmath.Vec[N] {
	dim := b.Dim()
	out := vecmath.Zero[N](dim)
	for i := 0; i < dim; i++ {
		v := p.At(i)
		if v < b.Low.At(i) {
			v = b.Low.At(i)
		} else if v > b.High.At(i) {
			v = b.High.At(i)
		}
		out.Set(i, v)
	}
	return out
}

// Expand grows the box, if needed, so that it contains p, and returns the
// result.
func (b BBox[N]) Expand(p vecmath.Vec[N]) BBox[N] {
	dim := b.Dim()
	lo := vecmath.Zero[N](dim)
	hi := vecmath.Zero[N](dim)
	for i := 0; i < dim; i++ {
		l, h, v := b.Low.At(i), b.High.At(i), p.At(i)
		if v < l {
			l = v
		}
		if v > h {
			h = v
		}
		lo.Set(i, l)
		hi.Set(i, h)
	}
	return BBox[N]{Low: lo, High: hi}
}

// Union returns the smallest box containing both b and other.
func (b BBox[N]) Union(other BBox[N]) BBox[N] {
	return b.Expand(other.Low).Expand(other.High)
}

// Split divides the box at pivot along axis into two sub-boxes that
// exactly cover b. Without reverse, the first result has High[axis] set
// to pivot and the second has Low[axis] set to pivot; reverse swaps
// which sub-box comes first, matching the "reverse" flag CoordBisection
// and DirBisection use to flip which side of a pivot is "left".
func (b BBox[N]) Split(axis int, pivot N, reverse bool) (BBox[N], BBox[N]) {
	lowSide := b
	lowSide.High.Set(axis, pivot)
	highSide := b
	highSide.Low.Set(axis, pivot)
	if reverse {
		return highSide, lowSide
	}
	return lowSide, highSide
}

// Grow returns the box uniformly expanded outward by margin on every side.
func (b BBox[N]) Grow(margin N) BBox[N] {
	m := vecmath.Fill[N](b.Dim(), margin)
	return BBox[N]{Low: vecmath.Sub(b.Low, m), High: vecmath.Add(b.High, m)}
}

// Shrink returns the box uniformly contracted inward by margin on every
// side; it is the caller's responsibility to ensure margin does not
// invert the box.
func (b BBox[N]) Shrink(margin N) BBox[N] {
	return b.Grow(-margin)
}

// Intersects reports whether b and other overlap (touching counts as
// overlap, matching a closed-box convention).
func (b BBox[N]) Intersects(other BBox[N]) bool {
	dim := b.Dim()
	assert.True(dim == other.Dim(), "spatial: bbox dimension mismatch %d vs %d", dim, other.Dim())
	for i := 0; i < dim; i++ {
		if b.High.At(i) < other.Low.At(i) || other.High.At(i) < b.Low.At(i) {
			return false
		}
	}
	return true
}

// Intersect returns the overlap box of b and other. The caller must
// check Intersects first; if the boxes do not overlap the result has
// Low > High on at least one axis.
func (b BBox[N]) Intersect(other BBox[N]) BBox[N] {
	dim := b.Dim()
	lo := vecmath.Zero[N](dim)
	hi := vecmath.Zero[N](dim)
	for i := 0; i < dim; i++ {
		l := b.Low.At(i)
		if other.Low.At(i) > l {
			l = other.Low.At(i)
		}
		h := b.High.At(i)
		if other.High.At(i) < h {
			h = other.High.At(i)
		}
		lo.Set(i, l)
		hi.Set(i, h)
	}
	return BBox[N]{Low: lo, High: hi}
}

// LargestExtentAxis returns the axis index with the largest High-Low span.
func (b BBox[N]) LargestExtentAxis() int {
	dim := b.Dim()
	best, bestSpan := 0, b.High.At(0)-b.Low.At(0)
	for i := 1; i < dim; i++ {
		span := b.High.At(i) - b.Low.At(i)
		if span > bestSpan {
			best, bestSpan = i, span
		}
	}
	return best
}
