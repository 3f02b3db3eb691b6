package spatial

import "github.com/tit-go/geomgraph/vecmath"

// PointRange is a borrowed view over Points, restricted to the indices
// named by Perm. A nil Perm means "every index of Points, in order";
// operators that reorder a PointRange do so by permuting Perm, never by
// copying or mutating Points.
type PointRange[N vecmath.Float] struct {
	Points []vecmath.Vec[N]
	Perm   []int
}

// NewPointRange returns a PointRange over all of points, with the
// identity permutation.
func NewPointRange[N vecmath.Float](points []vecmath.Vec[N]) PointRange[N] {
	perm := make([]int, len(points))
	for i := range perm {
		perm[i] = i
	}
	return PointRange[N]{Points: points, Perm: perm}
}

// Len returns the number of indices in the range.
func (r PointRange[N]) Len() int { return len(r.Perm) }

// At returns the point at logical position i (i.e. Points[Perm[i]]).
func (r PointRange[N]) At(i int) vecmath.Vec[N] { return r.Points[r.Perm[i]] }

// Slice returns the sub-range [lo, hi) of r, sharing the same backing
// Points and Perm slices.
func (r PointRange[N]) Slice(lo, hi int) PointRange[N] {
	return PointRange[N]{Points: r.Points, Perm: r.Perm[lo:hi]}
}

// resolvePerm returns perm if non-nil, otherwise the identity
// permutation over points.
func resolvePerm(perm []int, n int) []int {
	if perm != nil {
		return perm
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
