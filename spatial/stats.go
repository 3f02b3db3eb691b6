// Aggregate point-cloud statistics: centroid, bounding box, inertia
// tensor, and the largest-inertia axis, grounded on lvlath's
// matrix/ops/eigen.go sweep (reused via vecmath.Eigen) and on
// original_source/tit/geom/bbox.hpp and inertia_tensor.hpp for the exact
// aggregate formulas (Σ r_i ⊗ r_i − mean ⊗ Σr_i for the inertia tensor).
package spatial

import (
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/vecmath"
)

// ComputeCenter returns the arithmetic mean of points[perm]. perm==nil
// means every index of points, in order. Panics on empty input.
func ComputeCenter[N vecmath.Float](points []vecmath.Vec[N], perm []int) vecmath.Vec[N] {
	idx := resolvePerm(perm, len(points))
	assert.True(len(idx) > 0, "spatial: ComputeCenter requires non-empty input")

	dim := points[idx[0]].Dim()
	sum := vecmath.Zero[N](dim)
	for _, i := range idx {
		sum = vecmath.Add(sum, points[i])
	}
	return vecmath.Scale(sum, N(1.0/float64(len(idx))))
}

// ComputeBBox returns the tight bounding box of points[perm]. Panics on
// empty input.
func ComputeBBox[N vecmath.Float](points []vecmath.Vec[N], perm []int) BBox[N] {
	idx := resolvePerm(perm, len(points))
	assert.True(len(idx) > 0, "spatial: ComputeBBox requires non-empty input")

	box := PointBox(points[idx[0]])
	for _, i := range idx[1:] {
		box = box.Expand(points[i])
	}
	return box
}

// ComputeInertiaTensor returns Σ r_i⊗r_i − mean⊗Σr_i over points[perm],
// where r_i = points[i]. Panics on empty input.
func ComputeInertiaTensor[N vecmath.Float](points []vecmath.Vec[N], perm []int) vecmath.Mat[N] {
	idx := resolvePerm(perm, len(points))
	assert.True(len(idx) > 0, "spatial: ComputeInertiaTensor requires non-empty input")

	dim := points[idx[0]].Dim()
	sum := vecmath.Zero[N](dim)
	accum := vecmath.ZeroMat[N](dim)
	for _, i := range idx {
		r := points[i]
		sum = vecmath.Add(sum, r)
		accum = vecmath.AddMat(accum, vecmath.OuterSqr(r))
	}
	mean := vecmath.Scale(sum, N(1.0/float64(len(idx))))
	return vecmath.SubMat(accum, vecmath.Outer(mean, sum))
}

// ComputeLargestInertiaAxis returns the unit eigenvector of the largest
// eigenvalue of the inertia tensor of points[perm]. It returns
// vecmath.ErrNotConverged if the underlying Jacobi sweep fails to
// converge, letting callers (bisect.InertialMedianSplit) fall back to a
// caller-supplied direction instead of asserting.
func ComputeLargestInertiaAxis[N vecmath.Float](points []vecmath.Vec[N], perm []int) (vecmath.Vec[float64], error) {
	tensor := ComputeInertiaTensor(points, perm)
	dim := tensor.Dim()

	f64 := vecmath.ZeroMat[float64](dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			f64.Set(i, j, float64(tensor.At(i, j)))
		}
	}

	vectors, values, err := vecmath.Eigen(f64, 0)
	if err != nil {
		return vecmath.Vec[float64]{}, err
	}

	best := vecmath.MaxValueIndex(values)
	axis := vecmath.Zero[float64](dim)
	for i := 0; i < dim; i++ {
		axis.Set(i, vectors.At(i, best))
	}
	return vecmath.Normalize(axis), nil
}
