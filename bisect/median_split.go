package bisect

import (
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/spatial"
	"github.com/tit-go/geomgraph/vecmath"
)

// quickselect rearranges perm in place so that the element at position
// median is the one that would occupy that position in the full sort by
// key, every element before it has key <= key(perm[median]), and every
// element after it has key >= key(perm[median]). This is the classic
// Hoare order-statistic selection, specialized to float64 keys.
func quickselect(perm []int, median int, key func(idx int) float64) {
	lo, hi := 0, len(perm)-1
	for lo < hi {
		pivot := key(perm[hi])
		i := lo
		for j := lo; j < hi; j++ {
			if key(perm[j]) < pivot {
				perm[i], perm[j] = perm[j], perm[i]
				i++
			}
		}
		perm[i], perm[hi] = perm[hi], perm[i]
		switch {
		case median < i:
			hi = i - 1
		case median > i:
			lo = i + 1
		default:
			return
		}
	}
}

// CoordMedianSplit reorders perm so that points[perm[median]][axis] sits
// at its sorted rank: every earlier index has a lesser-or-equal
// coordinate on axis, every later one a greater-or-equal one. If axis is
// negative, the axis of largest box extent over points[perm] is used.
func CoordMedianSplit[N vecmath.Float](points []vecmath.Vec[N], perm []int, median int, axis int) int {
	assert.True(len(perm) > 0, "bisect: CoordMedianSplit requires a non-empty perm")
	assert.True(median >= 0 && median < len(perm), "bisect: median %d out of range [0,%d)", median, len(perm))

	if axis < 0 {
		axis = spatial.ComputeBBox(points, perm).LargestExtentAxis()
	}
	quickselect(perm, median, func(idx int) float64 { return float64(points[idx].At(axis)) })
	return axis
}

// DirMedianSplit reorders perm so that dot(points[perm[median]], dir)
// sits at its sorted rank along dir.
func DirMedianSplit[N vecmath.Float](points []vecmath.Vec[N], perm []int, median int, dir vecmath.Vec[N]) {
	assert.True(len(perm) > 0, "bisect: DirMedianSplit requires a non-empty perm")
	assert.True(median >= 0 && median < len(perm), "bisect: median %d out of range [0,%d)", median, len(perm))

	quickselect(perm, median, func(idx int) float64 { return float64(vecmath.Dot(points[idx], dir)) })
}

// InertialMedianSplit reorders perm along the largest-inertia
// eigenvector of points[perm], falling back to fallbackDir if the
// underlying Jacobi eigendecomposition does not converge. It returns the
// direction actually used.
func InertialMedianSplit[N vecmath.Float](points []vecmath.Vec[N], perm []int, median int, fallbackDir vecmath.Vec[N]) vecmath.Vec[N] {
	assert.True(len(perm) > 0, "bisect: InertialMedianSplit requires a non-empty perm")

	axis64, err := spatial.ComputeLargestInertiaAxis(points, perm)
	dir := fallbackDir
	if err == nil {
		dim := fallbackDir.Dim()
		converted := vecmath.Zero[N](dim)
		for i := 0; i < dim; i++ {
			converted.Set(i, N(axis64.At(i)))
		}
		dir = converted
	}
	DirMedianSplit(points, perm, median, dir)
	return dir
}
