package bisect_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tit-go/geomgraph/bisect"
	"github.com/tit-go/geomgraph/vecmath"
)

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

func TestCoordBisectionPartitionsCorrectly(t *testing.T) {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(1.0), vecmath.NewVec(5.0), vecmath.NewVec(-3.0),
		vecmath.NewVec(2.0), vecmath.NewVec(7.0), vecmath.NewVec(0.0),
	}
	perm := identityPerm(len(points))

	left, right := bisect.CoordBisection(points, perm, 2.0, 0, false)
	require.Equal(t, len(points), len(left)+len(right))
	for _, i := range left {
		require.Less(t, points[i].At(0), 2.0)
	}
	for _, i := range right {
		require.GreaterOrEqual(t, points[i].At(0), 2.0)
	}

	seen := make(map[int]bool)
	for _, i := range append(append([]int{}, left...), right...) {
		require.False(t, seen[i])
		seen[i] = true
	}
	require.Len(t, seen, len(points))
}

func TestCoordBisectionReverse(t *testing.T) {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(1.0), vecmath.NewVec(5.0), vecmath.NewVec(-3.0), vecmath.NewVec(2.0),
	}
	perm := identityPerm(len(points))
	left, _ := bisect.CoordBisection(points, perm, 2.0, 0, true)
	for _, i := range left {
		require.Greater(t, points[i].At(0), 2.0)
	}
}

func TestDirBisection(t *testing.T) {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(1.0, 0.0), vecmath.NewVec(0.0, 1.0), vecmath.NewVec(-1.0, 0.0), vecmath.NewVec(0.0, -1.0),
	}
	perm := identityPerm(len(points))
	dir := vecmath.NewVec(1.0, 0.0)
	left, right := bisect.DirBisection(points, perm, 0.0, dir, false)
	for _, i := range left {
		require.Less(t, vecmath.Dot(points[i], dir), 0.0)
	}
	for _, i := range right {
		require.GreaterOrEqual(t, vecmath.Dot(points[i], dir), 0.0)
	}
}

func TestCoordMedianSplit(t *testing.T) {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(5.0), vecmath.NewVec(1.0), vecmath.NewVec(9.0),
		vecmath.NewVec(3.0), vecmath.NewVec(7.0), vecmath.NewVec(2.0), vecmath.NewVec(8.0),
	}
	perm := identityPerm(len(points))
	median := len(perm) / 2

	axis := bisect.CoordMedianSplit(points, perm, median, 0)
	require.Equal(t, 0, axis)

	pivot := points[perm[median]].At(axis)
	for k := 0; k < median; k++ {
		require.LessOrEqual(t, points[perm[k]].At(axis), pivot)
	}
	for k := median + 1; k < len(perm); k++ {
		require.GreaterOrEqual(t, points[perm[k]].At(axis), pivot)
	}
}

func TestCoordMedianSplitAutoAxis(t *testing.T) {
	// Spread is larger along axis 1 than axis 0.
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(0.0, -10.0), vecmath.NewVec(0.1, 0.0), vecmath.NewVec(0.0, 10.0), vecmath.NewVec(-0.1, 5.0),
	}
	perm := identityPerm(len(points))
	axis := bisect.CoordMedianSplit(points, perm, 2, -1)
	require.Equal(t, 1, axis)
}

func TestInertialMedianSplitHandlesTrivialCloud(t *testing.T) {
	// A single repeated point makes the inertia tensor zero; Eigen
	// converges immediately on a matrix with no off-diagonal mass, so the
	// fallback direction is not needed and this just exercises the
	// direction-conversion path without expecting a panic.
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(1.0, 1.0), vecmath.NewVec(1.0, 1.0),
	}
	perm := identityPerm(len(points))
	fallback := vecmath.NewVec(1.0, 0.0)
	dir := bisect.InertialMedianSplit(points, perm, 1, fallback)
	require.Equal(t, 2, dir.Dim())
}

func TestInertialMedianSplitAlignsWithSpread(t *testing.T) {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(-5.0, 0.0), vecmath.NewVec(-2.0, 0.0),
		vecmath.NewVec(0.0, 0.0), vecmath.NewVec(2.0, 0.0), vecmath.NewVec(5.0, 0.0),
	}
	perm := identityPerm(len(points))
	fallback := vecmath.NewVec(0.0, 1.0)
	median := len(perm) / 2
	dir := bisect.InertialMedianSplit(points, perm, median, fallback)

	require.InDelta(t, 1.0, dir.At(0)*dir.At(0), 1e-6)

	pivot := vecmath.Dot(points[perm[median]], dir)
	for k := 0; k < median; k++ {
		require.LessOrEqual(t, vecmath.Dot(points[perm[k]], dir), pivot+1e-9)
	}
}
