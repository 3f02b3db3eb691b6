package sfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tit-go/geomgraph/sfc"
	"github.com/tit-go/geomgraph/vecmath"
)

func lattice2D(n int) []vecmath.Vec[float64] {
	points := make([]vecmath.Vec[float64], n*n)
	for i := range points {
		points[i] = vecmath.NewVec(float64(i%n), float64(i/n))
	}
	return points
}

func lattice3D(n int) []vecmath.Vec[float64] {
	points := make([]vecmath.Vec[float64], n*n*n)
	for i := range points {
		points[i] = vecmath.NewVec(float64(i%n), float64((i/n)%n), float64(i/(n*n)))
	}
	return points
}

func TestMortonSort8x8(t *testing.T) {
	points := lattice2D(8)
	perm := make([]int, len(points))
	sfc.MortonSort(points, perm)

	require.Equal(t, []int{0, 1, 8, 9, 2, 3, 10, 11}, perm[:8])

	seen := make(map[int]bool, len(perm))
	for _, i := range perm {
		require.False(t, seen[i])
		seen[i] = true
	}
	require.Len(t, seen, len(points))
}

func TestHilbertSort8x8(t *testing.T) {
	points := lattice2D(8)
	perm := make([]int, len(points))
	sfc.HilbertSort(points, perm)

	want := []int{
		0, 8, 9, 1, 2, 3, 11, 10, 18, 19, 27, 26, 25, 17, 16, 24, 32, 33, 41, 40,
		48, 56, 57, 49, 50, 58, 59, 51, 43, 42, 34, 35, 36, 37, 45, 44, 52, 60,
		61, 53, 54, 62, 63, 55, 47, 46, 38, 39, 31, 23, 22, 30, 29, 28, 20, 21,
		13, 12, 4, 5, 6, 14, 15, 7,
	}
	require.Equal(t, want, perm)
}

func TestHilbertSort4x4x4(t *testing.T) {
	points := lattice3D(4)
	perm := make([]int, len(points))
	sfc.HilbertSort(points, perm)

	want := []int{
		0, 4, 5, 1, 17, 21, 20, 16, 32, 33, 49, 48, 52, 53, 37, 36, 40, 41, 57,
		56, 60, 61, 45, 44, 28, 12, 8, 24, 25, 9, 13, 29, 30, 14, 10, 26, 27,
		11, 15, 31, 47, 46, 62, 63, 59, 58, 42, 43, 39, 38, 54, 55, 51, 50, 34,
		35, 19, 23, 22, 18, 2, 6, 7, 3,
	}
	require.Equal(t, want, perm)
}

func TestSortingIdempotentOnAlreadySorted(t *testing.T) {
	points := lattice2D(8)
	perm := make([]int, len(points))
	sfc.MortonSort(points, perm)

	sortedPoints := make([]vecmath.Vec[float64], len(points))
	for i, idx := range perm {
		sortedPoints[i] = points[idx]
	}

	perm2 := make([]int, len(points))
	sfc.MortonSort(sortedPoints, perm2)
	for i := range perm2 {
		require.Equal(t, i, perm2[i])
	}
}
