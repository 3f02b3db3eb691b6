package sfc_test

import (
	"math/rand"
	"testing"

	"github.com/tit-go/geomgraph/sfc"
	"github.com/tit-go/geomgraph/vecmath"
)

func randomPoints(n, dim int, seed int64) []vecmath.Vec[float64] {
	rng := rand.New(rand.NewSource(seed))
	points := make([]vecmath.Vec[float64], n)
	for i := range points {
		comps := make([]float64, dim)
		for d := range comps {
			comps[d] = rng.Float64()
		}
		points[i] = vecmath.NewVec(comps...)
	}
	return points
}

// BenchmarkMortonSort measures Morton-order recursion cost over 2^16
// uniformly random 3-D points.
func BenchmarkMortonSort(b *testing.B) {
	const n = 1 << 16
	points := randomPoints(n, 3, 1)
	perm := make([]int, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sfc.MortonSort(points, perm)
	}
}

// BenchmarkHilbertSort measures Hilbert-order recursion cost over the same
// point cloud, quantifying the rotation-state-machine overhead relative to
// BenchmarkMortonSort.
func BenchmarkHilbertSort(b *testing.B) {
	const n = 1 << 16
	points := randomPoints(n, 3, 1)
	perm := make([]int, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sfc.HilbertSort(points, perm)
	}
}
