package index_test

import (
	"math/rand"
	"testing"

	"github.com/tit-go/geomgraph/index"
	"github.com/tit-go/geomgraph/vecmath"
)

func randomPoints3D(n int, seed int64) []vecmath.Vec[float64] {
	rng := rand.New(rand.NewSource(seed))
	points := make([]vecmath.Vec[float64], n)
	for i := range points {
		points[i] = vecmath.NewVec(rng.Float64(), rng.Float64(), rng.Float64())
	}
	return points
}

// BenchmarkGridIndexSearch measures uniform-grid radius queries over 10^4
// random points in the unit cube.
func BenchmarkGridIndexSearch(b *testing.B) {
	points := randomPoints3D(10000, 1)
	idx := index.BuildGridIndex(points, 0.1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := points[i%len(points)]
		_ = idx.Search(q, 0.1, nil)
	}
}

// BenchmarkKDTreeSearch measures the equivalent radius query against a
// KD-tree built over the same point cloud.
func BenchmarkKDTreeSearch(b *testing.B) {
	points := randomPoints3D(10000, 1)
	tree := index.BuildKDTree(points, 16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := points[i%len(points)]
		_ = tree.Search(q, 0.1, nil)
	}
}
