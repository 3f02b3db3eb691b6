package index_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tit-go/geomgraph/index"
	"github.com/tit-go/geomgraph/vecmath"
)

func naiveSearch[N vecmath.Float](points []vecmath.Vec[N], q vecmath.Vec[N], r N) []int {
	var out []int
	for i, p := range points {
		d := vecmath.Norm2(vecmath.Sub(q, p))
		if float64(d) < float64(r*r) {
			out = append(out, i)
		}
	}
	return out
}

func randomPoints(n int, seed int64) []vecmath.Vec[float64] {
	rng := rand.New(rand.NewSource(seed))
	points := make([]vecmath.Vec[float64], n)
	for i := range points {
		points[i] = vecmath.NewVec(rng.Float64(), rng.Float64(), rng.Float64())
	}
	return points
}

func TestGridIndexMatchesNaiveSearch(t *testing.T) {
	points := randomPoints(500, 1)
	grid := index.BuildGridIndex(points, 0.1)

	q := vecmath.NewVec(0.5, 0.5, 0.5)
	got := grid.Search(q, 0.1, nil)
	want := naiveSearch(points, q, 0.1)

	sort.Ints(got)
	sort.Ints(want)
	require.Equal(t, want, got)
}

func TestKDTreeMatchesNaiveSearchVariousLeafSizes(t *testing.T) {
	const n = 1000
	points := randomPoints(n, 2)
	q := vecmath.NewVec(0.3, 0.6, 0.2)
	want := naiveSearch(points, q, 0.1)
	sort.Ints(want)

	for _, leafSize := range []int{1, 4, 16, 64} {
		tree := index.BuildKDTree(points, leafSize)
		got := tree.Search(q, 0.1, nil)
		sort.Ints(got)
		require.Equal(t, want, got, "leaf size %d", leafSize)
	}
}

func TestKDTreeSearchRespectsPredicate(t *testing.T) {
	points := randomPoints(200, 3)
	tree := index.BuildKDTree(points, 8)
	q := vecmath.NewVec(0.5, 0.5, 0.5)

	got := tree.Search(q, 0.2, func(i int) bool { return i%2 == 0 })
	for _, i := range got {
		require.Equal(t, 0, i%2)
	}
}

func TestGridIndexCellIndexWithinBounds(t *testing.T) {
	points := randomPoints(50, 4)
	grid := index.BuildGridIndex(points, 0.2)
	total := 1
	for _, n := range grid.NumCells() {
		total *= n
	}
	for _, p := range points {
		idx := grid.CellIndex(p)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, total)
	}
}

func TestKDTreeSingletonLattice(t *testing.T) {
	points := make([]vecmath.Vec[float64], 0, 9)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			points = append(points, vecmath.NewVec(float64(x), float64(y)))
		}
	}
	tree := index.BuildKDTree(points, 1)
	got := tree.Search(vecmath.NewVec(1.0, 1.0), 1.01, nil)
	sort.Ints(got)

	var want []int
	for i, p := range points {
		d := math.Hypot(p.At(0)-1, p.At(1)-1)
		if d < 1.01 {
			want = append(want, i)
		}
	}
	sort.Ints(want)
	require.Equal(t, want, got)
}
