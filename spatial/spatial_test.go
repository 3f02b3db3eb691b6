package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tit-go/geomgraph/spatial"
	"github.com/tit-go/geomgraph/vecmath"
)

func TestBBoxClampAndExpandRoundTrip(t *testing.T) {
	box := spatial.BBox[float64]{
		Low:  vecmath.NewVec(0.0, 0.0),
		High: vecmath.NewVec(10.0, 10.0),
	}
	p := vecmath.NewVec(-5.0, 15.0)

	clamped := box.Clamp(p)
	require.True(t, box.Contains(clamped))

	expanded := box.Expand(p)
	require.True(t, expanded.Contains(p))
}

func TestBBoxCenterAndExtents(t *testing.T) {
	box := spatial.BBox[float64]{
		Low:  vecmath.NewVec(0.0, 2.0),
		High: vecmath.NewVec(4.0, 6.0),
	}
	require.Equal(t, []float64{2, 4}, box.Center().Components())
	require.Equal(t, []float64{4, 4}, box.Extents().Components())
}

func TestBBoxIntersectAndUnion(t *testing.T) {
	a := spatial.BBox[float64]{Low: vecmath.NewVec(0.0, 0.0), High: vecmath.NewVec(5.0, 5.0)}
	b := spatial.BBox[float64]{Low: vecmath.NewVec(3.0, 3.0), High: vecmath.NewVec(8.0, 8.0)}

	require.True(t, a.Intersects(b))
	overlap := a.Intersect(b)
	require.Equal(t, []float64{3, 3}, overlap.Low.Components())
	require.Equal(t, []float64{5, 5}, overlap.High.Components())

	u := a.Union(b)
	require.Equal(t, []float64{0, 0}, u.Low.Components())
	require.Equal(t, []float64{8, 8}, u.High.Components())
}

func TestComputeCenterAndBBox(t *testing.T) {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(0.0, 0.0),
		vecmath.NewVec(2.0, 0.0),
		vecmath.NewVec(1.0, 3.0),
	}
	center := spatial.ComputeCenter(points, nil)
	require.InDeltaSlice(t, []float64{1, 1}, center.Components(), 1e-9)

	box := spatial.ComputeBBox(points, nil)
	require.Equal(t, []float64{0, 0}, box.Low.Components())
	require.Equal(t, []float64{2, 3}, box.High.Components())
}

func TestComputeLargestInertiaAxisAlignsWithSpread(t *testing.T) {
	// Points spread along the x axis only: the largest-inertia axis
	// should be (±1, 0).
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(-5.0, 0.0),
		vecmath.NewVec(-2.0, 0.0),
		vecmath.NewVec(0.0, 0.0),
		vecmath.NewVec(2.0, 0.0),
		vecmath.NewVec(5.0, 0.0),
	}
	axis, err := spatial.ComputeLargestInertiaAxis(points, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, axis.At(0)*axis.At(0), 1e-6)
	require.InDelta(t, 0.0, axis.At(1), 1e-6)
}

func TestPointRangeSliceSharesBacking(t *testing.T) {
	points := []vecmath.Vec[float64]{
		vecmath.NewVec(0.0), vecmath.NewVec(1.0), vecmath.NewVec(2.0), vecmath.NewVec(3.0),
	}
	r := spatial.NewPointRange(points)
	r.Perm[0], r.Perm[1] = r.Perm[1], r.Perm[0]

	sub := r.Slice(0, 2)
	require.Equal(t, 2, sub.Len())
	require.Equal(t, 1.0, sub.At(0).At(0))
}
