package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tit-go/geomgraph/vecmath"
)

func TestVecArithmetic(t *testing.T) {
	a := vecmath.NewVec(1.0, 2.0, 3.0)
	b := vecmath.NewVec(4.0, 5.0, 6.0)

	require.Equal(t, []float64{5, 7, 9}, vecmath.Add(a, b).Components())
	require.Equal(t, []float64{-3, -3, -3}, vecmath.Sub(a, b).Components())
	require.Equal(t, []float64{4, 10, 18}, vecmath.Mul(a, b).Components())
	require.Equal(t, []float64{2, 4, 6}, vecmath.Scale(a, 2).Components())
}

func TestVecReductions(t *testing.T) {
	a := vecmath.NewVec(1.0, -2.0, 3.0)

	require.InDelta(t, 2.0, float64(vecmath.Sum(a)), 1e-12)
	require.InDelta(t, -6.0, float64(vecmath.Prod(a)), 1e-12)
	require.Equal(t, -2.0, vecmath.MinValue(a))
	require.Equal(t, 3.0, vecmath.MaxValue(a))
	require.Equal(t, 1, vecmath.MinValueIndex(a))
	require.Equal(t, 2, vecmath.MaxValueIndex(a))
	require.InDelta(t, 14.0, float64(vecmath.Norm2(a)), 1e-12)
	require.InDelta(t, math.Sqrt(14.0), vecmath.Norm(a), 1e-12)
}

func TestNormalizeZeroOnTiny(t *testing.T) {
	z := vecmath.Zero[float64](3)
	n := vecmath.Normalize(z)
	for i := 0; i < 3; i++ {
		require.Equal(t, 0.0, n.At(i))
	}

	unit := vecmath.Normalize(vecmath.NewVec(3.0, 4.0))
	require.InDelta(t, 1.0, vecmath.Norm(unit), 1e-9)
}

func TestCross(t *testing.T) {
	x := vecmath.NewVec(1.0, 0.0, 0.0)
	y := vecmath.NewVec(0.0, 1.0, 0.0)
	z := vecmath.Cross(x, y)
	require.Equal(t, []float64{0, 0, 1}, z.Components())
}

func TestMaskSelectFilter(t *testing.T) {
	a := vecmath.NewVec(1, 2, 3, 4)
	b := vecmath.NewVec(10, 20, 30, 40)
	m := vecmath.Less(a, vecmath.Fill(4, 3))

	require.True(t, m.Any())
	require.False(t, m.All())
	require.Equal(t, 2, m.CountTrue())
	require.Equal(t, 0, m.FindTrue())

	sel := vecmath.Select(m, a, b)
	require.Equal(t, []int{1, 2, 30, 40}, sel.Components())

	filt := vecmath.Filter(m, a)
	require.Equal(t, []int{1, 2, 0, 0}, filt.Components())
}

func TestMaskBoolIsAll(t *testing.T) {
	allTrue := vecmath.GreaterEqual(vecmath.NewVec(1, 2), vecmath.NewVec(0, 0))
	require.True(t, allTrue.Bool())
	require.Equal(t, allTrue.All(), allTrue.Bool())
}

func TestMatMulVecIdentity(t *testing.T) {
	id := vecmath.IdentityMat[float64](3)
	v := vecmath.NewVec(1.0, 2.0, 3.0)
	require.Equal(t, v.Components(), id.MulVec(v).Components())
}

func TestMatOuterAndTrace(t *testing.T) {
	a := vecmath.NewVec(1.0, 2.0)
	o := vecmath.OuterSqr(a)
	require.Equal(t, 1.0, o.At(0, 0))
	require.Equal(t, 4.0, o.At(1, 1))
	require.InDelta(t, 5.0, vecmath.Trace(o), 1e-12)
}

func TestEigenDiagonalIsSelf(t *testing.T) {
	m := vecmath.FromDiag(vecmath.NewVec(2.0, 5.0, 1.0))
	_, d, err := vecmath.Eigen(m, 0)
	require.NoError(t, err)
	sorted := append([]float64{}, d.Components()...)
	sortFloat64(sorted)
	require.InDeltaSlice(t, []float64{1, 2, 5}, sorted, 1e-9)
}

func TestEigenReconstructsSymmetric(t *testing.T) {
	m := vecmath.ZeroMat[float64](2)
	m.Set(0, 0, 2)
	m.Set(1, 1, 3)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)

	v, d, err := vecmath.Eigen(m, 0)
	require.NoError(t, err)

	// Reconstruct m = V * Diag(d) * V^T and compare.
	recon := v.MulMat(vecmath.FromDiag(d)).MulMat(v.Transpose())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, m.At(i, j), recon.At(i, j), 1e-9)
		}
	}
}

func sortFloat64(s []float64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
