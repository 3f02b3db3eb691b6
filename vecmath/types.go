package vecmath

import (
	"errors"

	"github.com/tit-go/geomgraph/internal/assert"
)

// ErrNotConverged is returned by Eigen when the Jacobi sweep exceeds its
// iteration budget without driving the off-diagonal Frobenius norm below
// tolerance. It is the only numerical-failure sentinel this package defines
// (spec.md §7 tier 2).
var ErrNotConverged = errors.New("vecmath: jacobi eigendecomposition did not converge")

// MaxDim is the largest supported fixed dimension.
const MaxDim = 4

// Number is any scalar type a Vec/Mat may hold: signed integers or floats.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float restricts Number to the floating kinds, required by reductions that
// must return the element type itself after a division or square root
// (e.g. Normalize); Norm accepts any Number and returns float64.
type Float interface {
	~float32 | ~float64
}

// Vec is a fixed-dimension vector of 1 to 4 scalar lanes. The zero value is
// not usable; construct with NewVec, Zero, or Fill.
type Vec[N Number] struct {
	dim int
	e   [MaxDim]N
}

// Zero returns a dim-dimensional vector with every lane set to zero.
//
// Complexity: O(1).
func Zero[N Number](dim int) Vec[N] {
	assert.True(dim >= 1 && dim <= MaxDim, "vecmath: dim %d out of range [1,%d]", dim, MaxDim)
	return Vec[N]{dim: dim}
}

// Fill returns a dim-dimensional vector with every lane set to s.
//
// Complexity: O(dim).
func Fill[N Number](dim int, s N) Vec[N] {
	v := Zero[N](dim)
	for i := 0; i < dim; i++ {
		v.e[i] = s
	}
	return v
}

// NewVec constructs a vector from exactly dim components.
//
// Complexity: O(dim).
func NewVec[N Number](comps ...N) Vec[N] {
	dim := len(comps)
	assert.True(dim >= 1 && dim <= MaxDim, "vecmath: dim %d out of range [1,%d]", dim, MaxDim)
	v := Vec[N]{dim: dim}
	copy(v.e[:dim], comps)
	return v
}

// Dim reports the number of lanes in v.
func (v Vec[N]) Dim() int { return v.dim }

// At returns the i-th lane of v. Panics (contract violation) if i is out of
// range, matching the "operator[] with bounds assertion" contract.
//
// Complexity: O(1).
func (v Vec[N]) At(i int) N {
	assert.True(i >= 0 && i < v.dim, "vecmath: index %d out of range [0,%d)", i, v.dim)
	return v.e[i]
}

// Set overwrites the i-th lane of v in place.
//
// Complexity: O(1).
func (v *Vec[N]) Set(i int, val N) {
	assert.True(i >= 0 && i < v.dim, "vecmath: index %d out of range [0,%d)", i, v.dim)
	v.e[i] = val
}

// Components returns the lanes of v as a freshly allocated slice of length Dim().
//
// Complexity: O(dim).
func (v Vec[N]) Components() []N {
	out := make([]N, v.dim)
	copy(out, v.e[:v.dim])
	return out
}

func sameDim[N Number](a, b Vec[N]) {
	assert.True(a.dim == b.dim, "vecmath: dimension mismatch %d vs %d", a.dim, b.dim)
}
