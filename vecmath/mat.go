package vecmath

import "github.com/tit-go/geomgraph/internal/assert"

// Mat is a fixed-dimension, row-major D×D matrix with D in [1,4].
type Mat[N Number] struct {
	dim int
	e   [MaxDim][MaxDim]N
}

// ZeroMat returns a dim×dim matrix of zeros.
func ZeroMat[N Number](dim int) Mat[N] {
	assert.True(dim >= 1 && dim <= MaxDim, "vecmath: dim %d out of range [1,%d]", dim, MaxDim)
	return Mat[N]{dim: dim}
}

// IdentityMat returns the dim×dim identity matrix.
func IdentityMat[N Number](dim int) Mat[N] {
	m := ZeroMat[N](dim)
	for i := 0; i < dim; i++ {
		m.e[i][i] = 1
	}
	return m
}

// Dim reports the row/column count of m.
func (m Mat[N]) Dim() int { return m.dim }

// At returns element (i,j) of m.
func (m Mat[N]) At(i, j int) N {
	assert.True(i >= 0 && i < m.dim && j >= 0 && j < m.dim, "vecmath: (%d,%d) out of range for %dx%d", i, j, m.dim, m.dim)
	return m.e[i][j]
}

// Set overwrites element (i,j) of m in place.
func (m *Mat[N]) Set(i, j int, v N) {
	assert.True(i >= 0 && i < m.dim && j >= 0 && j < m.dim, "vecmath: (%d,%d) out of range for %dx%d", i, j, m.dim, m.dim)
	m.e[i][j] = v
}

// Row returns row i of m as a vector.
func (m Mat[N]) Row(i int) Vec[N] {
	assert.True(i >= 0 && i < m.dim, "vecmath: row %d out of range", i)
	return NewVec(m.e[i][:m.dim]...)
}

// MulVec returns m*v.
func (m Mat[N]) MulVec(v Vec[N]) Vec[N] {
	assert.True(m.dim == v.Dim(), "vecmath: dimension mismatch %d vs %d", m.dim, v.Dim())
	out := Zero[N](m.dim)
	for i := 0; i < m.dim; i++ {
		var s N
		for j := 0; j < m.dim; j++ {
			s += m.e[i][j] * v.e[j]
		}
		out.e[i] = s
	}
	return out
}

// MulMat returns m*other.
func (m Mat[N]) MulMat(other Mat[N]) Mat[N] {
	assert.True(m.dim == other.dim, "vecmath: dimension mismatch %d vs %d", m.dim, other.dim)
	out := ZeroMat[N](m.dim)
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			var s N
			for k := 0; k < m.dim; k++ {
				s += m.e[i][k] * other.e[k][j]
			}
			out.e[i][j] = s
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat[N]) Transpose() Mat[N] {
	out := ZeroMat[N](m.dim)
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			out.e[j][i] = m.e[i][j]
		}
	}
	return out
}

// Diag extracts the diagonal of m as a vector.
func (m Mat[N]) Diag() Vec[N] {
	out := Zero[N](m.dim)
	for i := 0; i < m.dim; i++ {
		out.e[i] = m.e[i][i]
	}
	return out
}

// FromDiag builds a diagonal matrix from v.
func FromDiag[N Number](v Vec[N]) Mat[N] {
	m := ZeroMat[N](v.Dim())
	for i := 0; i < v.Dim(); i++ {
		m.e[i][i] = v.e[i]
	}
	return m
}

// Outer returns the outer product a ⊗ b.
func Outer[N Number](a, b Vec[N]) Mat[N] {
	sameDim(a, b)
	out := ZeroMat[N](a.dim)
	for i := 0; i < a.dim; i++ {
		for j := 0; j < a.dim; j++ {
			out.e[i][j] = a.e[i] * b.e[j]
		}
	}
	return out
}

// OuterSqr returns Outer(a, a).
func OuterSqr[N Number](a Vec[N]) Mat[N] {
	return Outer(a, a)
}

// AddMat returns the elementwise sum a+b.
func AddMat[N Number](a, b Mat[N]) Mat[N] {
	assert.True(a.dim == b.dim, "vecmath: dimension mismatch %d vs %d", a.dim, b.dim)
	out := ZeroMat[N](a.dim)
	for i := 0; i < a.dim; i++ {
		for j := 0; j < a.dim; j++ {
			out.e[i][j] = a.e[i][j] + b.e[i][j]
		}
	}
	return out
}

// SubMat returns the elementwise difference a-b.
func SubMat[N Number](a, b Mat[N]) Mat[N] {
	assert.True(a.dim == b.dim, "vecmath: dimension mismatch %d vs %d", a.dim, b.dim)
	out := ZeroMat[N](a.dim)
	for i := 0; i < a.dim; i++ {
		for j := 0; j < a.dim; j++ {
			out.e[i][j] = a.e[i][j] - b.e[i][j]
		}
	}
	return out
}

// Trace returns the sum of the diagonal elements of m.
func Trace[N Number](m Mat[N]) N {
	return Sum(m.Diag())
}
