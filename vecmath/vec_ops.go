// Elementwise arithmetic and reductions for Vec.
//
// Add/Sub/Mul/Div implement the "V+V" forms; Scale and AddScalar
// implement the "V·scalar" / compound forms from spec.md §4.1. Reductions
// (Sum, Prod, MinValue, MaxValue, Dot, Norm2, Norm, Normalize, Cross) follow
// directly.
package vecmath

import "math"

// Add returns the componentwise sum a+b.
func Add[N Number](a, b Vec[N]) Vec[N] {
	sameDim(a, b)
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		out.e[i] = a.e[i] + b.e[i]
	}
	return out
}

// Sub returns the componentwise difference a-b.
func Sub[N Number](a, b Vec[N]) Vec[N] {
	sameDim(a, b)
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		out.e[i] = a.e[i] - b.e[i]
	}
	return out
}

// Mul returns the componentwise product a*b (Hadamard product).
func Mul[N Number](a, b Vec[N]) Vec[N] {
	sameDim(a, b)
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		out.e[i] = a.e[i] * b.e[i]
	}
	return out
}

// Div returns the componentwise quotient a/b.
func Div[N Number](a, b Vec[N]) Vec[N] {
	sameDim(a, b)
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		out.e[i] = a.e[i] / b.e[i]
	}
	return out
}

// Neg returns the componentwise negation of a.
func Neg[N Number](a Vec[N]) Vec[N] {
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		out.e[i] = -a.e[i]
	}
	return out
}

// Scale returns a with every lane multiplied by s (the "V·scalar" form).
func Scale[N Number](a Vec[N], s N) Vec[N] {
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		out.e[i] = a.e[i] * s
	}
	return out
}

// AddScalar returns a with s added to every lane.
func AddScalar[N Number](a Vec[N], s N) Vec[N] {
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		out.e[i] = a.e[i] + s
	}
	return out
}

// Sum returns the sum of all lanes of a.
func Sum[N Number](a Vec[N]) N {
	var s N
	for i := 0; i < a.dim; i++ {
		s += a.e[i]
	}
	return s
}

// Prod returns the product of all lanes of a.
func Prod[N Number](a Vec[N]) N {
	s := N(1)
	for i := 0; i < a.dim; i++ {
		s *= a.e[i]
	}
	return s
}

// MinValue returns the smallest lane of a.
func MinValue[N Number](a Vec[N]) N {
	m := a.e[0]
	for i := 1; i < a.dim; i++ {
		if a.e[i] < m {
			m = a.e[i]
		}
	}
	return m
}

// MaxValue returns the largest lane of a.
func MaxValue[N Number](a Vec[N]) N {
	m := a.e[0]
	for i := 1; i < a.dim; i++ {
		if a.e[i] > m {
			m = a.e[i]
		}
	}
	return m
}

// MinValueIndex returns the index of the smallest lane of a (first on ties).
func MinValueIndex[N Number](a Vec[N]) int {
	idx := 0
	for i := 1; i < a.dim; i++ {
		if a.e[i] < a.e[idx] {
			idx = i
		}
	}
	return idx
}

// MaxValueIndex returns the index of the largest lane of a (first on ties).
func MaxValueIndex[N Number](a Vec[N]) int {
	idx := 0
	for i := 1; i < a.dim; i++ {
		if a.e[i] > a.e[idx] {
			idx = i
		}
	}
	return idx
}

// Dot returns the dot product of a and b, accumulated lane by lane in a
// plain scalar loop. It has no fused multiply-add or register-overlay
// path, whatever simd.go reports about the platform.
func Dot[N Number](a, b Vec[N]) N {
	sameDim(a, b)
	var s N
	for i := 0; i < a.dim; i++ {
		s += a.e[i] * b.e[i]
	}
	return s
}

// Norm2 returns the squared Euclidean norm of a.
func Norm2[N Number](a Vec[N]) N {
	return Dot(a, a)
}

// tiny is the threshold below which Norm2 is treated as zero by Normalize,
// matching spec.md §4.1 ("returns zero vector when norm2 < tiny², not NaN").
const tiny = 1e-12

// Norm returns the Euclidean norm of a, computed in float64 regardless of N.
func Norm[N Number](a Vec[N]) float64 {
	return math.Sqrt(float64(Norm2(a)))
}

// Normalize returns a scaled to unit length. If Norm2(a) < tiny*tiny, it
// returns the zero vector rather than propagating NaN/Inf.
func Normalize[N Float](a Vec[N]) Vec[N] {
	n2 := float64(Norm2(a))
	if n2 < tiny*tiny {
		return Zero[N](a.dim)
	}
	return Scale(a, N(1/math.Sqrt(n2)))
}

// Cross returns the 3D cross product of a and b. Defined for a.Dim()==b.Dim()
// in {2,3}; 2D vectors are treated as lying in the z=0 plane. A 1-D input
// is degenerate and returns the zero 3-vector per spec.md §4.1.
func Cross[N Number](a, b Vec[N]) Vec[N] {
	sameDim(a, b)
	var ax, ay, az, bx, by, bz N
	switch a.dim {
	case 1:
		return Zero[N](3)
	case 2:
		ax, ay = a.e[0], a.e[1]
		bx, by = b.e[0], b.e[1]
	case 3:
		ax, ay, az = a.e[0], a.e[1], a.e[2]
		bx, by, bz = b.e[0], b.e[1], b.e[2]
	default:
		panic("vecmath: Cross is only defined for dim in {1,2,3}")
	}
	return NewVec(ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx)
}
