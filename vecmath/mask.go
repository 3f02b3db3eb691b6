package vecmath

// Mask is a fixed-dimension, bitwise-all-ones-per-lane analogue of Vec,
// produced by elementwise comparisons. It drives the masked-register
// protocol: Select/Filter/Any/All/CountTrue/FindTrue (spec.md §9).
type Mask[N Number] struct {
	dim int
	b   [MaxDim]bool
}

// ZeroMask returns a dim-dimensional mask with every lane false.
func ZeroMask[N Number](dim int) Mask[N] {
	return Mask[N]{dim: dim}
}

// Dim reports the number of lanes in m.
func (m Mask[N]) Dim() int { return m.dim }

// At returns the i-th lane of m.
func (m Mask[N]) At(i int) bool { return m.b[i] }

func newMask[N Number](dim int, bits [MaxDim]bool) Mask[N] {
	return Mask[N]{dim: dim, b: bits}
}

func compare[N Number](a, b Vec[N], pred func(x, y N) bool) Mask[N] {
	sameDim(a, b)
	var bits [MaxDim]bool
	for i := 0; i < a.dim; i++ {
		bits[i] = pred(a.e[i], b.e[i])
	}
	return newMask[N](a.dim, bits)
}

// Equal returns the elementwise a==b mask.
func Equal[N Number](a, b Vec[N]) Mask[N] { return compare(a, b, func(x, y N) bool { return x == y }) }

// NotEqual returns the elementwise a!=b mask.
func NotEqual[N Number](a, b Vec[N]) Mask[N] {
	return compare(a, b, func(x, y N) bool { return x != y })
}

// Less returns the elementwise a<b mask.
func Less[N Number](a, b Vec[N]) Mask[N] { return compare(a, b, func(x, y N) bool { return x < y }) }

// LessEqual returns the elementwise a<=b mask.
func LessEqual[N Number](a, b Vec[N]) Mask[N] {
	return compare(a, b, func(x, y N) bool { return x <= y })
}

// Greater returns the elementwise a>b mask.
func Greater[N Number](a, b Vec[N]) Mask[N] {
	return compare(a, b, func(x, y N) bool { return x > y })
}

// GreaterEqual returns the elementwise a>=b mask.
func GreaterEqual[N Number](a, b Vec[N]) Mask[N] {
	return compare(a, b, func(x, y N) bool { return x >= y })
}

// Not returns the elementwise logical negation of m.
func (m Mask[N]) Not() Mask[N] {
	var bits [MaxDim]bool
	for i := 0; i < m.dim; i++ {
		bits[i] = !m.b[i]
	}
	return newMask[N](m.dim, bits)
}

// And returns the elementwise logical AND of m and other.
func (m Mask[N]) And(other Mask[N]) Mask[N] {
	var bits [MaxDim]bool
	for i := 0; i < m.dim; i++ {
		bits[i] = m.b[i] && other.b[i]
	}
	return newMask[N](m.dim, bits)
}

// Or returns the elementwise logical OR of m and other.
func (m Mask[N]) Or(other Mask[N]) Mask[N] {
	var bits [MaxDim]bool
	for i := 0; i < m.dim; i++ {
		bits[i] = m.b[i] || other.b[i]
	}
	return newMask[N](m.dim, bits)
}

// Any reports whether any lane of m is true.
func (m Mask[N]) Any() bool {
	for i := 0; i < m.dim; i++ {
		if m.b[i] {
			return true
		}
	}
	return false
}

// All reports whether every lane of m is true. The mask-as-bool conversion
// (spec.md §4.1) is this method.
func (m Mask[N]) All() bool {
	for i := 0; i < m.dim; i++ {
		if !m.b[i] {
			return false
		}
	}
	return true
}

// Bool returns m.All(), the canonical mask-as-bool conversion.
func (m Mask[N]) Bool() bool { return m.All() }

// CountTrue returns the number of true lanes in m.
func (m Mask[N]) CountTrue() int {
	n := 0
	for i := 0; i < m.dim; i++ {
		if m.b[i] {
			n++
		}
	}
	return n
}

// FindTrue returns the index of the first true lane, or -1 if none.
func (m Mask[N]) FindTrue() int {
	for i := 0; i < m.dim; i++ {
		if m.b[i] {
			return i
		}
	}
	return -1
}

// Select returns, lane by lane, a[i] where mask[i] is true and b[i] otherwise.
func Select[N Number](mask Mask[N], a, b Vec[N]) Vec[N] {
	sameDim(a, b)
	out := Zero[N](a.dim)
	for i := 0; i < a.dim; i++ {
		if mask.b[i] {
			out.e[i] = a.e[i]
		} else {
			out.e[i] = b.e[i]
		}
	}
	return out
}

// Filter returns Select(mask, a, Zero); lanes not set in mask become zero.
func Filter[N Number](mask Mask[N], a Vec[N]) Vec[N] {
	return Select(mask, a, Zero[N](a.dim))
}
