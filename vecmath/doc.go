// Package vecmath provides fixed-dimension vector, matrix, and mask algebra
// for dimensions 1 through 4, over signed integer or floating scalar types.
//
// Go has no value-generics, so the "dimension" axis of spec.md's Vec<N,D> is
// not a second type parameter: every Vec[N] carries a runtime Dim() in
// [1,4] alongside a fixed [4]N backing array, and every operation between
// two vectors asserts their dimensions match. This trades a sliver of
// compile-time safety for a single concrete type per scalar kind, which is
// the idiomatic Go shape for "small, fixed-size, numerous" value types (see
// how the standard library and gonum's r2/r3 packages use concrete structs
// per dimension rather than a dimension type parameter).
//
// Under the hood:
//
//	types.go      — Number/Float constraints, Vec, constructors
//	vec_ops.go    — elementwise arithmetic and reductions
//	mask.go       — Mask, comparisons, select/filter
//	mat.go        — Mat, matrix-vector/matrix-matrix ops
//	eigen.go      — Jacobi eigendecomposition for symmetric Mat[float64]
//	simd.go       — capability-gated register view (software fallback)
package vecmath
