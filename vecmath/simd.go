// Masked-register protocol capability gate.
//
// spec.md §9 asks that the SIMD path be "gated on a capability query that is
// checked once at init, not per call", following the dispatch-once-branch-
// per-call shape of go-highway's hwy/dispatch_amd64_simd.go. This build ships
// no architecture-specific assembly (that would require per-arch .s files
// and a toolchain run to validate, both out of scope here), so the gate
// always reports false and every operation runs the scalar fallback; the
// protocol is wired so a future native register overlay only needs to flip
// hasNativeRegister and supply the overlay, without touching call sites.
package vecmath

import "sync"

var (
	simdOnce      sync.Once
	simdAvailable bool
)

// checkCapability runs the (currently trivial) capability probe exactly
// once per process, matching the "checked once at init, not per call"
// requirement.
func checkCapability() {
	simdOnce.Do(func() {
		simdAvailable = false
	})
}

// hasNativeRegister reports whether (N, dim) overlays a native SIMD register
// width (16/32/64 bytes) on this build. Always false here; see package doc.
func hasNativeRegister[N Number](dim int) bool {
	checkCapability()
	return simdAvailable
}

// RegCount returns the number of native registers a Vec[N] of the given
// dimension would overlay: 1 if a native width match exists, 0 otherwise
// (software-only fallback).
func RegCount[N Number](dim int) int {
	if hasNativeRegister[N](dim) {
		return 1
	}
	return 0
}
