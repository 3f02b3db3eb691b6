package sfc

import (
	"github.com/tit-go/geomgraph/bisect"
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/par"
	"github.com/tit-go/geomgraph/spatial"
	"github.com/tit-go/geomgraph/vecmath"
)

// hilbertShiftFlip holds the fixed per-dimension rotation-transition
// tables from spec.md §4.5 / original_source's HilbertRotation::next.
var hilbertShiftFlip = map[int][][2]int{
	2: {{1, 0}, {0, 0}, {0, 0}, {1, 0b11}},
	3: {
		{2, 0}, {1, 0}, {1, 0}, {0, 0b110},
		{0, 0b110}, {1, 0b011}, {1, 0b011}, {2, 0b101},
	},
}

// hilbertRotation tracks the current bisection axis and per-axis
// direction flags.
type hilbertRotation struct {
	axis int
	dirs int
}

func (r hilbertRotation) dir() bool { return r.dirs&(1<<uint(r.axis)) != 0 }

func (r hilbertRotation) shift(dim int) hilbertRotation {
	return hilbertRotation{axis: (r.axis + 1) % dim, dirs: r.dirs}
}

func (r hilbertRotation) flip() hilbertRotation {
	return hilbertRotation{axis: r.axis, dirs: r.dirs ^ (1 << uint(r.axis))}
}

// next computes the rotation state after descending into the given
// child index, per the fixed shift/flip table for dim.
func (r hilbertRotation) next(index, dim int) hilbertRotation {
	assert.True(index >= 0 && index < (1<<uint(dim)), "sfc: hilbert child index %d out of range for dim %d", index, dim)
	if dim == 1 {
		return hilbertRotation{axis: 0, dirs: r.dirs}
	}
	table := hilbertShiftFlip[dim]
	assert.True(table != nil, "sfc: hilbert sort only supports dim 1-3, got %d", dim)
	shift, flip := table[index][0], table[index][1]
	return hilbertRotation{axis: (r.axis + shift) % dim, dirs: r.dirs ^ flip}
}

// indexOf computes the child index on the lowest level of recursion
// that produced this rotation from init.
func (r hilbertRotation) indexOf(init hilbertRotation, dim int) int {
	assert.True(r.axis == init.axis, "sfc: hilbert rotation axis mismatch")
	flips := r.dirs ^ init.dirs
	dist := 0
	for i := 0; i < dim; i++ {
		axis := (r.axis + i) % dim
		flipped := (flips >> uint(axis)) & 1
		dist |= flipped << uint(dim-i-1)
	}
	return dist
}

// hilbertState pairs the initial rotation of the current recursion level
// with its current (possibly shifted) rotation.
type hilbertState struct {
	initRot, currRot hilbertRotation
}

func (s hilbertState) axis() int { return s.currRot.axis }
func (s hilbertState) dir() bool { return s.currRot.dir() }

// next computes the two child states for a bisection at this level.
func (s hilbertState) next(dim int) (hilbertState, hilbertState) {
	nextRot := s.currRot.shift(dim)
	if nextRot.axis != s.initRot.axis {
		return hilbertState{initRot: s.initRot, currRot: nextRot},
			hilbertState{initRot: s.initRot, currRot: nextRot.flip()}
	}
	idx := nextRot.indexOf(s.initRot, dim)
	left := s.initRot.next(2*idx, dim)
	right := s.initRot.next(2*idx+1, dim)
	return hilbertState{initRot: left, currRot: left},
		hilbertState{initRot: right, currRot: right}
}

// HilbertSort reorders perm into Hilbert space-filling-curve order over
// points. Supports dimension 1-3 only (the rotation-transition table is
// undefined for dim 4); perm must have the same length as points.
func HilbertSort[N vecmath.Float](points []vecmath.Vec[N], perm []int) {
	assert.True(len(perm) == len(points), "sfc: perm length %d does not match points length %d", len(perm), len(points))
	if len(points) == 0 {
		return
	}
	for i := range perm {
		perm[i] = i
	}

	box := spatial.ComputeBBox(points, nil)
	dim := box.Dim()
	assert.True(dim >= 1 && dim <= 3, "sfc: hilbert sort only supports dim 1-3, got %d", dim)

	var tasks par.TaskGroup
	var impl func(box spatial.BBox[N], perm []int, state hilbertState)
	impl = func(box spatial.BBox[N], perm []int, state hilbertState) {
		if len(perm) <= 1 {
			return
		}
		axis := state.axis()
		reverse := state.dir()
		center := box.Center().At(axis)
		leftBox, rightBox := box.Split(axis, center, reverse)
		left, right := bisect.CoordBisection(points, perm, center, axis, reverse)

		leftState, rightState := state.next(dim)
		mode := func(p []int) par.RunMode {
			if len(p) >= minParallelSize {
				return par.RunParallel
			}
			return par.RunSequential
		}
		tasks.Run(mode(left), func() { impl(leftBox, left, leftState) })
		tasks.Run(mode(right), func() { impl(rightBox, right, rightState) })
	}
	impl(box, perm, hilbertState{})
	tasks.Wait()
}
