package sfc

import (
	"github.com/tit-go/geomgraph/bisect"
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/par"
	"github.com/tit-go/geomgraph/spatial"
	"github.com/tit-go/geomgraph/vecmath"
)

// minParallelSize is the recursion-subtree size below which a Morton or
// Hilbert split is run inline rather than on its own goroutine; purely a
// performance knob (spec.md §4.5), not a correctness one.
const minParallelSize = 50

// MortonSort reorders perm into Morton (Z-order) space-filling-curve
// order over points. perm must have the same length as points; its
// initial contents are overwritten with the identity permutation before
// sorting. The recursion splits axis 1 first (axis 0 for 1-D input) and
// cycles through the axes from there.
func MortonSort[N vecmath.Float](points []vecmath.Vec[N], perm []int) {
	assert.True(len(perm) == len(points), "sfc: perm length %d does not match points length %d", len(perm), len(points))
	if len(points) == 0 {
		return
	}
	for i := range perm {
		perm[i] = i
	}

	box := spatial.ComputeBBox(points, nil)
	dim := box.Dim()

	var tasks par.TaskGroup
	var impl func(box spatial.BBox[N], perm []int, axis int)
	impl = func(box spatial.BBox[N], perm []int, axis int) {
		if len(perm) <= 1 {
			return
		}
		center := box.Center().At(axis)
		leftBox, rightBox := box.Split(axis, center, false)
		left, right := bisect.CoordBisection(points, perm, center, axis, false)

		nextAxis := (axis + 1) % dim
		mode := func(p []int) par.RunMode {
			if len(p) >= minParallelSize {
				return par.RunParallel
			}
			return par.RunSequential
		}
		tasks.Run(mode(left), func() { impl(leftBox, left, nextAxis) })
		tasks.Run(mode(right), func() { impl(rightBox, right, nextAxis) })
	}
	impl(box, perm, 1%dim)
	tasks.Wait()
}
