package partition

import (
	"github.com/tit-go/geomgraph/bisect"
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/par"
	"github.com/tit-go/geomgraph/spatial"
	"github.com/tit-go/geomgraph/vecmath"
)

// minParallelSize is the recursion-subtree size below which a
// RecursiveBisection split is run inline rather than on its own
// goroutine, matching sfc's ≥50-element parallel-submission threshold
// (spec.md §4.5) since both share the same recursive-split shape.
const minParallelSize = 50

// Bisector splits points[perm] so that points[perm[:median]] and
// points[perm[median:]] partition the input; it is the shared shape of
// bisect.CoordMedianSplit and bisect.InertialMedianSplit, letting
// RecursiveBisection be specialized by either (spec.md §4.7).
type Bisector[N vecmath.Float] func(points []vecmath.Vec[N], perm []int, median int)

// CoordBisector splits along the current sub-box's largest-extent axis,
// specializing RecursiveBisection into "recursive coordinate bisection".
func CoordBisector[N vecmath.Float](points []vecmath.Vec[N], perm []int, median int) {
	bisect.CoordMedianSplit(points, perm, median, -1)
}

// InertialBisector splits along the largest-inertia eigenvector of
// points[perm], falling back to the sub-box's largest-extent axis if the
// Jacobi eigendecomposition does not converge, specializing
// RecursiveBisection into "recursive inertial bisection".
func InertialBisector[N vecmath.Float](points []vecmath.Vec[N], perm []int, median int) {
	box := spatial.ComputeBBox(points, perm)
	fallback := vecmath.Zero[N](box.Dim())
	fallback.Set(box.LargestExtentAxis(), N(1))
	bisect.InertialMedianSplit(points, perm, median, fallback)
}

// RecursiveBisection assigns parts[i] = initPart + partID by repeated
// K-way median splits: at each level the first ceil(n*leftParts/numParts)
// permuted indices go to a left half carrying leftParts = ceil(numParts/2)
// part ids, the rest to a right half carrying the remainder, until
// numParts==1 labels every covered index with the current part
// (spec.md §4.7, worked example in spec.md §8 scenarios 4/5). Both
// halves are submitted to a shared task group, recursing in parallel
// once a half is large enough to be worth it.
func RecursiveBisection[N vecmath.Float](points []vecmath.Vec[N], parts []int, numParts, initPart int, bisector Bisector[N]) {
	assert.True(len(points) > 0, "partition: RecursiveBisection requires non-empty points")
	assert.True(len(parts) == len(points), "partition: parts length %d does not match points length %d", len(parts), len(points))
	assert.True(numParts > 0, "partition: numParts must be positive, got %d", numParts)
	assert.True(numParts <= len(points), "partition: numParts %d exceeds point count %d", numParts, len(points))

	perm := make([]int, len(points))
	for i := range perm {
		perm[i] = i
	}

	var tasks par.TaskGroup
	var recurse func(perm []int, numParts, partBase int)
	recurse = func(perm []int, numParts, partBase int) {
		if numParts == 1 {
			for _, i := range perm {
				parts[i] = initPart + partBase
			}
			return
		}

		leftParts := (numParts + 1) / 2
		rightParts := numParts - leftParts
		n := len(perm)
		median := (n*leftParts + numParts - 1) / numParts
		if median < 1 {
			median = 1
		}
		if median > n-1 {
			median = n - 1
		}
		bisector(points, perm, median)
		left, right := perm[:median], perm[median:]

		mode := func(p []int) par.RunMode {
			if len(p) >= minParallelSize {
				return par.RunParallel
			}
			return par.RunSequential
		}
		tasks.Run(mode(left), func() { recurse(left, leftParts, partBase) })
		tasks.Run(mode(right), func() { recurse(right, rightParts, partBase+leftParts) })
	}
	recurse(perm, numParts, 0)
	tasks.Wait()
}
