package partition

import (
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/vecmath"
)

// SFCSort orders perm (already sized to len(points)) along a
// space-filling curve; sfc.MortonSort and sfc.HilbertSort both match
// this shape, letting SFCSortPartition stay independent of the sfc
// package (avoiding a partition->sfc dependency the module otherwise
// does not need elsewhere).
type SFCSort[N vecmath.Float] func(points []vecmath.Vec[N], perm []int)

// SFCSortPartition orders points along curve and slices the ordering
// into numParts contiguous blocks of size floor(n/numParts), with the
// first n mod numParts blocks getting one extra element, labeling each
// block's points with initPart + block index (spec.md §4.7).
func SFCSortPartition[N vecmath.Float](points []vecmath.Vec[N], parts []int, numParts, initPart int, curve SFCSort[N]) {
	assert.True(len(points) > 0, "partition: SFCSortPartition requires non-empty points")
	assert.True(len(parts) == len(points), "partition: parts length %d does not match points length %d", len(parts), len(points))
	assert.True(numParts > 0, "partition: numParts must be positive, got %d", numParts)

	perm := make([]int, len(points))
	curve(points, perm)

	n := len(perm)
	base, rem := n/numParts, n%numParts
	idx := 0
	for p := 0; p < numParts; p++ {
		size := base
		if p < rem {
			size++
		}
		for j := 0; j < size; j++ {
			parts[perm[idx]] = initPart + p
			idx++
		}
	}
}
