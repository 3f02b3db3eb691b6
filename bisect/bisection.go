package bisect

import "github.com/tit-go/geomgraph/vecmath"

// partitionBy partitions perm in place so every index for which pred
// returns true precedes every index for which it returns false, and
// returns the two resulting sub-slices (both views into perm's backing
// array). The true side keeps its original relative order; the order of
// the false side is not preserved.
func partitionBy(perm []int, pred func(idx int) bool) (left, right []int) {
	i := 0
	for j := 0; j < len(perm); j++ {
		if pred(perm[j]) {
			perm[i], perm[j] = perm[j], perm[i]
			i++
		}
	}
	return perm[:i], perm[i:]
}

// CoordBisection partitions perm so that every left-side index i
// satisfies points[i][axis] < pivot (or > pivot if reverse), and every
// right-side index satisfies the complementary relation.
func CoordBisection[N vecmath.Float](points []vecmath.Vec[N], perm []int, pivot N, axis int, reverse bool) (left, right []int) {
	if reverse {
		return partitionBy(perm, func(idx int) bool { return points[idx].At(axis) > pivot })
	}
	return partitionBy(perm, func(idx int) bool { return points[idx].At(axis) < pivot })
}

// DirBisection partitions perm so that every left-side index i satisfies
// dot(points[i], dir) < pivot (or > pivot if reverse).
func DirBisection[N vecmath.Float](points []vecmath.Vec[N], perm []int, pivot N, dir vecmath.Vec[N], reverse bool) (left, right []int) {
	if reverse {
		return partitionBy(perm, func(idx int) bool { return vecmath.Dot(points[idx], dir) > pivot })
	}
	return partitionBy(perm, func(idx int) bool { return vecmath.Dot(points[idx], dir) < pivot })
}
