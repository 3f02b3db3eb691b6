// Package bisect implements the G1 splitters: operators that partition a
// point-index permutation in place along an axis, a direction, or the
// largest-inertia eigenvector, either by a fixed pivot (bisection) or by
// a target rank (median split).
//
// Every operator mutates only the caller-supplied perm slice and returns
// left/right sub-slices of it; points are never copied or reordered,
// following spatial.PointRange's borrowed-view convention. The
// partition-by-predicate shape mirrors lvlath/gridgraph's
// connected-component sweep (single-pass in-place classification into two
// buckets); quickselect for the median-split family is grounded on the
// same divide-and-conquer shape lvlath's prim_kruskal package uses for
// its union-find partitioning, adapted here to numeric order statistics
// instead of disjoint-set merges.
package bisect
