// Package sfc induces space-filling-curve linear orderings of a point
// index permutation by recursively applying bisect.CoordBisection to a
// shrinking bounding box.
//
// Morton (Z-order) cycles the bisection axis every level; Hilbert
// instead drives the axis and direction from a rotation-state machine so
// that adjacent curve segments stay spatially adjacent. Both are
// grounded on original_source/tit/geom/sort/{morton_curve_sort,
// hilbert_curve_sort}.hpp, reproduced with Go's fork-join idiom
// (par.TaskGroup) standing in for the original's bound recursive
// lambda + task group.
package sfc
