// Package index builds and queries the two spatial search structures
// (G3): a uniform grid and a KD-tree. Both borrow their input point
// slice — they never copy or reorder it — and answer radius queries.
//
// GridIndex is grounded on original_source's tit/geom/grid.hpp (bucket
// points into cells sized by a spacing hint, via wgraph.Multivector's
// bulk bucket-counted assembly) generalized from that file's
// hardcoded-2D cell-enumeration loop to an arbitrary-dimension odometer.
// KDTree is grounded on tit/geom/search/kd_tree_search.hpp's
// nearer-child-first descent and cut_left/cut_right pruning, built with
// bisect.CoordMedianSplit per spec.md §4.6 (a balanced-split choice over
// the original's bbox-center bisection) and node storage from par.Arena.
package index
