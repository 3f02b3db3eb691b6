// Package gpartition implements the R3 graph partitioners: Greedy (a
// seed-and-grow BFS partitioner for the coarsest level) and Multilevel
// (coarsen-partition-uplift, calling refine.FM on the way back up).
//
// Grounded on lvlath/gridgraph's BFS connected-components idiom
// (generalized from a 2-D grid to an arbitrary wgraph.Graph) and on
// original_source/tit/graph/partition/{greedy,multilevel}.hpp for the
// per-part weight cap, frontier ordering, and coarsening stop test
// (spec.md §9's open questions, resolved in SPEC_FULL.md §11).
package gpartition
