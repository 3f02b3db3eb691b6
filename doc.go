// Package geomgraph is a spatial partitioning and graph-coarsening
// toolkit for particle simulations: space-filling curves and KD-trees
// for ordering and searching point sets, uniform grids for neighbor
// binning, geometric and graph-based partitioners for splitting a
// domain across workers, and coarsen/partition/refine passes for
// balancing a weighted interaction graph.
//
// Subpackages:
//
//	vecmath/     — fixed-dimension vector, matrix, and mask algebra
//	par/         — task groups, parallel loops, arenas, and range splitting
//	spatial/     — bounding boxes, centroids, and inertia tensors
//	bisect/      — coordinate, directional, and inertial median splits
//	sfc/         — Morton and Hilbert space-filling curve sorts
//	index/       — uniform grid and KD-tree spatial indexes
//	wgraph/      — forward-star weighted graph and jagged-array storage
//	coarsen/     — heavy-edge and graph-edge matching (HEM/GEM)
//	gpartition/  — seed-and-grow and multilevel graph partitioning
//	refine/      — Fiduccia-Mattheyses local-search refinement
//	partition/   — geometric partitioners built on the packages above
package geomgraph
