// Package partition implements the G4 geometric partitioners: recursive
// bisection, SFC-sort partition, grid-graph partition, and k-means
// clustering. Every partitioner shares the spec.md §4.7 signature
// op(points, parts, numParts, initPart[, ...]) and the post-condition
// parts[i] in [initPart, initPart+numParts).
//
// Grounded on original_source/tit/geom/{coordinate_bisection,
// partition/grid_graph_partition, partition/kmeans_clustering}.hpp for
// the algorithms themselves, and on lvlath/builder's validating
// functional-options idiom for GridGraphPartition's injected
// edge-weight functor and KMeansCluster's iteration/seed knobs.
package partition
