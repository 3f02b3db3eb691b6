// Package wgraph implements the weighted-graph layer (R1): a forward-star
// (compressed adjacency) Graph and the general-purpose Multivector jagged
// array the geometric layer's grid index also builds on.
//
// Graph mirrors lvlath's core.Graph in spirit (a documented invariant
// list, weight as int64; contract violations panic rather than return
// errors) but trades the teacher's
// mutable vertex/edge-ID adjacency map for an immutable-once-built,
// index-addressed forward-star layout: offsets[0..n], edges/edgeWeights
// packed per-node, built once via AppendNode/AppendEdges and then read
// many times by coarsening, partitioning, and refinement.
package wgraph
