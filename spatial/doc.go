// Package spatial provides axis-aligned bounding boxes, point-range
// concepts, and the aggregate statistics (centroid, bbox, inertia
// tensor, largest-inertia axis) that the bisection, SFC, and index
// layers build on.
//
// A PointRange is a borrowed view over a caller-owned point slice plus
// an index permutation: every geometric operator in this module reorders
// the permutation in place rather than copying or mutating the points,
// matching lvlath's preference for index-based views (its gridgraph
// package addresses cells by coordinate, never copying the grid) over
// value copies.
package spatial
