// Package coarsen collapses a weighted graph into a smaller one by
// matching pairs of fine nodes into single coarse nodes (R2). Two
// matching heuristics are provided: HEM (Heavy Edge Matching), which
// sweeps nodes lightest-first and greedily grabs each one's heaviest
// unmatched edge, and GEM (Graph Edge Matching), which sweeps edges
// heaviest-first and pairs both endpoints if still free.
//
// Grounded on original_source's tit/graph/coarsen/{hem,gem,utils}.hpp.
// Both heuristics use internal/rng for their deterministic tie-breaks
// in place of the original's live-rng-coinflip: where the original's
// composed less_or/greater_or/rng expression and spec.md's prose
// disagree on tie-break direction, this package follows spec.md's
// explicit text (see DESIGN.md).
package coarsen
