// Package par is the module's shared-memory task-parallel substrate.
//
// spec.md §4.2 asks for a fixed, small set of primitives that every
// geometric and graph operator builds on: a process-wide thread count,
// half-open ranges that can be split for work-stealing-free static
// partitioning, parallel for/fold/sort/copy-if, a task group for
// structured fork-join, and a single-thread-only bump arena for
// allocation-free tree construction.
//
// The range-splitting and goroutine/WaitGroup shape follows lvlath's
// core package (see core/concurrency_test.go, which exercises the same
// "split the range, launch one goroutine per chunk, Wait" pattern this
// package formalizes into reusable primitives) and go-highway's
// hwy/contrib/matmul/workerspool.go (fixed worker count, work handed out
// by range rather than by channel-per-item). Neither lvlath nor
// go-highway reach for golang.org/x/sync anywhere in the pack, so this
// package builds directly on sync/sync/atomic/runtime rather than
// introducing a dependency the corpus never uses for this concern.
package par
