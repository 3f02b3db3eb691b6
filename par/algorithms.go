package par

import (
	"sort"
	"sync/atomic"
)

// ForEachRange splits r into NumThreads() chunks and runs f once per
// chunk, each on its own goroutine, blocking until all chunks finish.
// Callers that want per-element semantics should use ForEach instead;
// ForEachRange is for work that is cheaper to do in bulk per chunk (e.g.
// a local insertion sort before a merge).
func ForEachRange(r Range, f func(Range)) {
	chunks := r.Split(NumThreads())
	if len(chunks) <= 1 {
		for _, c := range chunks {
			f(c)
		}
		return
	}
	var g TaskGroup
	for _, c := range chunks {
		c := c
		g.Run(RunParallel, func() { f(c) })
	}
	g.Wait()
}

// ForEach applies f to every index in r, distributing indices across
// NumThreads() goroutines.
func ForEach(r Range, f func(i int)) {
	ForEachRange(r, func(c Range) {
		for i := c.Begin; i < c.End; i++ {
			f(i)
		}
	})
}

// BlockForEach iterates the given ranges in chunks of NumThreads(): each
// chunk's ranges run concurrently, and the next chunk only starts once
// the current one finishes. This bounds the number of in-flight
// goroutines to NumThreads() even when len(ranges) is large, which
// matters when each range itself spawns further parallel work (e.g. a
// coarsening pass over per-partition subgraphs).
func BlockForEach(ranges []Range, f func(Range)) {
	n := NumThreads()
	for start := 0; start < len(ranges); start += n {
		end := start + n
		if end > len(ranges) {
			end = len(ranges)
		}
		var g TaskGroup
		for _, rg := range ranges[start:end] {
			rg := rg
			g.Run(RunParallel, func() { f(rg) })
		}
		g.Wait()
	}
}

// Fold computes a parallel reduction over r: each chunk accumulates
// sequentially via combine starting from init, and the per-chunk
// partials are merged with reduce. combine and reduce must be
// associative with respect to each other for the result to be
// deterministic across thread counts.
func Fold[T any](r Range, init T, combine func(acc T, i int) T, reduce func(a, b T) T) T {
	chunks := r.Split(NumThreads())
	if len(chunks) == 0 {
		return init
	}
	partials := make([]T, len(chunks))
	var g TaskGroup
	for ci, c := range chunks {
		ci, c := ci, c
		g.Run(RunParallel, func() {
			acc := init
			for i := c.Begin; i < c.End; i++ {
				acc = combine(acc, i)
			}
			partials[ci] = acc
		})
	}
	g.Wait()
	result := partials[0]
	for _, p := range partials[1:] {
		result = reduce(result, p)
	}
	return result
}

// Transform writes f(i) into out[i] for every i in r, in parallel.
func Transform[T any](r Range, out []T, f func(i int) T) {
	ForEach(r, func(i int) { out[i] = f(i) })
}

// Sort sorts s in place, splitting it into NumThreads() chunks, sorting
// each concurrently, then sequentially k-way merging the sorted chunks
// back into s. less must define a strict weak ordering.
func Sort[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	if n < 2 {
		return
	}
	r := NewRange(0, n)
	chunks := r.Split(NumThreads())
	if len(chunks) <= 1 {
		sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
		return
	}

	var g TaskGroup
	for _, c := range chunks {
		c := c
		sub := s[c.Begin:c.End]
		g.Run(RunParallel, func() {
			sort.Slice(sub, func(i, j int) bool { return less(sub[i], sub[j]) })
		})
	}
	g.Wait()

	merged := make([]T, 0, n)
	heads := make([]int, len(chunks))
	for {
		best := -1
		for ci, c := range chunks {
			idx := c.Begin + heads[ci]
			if idx >= c.End {
				continue
			}
			if best == -1 || less(s[idx], s[chunks[best].Begin+heads[best]]) {
				best = ci
			}
		}
		if best == -1 {
			break
		}
		idx := chunks[best].Begin + heads[best]
		merged = append(merged, s[idx])
		heads[best]++
	}
	copy(s, merged)
}

// FetchAndAdd atomically adds delta to *counter and returns the value it
// held before the add. UnstableCopyIf is this package's only caller;
// spec.md §4.2 reserves the primitive for that one use.
func FetchAndAdd(counter *int64, delta int64) int64 {
	return atomic.AddInt64(counter, delta) - delta
}

// unstableCopyBufSize bounds the per-goroutine local buffer
// UnstableCopyIf uses before it claims output space with a single
// FetchAndAdd, amortizing the atomic's cost over a batch of matches.
const unstableCopyBufSize = 64

// UnstableCopyIf copies every element of src satisfying pred into out,
// in no particular order (hence "unstable"), and returns the number of
// elements copied. out must be at least len(src) long. Matches from
// different input chunks interleave arbitrarily in out; callers that
// need a stable order should sort afterward.
func UnstableCopyIf[T any](src []T, pred func(T) bool, out []T) int {
	var total int64
	r := NewRange(0, len(src))
	ForEachRange(r, func(c Range) {
		buf := make([]T, 0, unstableCopyBufSize)
		flush := func() {
			if len(buf) == 0 {
				return
			}
			start := int(FetchAndAdd(&total, int64(len(buf))))
			copy(out[start:start+len(buf)], buf)
			buf = buf[:0]
		}
		for i := c.Begin; i < c.End; i++ {
			if !pred(src[i]) {
				continue
			}
			buf = append(buf, src[i])
			if len(buf) == unstableCopyBufSize {
				flush()
			}
		}
		flush()
	})
	return int(total)
}
