package gpartition

import "github.com/tit-go/geomgraph/internal/assert"

// Options configures Greedy and Multilevel.
type Options struct {
	disbalancePercent float64
	seed              uint64
}

// Option is a functional option, in the validating-constructor style
// lvlath/builder uses throughout.
type Option func(*Options)

// WithDisbalancePercent overrides the per-part weight cap slack
// (default 3%, spec.md §4.10's "default 3%").
func WithDisbalancePercent(p float64) Option {
	assert.True(p >= 0, "gpartition: WithDisbalancePercent requires a non-negative percent, got %g", p)
	return func(o *Options) { o.disbalancePercent = p }
}

// WithSeed overrides the SplitMix64 seed passed to refine.FM for its
// randomized tie-breaks (default: the graph's node count, per spec.md §9's
// "seeded from the input size" determinism rule). Greedy's own seed and
// frontier tie-breaks hash node ids and do not use it.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

func defaultOptions(n int) Options {
	return Options{disbalancePercent: 3.0, seed: uint64(n)}
}

// weightCap returns the per-part weight ceiling for a part carved from
// remainingWeight spread over remainingParts parts, inflated by the
// configured disbalance slack (spec.md §4.10 step 1).
func weightCap(remainingWeight int64, remainingParts int, disbalancePercent float64) int64 {
	avg := float64(remainingWeight) / float64(remainingParts)
	return int64(avg * (1 + disbalancePercent/100))
}
