package refine

import "github.com/tit-go/geomgraph/internal/assert"

// Options configures FM.
type Options struct {
	disbalancePercent float64
	maxOuterIters     int
	seed              uint64
}

// Option is a functional option, in the validating-constructor style
// lvlath/builder uses throughout.
type Option func(*Options)

// WithDisbalancePercent overrides the per-part weight cap slack FM
// respects when choosing a move destination (default 3%).
func WithDisbalancePercent(p float64) Option {
	assert.True(p >= 0, "refine: WithDisbalancePercent requires a non-negative percent, got %g", p)
	return func(o *Options) { o.disbalancePercent = p }
}

// WithMaxOuterIters caps the number of improve-or-stop outer passes
// (default 20, spec.md §4.11's "cap of ≈20 outer iterations").
func WithMaxOuterIters(n int) Option {
	assert.True(n > 0, "refine: WithMaxOuterIters requires a positive count, got %d", n)
	return func(o *Options) { o.maxOuterIters = n }
}

// WithSeed overrides the SplitMix64 seed driving every randomized
// tie-break (default: the graph's node count).
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

func defaultOptions(n int) Options {
	return Options{disbalancePercent: 3.0, maxOuterIters: 20, seed: uint64(n)}
}

// partCap returns the max-part-weight cap for a graph of totalWeight
// spread over numParts parts, inflated by the configured disbalance
// slack (spec.md §4.11 "average + disbalance slack").
func partCap(totalWeight int64, numParts int, disbalancePercent float64) int64 {
	avg := float64(totalWeight) / float64(numParts)
	return int64(avg * (1 + disbalancePercent/100))
}
