package wgraph

import "github.com/tit-go/geomgraph/internal/assert"

// Multivector is a jagged array packed as offsets[0..m] / values[.]: the
// values belonging to bucket i are values[offsets[i]:offsets[i+1]].
// Built either by bulk bucket-counted assignment (AssembleBuckets) or by
// incremental per-bucket append (AppendBucket); the two are not mixed on
// the same instance.
type Multivector[T any] struct {
	offsets []int
	values  []T
}

// AssembleBuckets builds a Multivector with numBuckets buckets from
// parallel bucket/value slices: bucket[i] names the bucket value[i]
// belongs to. Within a bucket, values keep their relative input order
// (a stable counting-sort scatter).
func AssembleBuckets[T any](numBuckets int, bucket []int, value []T) *Multivector[T] {
	assert.True(len(bucket) == len(value), "wgraph: bucket/value length mismatch %d vs %d", len(bucket), len(value))
	assert.True(numBuckets >= 0, "wgraph: numBuckets must be non-negative, got %d", numBuckets)

	counts := make([]int, numBuckets+1)
	for _, b := range bucket {
		assert.True(b >= 0 && b < numBuckets, "wgraph: bucket %d out of range [0,%d)", b, numBuckets)
		counts[b+1]++
	}
	for i := 0; i < numBuckets; i++ {
		counts[i+1] += counts[i]
	}
	offsets := append([]int(nil), counts...)

	cursor := append([]int(nil), counts...)
	values := make([]T, len(value))
	for i, b := range bucket {
		values[cursor[b]] = value[i]
		cursor[b]++
	}
	return &Multivector[T]{offsets: offsets, values: values}
}

// NewAppendMultivector returns an empty Multivector ready for
// AppendBucket calls.
func NewAppendMultivector[T any]() *Multivector[T] {
	return &Multivector[T]{offsets: []int{0}}
}

// AppendBucket appends a new bucket containing vals, in order, and
// returns its index.
func (m *Multivector[T]) AppendBucket(vals ...T) int {
	m.values = append(m.values, vals...)
	m.offsets = append(m.offsets, len(m.values))
	return len(m.offsets) - 2
}

// NumBuckets returns the number of buckets in m.
func (m *Multivector[T]) NumBuckets() int {
	if len(m.offsets) == 0 {
		return 0
	}
	return len(m.offsets) - 1
}

// At returns the subrange of values belonging to bucket i.
func (m *Multivector[T]) At(i int) []T {
	assert.True(i >= 0 && i < m.NumBuckets(), "wgraph: bucket %d out of range [0,%d)", i, m.NumBuckets())
	return m.values[m.offsets[i]:m.offsets[i+1]]
}
