package par

import "github.com/tit-go/geomgraph/internal/assert"

// Range is a half-open index interval [Begin, End).
type Range struct {
	Begin, End int
}

// NewRange builds a Range, asserting begin <= end.
func NewRange(begin, end int) Range {
	assert.True(begin <= end, "par: invalid range [%d,%d)", begin, end)
	return Range{Begin: begin, End: end}
}

// Len returns the number of indices covered by r.
func (r Range) Len() int { return r.End - r.Begin }

// Empty reports whether r covers no indices.
func (r Range) Empty() bool { return r.Begin >= r.End }

// Split divides r into at most n contiguous, near-equal, non-empty
// chunks. Splitting preserves order: chunk i precedes chunk i+1.
func (r Range) Split(n int) []Range {
	assert.True(n > 0, "par: split count must be positive, got %d", n)
	total := r.Len()
	if total <= 0 {
		return nil
	}
	if n > total {
		n = total
	}
	chunks := make([]Range, 0, n)
	base := total / n
	rem := total % n
	cur := r.Begin
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, Range{Begin: cur, End: cur + size})
		cur += size
	}
	return chunks
}
