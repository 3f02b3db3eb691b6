package par

import "github.com/tit-go/geomgraph/internal/assert"

// DefaultSlabSize is the element count of each slab an Arena allocates
// when its caller does not pick one; index.KDTree uses this for its
// node pool.
const DefaultSlabSize = 1024

// Arena is a single-thread bump allocator: Allocate hands out backing
// storage from a growing list of slabs and never frees individual
// allocations, only the whole arena at once via Reset. It is safe to use
// from the thread that owns it only; its one user in this module,
// index.BuildKDTree, builds its tree with a single Arena on a single
// goroutine.
type Arena[T any] struct {
	slabSize int
	slabs    [][]T
	cur      []T
}

// NewArena returns an Arena that grows in slabSize-element slabs (or
// DefaultSlabSize if slabSize<=0).
func NewArena[T any](slabSize int) *Arena[T] {
	if slabSize <= 0 {
		slabSize = DefaultSlabSize
	}
	return &Arena[T]{slabSize: slabSize}
}

// Allocate returns n contiguous, zero-valued T elements. The returned
// slice aliases the arena's backing storage and stays valid until Reset.
// Allocate panics if n is negative; n==0 returns nil.
func (a *Arena[T]) Allocate(n int) []T {
	assert.True(n >= 0, "par: arena allocation count must be non-negative, got %d", n)
	if n == 0 {
		return nil
	}
	if len(a.cur) < n {
		sz := a.slabSize
		if n > sz {
			sz = n
		}
		a.slabs = append(a.slabs, make([]T, sz))
		a.cur = a.slabs[len(a.slabs)-1]
	}
	out := a.cur[:n:n]
	a.cur = a.cur[n:]
	return out
}

// Reset drops every slab, making their storage eligible for garbage
// collection once no other reference survives. It is the arena
// equivalent of the teacher's pooled-buffer release pattern.
func (a *Arena[T]) Reset() {
	a.slabs = nil
	a.cur = nil
}

// NumSlabs reports how many slabs have been allocated so far; tests use
// it to check growth behavior without reaching into internals.
func (a *Arena[T]) NumSlabs() int { return len(a.slabs) }
