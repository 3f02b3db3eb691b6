package par

import (
	"runtime"
	"sync/atomic"

	"github.com/tit-go/geomgraph/internal/assert"
)

var (
	numThreads   int32 = int32(runtime.GOMAXPROCS(0))
	threadsFixed atomic.Bool
)

// NumThreads returns the process-wide worker count used by every
// parallel primitive in this package. The first call fixes it for the
// remainder of the process; see SetNumThreads.
func NumThreads() int {
	threadsFixed.Store(true)
	return int(atomic.LoadInt32(&numThreads))
}

// SetNumThreads overrides the worker count used by NumThreads. It must be
// called before the first NumThreads observation (typically at program
// startup); calling it afterwards panics, since in-flight range splits
// may already assume the old count.
func SetNumThreads(n int) {
	assert.True(n > 0, "par: num threads must be positive, got %d", n)
	assert.True(!threadsFixed.Load(), "par: SetNumThreads called after NumThreads was already observed")
	atomic.StoreInt32(&numThreads, int32(n))
}
