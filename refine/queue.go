package refine

import "container/heap"

// pqEntry is one keyed priority-queue entry: a candidate move-priority
// estimate for node, stamped with the generation it was computed under.
// A pop whose gen no longer matches the node's current generation is
// stale and is skipped (spec.md §4.11 "entries are invalidated, not
// removed... popped lazily-validated"), the same push-duplicates,
// skip-stale-pops trick lvlath/dijkstra uses for its lazy-decrease-key
// heap, generalized from "stale if a shorter distance was found" to
// "stale if a generation counter advanced".
type pqEntry struct {
	node     int
	gen      int
	priority int64
	hash     uint64
}

// priorityQueue is a max-heap on (priority desc, hash desc): the hash
// term makes the ordering of exact priority ties a deterministic
// function of the SplitMix64 mixer rather than of heap insertion order
// (spec.md §4.11 "The queue key function is hash(v) -> u64... what makes
// ties reproducible").
type priorityQueue []*pqEntry

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority > pq[j].priority
	}
	return pq[i].hash > pq[j].hash
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(*pqEntry)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

var _ heap.Interface = (*priorityQueue)(nil)
