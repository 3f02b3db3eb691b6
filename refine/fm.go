package refine

import (
	"container/heap"
	"math"

	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/internal/rng"
	"github.com/tit-go/geomgraph/wgraph"
)

// FM refines parts in place using Fiduccia-Mattheyses local search
// (spec.md §4.11): repeated outer passes build a keyed priority queue
// over boundary nodes, greedily move the highest-priority node to the
// adjacent part that maximizes gain under a weight cap, and roll back
// every move made after the pass's best-seen cumulative gain once the
// queue drains. It returns the total gain achieved across every
// improving pass (spec.md §8 "refinement non-worsening": always >= 0).
func FM(g *wgraph.Graph, parts []int, numParts int, opts ...Option) int64 {
	n := g.NumNodes()
	assert.True(n > 0, "refine: FM requires a non-empty graph")
	assert.True(len(parts) == n, "refine: parts length %d does not match graph node count %d", len(parts), n)
	assert.True(numParts > 0, "refine: numParts must be positive, got %d", numParts)

	cfg := defaultOptions(n)
	for _, o := range opts {
		o(&cfg)
	}

	partWeight := make([]int64, numParts)
	var totalWeight int64
	for v := 0; v < n; v++ {
		partWeight[parts[v]] += g.Weight(v)
		totalWeight += g.Weight(v)
	}
	capWeight := partCap(totalWeight, numParts, cfg.disbalancePercent)

	var total int64
	for outer := 0; outer < cfg.maxOuterIters; outer++ {
		gain := fmPass(g, parts, partWeight, numParts, capWeight, cfg.seed)
		if gain <= 0 {
			break
		}
		total += gain
	}
	return total
}

// move is one rollback-log entry: node moved from part "from" to part
// "to", with the gain that move contributed at the time it was made.
type move struct {
	node, from, to int
	gain           int64
}

// fmPass runs one outer FM iteration to completion and returns the best
// cumulative gain seen (>= 0, since an empty queue or an immediately
// non-improving pass rolls everything back to the starting partition).
func fmPass(g *wgraph.Graph, parts []int, partWeight []int64, numParts int, capWeight int64, seed uint64) int64 {
	n := g.NumNodes()
	moved := make([]bool, n)
	gen := make([]int, n)
	pq := &priorityQueue{}
	heap.Init(pq)

	pushNode := func(v int) {
		gen[v]++
		heap.Push(pq, &pqEntry{
			node:     v,
			gen:      gen[v],
			priority: movePriority(g, parts, numParts, v),
			hash:     rng.Hash(v, gen[v]) ^ seed,
		})
	}

	isBoundary := func(v int) bool {
		pv := parts[v]
		for _, nb := range g.Edges(v) {
			if parts[nb] != pv {
				return true
			}
		}
		return false
	}
	for v := 0; v < n; v++ {
		if isBoundary(v) {
			pushNode(v)
		}
	}

	var log []move
	var running, best int64
	bestIdx := 0

	for pq.Len() > 0 {
		e := heap.Pop(pq).(*pqEntry)
		v := e.node
		if gen[v] != e.gen || moved[v] {
			continue
		}

		dint := internalWeight(g, parts, v)
		bestPart, bestGain := -1, int64(math.MinInt64)
		for p := 0; p < numParts; p++ {
			if p == parts[v] || partWeight[p]+g.Weight(v) > capWeight {
				continue
			}
			ext := externalWeightTo(g, parts, v, p)
			if ext == 0 {
				continue // v has no edge into p: not an adjacent part
			}
			gainVal := ext - dint
			if betterDestination(gainVal, partWeight[p], p, bestGain, destWeight(partWeight, bestPart), bestPart, v, seed) {
				bestPart, bestGain = p, gainVal
			}
		}
		if bestPart == -1 {
			continue
		}

		from := parts[v]
		parts[v] = bestPart
		partWeight[from] -= g.Weight(v)
		partWeight[bestPart] += g.Weight(v)
		moved[v] = true
		running += bestGain
		log = append(log, move{node: v, from: from, to: bestPart, gain: bestGain})
		if running > best {
			best = running
			bestIdx = len(log)
		}

		for _, nb := range g.Edges(v) {
			if !moved[nb] {
				pushNode(nb)
			}
		}
	}

	for i := len(log) - 1; i >= bestIdx; i-- {
		m := log[i]
		parts[m.node] = m.from
		partWeight[m.from] += g.Weight(m.node)
		partWeight[m.to] -= g.Weight(m.node)
	}
	return best
}

// destWeight is partWeight[p] if p is a valid part index, or 0 for the
// bestPart==-1 sentinel ("no destination chosen yet").
func destWeight(partWeight []int64, p int) int64 {
	if p < 0 {
		return 0
	}
	return partWeight[p]
}

// betterDestination implements the move-destination tie-break chain:
// highest gain, then smallest destination-part weight, then hash
// (spec.md §4.11 step 2 "choose the part maximizing gain, tie-broken by
// smallest destination-part weight, then by RNG").
func betterDestination(gain, weight int64, p int, bestGain, bestWeight int64, bestP, v int, seed uint64) bool {
	if bestP == -1 {
		return true
	}
	switch {
	case gain != bestGain:
		return gain > bestGain
	case weight != bestWeight:
		return weight < bestWeight
	default:
		return (rng.Hash(v, p) ^ seed) > (rng.Hash(v, bestP) ^ seed)
	}
}

// internalWeight is D_int(v): the sum of edge weights from v to
// neighbors in v's current part.
func internalWeight(g *wgraph.Graph, parts []int, v int) int64 {
	var w int64
	pv := parts[v]
	for _, we := range g.WEdges(v) {
		if parts[we.Neighbor] == pv {
			w += we.Weight
		}
	}
	return w
}

// externalWeightTo is D_ext(v -> p): the sum of edge weights from v to
// neighbors currently in part p.
func externalWeightTo(g *wgraph.Graph, parts []int, v, p int) int64 {
	var w int64
	for _, we := range g.WEdges(v) {
		if parts[we.Neighbor] == p {
			w += we.Weight
		}
	}
	return w
}

// movePriority is max_{p != part(v)} D_ext(v -> p) - D_int(v), the
// queue key spec.md §4.11 defines; negative values are admitted
// (pushed and possibly popped) to let the search escape local minima.
func movePriority(g *wgraph.Graph, parts []int, numParts, v int) int64 {
	dint := internalWeight(g, parts, v)
	best := int64(math.MinInt64)
	for p := 0; p < numParts; p++ {
		if p == parts[v] {
			continue
		}
		if d := externalWeightTo(g, parts, v, p) - dint; d > best {
			best = d
		}
	}
	return best
}
