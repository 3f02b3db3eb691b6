package gpartition

import (
	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/internal/rng"
	"github.com/tit-go/geomgraph/refine"
	"github.com/tit-go/geomgraph/wgraph"
)

// Greedy partitions g into numParts parts (labeled initPart..initPart+
// numParts-1) by repeated seed-and-grow BFS (spec.md §4.10): find the
// lightest connected component of still-unassigned nodes, seed it with
// the best-gain node, grow the part one node at a time by
// (internalDegree-externalDegree desc, weight asc, hash) until the
// part's weight reaches the per-part weight cap or the component runs
// out, then
// refine the whole result with refine.FM.
func Greedy(g *wgraph.Graph, parts []int, numParts, initPart int, opts ...Option) {
	n := g.NumNodes()
	assert.True(n > 0, "gpartition: Greedy requires a non-empty graph")
	assert.True(len(parts) == n, "gpartition: parts length %d does not match graph node count %d", len(parts), n)
	assert.True(numParts > 0 && numParts <= n, "gpartition: numParts %d out of range (0,%d]", numParts, n)

	cfg := defaultOptions(n)
	for _, o := range opts {
		o(&cfg)
	}
	greedy(g, parts, numParts, initPart, cfg)
}

func greedy(g *wgraph.Graph, parts []int, numParts, initPart int, cfg Options) {
	n := g.NumNodes()
	assigned := make([]bool, n)
	partOf := make([]int, n)
	for i := range partOf {
		partOf[i] = -1
	}

	var totalWeight int64
	for _, w := range g.WNodes() {
		totalWeight += w.Weight
	}
	remainingWeight := totalWeight
	remainingParts := numParts

	for p := 0; p < numParts; p++ {
		capWeight := weightCap(remainingWeight, remainingParts, cfg.disbalancePercent)

		active := make([]bool, n)
		any := false
		for v := 0; v < n; v++ {
			if !assigned[v] {
				active[v] = true
				any = true
			}
		}
		if !any {
			break
		}

		comps := ConnectedComponents(g, active)
		bestComp, bestWeight := -1, int64(-1)
		for ci, comp := range comps {
			var w int64
			for _, v := range comp {
				w += g.Weight(v)
			}
			if bestComp == -1 || w < bestWeight {
				bestComp, bestWeight = ci, w
			}
		}
		comp := comps[bestComp]

		seed := comp[0]
		seedGain, seedWeight := nodeGain(g, assigned, seed), g.Weight(seed)
		for _, v := range comp[1:] {
			gain, weight := nodeGain(g, assigned, v), g.Weight(v)
			if betterSeed(gain, weight, v, seedGain, seedWeight, seed) {
				seed, seedGain, seedWeight = v, gain, weight
			}
		}

		partOf[seed] = p
		assigned[seed] = true
		partWeight := g.Weight(seed)

		candidates := map[int]bool{}
		addCandidates := func(v int) {
			for _, nb := range g.Edges(v) {
				if !assigned[nb] {
					candidates[nb] = true
				}
			}
		}
		addCandidates(seed)

		for partWeight < capWeight && len(candidates) > 0 {
			bestV, bestScore, bestW := -1, 0, int64(0)
			for v := range candidates {
				score := frontierScore(g, partOf, p, v)
				w := g.Weight(v)
				if bestV == -1 || betterFrontier(score, w, v, bestScore, bestW, bestV) {
					bestV, bestScore, bestW = v, score, w
				}
			}
			delete(candidates, bestV)

			partOf[bestV] = p
			assigned[bestV] = true
			partWeight += bestW
			addCandidates(bestV)
		}

		remainingWeight -= partWeight
		remainingParts--
	}

	for v := 0; v < n; v++ {
		if !assigned[v] {
			partOf[v] = numParts - 1
		}
	}

	refine.FM(g, partOf, numParts, refine.WithDisbalancePercent(cfg.disbalancePercent), refine.WithSeed(cfg.seed))
	for i, p := range partOf {
		parts[i] = initPart + p
	}
}

// nodeGain is the seed-selection score of spec.md §4.10 step 3:
// edges-to-assigned minus edges-to-unassigned.
func nodeGain(g *wgraph.Graph, assigned []bool, v int) int {
	gain := 0
	for _, nb := range g.Edges(v) {
		if assigned[nb] {
			gain++
		} else {
			gain--
		}
	}
	return gain
}

// betterSeed implements the seed tie-break chain: best gain, then
// smallest node weight, then randomized hash (spec.md §4.10 step 3).
func betterSeed(gain int, weight int64, v int, bestGain int, bestWeight int64, bestV int) bool {
	switch {
	case gain != bestGain:
		return gain > bestGain
	case weight != bestWeight:
		return weight < bestWeight
	default:
		return rng.Hash(v) > rng.Hash(bestV)
	}
}

// frontierScore is (internalDegree - externalDegree) for v against the
// part currently being grown (spec.md §4.10 step 4).
func frontierScore(g *wgraph.Graph, partOf []int, part, v int) int {
	internal := 0
	for _, nb := range g.Edges(v) {
		if partOf[nb] == part {
			internal++
		}
	}
	return internal - (len(g.Edges(v)) - internal)
}

// betterFrontier implements the frontier tie-break chain: higher
// (internal-external) score, then smaller node weight, then hash
// (spec.md §4.10 step 4, resolved in SPEC_FULL.md §11).
func betterFrontier(score int, weight int64, v int, bestScore int, bestWeight int64, bestV int) bool {
	switch {
	case score != bestScore:
		return score > bestScore
	case weight != bestWeight:
		return weight < bestWeight
	default:
		return rng.Hash(v) > rng.Hash(bestV)
	}
}
