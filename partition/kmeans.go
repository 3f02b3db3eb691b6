package partition

import (
	"math"
	"sort"

	"github.com/tit-go/geomgraph/internal/assert"
	"github.com/tit-go/geomgraph/internal/rng"
	"github.com/tit-go/geomgraph/vecmath"
)

// KMeansOptions configures KMeansCluster.
type KMeansOptions struct {
	maxIters int
	eps      float64
	seed     uint64
}

// KMeansOption is a functional option for KMeansCluster.
type KMeansOption func(*KMeansOptions)

// WithMaxIters caps the number of Lloyd iterations (default 100).
func WithMaxIters(n int) KMeansOption {
	assert.True(n > 0, "partition: WithMaxIters requires a positive count, got %d", n)
	return func(o *KMeansOptions) { o.maxIters = n }
}

// WithConvergenceEps sets the centroid-movement threshold (default 1e-6)
// below which Lloyd iteration stops: sum(||delta centroid||^2) < eps^2.
func WithConvergenceEps(eps float64) KMeansOption {
	assert.True(eps > 0, "partition: WithConvergenceEps requires a positive eps, got %g", eps)
	return func(o *KMeansOptions) { o.eps = eps }
}

// WithKMeansSeed overrides the SplitMix64 seed driving k-means++ seeding
// (default: the input point count, per spec.md §9's "seeded from the
// input size" determinism rule).
func WithKMeansSeed(seed uint64) KMeansOption {
	return func(o *KMeansOptions) { o.seed = seed }
}

func defaultKMeansOptions(n int) KMeansOptions {
	return KMeansOptions{maxIters: 100, eps: 1e-6, seed: uint64(n)}
}

// lexLess orders vectors component-by-component, axis 0 first; it is
// what gives k-means++'s randomly chosen seed centroids a stable,
// reproducible starting order before Lloyd iteration (spec.md §4.7).
func lexLess[N vecmath.Float](a, b vecmath.Vec[N]) bool {
	for d := 0; d < a.Dim(); d++ {
		if a.At(d) != b.At(d) {
			return a.At(d) < b.At(d)
		}
	}
	return false
}

// KMeansCluster assigns parts[i] = initPart + cluster via k-means++
// seeding (first centroid uniform-random, later ones weighted by
// squared distance to the nearest existing centroid) followed by Lloyd
// iteration to convergence or WithMaxIters, tie-breaking equidistant
// points to their smallest cluster index and retaining a cluster's
// previous centroid if it loses every point in a round (spec.md §4.7).
func KMeansCluster[N vecmath.Float](points []vecmath.Vec[N], parts []int, numParts, initPart int, opts ...KMeansOption) {
	assert.True(len(points) > 0, "partition: KMeansCluster requires non-empty points")
	assert.True(len(parts) == len(points), "partition: parts length %d does not match points length %d", len(parts), len(points))
	assert.True(numParts > 0 && numParts <= len(points), "partition: numParts %d out of range (0,%d]", numParts, len(points))

	n := len(points)
	cfg := defaultKMeansOptions(n)
	for _, o := range opts {
		o(&cfg)
	}

	gen := rng.New(cfg.seed)
	randFloat := func() float64 { return float64(gen.Next()>>11) / float64(uint64(1)<<53) }

	centroids := make([]vecmath.Vec[N], 0, numParts)
	centroids = append(centroids, points[int(gen.Next()%uint64(n))])

	distSq := make([]float64, n)
	for len(centroids) < numParts {
		var total float64
		for i, p := range points {
			best := math.MaxFloat64
			for _, c := range centroids {
				if d := float64(vecmath.Norm2(vecmath.Sub(p, c))); d < best {
					best = d
				}
			}
			distSq[i] = best
			total += best
		}
		if total == 0 {
			centroids = append(centroids, points[int(gen.Next()%uint64(n))])
			continue
		}
		target := randFloat() * total
		chosen := n - 1
		var cum float64
		for i := 0; i < n; i++ {
			cum += distSq[i]
			if cum >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	sort.Slice(centroids, func(i, j int) bool { return lexLess(centroids[i], centroids[j]) })

	assign := make([]int, n)
	dim := points[0].Dim()
	for iter := 0; iter < cfg.maxIters; iter++ {
		for i, p := range points {
			best, bestDist := 0, math.MaxFloat64
			for k, c := range centroids {
				if d := float64(vecmath.Norm2(vecmath.Sub(p, c))); d < bestDist {
					bestDist, best = d, k
				}
			}
			assign[i] = best
		}

		sums := make([]vecmath.Vec[N], numParts)
		counts := make([]int, numParts)
		for k := range sums {
			sums[k] = vecmath.Zero[N](dim)
		}
		for i, p := range points {
			k := assign[i]
			sums[k] = vecmath.Add(sums[k], p)
			counts[k]++
		}

		newCentroids := make([]vecmath.Vec[N], numParts)
		var delta float64
		for k := 0; k < numParts; k++ {
			if counts[k] == 0 {
				newCentroids[k] = centroids[k]
				continue
			}
			newCentroids[k] = vecmath.Scale(sums[k], N(1.0/float64(counts[k])))
			delta += float64(vecmath.Norm2(vecmath.Sub(newCentroids[k], centroids[k])))
		}
		centroids = newCentroids
		if delta < cfg.eps*cfg.eps {
			break
		}
	}

	for i := range points {
		parts[i] = initPart + assign[i]
	}
}
