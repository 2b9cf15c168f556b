// Package kmeans provides seeded k-means clustering of 2D points with an
// optional balanced mode that caps cluster sizes.
package kmeans

import (
	"math"
	"math/rand"

	svan2d "github.com/dorjeduck/svan2d"
)

// Config controls a clustering run. A fixed Seed makes the run
// deterministic; MaxIterations bounds the refinement loop.
type Config struct {
	K             int
	MaxIterations int
	Balanced      bool
	Seed          int64
}

// Cluster partitions points into cfg.K clusters and returns the cluster
// index per point. K values outside [1, len(points)] are clamped; with
// K == len(points) every point is its own cluster.
func Cluster(points []svan2d.Point, cfg Config) []int {
	n := len(points)
	if n == 0 {
		return nil
	}
	k := cfg.K
	if k < 1 {
		k = 1
	}
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i % k
		}
		return idx
	}

	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 50
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	centroids := initialCentroids(points, k, rng)
	assignments := make([]int, n)

	for iter := 0; iter < maxIter; iter++ {
		var changed bool
		if cfg.Balanced {
			changed = assignBalanced(points, centroids, assignments)
		} else {
			changed = assignNearest(points, centroids, assignments)
		}
		if !changed && iter > 0 {
			break
		}
		recomputeCentroids(points, assignments, centroids)
	}

	return assignments
}

// initialCentroids samples k distinct points as starting centroids.
func initialCentroids(points []svan2d.Point, k int, rng *rand.Rand) []svan2d.Point {
	perm := rng.Perm(len(points))
	centroids := make([]svan2d.Point, k)
	for i := range centroids {
		centroids[i] = points[perm[i]]
	}
	return centroids
}

func assignNearest(points []svan2d.Point, centroids []svan2d.Point, assignments []int) bool {
	changed := false
	for i, p := range points {
		best := 0
		bestDist := math.Inf(1)
		for c, ct := range centroids {
			if d := p.Distance(ct); d < bestDist {
				bestDist = d
				best = c
			}
		}
		if assignments[i] != best {
			assignments[i] = best
			changed = true
		}
	}
	return changed
}

// assignBalanced assigns points to their nearest centroid subject to a
// per-cluster capacity of ceil(n/k). Points are processed in order of
// how much they prefer their best cluster over their second-best, so
// strongly attached points claim capacity first.
func assignBalanced(points []svan2d.Point, centroids []svan2d.Point, assignments []int) bool {
	n := len(points)
	k := len(centroids)
	capacity := (n + k - 1) / k

	type pref struct {
		point  int
		margin float64
	}
	prefs := make([]pref, n)
	for i, p := range points {
		d1, d2 := math.Inf(1), math.Inf(1)
		for _, ct := range centroids {
			d := p.Distance(ct)
			if d < d1 {
				d2 = d1
				d1 = d
			} else if d < d2 {
				d2 = d
			}
		}
		prefs[i] = pref{point: i, margin: d2 - d1}
	}
	// Largest margin first; stable order keeps the run deterministic.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && prefs[j].margin > prefs[j-1].margin; j-- {
			prefs[j], prefs[j-1] = prefs[j-1], prefs[j]
		}
	}

	counts := make([]int, k)
	changed := false
	for _, pr := range prefs {
		p := points[pr.point]
		best := -1
		bestDist := math.Inf(1)
		for c, ct := range centroids {
			if counts[c] >= capacity {
				continue
			}
			if d := p.Distance(ct); d < bestDist {
				bestDist = d
				best = c
			}
		}
		if best < 0 {
			best = 0 // all full; can only happen through rounding
		}
		counts[best]++
		if assignments[pr.point] != best {
			assignments[pr.point] = best
			changed = true
		}
	}
	return changed
}

func recomputeCentroids(points []svan2d.Point, assignments []int, centroids []svan2d.Point) {
	k := len(centroids)
	sums := make([]svan2d.Point, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c] = sums[c].Add(p)
		counts[c]++
	}
	for c := 0; c < k; c++ {
		if counts[c] > 0 {
			centroids[c] = sums[c].Div(float64(counts[c]))
		}
	}
}
