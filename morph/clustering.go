package morph

import (
	svan2d "github.com/dorjeduck/svan2d"

	"github.com/dorjeduck/svan2d/internal/assign"
	"github.com/dorjeduck/svan2d/internal/kmeans"
)

// clusteringPairs partitions the larger outline into as many clusters as
// the smaller one has points, then assigns each cluster to a point of the
// smaller outline. One member per cluster moves; the rest grow out of
// (or shrink into) the same anchor. Equal sizes need no clusters and fall
// through to the optimal assignment.
func clusteringPairs(src, dst svan2d.VertexLoop, opts Options) []Pair {
	n, m := src.Len(), dst.Len()
	switch {
	case n == m:
		return hungarianPairs(src, dst)
	case n < m:
		return clusterGrow(src, dst, opts)
	}
	return flipPairs(clusterGrow(dst, src, opts))
}

// clusterGrow assumes small.Len() < big.Len().
func clusterGrow(small, big svan2d.VertexLoop, opts Options) []Pair {
	k := small.Len()

	assignments := kmeans.Cluster(big.Points, kmeans.Config{
		K:             k,
		MaxIterations: opts.MaxIterations,
		Balanced:      opts.Balanced,
		Seed:          opts.Seed,
	})

	members := make([][]int, k)
	for j, c := range assignments {
		members[c] = append(members[c], j)
	}

	// Centroid per cluster; empty clusters borrow the outline centroid
	// so the assignment matrix stays well defined.
	fallback := big.Centroid()
	centroids := make([]svan2d.Point, k)
	for c, idxs := range members {
		if len(idxs) == 0 {
			centroids[c] = fallback
			continue
		}
		var sum svan2d.Point
		for _, j := range idxs {
			sum = sum.Add(big.Points[j])
		}
		centroids[c] = sum.Div(float64(len(idxs)))
	}

	clusterToSmall := assign.Solve(costMatrix(centroids, small.Points))

	pairs := make([]Pair, 0, big.Len())
	for c, idxs := range members {
		i := clusterToSmall[c]
		anchor := small.Points[i]
		if len(idxs) == 0 {
			// The anchor point has no counterpart; let it fade toward
			// the nearest point of the larger outline.
			j := nearestIdx(big, anchor)
			pairs = append(pairs, Pair{
				Src: anchor, Dst: big.Points[j],
				SrcIdx: i, DstIdx: j,
				Role: RoleDisappear,
			})
			continue
		}
		mover := idxs[0]
		for _, j := range idxs[1:] {
			if anchor.Distance(big.Points[j]) < anchor.Distance(big.Points[mover]) {
				mover = j
			}
		}
		for _, j := range idxs {
			role := RoleAppear
			if j == mover {
				role = RoleMove
			}
			pairs = append(pairs, Pair{
				Src: anchor, Dst: big.Points[j],
				SrcIdx: i, DstIdx: j,
				Role: role,
			})
		}
	}
	return pairs
}
