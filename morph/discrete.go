package morph

import (
	"math"

	svan2d "github.com/dorjeduck/svan2d"
)

// discretePairs pairs points by index after rotating the target outline
// so its start vertex sits at roughly the same angle as the source's.
// Index-aligned points move continuously; whichever outline is longer
// has its remainder snap in or out at the midpoint, with no co-location.
func discretePairs(src, dst svan2d.VertexLoop) []Pair {
	d := alignStart(src, dst)
	n, m := src.Len(), d.Len()
	k := n
	if m < k {
		k = m
	}

	pairs := make([]Pair, 0, n+m-k)
	for i := 0; i < k; i++ {
		pairs = append(pairs, Pair{
			Src: src.Points[i], Dst: d.Points[i],
			SrcIdx: i, DstIdx: i,
			Role: RoleMove,
		})
	}
	for i := k; i < n; i++ {
		pairs = append(pairs, Pair{
			Src: src.Points[i], Dst: src.Points[i],
			SrcIdx: i, DstIdx: -1,
			Role: RoleSnapOut,
		})
	}
	for j := k; j < m; j++ {
		// Anchor on the nearest source point so ordering stays sane.
		pairs = append(pairs, Pair{
			Src: d.Points[j], Dst: d.Points[j],
			SrcIdx: nearestIdx(src, d.Points[j]), DstIdx: j,
			Role: RoleSnapIn,
		})
	}
	return pairs
}

// alignStart rotates dst's start to the vertex whose angle about the
// target centroid is closest to the angle of src's start vertex about
// the source centroid. Index-based pairing then connects points on
// roughly matching sides of the two outlines.
func alignStart(src, dst svan2d.VertexLoop) svan2d.VertexLoop {
	want := src.Centroid().AngleTo(src.At(0))
	center := dst.Centroid()

	best := 0
	bestDiff := math.Inf(1)
	for j := 0; j < dst.Len(); j++ {
		diff := math.Abs(angleDiff(center.AngleTo(dst.At(j)), want))
		if diff < bestDiff {
			best = j
			bestDiff = diff
		}
	}
	return dst.WithStart(best).Rebased()
}

// angleDiff normalizes a-b into (-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
