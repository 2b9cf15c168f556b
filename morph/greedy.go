package morph

import (
	"sort"

	svan2d "github.com/dorjeduck/svan2d"
)

// greedyPairs repeatedly matches the globally closest unmatched pair of
// points until the smaller outline is exhausted, then attaches every
// leftover point of the larger outline to its nearest point on the
// smaller one. Quadratic and not optimal, but cheap and stable.
func greedyPairs(src, dst svan2d.VertexLoop) []Pair {
	n, m := src.Len(), dst.Len()

	type candidate struct {
		i, j int
		d    float64
	}
	candidates := make([]candidate, 0, n*m)
	for i, s := range src.Points {
		for j, d := range dst.Points {
			candidates = append(candidates, candidate{i: i, j: j, d: s.Distance(d)})
		}
	}
	// Ties break on indices so the result is deterministic.
	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.d != cb.d {
			return ca.d < cb.d
		}
		if ca.i != cb.i {
			return ca.i < cb.i
		}
		return ca.j < cb.j
	})

	srcUsed := make([]bool, n)
	dstUsed := make([]bool, m)
	want := n
	if m < n {
		want = m
	}

	pairs := make([]Pair, 0, n+m-want)
	matched := 0
	for _, c := range candidates {
		if matched == want {
			break
		}
		if srcUsed[c.i] || dstUsed[c.j] {
			continue
		}
		srcUsed[c.i] = true
		dstUsed[c.j] = true
		matched++
		pairs = append(pairs, Pair{
			Src: src.Points[c.i], Dst: dst.Points[c.j],
			SrcIdx: c.i, DstIdx: c.j,
			Role: RoleMove,
		})
	}

	for i, used := range srcUsed {
		if used {
			continue
		}
		j := nearestIdx(dst, src.Points[i])
		pairs = append(pairs, Pair{
			Src: src.Points[i], Dst: dst.Points[j],
			SrcIdx: i, DstIdx: j,
			Role: RoleDisappear,
		})
	}
	for j, used := range dstUsed {
		if used {
			continue
		}
		i := nearestIdx(src, dst.Points[j])
		pairs = append(pairs, Pair{
			Src: src.Points[i], Dst: dst.Points[j],
			SrcIdx: i, DstIdx: j,
			Role: RoleAppear,
		})
	}
	return pairs
}
