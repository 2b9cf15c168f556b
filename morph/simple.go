package morph

import (
	svan2d "github.com/dorjeduck/svan2d"
)

// simplePairs builds no correspondence at all: the source outline
// shrinks into its own centroid while the target grows out of its own.
// Works for any pair of outlines, so it doubles as the fallback for
// unknown strategies.
func simplePairs(src, dst svan2d.VertexLoop) []Pair {
	srcCenter := src.Centroid()
	dstCenter := dst.Centroid()

	pairs := make([]Pair, 0, src.Len()+dst.Len())
	for i, p := range src.Points {
		pairs = append(pairs, Pair{
			Src: p, Dst: srcCenter,
			SrcIdx: i, DstIdx: -1,
			Role: RoleDisappear,
		})
	}
	for j, q := range dst.Points {
		pairs = append(pairs, Pair{
			Src: dstCenter, Dst: q,
			SrcIdx: nearestIdx(src, q), DstIdx: j,
			Role: RoleAppear,
		})
	}
	return pairs
}
