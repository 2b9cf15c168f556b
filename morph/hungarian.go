package morph

import (
	svan2d "github.com/dorjeduck/svan2d"

	"github.com/dorjeduck/svan2d/internal/assign"
)

// hungarianPairs matches the two outlines with a minimum-total-distance
// assignment. When the sizes differ, the smaller outline is padded by
// replicating its points; the replicas start co-located with their
// original and appear (or disappear) over the morph.
func hungarianPairs(src, dst svan2d.VertexLoop) []Pair {
	n, m := src.Len(), dst.Len()
	switch {
	case n < m:
		return growHungarian(src, dst)
	case n > m:
		return flipPairs(growHungarian(dst, src))
	}

	assignment := assign.Solve(costMatrix(src.Points, dst.Points))
	pairs := make([]Pair, n)
	for i, j := range assignment {
		pairs[i] = Pair{
			Src: src.Points[i], Dst: dst.Points[j],
			SrcIdx: i, DstIdx: j,
			Role: RoleMove,
		}
	}
	return pairs
}

// growHungarian assumes small.Len() < big.Len(). Rows beyond the real
// small points are replicas; their pairs appear instead of moving.
func growHungarian(small, big svan2d.VertexLoop) []Pair {
	n, m := small.Len(), big.Len()

	padded := make([]svan2d.Point, m)
	for r := range padded {
		padded[r] = small.Points[r%n]
	}

	assignment := assign.Solve(costMatrix(padded, big.Points))
	pairs := make([]Pair, m)
	for r, j := range assignment {
		role := RoleMove
		if r >= n {
			role = RoleAppear
		}
		pairs[r] = Pair{
			Src: padded[r], Dst: big.Points[j],
			SrcIdx: r % n, DstIdx: j,
			Role: role,
		}
	}
	return pairs
}
