package morph

import (
	"sort"

	svan2d "github.com/dorjeduck/svan2d"
)

// Role classifies how a pair behaves over the course of a morph.
type Role uint8

const (
	// RoleMove pairs a source point with a target point; the point
	// travels the whole segment and is always visible.
	RoleMove Role = iota

	// RoleAppear is a synthetic point that starts co-located with its
	// source anchor and becomes visible as the morph progresses.
	RoleAppear

	// RoleDisappear is a source point without a target of its own; it
	// travels toward its target anchor while fading out.
	RoleDisappear

	// RoleSnapIn is a target point that pops in at the midpoint without
	// travelling.
	RoleSnapIn

	// RoleSnapOut is a source point that pops out at the midpoint
	// without travelling.
	RoleSnapOut
)

// Pair is one correspondence of a mapping. SrcIdx and DstIdx are indices
// into the rebased source and target loops; a pair whose role has no real
// counterpart on one side carries the index of its anchor there, or -1
// when the role has none (snap-out targets, snap-in sources).
type Pair struct {
	Src    svan2d.Point
	Dst    svan2d.Point
	SrcIdx int
	DstIdx int
	Role   Role
}

// position returns the pair's point at progress p.
func (pr Pair) position(p float64) svan2d.Point {
	switch pr.Role {
	case RoleSnapIn:
		return pr.Dst
	case RoleSnapOut:
		return pr.Src
	}
	return pr.Src.Lerp(pr.Dst, p)
}

// visibility returns the pair's visibility weight at progress p. Pairs
// with zero visibility are omitted from interpolated loops, which is what
// makes p=0 reproduce the source exactly and p=1 the target.
func (pr Pair) visibility(p float64) float64 {
	switch pr.Role {
	case RoleAppear:
		return p
	case RoleDisappear:
		return 1 - p
	case RoleSnapIn:
		if p >= 0.5 {
			return 1
		}
		return 0
	case RoleSnapOut:
		if p < 0.5 {
			return 1
		}
		return 0
	}
	return 1
}

// Mapping is a total pairing between two outlines: every source index
// owns at least one pair that is visible at p=0, every target index one
// that is visible at p=1.
type Mapping struct {
	Pairs    []Pair
	Strategy Strategy
}

// InterpolateLoop evaluates the mapping at progress p and returns the
// in-between outline. Pairs are ordered by source index, so the loop
// starts at the point descending from the source's start vertex and
// winds the way the source does.
func InterpolateLoop(m *Mapping, p float64) svan2d.VertexLoop {
	points := make([]svan2d.Point, 0, len(m.Pairs))
	for _, pr := range m.Pairs {
		if pr.visibility(p) <= 0 {
			continue
		}
		points = append(points, pr.position(p))
	}
	return svan2d.NewLoop(points...)
}

// sortPairs orders pairs by source anchor, then target index, so the
// interpolated loop follows the source winding.
func sortPairs(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].SrcIdx != pairs[j].SrcIdx {
			return pairs[i].SrcIdx < pairs[j].SrcIdx
		}
		return pairs[i].DstIdx < pairs[j].DstIdx
	})
}

// flipPairs mirrors a mapping built in the opposite direction: sides
// swap, appearing points become disappearing ones and vice versa.
func flipPairs(pairs []Pair) []Pair {
	for i, pr := range pairs {
		pr.Src, pr.Dst = pr.Dst, pr.Src
		pr.SrcIdx, pr.DstIdx = pr.DstIdx, pr.SrcIdx
		switch pr.Role {
		case RoleAppear:
			pr.Role = RoleDisappear
		case RoleDisappear:
			pr.Role = RoleAppear
		case RoleSnapIn:
			pr.Role = RoleSnapOut
		case RoleSnapOut:
			pr.Role = RoleSnapIn
		}
		pairs[i] = pr
	}
	return pairs
}

// nearestIdx returns the index of the loop point closest to p.
func nearestIdx(l svan2d.VertexLoop, p svan2d.Point) int {
	best := 0
	bestDist := -1.0
	for i, q := range l.Points {
		d := p.Distance(q)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func costMatrix(src, dst []svan2d.Point) [][]float64 {
	cost := make([][]float64, len(src))
	for i, s := range src {
		row := make([]float64, len(dst))
		for j, d := range dst {
			row[j] = s.Distance(d)
		}
		cost[i] = row
	}
	return cost
}
