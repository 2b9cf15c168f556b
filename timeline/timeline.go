package timeline

import "sort"

// Timeline is an immutable normalized keystate sequence with strictly
// increasing times in [0, 1]. Build one with Normalize.
type Timeline struct {
	keystates []Keystate
}

// Len returns the number of keystates.
func (tl *Timeline) Len() int { return len(tl.keystates) }

// Keystates returns a copy of the resolved keystates in time order.
func (tl *Timeline) Keystates() []Keystate {
	out := make([]Keystate, len(tl.keystates))
	copy(out, tl.keystates)
	return out
}

// Span returns the first and last resolved times. A timeline whose last
// keystate sits before 1 ends there; sampling past the end clamps.
func (tl *Timeline) Span() (start, end float64) {
	return tl.keystates[0].Time, tl.keystates[len(tl.keystates)-1].Time
}

// bracket returns the index i of the segment [i, i+1] enclosing t,
// clamped to the valid segment range. Requires at least two keystates.
func (tl *Timeline) bracket(t float64) int {
	ks := tl.keystates
	i := sort.Search(len(ks), func(i int) bool { return ks[i].Time > t }) - 1
	if i < 0 {
		return 0
	}
	if i > len(ks)-2 {
		return len(ks) - 2
	}
	return i
}
