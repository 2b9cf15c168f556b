package timeline

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTimeline reports a keystate sequence that cannot be resolved
// to strictly increasing times. Invalid timelines are rejected at
// construction and never silently repaired.
var ErrInvalidTimeline = errors.New("timeline: invalid timeline")

// Normalize resolves a keystate sequence to explicit times.
//
// Anchored entries keep their times but are reordered by time: the
// sorted anchors occupy the anchored slots of the sequence, so anchors
// given out of order are accepted. Runs of unanchored entries are
// distributed evenly within the gap they sit in. A leading run spreads
// from 0 up to the first anchor, a trailing run from the last anchor up
// to 1, and a fully unanchored sequence spans [0, 1]. A timeline whose
// last anchor sits before 1 simply stops there. A single unanchored
// state expands to identical keystates at 0 and 1.
func Normalize(entries []Entry) (*Timeline, error) {
	n := len(entries)
	if n == 0 {
		return nil, fmt.Errorf("%w: no keystates", ErrInvalidTimeline)
	}

	if n == 1 && !entries[0].anchored {
		e := entries[0]
		return &Timeline{keystates: []Keystate{
			{Time: 0, State: e.state, Trans: e.trans},
			{Time: 1, State: e.state},
		}}, nil
	}

	entries = sortAnchors(entries)

	times := make([]float64, n)
	prev := -1 // index of the previous anchor
	for i, e := range entries {
		if !e.anchored {
			continue
		}
		if e.time < 0 || e.time > 1 {
			return nil, fmt.Errorf("%w: anchor %g at index %d outside [0, 1]",
				ErrInvalidTimeline, e.time, i)
		}
		if prev >= 0 && e.time <= times[prev] {
			return nil, fmt.Errorf("%w: duplicate anchor time %g at indices %d, %d",
				ErrInvalidTimeline, e.time, prev, i)
		}
		times[i] = e.time

		if gap := i - prev - 1; gap > 0 {
			if prev < 0 {
				// Leading run: spread from 0 so the run plus the anchor
				// are evenly spaced.
				for r := 0; r < gap; r++ {
					times[r] = e.time * float64(r) / float64(gap)
				}
			} else {
				lo, hi := times[prev], e.time
				for r := 1; r <= gap; r++ {
					times[prev+r] = lo + (hi-lo)*float64(r)/float64(gap+1)
				}
			}
		}
		prev = i
	}

	switch {
	case prev < 0:
		// No anchors at all: span the whole axis.
		for i := range times {
			times[i] = float64(i) / float64(n-1)
		}
	case prev < n-1:
		// Trailing run: spread from the last anchor up to 1.
		lo := times[prev]
		gap := n - 1 - prev
		for r := 1; r <= gap; r++ {
			times[prev+r] = lo + (1-lo)*float64(r)/float64(gap)
		}
	}

	// Degenerate anchors (an anchor at 0 preceded by unanchored states,
	// or at 1 followed by them) collapse resolved times onto each other.
	for i := 1; i < n; i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("%w: resolved times %g and %g at indices %d, %d are not increasing",
				ErrInvalidTimeline, times[i-1], times[i], i-1, i)
		}
	}

	keystates := make([]Keystate, n)
	for i, e := range entries {
		keystates[i] = Keystate{Time: times[i], State: e.state, Trans: e.trans}
	}
	return &Timeline{keystates: keystates}, nil
}

// sortAnchors reorders the anchored entries by time, each carrying its
// state and transition with it. Unanchored entries keep their slots, so
// the runs they form stay bounded by the same neighboring anchor slots.
// The input slice is not modified.
func sortAnchors(entries []Entry) []Entry {
	slots := make([]int, 0, len(entries))
	for i, e := range entries {
		if e.anchored {
			slots = append(slots, i)
		}
	}
	if sort.SliceIsSorted(slots, func(a, b int) bool {
		return entries[slots[a]].time < entries[slots[b]].time
	}) {
		return entries
	}

	anchors := make([]Entry, len(slots))
	for k, i := range slots {
		anchors[k] = entries[i]
	}
	sort.SliceStable(anchors, func(a, b int) bool { return anchors[a].time < anchors[b].time })

	out := append([]Entry(nil), entries...)
	for k, i := range slots {
		out[i] = anchors[k]
	}
	return out
}
