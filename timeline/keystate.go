// Package timeline normalizes keystate sequences over the [0, 1] time
// axis and samples concrete states from them.
//
// Construction is two-phased: Normalize resolves every keystate to an
// explicit, strictly increasing time (rejecting contradictions up
// front), and NewSampler layers element-level overrides on top of the
// resulting immutable Timeline. Sampling itself never fails.
package timeline

import (
	svan2d "github.com/dorjeduck/svan2d"

	"github.com/dorjeduck/svan2d/morph"
	"github.com/dorjeduck/svan2d/state"
)

// PathFunc computes a position along a custom path between two anchor
// positions. t is the eased segment progress; t=0 must yield from and
// t=1 must yield to for boundary exactness to hold.
type PathFunc func(from, to svan2d.Point, t float64) svan2d.Point

// Transition describes the segment leaving a keystate.
type Transition struct {
	// Easing maps attribute names to easing names for this segment.
	Easing map[string]string

	// Path overrides straight-line position interpolation. Ignored on
	// morph segments, where geometry comes from the correspondence.
	Path PathFunc

	// Morph overrides the element's morph options for this segment.
	Morph *morph.Options
}

// Keystate pins a state at a resolved time. Trans configures the
// outgoing segment and is nil for plain linear interpolation.
type Keystate struct {
	Time  float64
	State state.State
	Trans *Transition
}

// Entry is one timeline input: a state with an optional time anchor and
// an optional outgoing transition. Build entries with Auto, At, Key or
// AutoKey; Normalize resolves the unanchored ones.
type Entry struct {
	state    state.State
	time     float64
	anchored bool
	trans    *Transition
}

// Auto wraps a bare state; its time is distributed evenly within the
// surrounding gap during normalization.
func Auto(s state.State) Entry {
	return Entry{state: s}
}

// At anchors a state at an explicit time in [0, 1].
func At(t float64, s state.State) Entry {
	return Entry{state: s, time: t, anchored: true}
}

// Key anchors a state at an explicit time with an outgoing transition.
func Key(t float64, s state.State, tr *Transition) Entry {
	return Entry{state: s, time: t, anchored: true, trans: tr}
}

// AutoKey wraps an unanchored state with an outgoing transition.
func AutoKey(s state.State, tr *Transition) Entry {
	return Entry{state: s, trans: tr}
}
