package timeline

import (
	"fmt"
	"sort"

	"github.com/dorjeduck/svan2d/state"
)

// OverlayKeyframe pins an attribute value at a time. Easing names the
// easing of the segment leading to the next keyframe; empty means the
// usual resolution order applies.
type OverlayKeyframe struct {
	Time   float64
	Value  state.Value
	Easing string
}

// AttributeTimeline overrides a single attribute of an element with its
// own keyframes. It is sampled at the element's raw time and is not
// aligned with the main timeline in any way: outside its keyframe range
// it clamps to the nearest keyframe.
type AttributeTimeline struct {
	keyframes []OverlayKeyframe
}

// NewAttributeTimeline builds an overlay from keyframes with strictly
// increasing times.
func NewAttributeTimeline(keyframes ...OverlayKeyframe) (*AttributeTimeline, error) {
	if len(keyframes) == 0 {
		return nil, fmt.Errorf("%w: overlay without keyframes", ErrInvalidTimeline)
	}
	for i := 1; i < len(keyframes); i++ {
		if keyframes[i].Time <= keyframes[i-1].Time {
			return nil, fmt.Errorf("%w: overlay keyframe times %g and %g are not increasing",
				ErrInvalidTimeline, keyframes[i-1].Time, keyframes[i].Time)
		}
	}
	kf := make([]OverlayKeyframe, len(keyframes))
	copy(kf, keyframes)
	return &AttributeTimeline{keyframes: kf}, nil
}

// Bracket returns the keyframes enclosing t and the linear progress
// between them. Times outside the keyframe range clamp to the nearest
// keyframe, returned as a degenerate bracket with progress 0.
func (at *AttributeTimeline) Bracket(t float64) (from, to OverlayKeyframe, p float64) {
	kf := at.keyframes
	if t <= kf[0].Time {
		return kf[0], kf[0], 0
	}
	last := kf[len(kf)-1]
	if t >= last.Time {
		return last, last, 0
	}
	i := sort.Search(len(kf), func(i int) bool { return kf[i].Time > t }) - 1
	from, to = kf[i], kf[i+1]
	return from, to, (t - from.Time) / (to.Time - from.Time)
}
