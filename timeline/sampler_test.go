package timeline

import (
	"errors"
	"math"
	"reflect"
	"testing"

	svan2d "github.com/dorjeduck/svan2d"

	"github.com/dorjeduck/svan2d/morph"
	"github.com/dorjeduck/svan2d/state"
)

func mustNormalize(t *testing.T, entries []Entry) *Timeline {
	t.Helper()
	tl, err := Normalize(entries)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return tl
}

func mustSampler(t *testing.T, tl *Timeline, opts ...SamplerOption) *Sampler {
	t.Helper()
	s, err := NewSampler(tl, opts...)
	if err != nil {
		t.Fatalf("NewSampler: %v", err)
	}
	return s
}

func opacity(t *testing.T, s state.State) float64 {
	t.Helper()
	v, ok := s.Attr(state.AttrOpacity)
	if !ok {
		t.Fatal("state has no opacity")
	}
	return v.Float()
}

// opacitySegment is a circle fading in over the full axis, with an
// optional transition on the first keystate.
func opacitySegment(t *testing.T, tr *Transition) *Timeline {
	t.Helper()
	from := state.NewCircle(svan2d.Pt(0, 0), 1).With(state.AttrOpacity, state.Float(0))
	to := state.NewCircle(svan2d.Pt(0, 0), 1).With(state.AttrOpacity, state.Float(1))
	return mustNormalize(t, []Entry{Key(0, from, tr), At(1, to)})
}

func TestCircleRadiusMidpoint(t *testing.T) {
	tl := mustNormalize(t, []Entry{
		At(0, state.NewCircle(svan2d.Pt(0, 0), 10)),
		At(1, state.NewCircle(svan2d.Pt(0, 0), 20)),
	})
	s := mustSampler(t, tl)

	got := s.SampleState(0.5)
	if got.Kind() != state.KindCircle {
		t.Fatalf("kind = %v, want circle", got.Kind())
	}
	if r := got.(state.Circle).Radius; math.Abs(r-15) > epsilon {
		t.Errorf("radius = %v, want 15", r)
	}
}

func TestBoundaryExact(t *testing.T) {
	first := state.NewCircle(svan2d.Pt(1, 2), 10)
	last := state.NewCircle(svan2d.Pt(3, 4), 20)
	tl := mustNormalize(t, []Entry{At(0.2, first), At(0.8, last)})
	s := mustSampler(t, tl)

	tests := []struct {
		name string
		t    float64
		want state.State
	}{
		{"before span", 0.0, first},
		{"at first keystate", 0.2, first},
		{"at last keystate", 0.8, last},
		{"after span", 1.0, last},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SampleState(tt.t)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SampleState(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSamplingIdempotent(t *testing.T) {
	tl := mustNormalize(t, []Entry{
		At(0, state.NewCircle(svan2d.Pt(0, 0), 10)),
		At(1, state.NewRect(svan2d.Pt(5, 5), 4, 2)),
	})
	s := mustSampler(t, tl)

	for _, tv := range []float64{0, 0.3, 0.5, 0.7, 1} {
		a := s.SampleState(tv)
		b := s.SampleState(tv)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("sampling at %v is not idempotent", tv)
		}
	}
}

func TestEasingTierWalk(t *testing.T) {
	defaults := state.NewDefaults()
	defaults.Set(state.KindCircle, state.AttrOpacity, "in_quad")
	transition := &Transition{Easing: map[string]string{state.AttrOpacity: "in_cubic"}}
	element := map[string]string{state.AttrOpacity: "out_quad"}

	tests := []struct {
		name string
		tr   *Transition
		opts []SamplerOption
		want float64
	}{
		{"no declarations fall back to linear", nil, nil, 0.5},
		{"state default", nil, []SamplerOption{WithDefaults(defaults)}, 0.25},
		{"transition beats default", transition,
			[]SamplerOption{WithDefaults(defaults)}, 0.125},
		{"element map beats transition", transition,
			[]SamplerOption{WithDefaults(defaults), WithAttributeEasing(element)}, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSampler(t, opacitySegment(t, tt.tr), tt.opts...)
			if got := opacity(t, s.SampleState(0.5)); math.Abs(got-tt.want) > epsilon {
				t.Errorf("opacity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlayBeatsEverything(t *testing.T) {
	// Tier 1: the overlay segment's own easing wins over every other
	// declaration, and the overlay's values replace the keystate values.
	overlay, err := NewAttributeTimeline(
		OverlayKeyframe{Time: 0, Value: state.Float(0), Easing: "step"},
		OverlayKeyframe{Time: 1, Value: state.Float(1)},
	)
	if err != nil {
		t.Fatalf("NewAttributeTimeline: %v", err)
	}

	transition := &Transition{Easing: map[string]string{state.AttrOpacity: "in_cubic"}}
	s := mustSampler(t, opacitySegment(t, transition),
		WithAttributeEasing(map[string]string{state.AttrOpacity: "out_quad"}),
		WithOverlay(state.AttrOpacity, overlay),
	)

	if got := opacity(t, s.SampleState(0.4)); got != 0 {
		t.Errorf("opacity before step = %v, want 0", got)
	}
	if got := opacity(t, s.SampleState(0.6)); got != 1 {
		t.Errorf("opacity after step = %v, want 1", got)
	}
}

func TestOverlayNotRealigned(t *testing.T) {
	// Overlay keyframes are sampled at the element's raw time even when
	// the main timeline covers a narrower span.
	overlay, err := NewAttributeTimeline(
		OverlayKeyframe{Time: 0, Value: state.Float(1)},
		OverlayKeyframe{Time: 0.5, Value: state.Float(0.5)},
		OverlayKeyframe{Time: 1, Value: state.Float(1)},
	)
	if err != nil {
		t.Fatalf("NewAttributeTimeline: %v", err)
	}

	tl := mustNormalize(t, []Entry{
		At(0.2, state.NewCircle(svan2d.Pt(0, 0), 1)),
		At(0.8, state.NewCircle(svan2d.Pt(0, 0), 1)),
	})
	s := mustSampler(t, tl, WithOverlay(state.AttrOpacity, overlay))

	// Raw t=0.2 sits 40% into the overlay's first segment.
	if got := opacity(t, s.SampleState(0.2)); math.Abs(got-0.8) > epsilon {
		t.Errorf("opacity = %v, want 0.8", got)
	}
}

func TestOverlayClampsOutsideItsRange(t *testing.T) {
	overlay, err := NewAttributeTimeline(
		OverlayKeyframe{Time: 0.4, Value: state.Float(0.3)},
		OverlayKeyframe{Time: 0.6, Value: state.Float(0.9)},
	)
	if err != nil {
		t.Fatalf("NewAttributeTimeline: %v", err)
	}

	s := mustSampler(t, opacitySegment(t, nil), WithOverlay(state.AttrOpacity, overlay))

	if got := opacity(t, s.SampleState(0.1)); math.Abs(got-0.3) > epsilon {
		t.Errorf("before overlay range: opacity = %v, want 0.3", got)
	}
	if got := opacity(t, s.SampleState(0.9)); math.Abs(got-0.9) > epsilon {
		t.Errorf("after overlay range: opacity = %v, want 0.9", got)
	}
}

func TestPathFuncOverridesPosition(t *testing.T) {
	arc := func(from, to svan2d.Point, p float64) svan2d.Point {
		straight := from.Lerp(to, p)
		return svan2d.Pt(straight.X, straight.Y+100*p*(1-p))
	}
	tl := mustNormalize(t, []Entry{
		Key(0, state.NewCircle(svan2d.Pt(0, 0), 1), &Transition{Path: arc}),
		At(1, state.NewCircle(svan2d.Pt(10, 0), 1)),
	})
	s := mustSampler(t, tl)

	got := s.SampleState(0.5).(state.Circle).Pos
	want := svan2d.Pt(5, 25)
	if got.Distance(want) > epsilon {
		t.Errorf("pos = %v, want %v", got, want)
	}

	// Endpoints still land exactly on the keystates.
	if pos := s.SampleState(1).(state.Circle).Pos; pos.Distance(svan2d.Pt(10, 0)) > epsilon {
		t.Errorf("end pos = %v, want (10, 0)", pos)
	}
}

func TestMorphSegmentProducesPolygon(t *testing.T) {
	from := state.NewCircle(svan2d.Pt(0, 0), 1).With(state.AttrOpacity, state.Float(1))
	to := state.NewRect(svan2d.Pt(4, 0), 2, 2).With(state.AttrOpacity, state.Float(0))
	tl := mustNormalize(t, []Entry{At(0, from), At(1, to)})
	s := mustSampler(t, tl)

	if got := s.SampleState(0); got.Kind() != state.KindCircle {
		t.Errorf("kind at 0 = %v, want circle", got.Kind())
	}
	if got := s.SampleState(1); got.Kind() != state.KindRect {
		t.Errorf("kind at 1 = %v, want rect", got.Kind())
	}

	mid := s.SampleState(0.5)
	if mid.Kind() != state.KindPolygon {
		t.Fatalf("kind at 0.5 = %v, want polygon", mid.Kind())
	}
	if got := opacity(t, mid); math.Abs(got-0.5) > epsilon {
		t.Errorf("opacity carried across morph = %v, want 0.5", got)
	}
}

func TestSameCountPolygonsMorphPointwise(t *testing.T) {
	a := state.NewPolygon(svan2d.NewLoop(svan2d.Pt(0, 0), svan2d.Pt(2, 0), svan2d.Pt(1, 2)))
	b := state.NewPolygon(svan2d.NewLoop(svan2d.Pt(10, 0), svan2d.Pt(12, 0), svan2d.Pt(11, 2)))
	tl := mustNormalize(t, []Entry{At(0, a), At(1, b)})
	s := mustSampler(t, tl)

	mid := s.SampleState(0.5)
	if mid.Kind() != state.KindPolygon {
		t.Fatalf("kind = %v, want polygon", mid.Kind())
	}
	loop := mid.(state.Polygon).Vertices
	if loop.Len() != 3 {
		t.Fatalf("vertex count = %d, want 3", loop.Len())
	}
	for i, p := range loop.Points {
		want := a.Vertices.Points[i].Lerp(b.Vertices.Points[i], 0.5)
		if p.Distance(want) > epsilon {
			t.Errorf("vertex %d = %v, want %v", i, p, want)
		}
	}
}

func TestPerSegmentMorphOverride(t *testing.T) {
	from := state.NewCircle(svan2d.Pt(0, 0), 1)
	to := state.NewRect(svan2d.Pt(4, 0), 2, 2)
	tl := mustNormalize(t, []Entry{
		Key(0, from, &Transition{Morph: &morph.Options{Strategy: morph.StrategySimple}}),
		At(1, to),
	})
	s := mustSampler(t, tl)

	// The simple strategy keeps both outlines alive mid-morph, so the
	// in-between polygon carries every point of both.
	mid := s.SampleState(0.5).(state.Polygon)
	want := state.OutlineSegments + 4
	if got := mid.Vertices.Len(); got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
}

func TestMappingComputedOncePerSegment(t *testing.T) {
	tl := mustNormalize(t, []Entry{
		At(0, state.NewCircle(svan2d.Pt(0, 0), 1)),
		At(1, state.NewRect(svan2d.Pt(4, 0), 2, 2)),
	})
	s := mustSampler(t, tl)

	for _, tv := range []float64{0.25, 0.5, 0.75} {
		s.SampleState(tv)
	}
	stats := s.mappings.Stats()
	if stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
	if stats.Hits != 2 {
		t.Errorf("hits = %d, want 2", stats.Hits)
	}
}

func TestIncompatibleSegment(t *testing.T) {
	tl := mustNormalize(t, []Entry{
		At(0, state.NewCircle(svan2d.Pt(0, 0), 1)),
		At(0.5, state.NewText(svan2d.Pt(0, 0), "a", 12)),
		At(1, state.NewText(svan2d.Pt(0, 0), "b", 12)),
	})

	s, err := NewSampler(tl)
	if err == nil {
		t.Fatal("expected an incompatibility error")
	}
	if !errors.Is(err, morph.ErrIncompatibleMorph) {
		t.Fatalf("error %v does not wrap ErrIncompatibleMorph", err)
	}
	if s == nil {
		t.Fatal("sampler should still be usable")
	}

	// The bad segment cuts over at its midpoint.
	if got := s.SampleState(0.2); got.Kind() != state.KindCircle {
		t.Errorf("kind at 0.2 = %v, want circle", got.Kind())
	}
	if got := s.SampleState(0.3); got.Kind() != state.KindText {
		t.Errorf("kind at 0.3 = %v, want text", got.Kind())
	}

	// The rest of the timeline samples normally.
	if got := s.SampleState(0.6).(state.Text).Content; got != "a" {
		t.Errorf("content at 0.6 = %q, want %q", got, "a")
	}
	if got := s.SampleState(0.9).(state.Text).Content; got != "b" {
		t.Errorf("content at 0.9 = %q, want %q", got, "b")
	}
}

func TestSingleKeystateTimeline(t *testing.T) {
	c := state.NewCircle(svan2d.Pt(1, 1), 5)
	tl := mustNormalize(t, []Entry{At(0.3, c)})
	s := mustSampler(t, tl)

	for _, tv := range []float64{0, 0.3, 1} {
		got := s.SampleState(tv)
		if !reflect.DeepEqual(got, state.State(c)) {
			t.Errorf("SampleState(%v) = %+v, want the keystate", tv, got)
		}
	}
}

func TestDegenerateSegmentSamplesFromState(t *testing.T) {
	// Normalize rejects duplicate times, but a sampler built over a
	// hand-made degenerate timeline must not divide by zero.
	tl := &Timeline{keystates: []Keystate{
		{Time: 0.5, State: state.NewCircle(svan2d.Pt(0, 0), 1)},
		{Time: 0.5, State: state.NewCircle(svan2d.Pt(0, 0), 9)},
	}}
	s := mustSampler(t, tl)

	if got := s.SampleState(0.5).(state.Circle).Radius; got != 1 {
		t.Errorf("radius = %v, want the from state's 1", got)
	}
}
