package timeline

import (
	"fmt"

	svan2d "github.com/dorjeduck/svan2d"

	"github.com/dorjeduck/svan2d/cache"
	"github.com/dorjeduck/svan2d/easing"
	"github.com/dorjeduck/svan2d/morph"
	"github.com/dorjeduck/svan2d/state"
)

// Sampler produces concrete states at arbitrary times from a normalized
// timeline plus element-level overrides. Safe for concurrent use once
// constructed.
type Sampler struct {
	tl       *Timeline
	resolver Resolver
	overlays map[string]*AttributeTimeline
	morph    morph.Options

	segments []segmentInfo
	mappings *cache.Sharded[int, *morph.Mapping]
}

// segmentInfo is the construction-time classification of one segment.
type segmentInfo struct {
	morphs       bool
	incompatible bool
	opts         morph.Options
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithCatalog replaces the easing catalog (built-ins by default).
func WithCatalog(c *easing.Catalog) SamplerOption {
	return func(s *Sampler) { s.resolver.Catalog = c }
}

// WithDefaults supplies the per-kind default-easing table.
func WithDefaults(d *state.Defaults) SamplerOption {
	return func(s *Sampler) { s.resolver.Defaults = d }
}

// WithAttributeEasing sets the element-level attribute easing map, the
// second resolution tier.
func WithAttributeEasing(m map[string]string) SamplerOption {
	return func(s *Sampler) { s.resolver.Element = m }
}

// WithOverlay attaches an attribute overlay. While present, the overlay
// alone drives the attribute; the main keystates no longer contribute
// to it.
func WithOverlay(attr string, at *AttributeTimeline) SamplerOption {
	return func(s *Sampler) { s.overlays[attr] = at }
}

// WithMorphOptions sets the element-level morph options. Per-segment
// Transition.Morph overrides still win.
func WithMorphOptions(o morph.Options) SamplerOption {
	return func(s *Sampler) { s.morph = o }
}

// NewSampler builds a sampler for a normalized timeline.
//
// Segments whose endpoint states cannot be morphed into each other (one
// side has an outline, the other does not) are reported through a
// morph.ErrIncompatibleMorph error naming the first such segment. The
// returned sampler is still usable: the offending segments cut from one
// state to the other at their midpoint, all others sample normally.
func NewSampler(tl *Timeline, opts ...SamplerOption) (*Sampler, error) {
	s := &Sampler{
		tl:       tl,
		overlays: make(map[string]*AttributeTimeline),
		morph:    morph.DefaultOptions(),
		mappings: cache.NewSharded[int, *morph.Mapping](cache.IntHasher),
	}
	s.resolver.Catalog = easing.NewCatalog()
	for _, o := range opts {
		o(s)
	}

	var err error
	ks := tl.keystates
	s.segments = make([]segmentInfo, len(ks)-1)
	for i := range s.segments {
		info := classifySegment(ks[i].State, ks[i+1].State)
		info.opts = s.morph
		if tr := ks[i].Trans; tr != nil && tr.Morph != nil {
			info.opts = *tr.Morph
		}
		s.segments[i] = info
		if info.incompatible && err == nil {
			err = fmt.Errorf("%w: segment %d (%s to %s)", morph.ErrIncompatibleMorph,
				i, ks[i].State.Kind(), ks[i+1].State.Kind())
		}
	}
	return s, err
}

// classifySegment decides how a segment interpolates. Two outlines morph
// when their variants or vertex counts differ (same-variant polygons
// always morph: their geometry has no parametric attributes). An outline
// facing a state without one is incompatible. Everything else
// interpolates attribute by attribute.
func classifySegment(from, to state.State) segmentInfo {
	vf, okF := from.(state.VertexSource)
	vt, okT := to.(state.VertexSource)
	if okF != okT {
		return segmentInfo{incompatible: true}
	}
	if !okF {
		return segmentInfo{}
	}
	lf, lt := vf.VertexLoop(), vt.VertexLoop()
	if lf.Len() == 0 || lt.Len() == 0 {
		return segmentInfo{incompatible: true}
	}
	if from.Kind() != to.Kind() || lf.Len() != lt.Len() || from.Kind() == state.KindPolygon {
		return segmentInfo{morphs: true}
	}
	return segmentInfo{}
}

// SampleState returns the element's state at time t.
//
// Times strictly outside the timeline's span return the nearest boundary
// state verbatim. Inside the span, the enclosing segment is located by
// binary search and interpolated at its local progress; zero-progress
// and full-progress samples return the keystate's own state (with any
// overlays applied), so keystate times reproduce their states exactly.
func (s *Sampler) SampleState(t float64) state.State {
	ks := s.tl.keystates
	start, end := s.tl.Span()
	if t < start {
		return ks[0].State
	}
	if t > end {
		return ks[len(ks)-1].State
	}
	if len(ks) == 1 {
		return s.applyOverlays(ks[0].State, ks[0].Trans, t)
	}

	i := s.tl.bracket(t)
	from, to := ks[i], ks[i+1]
	var p float64
	if to.Time > from.Time {
		p = (t - from.Time) / (to.Time - from.Time)
	}
	return s.sampleSegment(i, from, to, p, t)
}

func (s *Sampler) sampleSegment(i int, from, to Keystate, p, t float64) state.State {
	// Exact keystates at segment boundaries. This also covers
	// degenerate zero-length segments, which sample at progress 0.
	if p == 0 {
		return s.applyOverlays(from.State, from.Trans, t)
	}
	if p == 1 {
		return s.applyOverlays(to.State, to.Trans, t)
	}

	info := s.segments[i]
	if info.incompatible {
		// No interpolation is defined; cut over at the midpoint.
		if p < 0.5 {
			return from.State
		}
		return to.State
	}
	if info.morphs {
		return s.sampleMorph(i, from, to, p, t)
	}

	out := from.State
	for _, attr := range from.State.AttrNames() {
		va, _ := from.State.Attr(attr)
		vb, ok := to.State.Attr(attr)
		if !ok {
			vb = va
		}
		out = out.With(attr, s.sampleAttr(attr, va, vb, from.Trans, from.State, p, t))
	}
	return out
}

// sampleAttr interpolates one attribute. An overlay, when present,
// replaces the keystate values entirely; otherwise the segment values
// are eased and blended, with the position attribute optionally routed
// through a path function.
func (s *Sampler) sampleAttr(attr string, va, vb state.Value, tr *Transition, from state.State, p, t float64) state.Value {
	if at, ok := s.overlays[attr]; ok {
		k0, k1, op := at.Bracket(t)
		fn := s.resolver.Resolve(k0.Easing, attr, tr, from)
		return state.Lerp(k0.Value, k1.Value, fn(op))
	}
	fn := s.resolver.Resolve("", attr, tr, from)
	ep := fn(p)
	if attr == state.AttrPos && tr != nil && tr.Path != nil {
		return state.Point(tr.Path(va.Point(), vb.Point(), ep))
	}
	return state.Lerp(va, vb, ep)
}

// applyOverlays replaces every overlaid attribute the state exposes with
// its overlay sample at t.
func (s *Sampler) applyOverlays(st state.State, tr *Transition, t float64) state.State {
	for attr, at := range s.overlays {
		if _, ok := st.Attr(attr); !ok {
			continue
		}
		k0, k1, op := at.Bracket(t)
		fn := s.resolver.Resolve(k0.Easing, attr, tr, st)
		st = st.With(attr, state.Lerp(k0.Value, k1.Value, fn(op)))
	}
	return st
}

// morphAttrs are the attributes carried across a morph segment; geometry
// comes from the correspondence instead.
var morphAttrs = []string{
	state.AttrOpacity, state.AttrFill, state.AttrStroke,
	state.AttrStrokeWidth, state.AttrRotation, state.AttrScale,
}

// sampleMorph produces the in-between polygon of a morph segment. The
// correspondence is computed once per segment and cached; its progress
// is eased through the vertices attribute's resolution chain.
func (s *Sampler) sampleMorph(i int, from, to Keystate, p, t float64) state.State {
	vf := from.State.(state.VertexSource)
	vt := to.State.(state.VertexSource)

	m := s.mappings.GetOrCompute(i, func() *morph.Mapping {
		mp, err := morph.Correspond(vf.VertexLoop(), vt.VertexLoop(), s.segments[i].opts)
		if err != nil {
			svan2d.Logger().Warn("correspondence failed", "segment", i, "error", err)
			return nil
		}
		return mp
	})
	if m == nil {
		if p < 0.5 {
			return from.State
		}
		return to.State
	}

	fn := s.resolver.Resolve("", state.AttrVertices, from.Trans, from.State)
	out := state.State(state.NewPolygon(morph.InterpolateLoop(m, fn(p))))

	for _, attr := range morphAttrs {
		va, ok := from.State.Attr(attr)
		if !ok {
			continue
		}
		vb, ok := to.State.Attr(attr)
		if !ok {
			vb = va
		}
		out = out.With(attr, s.sampleAttr(attr, va, vb, from.Trans, from.State, p, t))
	}
	return out
}
