// Package state defines the closed set of renderable state variants and
// the capability query through which the frame sampler and drawing
// collaborators inspect them.
//
// A State is an immutable snapshot of a renderable thing's attributes.
// Variants differ in their attribute sets (a circle has "radius", a
// polygon has "vertices"); the State interface exposes names, typed
// values and per-attribute default easings so callers never depend on
// the concrete variant.
package state

import (
	svan2d "github.com/dorjeduck/svan2d"
)

// Kind identifies a state variant.
type Kind string

const (
	KindCircle  Kind = "circle"
	KindRect    Kind = "rect"
	KindEllipse Kind = "ellipse"
	KindPolygon Kind = "polygon"
	KindText    Kind = "text"
)

// Common attribute names shared by all shape variants.
const (
	AttrPos         = "pos"
	AttrOpacity     = "opacity"
	AttrFill        = "fill"
	AttrStroke      = "stroke"
	AttrStrokeWidth = "stroke_width"
	AttrRotation    = "rotation"
	AttrScale       = "scale"
)

// Variant-specific attribute names.
const (
	AttrRadius   = "radius"
	AttrWidth    = "width"
	AttrHeight   = "height"
	AttrRadiusX  = "rx"
	AttrRadiusY  = "ry"
	AttrVertices = "vertices"
	AttrContent  = "content"
	AttrSize     = "size"
)

// State is an immutable attribute snapshot. Implementations are value
// types; With returns a modified copy and never mutates the receiver.
type State interface {
	// Kind identifies the variant.
	Kind() Kind

	// AttrNames lists the attributes this variant exposes, in a fixed
	// order (common attributes first, then variant-specific ones).
	AttrNames() []string

	// Attr returns the named attribute's value, or ok=false when this
	// variant does not expose the attribute.
	Attr(name string) (Value, bool)

	// With returns a copy with the named attribute replaced. Unknown
	// names and type mismatches leave the state unchanged.
	With(name string, v Value) State

	// DefaultEasing returns the easing name this variant declares for
	// the attribute, or ok=false when the variant declares none.
	DefaultEasing(name string) (string, bool)
}

// VertexSource is implemented by variants whose outline can be expressed
// as a vertex loop in world space. Morphing is defined exactly between
// two VertexSources; everything else is incompatible.
type VertexSource interface {
	State

	// VertexLoop returns the world-space outline of the shape.
	VertexLoop() svan2d.VertexLoop
}

// Defaults is the per-kind default-easing table consulted as the last
// resolution tier before the linear fallback. It is an explicit value
// passed into the resolver, not a process-wide registry, so callers can
// swap or extend defaults per element.
type Defaults struct {
	easing map[Kind]map[string]string
}

// NewDefaults returns an empty table: variant declarations (see
// DefaultEasing on each variant) apply until overridden via Set.
func NewDefaults() *Defaults {
	return &Defaults{easing: make(map[Kind]map[string]string)}
}

// Set declares the default easing name for an attribute of a kind.
func (d *Defaults) Set(kind Kind, attr, easingName string) {
	m := d.easing[kind]
	if m == nil {
		m = make(map[string]string)
		d.easing[kind] = m
	}
	m[attr] = easingName
}

// Lookup returns the default easing name for an attribute, preferring an
// entry in the table over the variant's own declaration.
func (d *Defaults) Lookup(s State, attr string) (string, bool) {
	if d != nil {
		if name, ok := d.easing[s.Kind()][attr]; ok {
			return name, true
		}
	}
	return s.DefaultEasing(attr)
}
