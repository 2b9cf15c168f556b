package state

import (
	svan2d "github.com/dorjeduck/svan2d"
)

// Type identifies the concrete type carried by a Value.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeFloat
	TypePoint
	TypeColor
	TypeLoop
	TypeString
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypePoint:
		return "point"
	case TypeColor:
		return "color"
	case TypeLoop:
		return "loop"
	case TypeString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the closed set of attribute types.
// Attribute access and interpolation go through Value so the frame
// sampler never needs reflection or per-variant knowledge.
type Value struct {
	typ  Type
	num  float64
	pt   svan2d.Point
	col  svan2d.RGBA
	loop svan2d.VertexLoop
	str  string
}

// Float wraps a scalar attribute value.
func Float(v float64) Value { return Value{typ: TypeFloat, num: v} }

// Point wraps a 2D point attribute value.
func Point(p svan2d.Point) Value { return Value{typ: TypePoint, pt: p} }

// Color wraps a color attribute value.
func Color(c svan2d.RGBA) Value { return Value{typ: TypeColor, col: c} }

// Loop wraps a vertex-loop attribute value.
func Loop(l svan2d.VertexLoop) Value { return Value{typ: TypeLoop, loop: l} }

// Str wraps a string attribute value.
func Str(s string) Value { return Value{typ: TypeString, str: s} }

// Type returns the carried type, or TypeInvalid for the zero Value.
func (v Value) Type() Type { return v.typ }

// IsZero reports whether v is the zero Value (no attribute).
func (v Value) IsZero() bool { return v.typ == TypeInvalid }

// Float returns the scalar payload (zero if v is not a float).
func (v Value) Float() float64 { return v.num }

// Point returns the point payload (zero if v is not a point).
func (v Value) Point() svan2d.Point { return v.pt }

// Color returns the color payload (zero if v is not a color).
func (v Value) Color() svan2d.RGBA { return v.col }

// Loop returns the vertex-loop payload (zero if v is not a loop).
func (v Value) Loop() svan2d.VertexLoop { return v.loop }

// Str returns the string payload (empty if v is not a string).
func (v Value) Str() string { return v.str }

// Lerp interpolates between two values at eased progress t using the
// per-type interpolation rule: numeric lerp for scalars, component-wise
// lerp for points and colors, a midpoint step for strings. Loops step as
// well; continuous loop geometry is the morph engine's job, not Lerp's.
// Mismatched types step at the midpoint.
func Lerp(a, b Value, t float64) Value {
	if a.typ != b.typ {
		return stepValue(a, b, t)
	}
	switch a.typ {
	case TypeFloat:
		return Float(a.num + (b.num-a.num)*t)
	case TypePoint:
		return Point(a.pt.Lerp(b.pt, t))
	case TypeColor:
		return Color(a.col.Lerp(b.col, t))
	default:
		return stepValue(a, b, t)
	}
}

func stepValue(a, b Value, t float64) Value {
	if t < 0.5 {
		return a
	}
	return b
}
