package state

import (
	"math"

	svan2d "github.com/dorjeduck/svan2d"
)

// OutlineSegments is the vertex resolution used when a parametric shape
// (circle, ellipse) is flattened to a vertex loop for morphing.
const OutlineSegments = 32

// common holds the attributes shared by every shape variant.
type common struct {
	Pos         svan2d.Point
	Opacity     float64
	Fill        svan2d.RGBA
	Stroke      svan2d.RGBA
	StrokeWidth float64
	Rotation    float64
	Scale       float64
}

func defaultCommon(pos svan2d.Point) common {
	return common{
		Pos:     pos,
		Opacity: 1,
		Fill:    svan2d.Black,
		Stroke:  svan2d.Transparent,
		Scale:   1,
	}
}

var commonAttrNames = []string{
	AttrPos, AttrOpacity, AttrFill, AttrStroke,
	AttrStrokeWidth, AttrRotation, AttrScale,
}

func (c common) attr(name string) (Value, bool) {
	switch name {
	case AttrPos:
		return Point(c.Pos), true
	case AttrOpacity:
		return Float(c.Opacity), true
	case AttrFill:
		return Color(c.Fill), true
	case AttrStroke:
		return Color(c.Stroke), true
	case AttrStrokeWidth:
		return Float(c.StrokeWidth), true
	case AttrRotation:
		return Float(c.Rotation), true
	case AttrScale:
		return Float(c.Scale), true
	}
	return Value{}, false
}

// set assigns a common attribute in place. Returns false for unknown
// names or payload type mismatches (the attribute is left untouched).
func (c *common) set(name string, v Value) bool {
	switch name {
	case AttrPos:
		if v.Type() != TypePoint {
			return false
		}
		c.Pos = v.Point()
	case AttrOpacity:
		if v.Type() != TypeFloat {
			return false
		}
		c.Opacity = v.Float()
	case AttrFill:
		if v.Type() != TypeColor {
			return false
		}
		c.Fill = v.Color()
	case AttrStroke:
		if v.Type() != TypeColor {
			return false
		}
		c.Stroke = v.Color()
	case AttrStrokeWidth:
		if v.Type() != TypeFloat {
			return false
		}
		c.StrokeWidth = v.Float()
	case AttrRotation:
		if v.Type() != TypeFloat {
			return false
		}
		c.Rotation = v.Float()
	case AttrScale:
		if v.Type() != TypeFloat {
			return false
		}
		c.Scale = v.Float()
	default:
		return false
	}
	return true
}

func appendNames(variant ...string) []string {
	names := make([]string, 0, len(commonAttrNames)+len(variant))
	names = append(names, commonAttrNames...)
	names = append(names, variant...)
	return names
}

// ellipseLoop flattens an axis-aligned ellipse centered at pos into a
// closed loop of OutlineSegments world-space vertices, starting at the
// rightmost point and winding counter-clockwise.
func ellipseLoop(pos svan2d.Point, rx, ry float64) svan2d.VertexLoop {
	points := make([]svan2d.Point, OutlineSegments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / OutlineSegments
		points[i] = svan2d.Pt(pos.X+rx*math.Cos(a), pos.Y+ry*math.Sin(a))
	}
	return svan2d.NewLoop(points...)
}

// Circle is a circle described by its center and radius.
type Circle struct {
	common
	Radius float64
}

// NewCircle creates an opaque black circle.
func NewCircle(pos svan2d.Point, radius float64) Circle {
	return Circle{common: defaultCommon(pos), Radius: radius}
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) AttrNames() []string { return appendNames(AttrRadius) }

func (c Circle) Attr(name string) (Value, bool) {
	if name == AttrRadius {
		return Float(c.Radius), true
	}
	return c.common.attr(name)
}

func (c Circle) With(name string, v Value) State {
	if name == AttrRadius && v.Type() == TypeFloat {
		c.Radius = v.Float()
		return c
	}
	c.common.set(name, v)
	return c
}

func (c Circle) DefaultEasing(name string) (string, bool) { return "", false }

// VertexLoop flattens the circle at OutlineSegments resolution.
func (c Circle) VertexLoop() svan2d.VertexLoop {
	return ellipseLoop(c.Pos, c.Radius, c.Radius)
}

// Ellipse is an axis-aligned ellipse described by its center and radii.
type Ellipse struct {
	common
	RadiusX float64
	RadiusY float64
}

// NewEllipse creates an opaque black ellipse.
func NewEllipse(pos svan2d.Point, rx, ry float64) Ellipse {
	return Ellipse{common: defaultCommon(pos), RadiusX: rx, RadiusY: ry}
}

func (e Ellipse) Kind() Kind { return KindEllipse }

func (e Ellipse) AttrNames() []string { return appendNames(AttrRadiusX, AttrRadiusY) }

func (e Ellipse) Attr(name string) (Value, bool) {
	switch name {
	case AttrRadiusX:
		return Float(e.RadiusX), true
	case AttrRadiusY:
		return Float(e.RadiusY), true
	}
	return e.common.attr(name)
}

func (e Ellipse) With(name string, v Value) State {
	switch {
	case name == AttrRadiusX && v.Type() == TypeFloat:
		e.RadiusX = v.Float()
	case name == AttrRadiusY && v.Type() == TypeFloat:
		e.RadiusY = v.Float()
	default:
		e.common.set(name, v)
	}
	return e
}

func (e Ellipse) DefaultEasing(name string) (string, bool) { return "", false }

// VertexLoop flattens the ellipse at OutlineSegments resolution.
func (e Ellipse) VertexLoop() svan2d.VertexLoop {
	return ellipseLoop(e.Pos, e.RadiusX, e.RadiusY)
}

// Rect is an axis-aligned rectangle described by its center, width and
// height.
type Rect struct {
	common
	Width  float64
	Height float64
}

// NewRect creates an opaque black rectangle.
func NewRect(pos svan2d.Point, width, height float64) Rect {
	return Rect{common: defaultCommon(pos), Width: width, Height: height}
}

func (r Rect) Kind() Kind { return KindRect }

func (r Rect) AttrNames() []string { return appendNames(AttrWidth, AttrHeight) }

func (r Rect) Attr(name string) (Value, bool) {
	switch name {
	case AttrWidth:
		return Float(r.Width), true
	case AttrHeight:
		return Float(r.Height), true
	}
	return r.common.attr(name)
}

func (r Rect) With(name string, v Value) State {
	switch {
	case name == AttrWidth && v.Type() == TypeFloat:
		r.Width = v.Float()
	case name == AttrHeight && v.Type() == TypeFloat:
		r.Height = v.Float()
	default:
		r.common.set(name, v)
	}
	return r
}

func (r Rect) DefaultEasing(name string) (string, bool) { return "", false }

// VertexLoop returns the four corners, starting at the top-left and
// winding clockwise in screen coordinates.
func (r Rect) VertexLoop() svan2d.VertexLoop {
	hw, hh := r.Width/2, r.Height/2
	return svan2d.NewLoop(
		svan2d.Pt(r.Pos.X-hw, r.Pos.Y-hh),
		svan2d.Pt(r.Pos.X+hw, r.Pos.Y-hh),
		svan2d.Pt(r.Pos.X+hw, r.Pos.Y+hh),
		svan2d.Pt(r.Pos.X-hw, r.Pos.Y+hh),
	)
}

// Polygon is an arbitrary outline given directly as a world-space vertex
// loop. It is also the variant the frame sampler produces for in-between
// frames of a morph segment.
type Polygon struct {
	common
	Vertices svan2d.VertexLoop
}

// NewPolygon creates an opaque black polygon from world-space points.
// Pos is informational (set to the loop centroid); the vertices carry
// the geometry.
func NewPolygon(loop svan2d.VertexLoop) Polygon {
	return Polygon{common: defaultCommon(loop.Centroid()), Vertices: loop}
}

func (p Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) AttrNames() []string { return appendNames(AttrVertices) }

func (p Polygon) Attr(name string) (Value, bool) {
	if name == AttrVertices {
		return Loop(p.Vertices), true
	}
	return p.common.attr(name)
}

func (p Polygon) With(name string, v Value) State {
	if name == AttrVertices && v.Type() == TypeLoop {
		p.Vertices = v.Loop()
		return p
	}
	p.common.set(name, v)
	return p
}

func (p Polygon) DefaultEasing(name string) (string, bool) { return "", false }

// VertexLoop returns the polygon's outline.
func (p Polygon) VertexLoop() svan2d.VertexLoop { return p.Vertices }
