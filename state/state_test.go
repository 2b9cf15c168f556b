package state

import (
	"math"
	"testing"

	svan2d "github.com/dorjeduck/svan2d"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAttrRoundTrip(t *testing.T) {
	states := []State{
		NewCircle(svan2d.Pt(1, 2), 10),
		NewRect(svan2d.Pt(0, 0), 4, 2),
		NewEllipse(svan2d.Pt(-1, 5), 3, 6),
		NewPolygon(svan2d.NewLoop(svan2d.Pt(0, 0), svan2d.Pt(1, 0), svan2d.Pt(0, 1))),
		NewText(svan2d.Pt(2, 2), "hi", 12),
	}
	for _, s := range states {
		t.Run(string(s.Kind()), func(t *testing.T) {
			for _, name := range s.AttrNames() {
				if _, ok := s.Attr(name); !ok {
					t.Errorf("declared attribute %q not readable", name)
				}
			}
			if _, ok := s.Attr("no_such_attr"); ok {
				t.Error("undeclared attribute readable")
			}
		})
	}
}

func TestWithReturnsCopy(t *testing.T) {
	c := NewCircle(svan2d.Pt(0, 0), 10)
	modified := c.With(AttrRadius, Float(20))

	if got := modified.(Circle).Radius; got != 20 {
		t.Errorf("modified radius = %v, want 20", got)
	}
	if c.Radius != 10 {
		t.Error("With mutated its receiver")
	}
}

func TestWithRejectsMismatchedType(t *testing.T) {
	c := NewCircle(svan2d.Pt(0, 0), 10)
	same := c.With(AttrRadius, Str("nope"))
	if got := same.(Circle).Radius; got != 10 {
		t.Errorf("type-mismatched With changed radius to %v", got)
	}
}

func TestValueLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		p    float64
		want Value
	}{
		{"float", Float(10), Float(20), 0.5, Float(15)},
		{"point", Point(svan2d.Pt(0, 0)), Point(svan2d.Pt(4, 8)), 0.25, Point(svan2d.Pt(1, 2))},
		{"string steps before midpoint", Str("a"), Str("b"), 0.4, Str("a")},
		{"string steps at midpoint", Str("a"), Str("b"), 0.5, Str("b")},
		{"mismatch steps", Float(1), Str("b"), 0.9, Str("b")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.p)
			if got.Type() != tt.want.Type() {
				t.Fatalf("type = %v, want %v", got.Type(), tt.want.Type())
			}
			switch tt.want.Type() {
			case TypeFloat:
				if !approxEqual(got.Float(), tt.want.Float()) {
					t.Errorf("got %v, want %v", got.Float(), tt.want.Float())
				}
			case TypePoint:
				if got.Point().Distance(tt.want.Point()) > epsilon {
					t.Errorf("got %v, want %v", got.Point(), tt.want.Point())
				}
			case TypeString:
				if got.Str() != tt.want.Str() {
					t.Errorf("got %q, want %q", got.Str(), tt.want.Str())
				}
			}
		})
	}
}

func TestVertexSources(t *testing.T) {
	var _ VertexSource = NewCircle(svan2d.Pt(0, 0), 1)
	var _ VertexSource = NewRect(svan2d.Pt(0, 0), 1, 1)
	var _ VertexSource = NewEllipse(svan2d.Pt(0, 0), 1, 2)
	var _ VertexSource = NewPolygon(svan2d.NewLoop(svan2d.Pt(0, 0)))

	if _, ok := State(NewText(svan2d.Pt(0, 0), "x", 10)).(VertexSource); ok {
		t.Error("text states must not expose an outline")
	}
}

func TestCircleOutline(t *testing.T) {
	c := NewCircle(svan2d.Pt(3, 4), 2)
	loop := c.VertexLoop()

	if loop.Len() != OutlineSegments {
		t.Fatalf("outline has %d points, want %d", loop.Len(), OutlineSegments)
	}
	for i, p := range loop.Points {
		if d := p.Distance(svan2d.Pt(3, 4)); !approxEqual(d, 2) {
			t.Fatalf("point %d at distance %v from center, want 2", i, d)
		}
	}
}

func TestRectOutline(t *testing.T) {
	r := NewRect(svan2d.Pt(0, 0), 4, 2)
	loop := r.VertexLoop()

	if loop.Len() != 4 {
		t.Fatalf("outline has %d points, want 4", loop.Len())
	}
	want := []svan2d.Point{
		svan2d.Pt(-2, -1), svan2d.Pt(2, -1), svan2d.Pt(2, 1), svan2d.Pt(-2, 1),
	}
	for i, w := range want {
		if loop.Points[i].Distance(w) > epsilon {
			t.Errorf("corner %d = %v, want %v", i, loop.Points[i], w)
		}
	}
}

func TestDefaultsLookup(t *testing.T) {
	text := NewText(svan2d.Pt(0, 0), "x", 10)
	circle := NewCircle(svan2d.Pt(0, 0), 1)

	var nilDefaults *Defaults
	if name, ok := nilDefaults.Lookup(text, AttrContent); !ok || name != "step" {
		t.Errorf("nil table should fall through to the variant: got %q, %v", name, ok)
	}
	if _, ok := nilDefaults.Lookup(circle, AttrRadius); ok {
		t.Error("circle declares no default for radius")
	}

	d := NewDefaults()
	d.Set(KindCircle, AttrRadius, "in_quad")
	if name, ok := d.Lookup(circle, AttrRadius); !ok || name != "in_quad" {
		t.Errorf("table entry not returned: got %q, %v", name, ok)
	}

	// A table entry beats the variant declaration.
	d.Set(KindText, AttrContent, "linear")
	if name, _ := d.Lookup(text, AttrContent); name != "linear" {
		t.Errorf("table should override the variant: got %q", name)
	}
}
