package svan2d

// VertexLoop is an ordered, cyclic sequence of 2D points describing a
// shape outline. Start designates the canonical start index: two loops
// with the same points but different Start values trace the same outline
// beginning at a different vertex, which matters when interpolating
// between frames (a shifting start shows up as a visible seam jump).
//
// VertexLoop values are treated as immutable once built; all methods
// return new loops.
type VertexLoop struct {
	Points []Point
	Closed bool
	Start  int
}

// NewLoop creates a closed loop from points with Start = 0.
func NewLoop(points ...Point) VertexLoop {
	return VertexLoop{Points: points, Closed: true}
}

// Len returns the number of vertices in the loop.
func (l VertexLoop) Len() int {
	return len(l.Points)
}

// At returns the vertex at index i, wrapping cyclically.
func (l VertexLoop) At(i int) Point {
	n := len(l.Points)
	if n == 0 {
		return Point{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return l.Points[i]
}

// Centroid returns the arithmetic mean of the loop's vertices.
// An empty loop has centroid (0, 0).
func (l VertexLoop) Centroid() Point {
	if len(l.Points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range l.Points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(l.Points)))
}

// Rebased returns a loop with the same outline whose Points slice begins
// at the current canonical start and whose Start is 0. Normalizing the
// start this way lets two loops be compared vertex-by-vertex.
func (l VertexLoop) Rebased() VertexLoop {
	n := len(l.Points)
	if n == 0 || l.Start%n == 0 {
		return VertexLoop{Points: l.clonePoints(), Closed: l.Closed}
	}
	s := l.Start % n
	if s < 0 {
		s += n
	}
	points := make([]Point, 0, n)
	points = append(points, l.Points[s:]...)
	points = append(points, l.Points[:s]...)
	return VertexLoop{Points: points, Closed: l.Closed}
}

// WithStart returns a copy of the loop with its canonical start index set.
func (l VertexLoop) WithStart(start int) VertexLoop {
	return VertexLoop{Points: l.clonePoints(), Closed: l.Closed, Start: start}
}

// Clone returns a deep copy of the loop.
func (l VertexLoop) Clone() VertexLoop {
	return VertexLoop{Points: l.clonePoints(), Closed: l.Closed, Start: l.Start}
}

func (l VertexLoop) clonePoints() []Point {
	if l.Points == nil {
		return nil
	}
	points := make([]Point, len(l.Points))
	copy(points, l.Points)
	return points
}
