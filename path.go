package ggview

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc around Center from angle Start to angle End
// (radians, y-down). Point is the arc's end point.
type ArcTo struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
	Point  Point
}

func (ArcTo) isPathElement() {}

// StartPoint returns the point where the arc begins.
func (a ArcTo) StartPoint() Point {
	return polar(a.Center, a.Radius, a.Start)
}

// Sweep returns the swept angle in radians.
func (a ArcTo) Sweep() float64 {
	return a.End - a.Start
}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// pointEpsilon is the distance under which two points are treated as equal.
const pointEpsilon = 1e-9

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians).
// The arc always runs in the direction of increasing angle, which is
// clockwise on screen. If the path has no current point the arc starts a
// new subpath; if the current point is not the arc's start point a
// connecting line is added first. Arcs with a non-finite angle or radius
// are ignored.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	if !isFinite(angle1) || !isFinite(angle2) || !isFinite(r) {
		return
	}
	const twoPi = 2 * math.Pi
	if angle2 < angle1 {
		d := math.Mod(angle2-angle1, twoPi)
		if d < 0 {
			d += twoPi
		}
		angle2 = angle1 + d
	}

	c := Pt(cx, cy)
	from := polar(c, r, angle1)
	switch {
	case len(p.elements) == 0:
		p.MoveTo(from.X, from.Y)
	case p.current.Distance(from) > pointEpsilon:
		p.LineTo(from.X, from.Y)
	}

	to := polar(c, r, angle2)
	p.elements = append(p.elements, ArcTo{
		Center: c,
		Radius: r,
		Start:  angle1,
		End:    angle2,
		Point:  to,
	})
	p.current = to
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// StartPoint returns the starting point of the current subpath.
func (p *Path) StartPoint() Point {
	return p.start
}

// IsClosed reports whether the last subpath ends where it started.
func (p *Path) IsClosed() bool {
	if len(p.elements) == 0 {
		return false
	}
	if _, ok := p.elements[len(p.elements)-1].(Close); ok {
		return true
	}
	return p.current.Distance(p.start) <= pointEpsilon
}

// SegmentCount tallies the drawing elements of a path by kind.
type SegmentCount struct {
	Lines  int
	Arcs   int
	Cubics int
}

// Segments counts line, arc and cubic elements. Moves and closes are
// not counted.
func (p *Path) Segments() SegmentCount {
	var n SegmentCount
	for _, elem := range p.elements {
		switch elem.(type) {
		case LineTo:
			n.Lines++
		case ArcTo:
			n.Arcs++
		case CubicTo:
			n.Cubics++
		}
	}
	return n
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := Pt(dx, dy)
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := e.Point.Add(d)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := e.Point.Add(d)
			result.LineTo(pt.X, pt.Y)
		case ArcTo:
			e.Center = e.Center.Add(d)
			e.Point = e.Point.Add(d)
			result.elements = append(result.elements, e)
			result.current = e.Point
		case CubicTo:
			c1 := e.Control1.Add(d)
			c2 := e.Control2.Add(d)
			pt := e.Point.Add(d)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// PathSink receives a path reduced to moves, lines and cubic curves.
// *vector.Rasterizer from golang.org/x/image/vector satisfies it.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubeTo(x1, y1, x2, y2, x, y float32)
	ClosePath()
}

// Flatten replays the path into sink. Arcs are emitted as cubic Bezier
// segments spanning at most 90 degrees each.
func (p *Path) Flatten(sink PathSink) {
	p.walk(func(e PathElement) {
		switch e := e.(type) {
		case MoveTo:
			sink.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			sink.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			sink.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case Close:
			sink.ClosePath()
		}
	})
}

// walk calls fn for every element with arcs expanded into cubics.
func (p *Path) walk(fn func(PathElement)) {
	for _, elem := range p.elements {
		if a, ok := elem.(ArcTo); ok {
			arcToCubics(a, fn)
			continue
		}
		fn(elem)
	}
}

// arcToCubics splits an arc into segments of at most 90 degrees and
// approximates each with a cubic Bezier.
func arcToCubics(a ArcTo, fn func(PathElement)) {
	sweep := a.Sweep()
	if sweep == 0 {
		return
	}
	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(sweep)/maxAngle - pointEpsilon))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		a1 := a.Start + float64(i)*step
		fn(arcSegment(a.Center, a.Radius, a1, a1+step))
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// arcSegment approximates a single arc segment (at most 90 degrees).
// The control points sit 4/3*tan(sweep/4)*r along the end tangents, which
// puts the curve midpoint on the circle.
func arcSegment(c Point, r, a1, a2 float64) CubicTo {
	alpha := 4.0 / 3 * math.Tan((a2-a1)/4)

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	x1, y1 := c.X+r*cos1, c.Y+r*sin1
	x2, y2 := c.X+r*cos2, c.Y+r*sin2

	return CubicTo{
		Control1: Pt(x1-alpha*r*sin1, y1+alpha*r*cos1),
		Control2: Pt(x2+alpha*r*sin2, y2-alpha*r*cos2),
		Point:    Pt(x2, y2),
	}
}
