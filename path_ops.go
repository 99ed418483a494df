package ggview

import "math"

// Path operations for area calculation, winding number and containment
// testing. Arcs are measured through their cubic approximation.

// Area returns the signed area enclosed by the path.
// Positive for clockwise paths (y-down), negative for counter-clockwise.
// Uses the shoelace formula extended for curves (Green's theorem).
func (p *Path) Area() float64 {
	var area float64
	var current, start Point

	p.walk(func(elem PathElement) {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
		}
	})

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea computes the contribution of a cubic Bezier to the signed area.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// cubicSteps is the number of chords used to flatten a cubic when
// computing winding numbers.
const cubicSteps = 16

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point

	p.walk(func(elem PathElement) {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case CubicTo:
			prev := current
			for i := 1; i <= cubicSteps; i++ {
				next := cubicEval(current, e.Control1, e.Control2, e.Point, float64(i)/cubicSteps)
				winding += lineWinding(prev, next, pt)
				prev = next
			}
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
		}
	})

	return winding
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// cubicEval evaluates a cubic Bezier at parameter t.
func cubicEval(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// BoundingBox returns the axis-aligned bounds of all path points,
// including arc extents sampled along the curve.
func (p *Path) BoundingBox() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	bbox := Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
	var current Point
	p.walk(func(elem PathElement) {
		switch e := elem.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case CubicTo:
			for i := 1; i <= cubicSteps; i++ {
				bbox = expandBBox(bbox, cubicEval(current, e.Control1, e.Control2, e.Point, float64(i)/cubicSteps))
			}
			current = e.Point
		}
	})
	return bbox
}

func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Pt(math.Min(bbox.Min.X, pt.X), math.Min(bbox.Min.Y, pt.Y)),
		Max: Pt(math.Max(bbox.Max.X, pt.X), math.Max(bbox.Max.Y, pt.Y)),
	}
}
