package ggview

import "math"

// DefaultCornerRadius is the corner radius used when none is given.
const DefaultCornerRadius = 5

// Shape produces an outline for a rectangle. Implementations must be pure:
// the same rectangle always yields an equal path, and a fresh one each call.
type Shape interface {
	Path(r Rect) *Path
}

// ShapeFunc adapts a function to the Shape interface.
type ShapeFunc func(r Rect) *Path

// Path calls f(r).
func (f ShapeFunc) Path(r Rect) *Path { return f(r) }

// RectShape outlines the rectangle itself.
type RectShape struct{}

// Path returns a clockwise rectangle contour starting at the top-right
// corner, the same start point RoundedLeft uses.
func (RectShape) Path(r Rect) *Path {
	p := NewPath()
	p.MoveTo(r.MaxX(), r.MinY())
	p.LineTo(r.MaxX(), r.MaxY())
	p.LineTo(r.MinX(), r.MaxY())
	p.LineTo(r.MinX(), r.MinY())
	p.LineTo(r.MaxX(), r.MinY())
	p.Close()
	return p
}

// RoundedLeft is a rectangle whose two left-hand corners are rounded with
// CornerRadius. The right-hand corners stay square, so a panel clipped
// with it sits flush against whatever is on its right.
//
// CornerRadius is not checked against the rectangle. When it exceeds half
// the height the two arcs overlap.
type RoundedLeft struct {
	CornerRadius float64
}

// NewRoundedLeft returns a RoundedLeft with DefaultCornerRadius.
func NewRoundedLeft() RoundedLeft {
	return RoundedLeft{CornerRadius: DefaultCornerRadius}
}

// Path returns the clockwise contour (y-down) starting at the top-right
// corner: down the right edge, left along the bottom, around the
// bottom-left arc, up the left edge, around the top-left arc and back
// along the top.
func (s RoundedLeft) Path(rect Rect) *Path {
	r := s.CornerRadius
	minXCorner := rect.MinX() + r
	minYCorner := rect.MinY() + r
	maxYCorner := rect.MaxY() - r

	p := NewPath()
	p.MoveTo(rect.MaxX(), rect.MinY())
	p.LineTo(rect.MaxX(), rect.MaxY())
	p.LineTo(minXCorner, rect.MaxY())
	p.Arc(minXCorner, maxYCorner, r, math.Pi/2, math.Pi)
	p.LineTo(rect.MinX(), minYCorner)
	p.Arc(minXCorner, minYCorner, r, math.Pi, 3*math.Pi/2)
	p.LineTo(rect.MaxX(), rect.MinY())
	p.Close()
	return p
}

// Degenerate reports whether the radius is too large for rect, in which
// case the left arcs overlap or run past the right edge.
func (s RoundedLeft) Degenerate(rect Rect) bool {
	return 2*s.CornerRadius > rect.Height() || s.CornerRadius > rect.Width()
}
