package ggview

import (
	"image"
	"math"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// polar returns the point at angle a (radians) on the circle of radius r
// around c. Angles follow the y-down convention: 0 points right and
// increasing angles turn clockwise on screen.
func polar(c Point, r, a float64) Point {
	sin, cos := math.Sincos(a)
	return Point{X: c.X + r*cos, Y: c.Y + r*sin}
}

// Rect is an axis-aligned rectangle. Min is the top-left corner and Max
// the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from its origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// RectFromImage converts an integer image rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Min: Pt(float64(r.Min.X), float64(r.Min.Y)),
		Max: Pt(float64(r.Max.X), float64(r.Max.Y)),
	}
}

func (r Rect) MinX() float64 { return r.Min.X }
func (r Rect) MinY() float64 { return r.Min.Y }
func (r Rect) MaxX() float64 { return r.Max.X }
func (r Rect) MaxY() float64 { return r.Max.Y }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Inset returns the rectangle shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{Min: Pt(r.Min.X+d, r.Min.Y+d), Max: Pt(r.Max.X-d, r.Max.Y-d)}
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)),
		int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)),
		int(math.Ceil(r.Max.Y)),
	)
}
