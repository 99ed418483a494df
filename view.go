package ggview

import (
	"image"
	"image/draw"
	"log/slog"
)

// View is anything that can draw itself into a rectangle of an image.
type View interface {
	Draw(dst draw.Image, bounds Rect)
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(dst draw.Image, bounds Rect)

// Draw calls f(dst, bounds).
func (f ViewFunc) Draw(dst draw.Image, bounds Rect) { f(dst, bounds) }

// Lifecycle is implemented by views that need to know when the host
// attaches them to or detaches them from the visible tree.
type Lifecycle interface {
	Mount()
	Unmount()
}

// Mount calls v.Mount if v implements Lifecycle.
func Mount(v View) {
	if l, ok := v.(Lifecycle); ok {
		l.Mount()
	}
}

// Unmount calls v.Unmount if v implements Lifecycle.
func Unmount(v View) {
	if l, ok := v.(Lifecycle); ok {
		l.Unmount()
	}
}

// Modifier decorates a view and returns the decorated view.
type Modifier func(View) View

// Modify applies mods to v in order. The first modifier wraps v directly,
// so the last one ends up outermost.
func Modify(v View, mods ...Modifier) View {
	for _, m := range mods {
		if m != nil {
			v = m(v)
		}
	}
	return v
}

// ClipShape returns a modifier that clips a view to the outline s
// produces for the view's bounds.
func ClipShape(s Shape) Modifier {
	return func(v View) View {
		return &clipView{inner: v, shape: s}
	}
}

// RoundedCornersOnTheLeft clips a view so that its left-hand corners are
// rounded. The radius defaults to DefaultCornerRadius.
func RoundedCornersOnTheLeft(opts ...ShapeOption) Modifier {
	o := defaultShapeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	shape := RoundedLeft{CornerRadius: o.cornerRadius}
	return ClipShape(ShapeFunc(func(r Rect) *Path {
		if shape.Degenerate(r) {
			Logger().Warn("ggview: corner radius too large for bounds",
				slog.Float64("radius", shape.CornerRadius),
				slog.Float64("width", r.Width()),
				slog.Float64("height", r.Height()))
		}
		return shape.Path(r)
	}))
}

// clipView draws its inner view offscreen and composites it onto the
// destination through the shape's alpha mask.
type clipView struct {
	inner View
	shape Shape
}

func (c *clipView) Draw(dst draw.Image, bounds Rect) {
	area := bounds.Image().Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	layer := image.NewRGBA(area)
	c.inner.Draw(layer, bounds)

	mask := Rasterize(c.shape.Path(bounds), area)
	draw.DrawMask(dst, area, layer, area.Min, mask, area.Min, draw.Over)

	Logger().Debug("ggview: clipped view drawn",
		slog.String("area", area.String()))
}

func (c *clipView) Mount()   { Mount(c.inner) }
func (c *clipView) Unmount() { Unmount(c.inner) }
