package ggview

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func solid(c color.Color) View {
	src := image.NewUniform(c)
	return ViewFunc(func(dst draw.Image, b Rect) {
		draw.Draw(dst, b.Image(), src, image.Point{}, draw.Src)
	})
}

func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)
	return img
}

func TestRoundedCornersOnTheLeft_Draw(t *testing.T) {
	canvas := newCanvas(120, 70)
	v := Modify(solid(blue), RoundedCornersOnTheLeft(WithCornerRadius(10)))
	v.Draw(canvas, NewRect(10, 10, 100, 50))

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"outside bounds", 5, 5, red},
		{"outside right", 115, 30, red},
		{"top-left corner", 10, 10, red},
		{"bottom-left corner", 10, 59, red},
		{"top-right corner", 109, 10, blue},
		{"bottom-right corner", 109, 59, blue},
		{"center", 60, 35, blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canvas.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRoundedCornersOnTheLeft_DefaultRadius(t *testing.T) {
	canvas := newCanvas(60, 40)
	Modify(solid(blue), RoundedCornersOnTheLeft()).Draw(canvas, NewRect(0, 0, 60, 40))

	// With r=5 the corner pixel is outside the arc, (3,3) is inside.
	if got := canvas.RGBAAt(0, 0); got != red {
		t.Errorf("corner pixel = %v, want %v", got, red)
	}
	if got := canvas.RGBAAt(3, 3); got != blue {
		t.Errorf("pixel (3,3) = %v, want %v", got, blue)
	}
}

func TestWithCornerRadius_Negative(t *testing.T) {
	o := defaultShapeOptions()
	WithCornerRadius(-3)(&o)
	if o.cornerRadius != 0 {
		t.Errorf("cornerRadius = %v, want 0", o.cornerRadius)
	}
}

func TestClipShape_OutsideCanvas(t *testing.T) {
	canvas := newCanvas(10, 10)
	called := false
	v := Modify(ViewFunc(func(draw.Image, Rect) { called = true }), ClipShape(RectShape{}))
	v.Draw(canvas, NewRect(50, 50, 10, 10))

	if called {
		t.Error("inner view drawn for bounds outside the canvas")
	}
}

func TestClipShape_RectShapeMatchesUnclipped(t *testing.T) {
	clipped := newCanvas(40, 40)
	plain := newCanvas(40, 40)
	bounds := NewRect(5, 5, 30, 30)

	Modify(solid(blue), ClipShape(RectShape{})).Draw(clipped, bounds)
	solid(blue).Draw(plain, bounds)

	if !bytes.Equal(clipped.Pix, plain.Pix) {
		t.Error("rectangle clip changed the output")
	}
}

type lifecycleView struct {
	View
	mounted, unmounted int
}

func (v *lifecycleView) Mount()   { v.mounted++ }
func (v *lifecycleView) Unmount() { v.unmounted++ }

func TestModify_ForwardsLifecycle(t *testing.T) {
	inner := &lifecycleView{View: solid(blue)}
	v := Modify(inner, RoundedCornersOnTheLeft(), nil, ClipShape(RectShape{}))

	Mount(v)
	Unmount(v)

	if inner.mounted != 1 || inner.unmounted != 1 {
		t.Errorf("mounted=%d unmounted=%d, want 1 and 1", inner.mounted, inner.unmounted)
	}

	// Views without a lifecycle are ignored.
	Mount(solid(red))
	Unmount(solid(red))
}

func TestModify_Order(t *testing.T) {
	var order []string
	tag := func(name string) Modifier {
		return func(v View) View {
			return ViewFunc(func(dst draw.Image, b Rect) {
				order = append(order, name)
				v.Draw(dst, b)
			})
		}
	}

	Modify(ViewFunc(func(draw.Image, Rect) {}), tag("inner"), tag("outer")).
		Draw(newCanvas(1, 1), NewRect(0, 0, 1, 1))

	if strings.Join(order, ",") != "outer,inner" {
		t.Errorf("draw order = %v, want [outer inner]", order)
	}
}
