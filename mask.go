package ggview

import (
	"image"

	"golang.org/x/image/vector"
)

// Rasterize fills p with the non-zero rule into an alpha mask covering r.
// Path coordinates are in the same space as r. Pixels fully inside the
// path get alpha 255, pixels outside get 0, and edge pixels are
// anti-aliased.
func Rasterize(p *Path, r image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(r)
	if r.Empty() || p == nil || len(p.Elements()) == 0 {
		return mask
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	p.Translate(-float64(r.Min.X), -float64(r.Min.Y)).Flatten(z)
	z.Draw(mask, r, image.Opaque, image.Point{})
	return mask
}
