// Package ggview provides clip shapes and view modifiers for a retained
// view tree drawn with the image/draw model.
//
// # Overview
//
// The main piece is [RoundedLeft], a rectangle outline whose two left-hand
// corners are quarter-circle arcs and whose right-hand corners stay square.
// It is meant for side panels that sit flush against a neighbour on their
// right.
//
// # Quick Start
//
//	import "github.com/gogpu/ggview"
//
//	panel := ggview.ViewFunc(func(dst draw.Image, b ggview.Rect) {
//	    draw.Draw(dst, b.Image(), image.NewUniform(color.White), image.Point{}, draw.Src)
//	})
//
//	// Clip with the default 5 unit radius
//	v := ggview.Modify(panel, ggview.RoundedCornersOnTheLeft())
//	v.Draw(canvas, ggview.NewRect(20, 20, 200, 120))
//
// Device rotation is handled by the orientation sub-package.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing angles turn clockwise on screen
package ggview

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
