// Command ggviewdemo renders a side panel clipped with rounded left
// corners next to a square content area and writes it as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/orientation"
)

func main() {
	var (
		width   = flag.Int("width", 480, "image width")
		height  = flag.Int("height", 240, "image height")
		radius  = flag.Float64("radius", ggview.DefaultCornerRadius, "corner radius of the panel")
		output  = flag.String("output", "panel.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ggview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*width, *height, *radius, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Panel saved to %s (%dx%d)\n", *output, *width, *height)
}

func run(w, h int, radius float64, output string) error {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}), image.Point{}, draw.Src)

	// The panel hugs the content area on its right, so only its left
	// corners are rounded.
	split := float64(w) * 0.35
	content := fill(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	panel := ggview.Modify(
		fill(color.RGBA{R: 0x3b, G: 0x5b, B: 0x8c, A: 0xff}),
		ggview.RoundedCornersOnTheLeft(ggview.WithCornerRadius(radius)),
		orientation.OnRotatePlatform(func(o orientation.Orientation) {
			log.Printf("device rotated: %s", o)
		}),
	)

	ggview.Mount(panel)
	defer ggview.Unmount(panel)

	panel.Draw(canvas, ggview.NewRect(16, 16, split-16, float64(h)-32))
	content.Draw(canvas, ggview.NewRect(split, 16, float64(w)-split-16, float64(h)-32))

	return savePNG(canvas, output)
}

func fill(c color.Color) ggview.View {
	src := image.NewUniform(c)
	return ggview.ViewFunc(func(dst draw.Image, b ggview.Rect) {
		draw.Draw(dst, b.Image(), src, image.Point{}, draw.Src)
	})
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
