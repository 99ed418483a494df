package ggview

import (
	"image"
	"testing"
)

func TestRasterize_RoundedLeft(t *testing.T) {
	p := RoundedLeft{CornerRadius: 10}.Path(NewRect(0, 0, 100, 50))
	mask := Rasterize(p, image.Rect(0, 0, 100, 50))

	tests := []struct {
		name   string
		x, y   int
		opaque bool
	}{
		{"top-left corner", 0, 0, false},
		{"bottom-left corner", 0, 49, false},
		{"top-right corner", 99, 0, true},
		{"bottom-right corner", 99, 49, true},
		{"center", 50, 25, true},
		{"left edge middle", 0, 25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mask.AlphaAt(tt.x, tt.y).A
			if tt.opaque && a < 250 {
				t.Errorf("alpha at (%d,%d) = %d, want opaque", tt.x, tt.y, a)
			}
			if !tt.opaque && a > 5 {
				t.Errorf("alpha at (%d,%d) = %d, want transparent", tt.x, tt.y, a)
			}
		})
	}
}

func TestRasterize_OffsetBounds(t *testing.T) {
	p := RoundedLeft{CornerRadius: 10}.Path(NewRect(200, 100, 100, 50))
	r := image.Rect(200, 100, 300, 150)
	mask := Rasterize(p, r)

	if mask.Bounds() != r {
		t.Fatalf("Bounds() = %v, want %v", mask.Bounds(), r)
	}
	if a := mask.AlphaAt(200, 100).A; a > 5 {
		t.Errorf("top-left alpha = %d, want transparent", a)
	}
	if a := mask.AlphaAt(299, 100).A; a < 250 {
		t.Errorf("top-right alpha = %d, want opaque", a)
	}
}

func TestRasterize_Empty(t *testing.T) {
	mask := Rasterize(NewPath(), image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if a := mask.AlphaAt(x, y).A; a != 0 {
				t.Fatalf("alpha at (%d,%d) = %d, want 0", x, y, a)
			}
		}
	}

	if got := Rasterize(nil, image.Rectangle{}); !got.Bounds().Empty() {
		t.Errorf("Bounds() = %v, want empty", got.Bounds())
	}
}
