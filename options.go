package ggview

// ShapeOption configures a shape-based view modifier.
// Use functional options to customize the modifier.
//
// Example:
//
//	// Default 5 unit radius
//	panel = ggview.Modify(panel, ggview.RoundedCornersOnTheLeft())
//
//	// Custom radius
//	panel = ggview.Modify(panel, ggview.RoundedCornersOnTheLeft(ggview.WithCornerRadius(12)))
type ShapeOption func(*shapeOptions)

// shapeOptions holds optional configuration for shape modifiers.
type shapeOptions struct {
	cornerRadius float64
}

// defaultShapeOptions returns the default shape options.
func defaultShapeOptions() shapeOptions {
	return shapeOptions{
		cornerRadius: DefaultCornerRadius,
	}
}

// WithCornerRadius sets the corner radius. Negative values are treated
// as zero.
func WithCornerRadius(r float64) ShapeOption {
	return func(o *shapeOptions) {
		o.cornerRadius = max(r, 0)
	}
}
