package render

// Anchor controls horizontal text alignment relative to the text position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Stroke describes line appearance. A zero Width means hairline (1px).
type Stroke struct {
	Color string    // CSS color, e.g. "#333" or "black"
	Width float64   // stroke width in px
	Dash  []float64 // dash pattern in px, nil for solid
}

// Font describes text appearance.
type Font struct {
	Size   float64 // px
	Color  string  // CSS color
	Bold   bool
	Anchor Anchor
}

// Canvas is the drawing surface a computed tray layout is rendered onto.
// Coordinates are canvas pixels with the origin top-left and y growing
// downward, matching the layout plan.
//
// Implementations: [SVGCanvas] for vector output, [RasterCanvas] for
// native PNG output.
type Canvas interface {
	// Resize sets the canvas extent in px. Must be called before drawing.
	Resize(width, height float64)
	// Clear fills the whole canvas with a color.
	Clear(color string)
	// Rect draws a rectangle given its top-left corner. An empty fill
	// draws outline only.
	Rect(x, y, w, h float64, fill string, stroke Stroke)
	// Line draws a straight line segment.
	Line(x1, y1, x2, y2 float64, stroke Stroke)
	// Circle draws a circle given its center and radius.
	Circle(cx, cy, r float64, fill string, stroke Stroke)
	// Text draws a single line of text. y is the text baseline.
	Text(x, y float64, s string, f Font)
	// Bytes encodes the finished drawing.
	Bytes() ([]byte, error)
}
