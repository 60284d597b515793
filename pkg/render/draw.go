package render

import (
	"fmt"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
)

// Draw renders a computed layout plan onto a canvas. The plan carries all
// geometry in canvas px, so drawing is a straight traversal with no
// layout decisions of its own.
func Draw(p *layout.Plan, c Canvas) error {
	if c == nil {
		return errors.New(errors.ErrCodeMissingCanvas, "no canvas to draw on")
	}
	if p == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no layout plan to draw")
	}

	c.Resize(p.Width, p.Height)
	c.Clear(colorBackground)

	if p.Placeholder {
		c.Text(p.Width/2, p.Height/2, layout.PlaceholderText, Font{
			Size:   warningFontSize,
			Color:  colorLabel,
			Anchor: AnchorMiddle,
		})
		return nil
	}

	drawTrayChrome(p, c)
	drawCircles(p, c)

	if p.Separator != nil {
		c.Line(p.Separator.X, p.Separator.Y1, p.Separator.X, p.Separator.Y2, Stroke{
			Color: colorSeparator,
			Width: 1.5,
			Dash:  []float64{6, 4},
		})
	}

	if p.Warning != "" {
		c.Text(p.Width/2, p.OriginY-10, p.Warning, Font{
			Size:   warningFontSize,
			Color:  colorWarning,
			Bold:   true,
			Anchor: AnchorMiddle,
		})
	}

	drawSummary(p, c)
	return nil
}

// drawTrayChrome draws the tray outline, the rung strip and the
// dimension labels.
func drawTrayChrome(p *layout.Plan, c Canvas) {
	trayW, trayH := p.TrayArea()

	// Rung strip between the floor line and the tray bottom.
	c.Rect(p.OriginX, p.FloorY, trayW, p.OriginY+trayH-p.FloorY, colorRungStrip, Stroke{})
	c.Rect(p.OriginX, p.OriginY, trayW, trayH, "", Stroke{Color: colorOutline, Width: 2})

	if p.Tray.Name != "" {
		c.Text(p.OriginX, p.OriginY-10, p.Tray.Name, Font{
			Size:  labelFontSize,
			Color: colorOutline,
			Bold:  true,
		})
	}

	c.Text(p.OriginX+trayW/2, p.OriginY+trayH+20, fmt.Sprintf("%.0f mm", p.Tray.Width), Font{
		Size:   labelFontSize,
		Color:  colorLabel,
		Anchor: AnchorMiddle,
	})
	c.Text(p.OriginX-8, p.OriginY+trayH/2, fmt.Sprintf("%.0f mm", p.Tray.Height), Font{
		Size:   labelFontSize,
		Color:  colorLabel,
		Anchor: AnchorEnd,
	})
}

func drawCircles(p *layout.Plan, c Canvas) {
	for _, circ := range p.Circles {
		style := styleFor(circ.Category)
		stroke := Stroke{Color: style.Stroke, Width: 1.5}
		if circ.Cable != nil && circ.Cable.IsGrounding() {
			stroke.Dash = []float64{4, 3}
		}
		c.Circle(circ.X, circ.Y, circ.R, style.Fill, stroke)

		size := indexFontSize(circ.R)
		c.Text(circ.X, circ.Y+size*0.35, fmt.Sprintf("%d", circ.Index), Font{
			Size:   size,
			Color:  style.Stroke,
			Anchor: AnchorMiddle,
		})
	}
}

// drawSummary writes the occupancy line under the width label.
func drawSummary(p *layout.Plan, c Canvas) {
	s := p.Summary
	if s == nil || !s.HasBottomRow {
		return
	}
	trayW, trayH := p.TrayArea()
	text := fmt.Sprintf("occupied %.1f mm of %.0f mm (%.1f%% free)",
		s.OccupiedWidth, p.Tray.Width, p.FreeSpacePercent())
	c.Text(p.OriginX+trayW/2, p.OriginY+trayH+38, text, Font{
		Size:   labelFontSize - 2,
		Color:  colorLabel,
		Anchor: AnchorMiddle,
	})
}

// SVG renders a plan as an SVG document.
func SVG(p *layout.Plan) ([]byte, error) {
	canvas := NewSVGCanvas()
	if err := Draw(p, canvas); err != nil {
		return nil, err
	}
	return canvas.Bytes()
}

// PNG renders a plan as a PNG image using the native raster canvas.
// No external tools are required.
func PNG(p *layout.Plan) ([]byte, error) {
	canvas := NewRasterCanvas()
	if err := Draw(p, canvas); err != nil {
		return nil, err
	}
	return canvas.Bytes()
}

// PDF renders a plan as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func PDF(p *layout.Plan) ([]byte, error) {
	svg, err := SVG(p)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}
