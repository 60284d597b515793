package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// SVGCanvas renders drawing operations as an SVG document.
// The zero value is ready to use.
type SVGCanvas struct {
	width, height float64
	body          bytes.Buffer
}

// NewSVGCanvas returns an empty SVG canvas.
func NewSVGCanvas() *SVGCanvas {
	return &SVGCanvas{}
}

func (c *SVGCanvas) Resize(width, height float64) {
	c.width, c.height = width, height
	c.body.Reset()
}

func (c *SVGCanvas) Clear(color string) {
	fmt.Fprintf(&c.body, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		c.width, c.height, escapeXML(color))
}

func (c *SVGCanvas) Rect(x, y, w, h float64, fill string, stroke Stroke) {
	fmt.Fprintf(&c.body, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"%s/>`+"\n",
		x, y, w, h, fillAttr(fill), strokeAttrs(stroke))
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, stroke Stroke) {
	fmt.Fprintf(&c.body, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"%s/>`+"\n",
		x1, y1, x2, y2, strokeAttrs(stroke))
}

func (c *SVGCanvas) Circle(cx, cy, r float64, fill string, stroke Stroke) {
	fmt.Fprintf(&c.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>`+"\n",
		cx, cy, r, fillAttr(fill), strokeAttrs(stroke))
}

func (c *SVGCanvas) Text(x, y float64, s string, f Font) {
	anchor := "start"
	switch f.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	weight := ""
	if f.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&c.body,
		`  <text x="%.1f" y="%.1f" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" fill="%s" text-anchor="%s"%s>%s</text>`+"\n",
		x, y, f.Size, escapeXML(f.Color), anchor, weight, escapeXML(s))
}

// Bytes returns the complete SVG document.
func (c *SVGCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.width, c.height, c.width, c.height)
	buf.Write(c.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func fillAttr(fill string) string {
	if fill == "" {
		return "none"
	}
	return escapeXML(fill)
}

func strokeAttrs(s Stroke) string {
	if s.Color == "" {
		return ""
	}
	w := s.Width
	if w <= 0 {
		w = 1
	}
	attrs := fmt.Sprintf(` stroke="%s" stroke-width="%.1f"`, escapeXML(s.Color), w)
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = fmt.Sprintf("%.1f", d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return attrs
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
