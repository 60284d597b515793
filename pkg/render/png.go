package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/MrToKa/traylay/pkg/errors"
)

// rasterScale is the supersampling factor. Drawing happens at this
// multiple of the target size and is downsampled on encode for
// antialiased edges.
const rasterScale = 2

// RasterCanvas renders drawing operations into an in-memory image and
// encodes it as PNG. The zero value is not usable; call Resize first.
type RasterCanvas struct {
	width, height float64
	img           *image.RGBA
	parsedFont    *opentype.Font
	faces         map[float64]font.Face
}

// NewRasterCanvas returns an empty raster canvas.
func NewRasterCanvas() *RasterCanvas {
	return &RasterCanvas{}
}

func (c *RasterCanvas) Resize(width, height float64) {
	c.width, c.height = width, height
	w := int(math.Ceil(width)) * rasterScale
	h := int(math.Ceil(height)) * rasterScale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (c *RasterCanvas) Clear(col string) {
	if c.img == nil {
		return
	}
	rgba := parseColor(col)
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.img.SetRGBA(x, y, rgba)
		}
	}
}

func (c *RasterCanvas) Rect(x, y, w, h float64, fill string, stroke Stroke) {
	if c.img == nil {
		return
	}
	if fill != "" {
		rgba := parseColor(fill)
		x0, y0 := int(x*rasterScale), int(y*rasterScale)
		x1, y1 := int((x+w)*rasterScale), int((y+h)*rasterScale)
		for py := y0; py <= y1; py++ {
			for px := x0; px <= x1; px++ {
				c.img.SetRGBA(px, py, rgba)
			}
		}
	}
	if stroke.Color != "" {
		c.Line(x, y, x+w, y, stroke)
		c.Line(x+w, y, x+w, y+h, stroke)
		c.Line(x+w, y+h, x, y+h, stroke)
		c.Line(x, y+h, x, y, stroke)
	}
}

func (c *RasterCanvas) Line(x1, y1, x2, y2 float64, stroke Stroke) {
	if c.img == nil || stroke.Color == "" {
		return
	}
	rgba := parseColor(stroke.Color)
	w := stroke.Width
	if w <= 0 {
		w = 1
	}
	x1, y1 = x1*rasterScale, y1*rasterScale
	x2, y2 = x2*rasterScale, y2*rasterScale
	w *= rasterScale

	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		c.img.SetRGBA(int(x1), int(y1), rgba)
		return
	}

	dash := stroke.Dash
	dashLen := 0.0
	for _, d := range dash {
		dashLen += d * rasterScale
	}

	perpX, perpY := -dy/dist, dx/dist
	steps := int(dist) + 1
	half := w / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if len(dash) > 0 && !dashOn(t*dist, dash, dashLen) {
			continue
		}
		cx := x1 + dx*t
		cy := y1 + dy*t
		for off := -half; off <= half; off += 0.5 {
			c.img.SetRGBA(int(cx+perpX*off), int(cy+perpY*off), rgba)
		}
	}
}

// dashOn reports whether the position along the line falls on a drawn
// dash rather than a gap. Even pattern indices draw, odd ones skip.
func dashOn(pos float64, dash []float64, total float64) bool {
	if total <= 0 {
		return true
	}
	pos = math.Mod(pos, total)
	for i, d := range dash {
		d *= rasterScale
		if pos < d {
			return i%2 == 0
		}
		pos -= d
	}
	return true
}

func (c *RasterCanvas) Circle(cx, cy, r float64, fill string, stroke Stroke) {
	if c.img == nil {
		return
	}
	cx, cy, r = cx*rasterScale, cy*rasterScale, r*rasterScale

	if fill != "" {
		rgba := parseColor(fill)
		for dy := -r; dy <= r; dy++ {
			span := math.Sqrt(r*r - dy*dy)
			for dx := -span; dx <= span; dx++ {
				c.img.SetRGBA(int(cx+dx), int(cy+dy), rgba)
			}
		}
	}
	if stroke.Color != "" {
		rgba := parseColor(stroke.Color)
		w := stroke.Width
		if w <= 0 {
			w = 1
		}
		w *= rasterScale
		step := 0.5 / math.Max(r, 1)
		for a := 0.0; a < 2*math.Pi; a += step {
			nx, ny := math.Cos(a), math.Sin(a)
			for t := -w / 2; t <= w/2; t += 0.5 {
				c.img.SetRGBA(int(cx+nx*(r+t)), int(cy+ny*(r+t)), rgba)
			}
		}
	}
}

func (c *RasterCanvas) Text(x, y float64, s string, f Font) {
	if c.img == nil || s == "" {
		return
	}
	face, err := c.face(f.Size * rasterScale)
	if err != nil {
		return
	}

	width := font.MeasureString(face, s).Ceil()
	px := int(x * rasterScale)
	switch f.Anchor {
	case AnchorMiddle:
		px -= width / 2
	case AnchorEnd:
		px -= width
	}

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(parseColor(f.Color)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(px), Y: fixed.I(int(y * rasterScale))},
	}
	d.DrawString(s)
}

// Bytes downsamples the supersampled image to the target size and
// encodes it as PNG.
func (c *RasterCanvas) Bytes() ([]byte, error) {
	if c.img == nil {
		return nil, errors.New(errors.ErrCodeRender, "raster canvas was never resized")
	}
	final := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(c.width)), int(math.Ceil(c.height))))
	xdraw.CatmullRom.Scale(final, final.Bounds(), c.img, c.img.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (c *RasterCanvas) face(size float64) (font.Face, error) {
	if c.parsedFont == nil {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "parse embedded font")
		}
		c.parsedFont = fnt
		c.faces = make(map[float64]font.Face)
	}
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.parsedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "create font face")
	}
	c.faces[size] = face
	return face, nil
}

// namedColors covers the color names the tray styles use.
var namedColors = map[string]color.RGBA{
	"white": {255, 255, 255, 255},
	"black": {0, 0, 0, 255},
	"red":   {204, 0, 0, 255},
	"grey":  {128, 128, 128, 255},
	"gray":  {128, 128, 128, 255},
}

// parseColor resolves a CSS color name or #rgb/#rrggbb hex string.
// Unknown colors fall back to black.
func parseColor(s string) color.RGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
			}
		}
	}
	return color.RGBA{0, 0, 0, 255}
}
