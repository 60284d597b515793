package render

import (
	"image/color"
	"strings"
	"testing"
)

func TestSVGCanvasEscapesText(t *testing.T) {
	c := NewSVGCanvas()
	c.Resize(100, 100)
	c.Text(10, 10, `<b>&"fish"</b>`, Font{Size: 10, Color: "black"})

	out, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	s := string(out)
	if strings.Contains(s, "<b>") {
		t.Error("raw markup leaked into text element")
	}
	if !strings.Contains(s, "&lt;b&gt;") {
		t.Error("text content not escaped")
	}
}

func TestStrokeAttrs(t *testing.T) {
	tests := []struct {
		name   string
		stroke Stroke
		want   string
	}{
		{"empty color", Stroke{}, ""},
		{"defaults width", Stroke{Color: "#333"}, `stroke-width="1.0"`},
		{"dash pattern", Stroke{Color: "black", Width: 2, Dash: []float64{6, 4}}, `stroke-dasharray="6.0,4.0"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strokeAttrs(tt.stroke)
			if tt.want == "" {
				if got != "" {
					t.Errorf("strokeAttrs = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("strokeAttrs = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"white", color.RGBA{255, 255, 255, 255}},
		{"#c62828", color.RGBA{0xc6, 0x28, 0x28, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{" Black ", color.RGBA{0, 0, 0, 255}},
		{"bogus", color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := parseColor(tt.in); got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
