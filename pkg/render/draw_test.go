package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/tray"
)

func samplePlan(t *testing.T) *layout.Plan {
	t.Helper()
	cables := []*tray.Cable{
		{Tag: "P1", Diameter: 20, Category: tray.CategoryPower},
		{Tag: "P2", Diameter: 20, Category: tray.CategoryPower},
		{Tag: "C1", Diameter: 10, Category: tray.CategoryControl},
		{Tag: "C2", Diameter: 10, Category: tray.CategoryControl},
		{Tag: "C3", Diameter: 10, Category: tray.CategoryControl},
	}
	tr := tray.Tray{Name: "T1", Width: 400, Height: 300, RungHeight: 15}
	return layout.Compute(tr, tray.BuildBundles(cables), layout.Options{})
}

func TestDrawNilCanvas(t *testing.T) {
	err := Draw(samplePlan(t), nil)
	if !errors.Is(err, errors.ErrCodeMissingCanvas) {
		t.Errorf("Draw with nil canvas = %v, want %s", err, errors.ErrCodeMissingCanvas)
	}
}

func TestDrawNilPlan(t *testing.T) {
	err := Draw(nil, NewSVGCanvas())
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Draw with nil plan = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestSVGContainsCircles(t *testing.T) {
	plan := samplePlan(t)
	svg, err := SVG(plan)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}

	s := string(svg)
	if !strings.HasPrefix(s, "<svg ") {
		t.Error("output does not start with an svg tag")
	}
	if got := strings.Count(s, "<circle "); got != len(plan.Circles) {
		t.Errorf("%d circle elements, want %d", got, len(plan.Circles))
	}
	if !strings.Contains(s, ">T1</text>") {
		t.Error("tray name label missing")
	}
	if plan.Separator == nil {
		t.Fatal("sample plan should have a separator")
	}
	if !strings.Contains(s, "stroke-dasharray") {
		t.Error("separator dash pattern missing")
	}
}

func TestSVGPlaceholder(t *testing.T) {
	plan := layout.Compute(tray.Tray{Name: "empty"}, nil, layout.Options{})
	svg, err := SVG(plan)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}

	s := string(svg)
	if !strings.Contains(s, layout.PlaceholderText) {
		t.Errorf("placeholder text %q missing from output", layout.PlaceholderText)
	}
	if strings.Contains(s, "<circle ") {
		t.Error("placeholder output should contain no circles")
	}
}

func TestSVGWarningOverlay(t *testing.T) {
	cables := []*tray.Cable{
		{Tag: "P1", Diameter: 10, Category: tray.CategoryPower},
		{Tag: "C1", Diameter: 10, Category: tray.CategoryControl},
		{Tag: "V1", Diameter: 10, Category: tray.CategoryVFD},
	}
	tr := tray.Tray{Width: 400, Height: 300}
	plan := layout.Compute(tr, tray.BuildBundles(cables), layout.Options{})

	svg, err := SVG(plan)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.Contains(string(svg), layout.WarningTooManyCategories) {
		t.Error("warning overlay missing from output")
	}
}

func TestPNGDecodes(t *testing.T) {
	data, err := PNG(samplePlan(t))
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	plan := samplePlan(t)
	bounds := img.Bounds()
	if bounds.Dx() != int(plan.Width) || bounds.Dy() != int(plan.Height) {
		t.Errorf("png size %dx%d, want %.0fx%.0f", bounds.Dx(), bounds.Dy(), plan.Width, plan.Height)
	}
}

func TestRasterCanvasUnresized(t *testing.T) {
	c := NewRasterCanvas()
	if _, err := c.Bytes(); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Bytes on unresized canvas = %v, want %s", err, errors.ErrCodeRender)
	}
}

func TestIndexFontSize(t *testing.T) {
	tests := []struct {
		r    float64
		want float64
	}{
		{2, indexFontMin},
		{10, 8},
		{100, indexFontMax},
	}
	for _, tt := range tests {
		if got := indexFontSize(tt.r); got != tt.want {
			t.Errorf("indexFontSize(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
