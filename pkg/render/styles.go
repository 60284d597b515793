package render

import "github.com/MrToKa/traylay/pkg/tray"

// categoryStyle is the fill and outline used for one cable category.
type categoryStyle struct {
	Fill   string
	Stroke string
}

var categoryStyles = map[tray.Category]categoryStyle{
	tray.CategoryPower:         {Fill: "#fdecea", Stroke: "#c62828"},
	tray.CategoryControl:       {Fill: "#e3f2fd", Stroke: "#1565c0"},
	tray.CategoryMediumVoltage: {Fill: "#fff3e0", Stroke: "#e65100"},
	tray.CategoryVFD:           {Fill: "#e8f5e9", Stroke: "#2e7d32"},
}

var defaultCategoryStyle = categoryStyle{Fill: "white", Stroke: "#333"}

func styleFor(cat tray.Category) categoryStyle {
	if s, ok := categoryStyles[cat]; ok {
		return s
	}
	return defaultCategoryStyle
}

// Chrome colors shared by all tray drawings.
const (
	colorBackground = "white"
	colorOutline    = "#333333"
	colorRungStrip  = "#e0e0e0"
	colorLabel      = "#666666"
	colorWarning    = "#c62828"
	colorSeparator  = "#555555"
)

const (
	labelFontSize   = 14.0
	warningFontSize = 18.0
	indexFontMin    = 7.0
	indexFontMax    = 16.0
)

// indexFontSize picks a label size that fits inside a circle of the
// given radius.
func indexFontSize(r float64) float64 {
	size := r * 0.8
	if size < indexFontMin {
		return indexFontMin
	}
	if size > indexFontMax {
		return indexFontMax
	}
	return size
}
