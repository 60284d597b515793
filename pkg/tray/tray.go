// Package tray defines the cable tray data model: trays, cables, purpose
// categories, diameter buckets, and the bundle map consumed by the layout
// engine.
//
// # Model
//
// A [Tray] is a rectangular cross-section with an optional rung strip at the
// bottom that cables cannot occupy. A [Cable] is a circle with a diameter, a
// purpose category, and origin/destination locations used for trefoil
// co-routing detection.
//
// Cables are grouped for layout in two steps:
//
//  1. [Classify] maps each cable diameter to one of eight [Bucket] ranges.
//  2. [BuildBundles] produces a [BundleMap]: category → bucket → cables.
//
// The layout engine (package layout) consumes the BundleMap read-only and
// never mutates cables or trays.
package tray

// DefaultRungHeight is the rung strip height in mm assumed when a tray does
// not specify one. The rung strip is the non-usable band at the bottom of the
// cross-section.
const DefaultRungHeight = 15.0

// Tray is the physical cross-section cables are laid into.
// Dimensions are millimeters.
type Tray struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	RungHeight float64 `json:"rung_height,omitempty"`
}

// EffectiveRungHeight returns the rung strip height, falling back to
// [DefaultRungHeight] when the tray does not define one.
func (t Tray) EffectiveRungHeight() float64 {
	if t.RungHeight > 0 {
		return t.RungHeight
	}
	return DefaultRungHeight
}

// UsableHeight returns the tray height minus the rung strip, floored at zero.
func (t Tray) UsableHeight() float64 {
	h := t.Height - t.EffectiveRungHeight()
	if h < 0 {
		return 0
	}
	return h
}

// HasDimensions reports whether the tray has positive width and height.
// Layout cannot proceed without dimensions; the engine renders a placeholder
// instead.
func (t Tray) HasDimensions() bool {
	return t.Width > 0 && t.Height > 0
}
