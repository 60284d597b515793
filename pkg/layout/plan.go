package layout

import "github.com/MrToKa/traylay/pkg/tray"

// canvasMargin is the blank border around the tray rectangle, in px, used for
// axis and dimension labels.
const canvasMargin = 40.0

// Placeholder canvas size used when the tray has no dimensions.
const (
	placeholderWidth  = 400.0
	placeholderHeight = 200.0
)

// bottomRowTolerance is the maximum distance in px between a circle's lowest
// point and the tray floor for the cable to count as bottom-row.
const bottomRowTolerance = 0.5

// WarningTooManyCategories is the overlay text shown when three or more cable
// categories are present on one tray.
const WarningTooManyCategories = "Too many cable types on the tray"

// PlaceholderText is shown instead of a layout when tray dimensions are
// missing.
const PlaceholderText = "Provide tray dimensions"

// Circle is one placed cable cross-section. Coordinates are canvas px with y
// growing downward.
type Circle struct {
	Cable     *tray.Cable
	Category  tray.Category
	Index     int // 1-based label in placement order
	X, Y, R   float64
	BottomRow bool // circle rests on the tray floor
}

// SeparatorLine is a vertical line between two adjacent categories.
type SeparatorLine struct {
	X, Y1, Y2 float64
}

// Plan is the complete result of one layout computation, sufficient for a
// renderer to draw the tray without recomputing any geometry.
type Plan struct {
	Tray  tray.Tray
	Scale float64

	// Canvas extent in px.
	Width, Height float64

	// Tray rectangle top-left corner and floor line (top of the rung strip).
	OriginX, OriginY float64
	FloorY           float64

	Circles   []Circle
	Separator *SeparatorLine

	// Warning is the overlay text for unsupported configurations, empty when
	// none applies.
	Warning string

	// Placeholder marks the missing-dimensions terminal outcome. No circles
	// are placed and Summary is nil.
	Placeholder bool

	Summary *Summary
}

// Summary aggregates the recorded bottom-row segments. All widths are mm.
type Summary struct {
	// Spacing is the engine-wide cable spacing the computation used.
	Spacing float64

	// TotalCableWidth is the summed diameter of all bottom-row cables.
	TotalCableWidth float64

	// OccupiedWidth spans the bottom row including full bundle gaps.
	OccupiedWidth float64

	// OccupiedWidthBare caps every inter-segment gap at the nominal cable
	// spacing, removing the bundle-spacing contribution.
	OccupiedWidthBare float64

	// BundleSpacingContribution = OccupiedWidth - OccupiedWidthBare.
	BundleSpacingContribution float64

	// BottomRowSegments counts the recorded bottom-row cables.
	BottomRowSegments int

	// HasBottomRow is false when nothing touches the tray floor.
	HasBottomRow bool
}

// TrayArea returns the tray rectangle extent in px.
func (p *Plan) TrayArea() (w, h float64) {
	return p.Tray.Width * p.Scale, p.Tray.Height * p.Scale
}

// FreeSpacePercent computes the free-space percentage of the tray width from
// the summary, the figure threshold-colored by display callers. Returns 0
// when the plan has no summary or the tray has no width.
func (p *Plan) FreeSpacePercent() float64 {
	if p.Summary == nil || p.Tray.Width <= 0 {
		return 0
	}
	free := 100 * (1 - p.Summary.OccupiedWidth/p.Tray.Width)
	if free < 0 {
		return 0
	}
	return free
}
