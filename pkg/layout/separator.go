package layout

import (
	"slices"

	"github.com/MrToKa/traylay/pkg/tray"
)

// finish derives the separator decision and the occupancy summary from the
// recorded bottom-row segments.
//
// Policy: one category or none needs no separator. Exactly two draw a
// vertical line at the midpoint between the tracked edges, unless medium
// voltage is one of them (medium-voltage mixes are never separated). Three
// or more categories are an unsupported configuration and produce the
// warning overlay instead.
func (st *state) finish(plan *Plan) {
	seen := make(map[tray.Category]bool)
	var cats []tray.Category
	for _, s := range st.segments {
		if !seen[s.cat] {
			seen[s.cat] = true
			cats = append(cats, s.cat)
		}
	}

	switch {
	case len(cats) >= 3:
		plan.Warning = WarningTooManyCategories
		st.opts.Trace.LayoutWarning(WarningTooManyCategories)
	case len(cats) == 2 && !seen[tray.CategoryMediumVoltage]:
		// Skip on degenerate geometry: an untouched side or crossed edges.
		if st.leftEdge > 0 && st.rightEdge > 0 && st.rightEdge > st.leftEdge {
			plan.Separator = &SeparatorLine{
				X:  (st.leftEdge + st.rightEdge) / 2,
				Y1: st.originY,
				Y2: st.floorY,
			}
		}
	}

	plan.Summary = st.summary()
}

// summary aggregates all bottom-row segments sorted by left pixel position.
// OccupiedWidth uses inter-segment gaps as-is; OccupiedWidthBare caps each
// gap at the nominal spacing, so their difference is the bundle-spacing
// contribution.
func (st *state) summary() *Summary {
	s := &Summary{
		Spacing:           st.spacingMM,
		BottomRowSegments: len(st.segments),
		HasBottomRow:      len(st.segments) > 0,
	}
	if len(st.segments) == 0 {
		return s
	}

	segs := slices.Clone(st.segments)
	slices.SortFunc(segs, func(a, b segment) int {
		switch {
		case a.left < b.left:
			return -1
		case a.left > b.left:
			return 1
		}
		return 0
	})

	total := 0.0
	for _, seg := range segs {
		total += seg.right - seg.left
	}

	withGaps, capped := total, total
	for i := 1; i < len(segs); i++ {
		gap := segs[i].left - segs[i-1].right
		if gap < 0 {
			gap = 0
		}
		withGaps += gap
		capped += min(gap, st.spacingPx)
	}

	s.TotalCableWidth = total / st.scale
	s.OccupiedWidth = withGaps / st.scale
	s.OccupiedWidthBare = capped / st.scale
	s.BundleSpacingContribution = (withGaps - capped) / st.scale
	return s
}
