package layout

import "github.com/MrToKa/traylay/pkg/tray"

// Compute lays out every cable of the bundle map inside the tray and returns
// the resulting Plan. It is pure: no drawing, no retained state, the same
// inputs always produce the same Plan.
//
// A tray without positive dimensions yields the placeholder terminal outcome:
// a Plan with Placeholder set, no circles, and a nil Summary.
func Compute(t tray.Tray, bundles tray.BundleMap, opts Options) *Plan {
	opts = opts.withDefaults()

	if !t.HasDimensions() {
		return &Plan{
			Tray:        t,
			Scale:       opts.Scale,
			Width:       placeholderWidth,
			Height:      placeholderHeight,
			Placeholder: true,
		}
	}

	st := newState(t, opts)
	plan := &Plan{
		Tray:    t,
		Scale:   st.scale,
		Width:   t.Width*st.scale + 2*canvasMargin,
		Height:  t.Height*st.scale + 2*canvasMargin,
		OriginX: st.originX,
		OriginY: st.originY,
		FloorY:  st.floorY,
	}

	hasMV := bundles.Has(tray.CategoryMediumVoltage)
	hasPower := bundles.Has(tray.CategoryPower)
	hasControl := bundles.Has(tray.CategoryControl)
	hasVFD := bundles.Has(tray.CategoryVFD)

	left := st.originX
	right := st.trayRight

	// Direction assignment: medium voltage always owns the left side and
	// demotes everything else to the right-packing path, grounding cables
	// last. Without medium voltage, power packs left and control/VFD right.
	switch {
	case hasMV:
		left = st.packCategory(tray.CategoryMediumVoltage, bundles[tray.CategoryMediumVoltage], sideLeft, left, groundExclude)
		if hasControl {
			right = st.packCategory(tray.CategoryControl, bundles[tray.CategoryControl], sideRight, right, groundAll)
		}
		if hasVFD {
			right = st.packCategory(tray.CategoryVFD, bundles[tray.CategoryVFD], sideRight, right, groundAll)
		}
		if hasPower {
			right = st.packCategory(tray.CategoryPower, bundles[tray.CategoryPower], sideRight, right, groundAll)
		}
		right = st.packCategory(tray.CategoryMediumVoltage, bundles[tray.CategoryMediumVoltage], sideRight, right, groundOnly)
	case hasPower:
		left = st.packCategory(tray.CategoryPower, bundles[tray.CategoryPower], sideLeft, left, groundAll)
		if hasControl {
			right = st.packCategory(tray.CategoryControl, bundles[tray.CategoryControl], sideRight, right, groundAll)
		}
		if hasVFD {
			right = st.packCategory(tray.CategoryVFD, bundles[tray.CategoryVFD], sideRight, right, groundAll)
		}
	case hasVFD && hasControl:
		left = st.packCategory(tray.CategoryVFD, bundles[tray.CategoryVFD], sideLeft, left, groundAll)
		right = st.packCategory(tray.CategoryControl, bundles[tray.CategoryControl], sideRight, right, groundAll)
	case hasControl:
		right = st.packCategory(tray.CategoryControl, bundles[tray.CategoryControl], sideRight, right, groundAll)
	case hasVFD:
		right = st.packCategory(tray.CategoryVFD, bundles[tray.CategoryVFD], sideRight, right, groundAll)
	}
	_, _ = left, right

	st.finish(plan)
	plan.Circles = st.circles
	return plan
}
