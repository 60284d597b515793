package layout

import (
	"math"
	"slices"

	"github.com/MrToKa/traylay/pkg/tray"
)

// side is the packing direction for a category.
type side int

const (
	sideLeft  side = iota // pack from the left tray edge rightward
	sideRight             // pack from the right tray edge leftward
)

// groundFilter selects which medium-voltage cables participate in a pass.
// Grounding cables pack in their own right-to-left pass after everything
// else.
type groundFilter int

const (
	groundAll groundFilter = iota
	groundExclude
	groundOnly
)

// segment is one recorded bottom-row extent in px. A packed column
// contributes one segment per bottom cable; a trefoil cluster contributes a
// single segment spanning its baseline circles.
type segment struct {
	cat         tray.Category
	left, right float64
}

// state carries one computation's working data. It is built fresh per
// [Compute] call and never escapes it.
type state struct {
	tray tray.Tray
	opts Options

	scale     float64
	spacingMM float64 // engine-wide nominal spacing
	spacingPx float64
	usableH   float64 // mm

	originX, originY float64
	floorY           float64
	trayRight        float64

	circles  []Circle
	segments []segment

	// Extreme horizontal positions reached by left- and right-side packing,
	// in px. Zero means the side never packed anything.
	leftEdge, rightEdge float64
}

func newState(t tray.Tray, opts Options) *state {
	st := &state{
		tray:      t,
		opts:      opts,
		scale:     opts.Scale,
		spacingMM: opts.Spacing,
		usableH:   t.UsableHeight(),
		originX:   canvasMargin,
		originY:   canvasMargin,
	}
	st.spacingPx = st.spacingMM * st.scale
	st.floorY = st.originY + (t.Height-t.EffectiveRungHeight())*st.scale
	st.trayRight = st.originX + t.Width*st.scale
	return st
}

// advance moves a cursor outward in the packing direction.
func advance(cursor, amount float64, s side) float64 {
	if s == sideRight {
		return cursor - amount
	}
	return cursor + amount
}

// emit anchors a chunk's pending circles at leftX, records bottom-row
// segments, and updates the tracked extreme edge for the side. With
// mergeBottom set the bottom circles form one contiguous segment (trefoil
// clusters); otherwise each bottom circle is its own segment.
func (st *state) emit(cat tray.Category, placed []pending, leftX float64, s side, mergeBottom bool) {
	segLeft, segRight := math.Inf(1), math.Inf(-1)
	for _, p := range placed {
		x := leftX + p.x
		st.circles = append(st.circles, Circle{
			Cable:     p.cable,
			Category:  cat,
			Index:     len(st.circles) + 1,
			X:         x,
			Y:         p.y,
			R:         p.r,
			BottomRow: p.bottom,
		})
		if p.bottom {
			if mergeBottom {
				segLeft = math.Min(segLeft, x-p.r)
				segRight = math.Max(segRight, x+p.r)
			} else {
				st.segments = append(st.segments, segment{cat: cat, left: x - p.r, right: x + p.r})
			}
		}
		switch s {
		case sideLeft:
			st.leftEdge = math.Max(st.leftEdge, x+p.r)
		case sideRight:
			if edge := x - p.r; st.rightEdge == 0 || edge < st.rightEdge {
				st.rightEdge = edge
			}
		}
	}
	if mergeBottom && segRight > segLeft {
		st.segments = append(st.segments, segment{cat: cat, left: segLeft, right: segRight})
	}
}

// packCategory lays out every bundle of one category from cursor and returns
// the updated cursor. Bundles are processed in descending order of their
// largest cable diameter.
func (st *state) packCategory(cat tray.Category, byBucket map[tray.Bucket][]*tray.Cable, s side, cursor float64, filter groundFilter) float64 {
	cfg := st.opts.configFor(cat)
	spacingMM := st.opts.spacingFor(cfg)
	spacing := spacingMM * st.scale

	total := 0
	for _, cables := range byBucket {
		total += len(filterGrounding(cables, filter))
	}
	st.opts.Trace.CategoryStart(cat, s == sideLeft, total)
	if total == 0 {
		return cursor
	}

	for _, b := range bucketsByMaxDiameter(byBucket) {
		cables := filterGrounding(byBucket[b], filter)
		if len(cables) == 0 {
			continue
		}
		cursor = st.packBundle(cat, b, cables, cfg, spacingMM, spacing, s, cursor)
	}
	return cursor
}

// packBundle drives one bundle through trefoil grouping, the geometry solver,
// and the chunked grid packers, returning the updated cursor.
func (st *state) packBundle(cat tray.Category, b tray.Bucket, cables []*tray.Cable, cfg Config, spacingMM, spacing float64, s side, cursor float64) float64 {
	maxD := 0.0
	for _, c := range cables {
		maxD = math.Max(maxD, c.EffectiveDiameter())
	}
	bundleGap := float64(cfg.BundleSpacing) * maxD * st.scale

	if cfg.Trefoil && cfg.PhaseRotation && phaseEligible(cat, cables) {
		cables = PhaseRotate(sortByDiameterDesc(cables))
	}

	for _, g := range TrefoilGroups(cables, cfg.Trefoil) {
		if g.Kind == GroupTrefoil {
			sol, ok := SolveTrefoil([3]*tray.Cable{g.Cables[0], g.Cables[1], g.Cables[2]}, st.scale, spacing)
			if ok {
				leftX := cursor
				if s == sideRight {
					leftX = cursor - sol.Width
				}
				placed := make([]pending, 0, 3)
				for i, pos := range sol.Positions {
					placed = append(placed, pending{
						cable:  g.Cables[i],
						x:      pos.Left + pos.Radius,
						y:      st.floorY + pos.YOffset,
						r:      pos.Radius,
						bottom: pos.onBaseline(),
					})
				}
				st.emit(cat, placed, leftX, s, true)

				gap := spacing
				if cfg.TrefoilBundleSpacing {
					gap = bundleGap
				}
				cursor = advance(cursor, sol.Width+gap, s)
				st.opts.Trace.TrefoilSolved(cat, sol.Width)
				continue
			}
			st.opts.Trace.TrefoilFallback(cat)
		}

		rows, cols := PlanCapacity(st.usableH, g.Cables, cat, cfg, spacingMM)
		chunkSize := rows * cols
		if chunkSize < 1 {
			chunkSize = len(g.Cables)
		}
		hex := b.Hexagonal() && st.usableH > hexMinUsableHeight
		colGap := spacing
		if cfg.TrefoilBundleSpacing && rows == 1 {
			colGap = bundleGap
		}

		for _, chunk := range chunked(g.Cables, chunkSize) {
			var placed []pending
			var w float64
			if hex {
				placed, w = st.packHexagonal(chunk, spacing)
			} else {
				placed, w = st.packColumns(chunk, rows, spacing, colGap)
			}
			leftX := cursor
			if s == sideRight {
				leftX = cursor - w
			}
			st.emit(cat, placed, leftX, s, false)
			cursor = advance(cursor, w+bundleGap, s)
			st.opts.Trace.ChunkPacked(cat, b, rows, cols, hex)
		}
	}
	return cursor
}

// bucketsByMaxDiameter orders a category's buckets by the largest cable
// diameter they hold, descending. Ties break toward the larger bucket so the
// order stays deterministic.
func bucketsByMaxDiameter(byBucket map[tray.Bucket][]*tray.Cable) []tray.Bucket {
	type entry struct {
		bucket tray.Bucket
		maxD   float64
	}
	entries := make([]entry, 0, len(byBucket))
	for b, cables := range byBucket {
		e := entry{bucket: b}
		for _, c := range cables {
			e.maxD = math.Max(e.maxD, c.EffectiveDiameter())
		}
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.maxD > b.maxD:
			return -1
		case a.maxD < b.maxD:
			return 1
		case a.bucket > b.bucket:
			return -1
		case a.bucket < b.bucket:
			return 1
		}
		return 0
	})
	out := make([]tray.Bucket, len(entries))
	for i, e := range entries {
		out[i] = e.bucket
	}
	return out
}

func filterGrounding(cables []*tray.Cable, filter groundFilter) []*tray.Cable {
	if filter == groundAll {
		return cables
	}
	var out []*tray.Cable
	for _, c := range cables {
		if c.IsGrounding() == (filter == groundOnly) {
			out = append(out, c)
		}
	}
	return out
}
