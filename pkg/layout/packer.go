package layout

import (
	"math"
	"slices"

	"github.com/MrToKa/traylay/pkg/tray"
)

// pending is a circle placed within a chunk before the chunk is anchored to
// an absolute cursor position. x is the center's offset from the chunk's left
// edge; y is already absolute canvas px.
type pending struct {
	cable  *tray.Cable
	x, y   float64
	r      float64
	bottom bool
}

// sortByDiameterDesc returns a copy sorted by descending effective diameter.
// Ties keep input order so layouts stay deterministic.
func sortByDiameterDesc(cables []*tray.Cable) []*tray.Cable {
	sorted := slices.Clone(cables)
	slices.SortStableFunc(sorted, func(a, b *tray.Cable) int {
		switch da, db := a.EffectiveDiameter(), b.EffectiveDiameter(); {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	return sorted
}

// packColumns stacks a chunk into a grid of columns. Cables arrive sorted
// descending by diameter and fill columns left to right; within a column
// they stack from the tray floor upward separated by spacing. The per-column
// count adapts so late columns do not run empty. colGap separates successive
// columns.
func (st *state) packColumns(chunk []*tray.Cable, rows int, spacing, colGap float64) ([]pending, float64) {
	sorted := sortByDiameterDesc(chunk)
	cols := ceilDiv(len(sorted), rows)

	var placed []pending
	width := 0.0
	i := 0
	for col := 0; col < cols && i < len(sorted); col++ {
		perCol := min(ceilDiv(len(sorted)-i, cols-col), rows)
		colCables := sorted[i : i+perCol]
		i += perCol

		colW := 0.0
		for _, c := range colCables {
			colW = math.Max(colW, c.EffectiveDiameter()*st.scale)
		}

		if col > 0 {
			width += colGap
		}
		stacked := 0.0
		for j, c := range colCables {
			r := c.EffectiveDiameter() * st.scale / 2
			placed = append(placed, pending{
				cable:  c,
				x:      width + colW/2,
				y:      st.floorY - stacked - r,
				r:      r,
				bottom: j == 0,
			})
			stacked += 2*r + spacing
		}
		width += colW
	}
	return placed, width
}

// packHexagonal lays a chunk along the floor with every second cable (from
// index 2) nested between the two preceding floor cables: raised by the
// hexagonal close-packing offset and shifted back to their midpoint. Nested
// cables never count as bottom-row.
func (st *state) packHexagonal(chunk []*tray.Cable, spacing float64) ([]pending, float64) {
	sorted := sortByDiameterDesc(chunk)

	var placed []pending
	var floorCenters []float64
	width := 0.0
	for i, c := range sorted {
		d := c.EffectiveDiameter() * st.scale
		r := d / 2

		if i >= 2 && i%2 == 0 && len(floorCenters) >= 2 {
			cx := (floorCenters[len(floorCenters)-2] + floorCenters[len(floorCenters)-1]) / 2
			rise := r*math.Sqrt(3)/2 + r - 2*spacing
			placed = append(placed, pending{
				cable: c,
				x:     cx,
				y:     st.floorY - rise,
				r:     r,
			})
			continue
		}

		if len(floorCenters) > 0 {
			width += spacing
		}
		cx := width + r
		placed = append(placed, pending{
			cable:  c,
			x:      cx,
			y:      st.floorY - r,
			r:      r,
			bottom: true,
		})
		floorCenters = append(floorCenters, cx)
		width += d
	}
	return placed, width
}

// chunked splits cables into consecutive chunks of at most size cables.
// A non-positive size yields a single chunk.
func chunked(cables []*tray.Cable, size int) [][]*tray.Cable {
	if size <= 0 || len(cables) <= size {
		if len(cables) == 0 {
			return nil
		}
		return [][]*tray.Cable{cables}
	}
	var out [][]*tray.Cable
	for start := 0; start < len(cables); start += size {
		out = append(out, cables[start:min(start+size, len(cables))])
	}
	return out
}
