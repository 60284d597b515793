package layout

import (
	"math"

	"github.com/MrToKa/traylay/pkg/tray"
)

// PlanCapacity computes the rows × columns grid for one bundle. usableHeight
// and spacing are mm. Rows are bounded by both the configured maximum and
// what physically fits; columns by the configured maximum.
//
// A bundle of exactly two cables in any category other than medium-voltage
// always lays out as a single row of two.
func PlanCapacity(usableHeight float64, cables []*tray.Cable, cat tray.Category, cfg Config, spacing float64) (rows, cols int) {
	cfg = cfg.normalized()
	n := len(cables)

	maxD := 0.0
	for _, c := range cables {
		maxD = math.Max(maxD, c.Diameter)
	}
	if n == 0 || maxD <= 0 {
		return 1, n
	}

	if n == 2 && cat != tray.CategoryMediumVoltage {
		return 1, 2
	}

	perCable := maxD + spacing
	physRows := int(math.Floor((usableHeight + spacing) / perCable))
	if physRows < 1 {
		physRows = 1
	}

	allowed := min(cfg.MaxRows, physRows)
	rows = allowed
	cols = ceilDiv(n, rows)

	for cols > cfg.MaxColumns && rows > 1 {
		rows--
		cols = ceilDiv(n, rows)
	}
	if cols > cfg.MaxColumns {
		cols = cfg.MaxColumns
		rows = min(ceilDiv(n, cols), allowed)
	}
	return rows, cols
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
