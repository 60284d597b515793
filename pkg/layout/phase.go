package layout

import "github.com/MrToKa/traylay/pkg/tray"

// PhaseRotate reorders a diameter-sorted cable list to approximate
// round-robin phase balancing. The list is cut into consecutive blocks of
// six; within each block the first half is rotated left by one and the
// second half is reversed. Degenerate input comes back unchanged.
func PhaseRotate(cables []*tray.Cable) []*tray.Cable {
	if len(cables) == 0 {
		return cables
	}

	out := make([]*tray.Cable, 0, len(cables))
	for start := 0; start < len(cables); start += 6 {
		end := min(start+6, len(cables))
		block := cables[start:end]
		half := len(block) / 2

		if half < 1 {
			out = append(out, block...)
			continue
		}
		out = append(out, block[1:half]...)
		out = append(out, block[0])
		for i := len(block) - 1; i >= half; i-- {
			out = append(out, block[i])
		}
	}

	if len(out) == 0 {
		return cables
	}
	return out
}

// phaseEligible implements the uniform-route check gating phase rotation.
// Medium-voltage qualifies whenever the group is non-empty; power and
// variable-frequency-drive need a cable count that is a non-zero multiple of
// three with every cable routed like the first; control never qualifies.
func phaseEligible(cat tray.Category, cables []*tray.Cable) bool {
	switch cat {
	case tray.CategoryMediumVoltage:
		return len(cables) > 0
	case tray.CategoryPower, tray.CategoryVFD:
		if len(cables) == 0 || len(cables)%3 != 0 {
			return false
		}
		first := cables[0]
		for _, c := range cables[1:] {
			if c.FromLocation != first.FromLocation || c.ToLocation != first.ToLocation {
				return false
			}
		}
		return true
	}
	return false
}
