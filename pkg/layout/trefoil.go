package layout

import (
	"math"

	"github.com/MrToKa/traylay/pkg/tray"
)

// GroupKind tags a trefoil group.
type GroupKind int

const (
	GroupNormal GroupKind = iota
	GroupTrefoil
)

// Group is a run of cables destined for the same packing path: either a
// trefoil triple or a run of normally packed cables.
type Group struct {
	Kind   GroupKind
	Cables []*tray.Cable
}

// TrefoilGroups partitions a bundle into trefoil triples and normal
// remainders. Cables sharing an identical origin/destination pair are sliced
// into consecutive triples in their original order; any remainder not
// divisible by three stays normal, as do cables missing either location.
// Clusters are emitted at the position of the earliest cable in each triple;
// ungrouped cables keep their relative order.
//
// The concatenation of all returned groups is always a permutation of the
// input: nothing is dropped or duplicated.
func TrefoilGroups(cables []*tray.Cable, enabled bool) []Group {
	if !enabled || len(cables) < 3 {
		if len(cables) == 0 {
			return nil
		}
		return []Group{{Kind: GroupNormal, Cables: cables}}
	}

	byRoute := make(map[string][]int)
	for i, c := range cables {
		if key, ok := c.Route(); ok {
			byRoute[key] = append(byRoute[key], i)
		}
	}

	// anchor index → member indices of the triple
	triples := make(map[int][]int)
	clustered := make(map[int]bool)
	for _, idxs := range byRoute {
		for len(idxs) >= 3 {
			triple := idxs[:3]
			idxs = idxs[3:]
			triples[triple[0]] = triple
			for _, i := range triple {
				clustered[i] = true
			}
		}
	}

	var groups []Group
	var run []*tray.Cable
	flush := func() {
		if len(run) > 0 {
			groups = append(groups, Group{Kind: GroupNormal, Cables: run})
			run = nil
		}
	}

	for i, c := range cables {
		if triple, ok := triples[i]; ok {
			flush()
			members := make([]*tray.Cable, 3)
			for j, idx := range triple {
				members[j] = cables[idx]
			}
			groups = append(groups, Group{Kind: GroupTrefoil, Cables: members})
			continue
		}
		if clustered[i] {
			continue
		}
		run = append(run, c)
	}
	flush()

	return groups
}

// TrefoilPosition is one circle of a solved cluster, relative to the
// cluster's left edge and the tray floor baseline. YOffset is the center's
// offset from the baseline, negative meaning above the floor.
type TrefoilPosition struct {
	Left    float64
	YOffset float64
	Radius  float64
}

// TrefoilSolution is a solved triangular arrangement: two circles on the
// baseline and one balanced above, touching within spacing.
type TrefoilSolution struct {
	Positions [3]TrefoilPosition
	Width     float64
}

// SolveTrefoil computes the touching arrangement for exactly three cables.
// scale converts mm to px, spacing is the cable gap in px. ok is false when
// no valid tangent configuration exists; callers fall back to grid packing.
func SolveTrefoil(cables [3]*tray.Cable, scale, spacing float64) (TrefoilSolution, bool) {
	r1 := cables[0].EffectiveDiameter() * scale / 2
	r2 := cables[1].EffectiveDiameter() * scale / 2
	r3 := cables[2].EffectiveDiameter() * scale / 2

	// Circles 1 and 2 sit on the baseline; the third must be tangent to both.
	x1, y1 := 0.0, -r1
	x2, y2 := r1+r2+spacing, -r2

	d := x2 - x1
	a, h, ok := intersectCircles(d, r1+r3+spacing, r2+r3+spacing)
	if !ok {
		return TrefoilSolution{}, false
	}

	// Upper of the two mirror solutions.
	x3 := x1 + a
	y3 := y1 - h

	centers := [3]struct{ x, y, r float64 }{
		{x1, y1, r1},
		{x2, y2, r2},
		{x3, y3, r3},
	}

	minLeft := math.Inf(1)
	for _, c := range centers {
		minLeft = math.Min(minLeft, c.x-c.r)
	}

	var sol TrefoilSolution
	for i, c := range centers {
		sol.Positions[i] = TrefoilPosition{
			Left:    c.x - c.r - minLeft,
			YOffset: c.y,
			Radius:  c.r,
		}
		sol.Width = math.Max(sol.Width, c.x+c.r-minLeft)
	}
	return sol, true
}

// intersectCircles solves the two-circle-intersection construction for
// centers d apart with radii ra and rb. It returns the horizontal offset a of
// the intersection from the first center and its height h above the center
// line. ok is false when the circles do not intersect (d outside
// [|ra-rb|, ra+rb]) or an intermediate value is not finite.
func intersectCircles(d, ra, rb float64) (a, h float64, ok bool) {
	if d <= 0 || d > ra+rb || d < math.Abs(ra-rb) {
		return 0, 0, false
	}
	a = (ra*ra - rb*rb + d*d) / (2 * d)
	h2 := ra*ra - a*a
	if h2 < 0 || math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(h2) || math.IsInf(h2, 0) {
		return 0, 0, false
	}
	return a, math.Sqrt(h2), true
}

// onBaseline reports whether a trefoil position rests on the tray floor
// within the bottom-row tolerance.
func (p TrefoilPosition) onBaseline() bool {
	return math.Abs(p.YOffset+p.Radius) <= bottomRowTolerance
}
