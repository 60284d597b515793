package layout

import (
	"math"
	"testing"

	"github.com/MrToKa/traylay/pkg/tray"
)

func routedCable(tag string, d float64, from, to string) *tray.Cable {
	return &tray.Cable{Tag: tag, Diameter: d, Category: tray.CategoryPower, FromLocation: from, ToLocation: to}
}

func TestTrefoilGroupsDisabled(t *testing.T) {
	cables := []*tray.Cable{
		routedCable("A", 20, "X", "Y"),
		routedCable("B", 20, "X", "Y"),
		routedCable("C", 20, "X", "Y"),
	}
	groups := TrefoilGroups(cables, false)
	if len(groups) != 1 || groups[0].Kind != GroupNormal || len(groups[0].Cables) != 3 {
		t.Fatalf("disabled grouping = %+v, want one normal group of 3", groups)
	}
}

func TestTrefoilGroupsTriples(t *testing.T) {
	tests := []struct {
		name        string
		cables      []*tray.Cable
		wantKinds   []GroupKind
		wantLengths []int
	}{
		{
			name: "exact triple",
			cables: []*tray.Cable{
				routedCable("A", 20, "X", "Y"),
				routedCable("B", 20, "X", "Y"),
				routedCable("C", 20, "X", "Y"),
			},
			wantKinds:   []GroupKind{GroupTrefoil},
			wantLengths: []int{3},
		},
		{
			name: "remainder stays normal",
			cables: []*tray.Cable{
				routedCable("A", 20, "X", "Y"),
				routedCable("B", 20, "X", "Y"),
				routedCable("C", 20, "X", "Y"),
				routedCable("D", 20, "X", "Y"),
			},
			wantKinds:   []GroupKind{GroupTrefoil, GroupNormal},
			wantLengths: []int{3, 1},
		},
		{
			name: "missing locations never group",
			cables: []*tray.Cable{
				routedCable("A", 20, "", "Y"),
				routedCable("B", 20, "", "Y"),
				routedCable("C", 20, "", "Y"),
			},
			wantKinds:   []GroupKind{GroupNormal},
			wantLengths: []int{3},
		},
		{
			name: "two routes interleaved",
			cables: []*tray.Cable{
				routedCable("A", 20, "X", "Y"),
				routedCable("B", 20, "P", "Q"),
				routedCable("C", 20, "X", "Y"),
				routedCable("D", 20, "P", "Q"),
				routedCable("E", 20, "X", "Y"),
				routedCable("F", 20, "P", "Q"),
			},
			wantKinds:   []GroupKind{GroupTrefoil, GroupTrefoil},
			wantLengths: []int{3, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := TrefoilGroups(tt.cables, true)
			if len(groups) != len(tt.wantKinds) {
				t.Fatalf("got %d groups, want %d", len(groups), len(tt.wantKinds))
			}
			for i, g := range groups {
				if g.Kind != tt.wantKinds[i] || len(g.Cables) != tt.wantLengths[i] {
					t.Errorf("group %d = kind %v len %d, want kind %v len %d",
						i, g.Kind, len(g.Cables), tt.wantKinds[i], tt.wantLengths[i])
				}
			}
		})
	}
}

// Grouping must never drop or duplicate cables.
func TestTrefoilGroupsPermutation(t *testing.T) {
	cables := []*tray.Cable{
		routedCable("A", 20, "X", "Y"),
		routedCable("B", 18, "P", "Q"),
		routedCable("C", 20, "X", "Y"),
		routedCable("D", 16, "", ""),
		routedCable("E", 20, "X", "Y"),
		routedCable("F", 14, "P", "Q"),
		routedCable("G", 20, "X", "Y"),
	}

	groups := TrefoilGroups(cables, true)
	seen := make(map[*tray.Cable]int)
	total := 0
	for _, g := range groups {
		for _, c := range g.Cables {
			seen[c]++
			total++
		}
	}
	if total != len(cables) {
		t.Fatalf("groups contain %d cables, want %d", total, len(cables))
	}
	for _, c := range cables {
		if seen[c] != 1 {
			t.Errorf("cable %s appears %d times, want 1", c.Tag, seen[c])
		}
	}
}

func TestSolveTrefoilEqualDiameters(t *testing.T) {
	mk := func(d float64) *tray.Cable { return &tray.Cable{Diameter: d} }
	cables := [3]*tray.Cable{mk(20), mk(20), mk(20)}

	sol, ok := SolveTrefoil(cables, 2, 2) // r = 20px each, spacing 2px
	if !ok {
		t.Fatal("SolveTrefoil failed for equal diameters")
	}

	// Cluster spans the two baseline circles: 2r + (r1 + r2 + spacing).
	if want := 82.0; math.Abs(sol.Width-want) > 1e-9 {
		t.Errorf("Width = %v, want %v", sol.Width, want)
	}

	// Two circles on the baseline, the third balanced above.
	onFloor := 0
	for _, p := range sol.Positions {
		if p.onBaseline() {
			onFloor++
		}
	}
	if onFloor != 2 {
		t.Errorf("%d positions on baseline, want 2", onFloor)
	}
	if top := sol.Positions[2]; top.YOffset >= sol.Positions[0].YOffset {
		t.Errorf("third circle YOffset = %v, want above the baseline circles", top.YOffset)
	}

	// Offsets are normalized: the minimum left is zero.
	minLeft := math.Inf(1)
	for _, p := range sol.Positions {
		minLeft = math.Min(minLeft, p.Left)
	}
	if math.Abs(minLeft) > 1e-9 {
		t.Errorf("minimum Left = %v, want 0", minLeft)
	}
}

// The solved cluster is symmetric under swapping the two baseline cables.
func TestSolveTrefoilSymmetry(t *testing.T) {
	mk := func(d float64) *tray.Cable { return &tray.Cable{Diameter: d} }

	a, okA := SolveTrefoil([3]*tray.Cable{mk(10), mk(14), mk(12)}, 2, 1)
	b, okB := SolveTrefoil([3]*tray.Cable{mk(14), mk(10), mk(12)}, 2, 1)
	if !okA || !okB {
		t.Fatal("solver failed on valid input")
	}
	if math.Abs(a.Width-b.Width) > 1e-9 {
		t.Errorf("widths differ under baseline swap: %v vs %v", a.Width, b.Width)
	}
}

func TestIntersectCircles(t *testing.T) {
	tests := []struct {
		name       string
		d, ra, rb  float64
		wantOK     bool
	}{
		{"valid", 42, 42, 42, true},
		{"too far apart", 100, 10, 10, false},
		{"contained", 1, 10, 2, false},
		{"zero distance", 0, 10, 10, false},
		{"touching externally", 20, 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, h, ok := intersectCircles(tt.d, tt.ra, tt.rb)
			if ok != tt.wantOK {
				t.Fatalf("intersectCircles(%v, %v, %v) ok = %v, want %v", tt.d, tt.ra, tt.rb, ok, tt.wantOK)
			}
			if ok && (math.IsNaN(a) || math.IsNaN(h) || h < 0) {
				t.Errorf("intersectCircles returned a=%v h=%v, want finite non-negative height", a, h)
			}
		})
	}
}
