package tray

import "testing"

func TestBuildBundles(t *testing.T) {
	cables := []*Cable{
		{Tag: "P1", Diameter: 20, Category: CategoryPower},
		{Tag: "P2", Diameter: 22, Category: CategoryPower},
		{Tag: "P3", Diameter: 7, Category: CategoryPower},
		{Tag: "C1", Diameter: 12, Category: CategoryControl},
		{Tag: "M1", Diameter: 44, Category: CategoryMediumVoltage},
		nil,
	}

	m := BuildBundles(cables)

	if got := len(m[CategoryPower][Bucket15To21]); got != 2 {
		t.Errorf("power 15.1-21mm bundle has %d cables, want 2", got)
	}
	if got := len(m[CategoryPower][BucketTo8]); got != 1 {
		t.Errorf("power <=8mm bundle has %d cables, want 1", got)
	}
	if got := len(m[CategoryControl][Bucket8To15]); got != 1 {
		t.Errorf("control 8.1-15mm bundle has %d cables, want 1", got)
	}
	if got := len(m[CategoryMediumVoltage][Bucket40To45]); got != 1 {
		t.Errorf("mv 40.1-45mm bundle has %d cables, want 1", got)
	}
	if got := m.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}

	// Order within a bundle follows input order.
	bundle := m[CategoryPower][Bucket15To21]
	if bundle[0].Tag != "P1" || bundle[1].Tag != "P2" {
		t.Errorf("bundle order = [%s %s], want [P1 P2]", bundle[0].Tag, bundle[1].Tag)
	}
}

func TestBundleMapPresent(t *testing.T) {
	m := BuildBundles([]*Cable{
		{Tag: "V1", Diameter: 10, Category: CategoryVFD},
		{Tag: "P1", Diameter: 10, Category: CategoryPower},
	})

	present := m.Present()
	if len(present) != 2 || present[0] != CategoryPower || present[1] != CategoryVFD {
		t.Errorf("Present() = %v, want [power vfd]", present)
	}
	if m.Has(CategoryControl) {
		t.Error("Has(control) = true for bundle map without control cables")
	}
}
