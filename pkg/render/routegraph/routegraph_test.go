package routegraph

import (
	"strings"
	"testing"

	"github.com/MrToKa/traylay/pkg/tray"
)

func routed(tag string, cat tray.Category, from, to string) *tray.Cable {
	return &tray.Cable{Tag: tag, Diameter: 10, Category: cat, FromLocation: from, ToLocation: to}
}

func TestToDOT(t *testing.T) {
	cables := []*tray.Cable{
		routed("P1", tray.CategoryPower, "MCC-1", "PUMP-1"),
		routed("P2", tray.CategoryPower, "MCC-1", "PUMP-1"),
		routed("C1", tray.CategoryControl, "MCC-1", "PLC-1"),
		{Tag: "X1", Diameter: 10}, // no route, skipped
		nil,
	}

	dot := ToDOT(cables, Options{})

	if !strings.HasPrefix(dot, "digraph routes {") {
		t.Error("missing digraph header")
	}
	for _, want := range []string{
		`"MCC-1";`,
		`"PUMP-1";`,
		`"PLC-1";`,
		`"MCC-1" -> "PUMP-1" [label="2 cables"];`,
		`"MCC-1" -> "PLC-1" [label="1 cable"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "X1") {
		t.Error("routeless cable leaked into output")
	}
}

func TestToDOTDetailed(t *testing.T) {
	cables := []*tray.Cable{
		routed("P1", tray.CategoryPower, "A", "B"),
		routed("C1", tray.CategoryControl, "A", "B"),
	}

	dot := ToDOT(cables, Options{Detailed: true})
	if !strings.Contains(dot, "power: 1") || !strings.Contains(dot, "control: 1") {
		t.Errorf("detailed label missing category breakdown:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	cables := []*tray.Cable{
		routed("B1", tray.CategoryPower, "B", "C"),
		routed("A1", tray.CategoryPower, "A", "B"),
	}
	first := ToDOT(cables, Options{})
	for range 5 {
		if got := ToDOT(cables, Options{}); got != first {
			t.Fatal("ToDOT output varies between calls")
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="2in" height="1in" viewBox="0.00 0.00 200.00 100.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `width="200" height="100"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if strings.Contains(out, "2in") {
		t.Errorf("original dimensions survived: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("unmatched input modified: %s", got)
	}
}
