package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/tray"
)

const sampleJSON = `{
  "name": "Plant A",
  "trays": [
    {"name": "T-100", "width": 400, "height": 300, "rung_height": 15},
    {"name": "T-200", "width": 200, "height": 100}
  ],
  "cables": [
    {"tray": "T-100", "tag": "P1", "diameter": 20, "category": "power", "from": "MCC-1", "to": "PUMP-1"},
    {"tray": "T-100", "tag": "C1", "diameter": 8, "category": "control"},
    {"tray": "T-200", "tag": "M1", "diameter": 35, "purpose": "MV feeder", "category": "mv"}
  ]
}`

func TestRead(t *testing.T) {
	p, err := Read(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if p.Name != "Plant A" {
		t.Errorf("Name = %q, want %q", p.Name, "Plant A")
	}
	if p.ID == "" {
		t.Error("missing generated project ID")
	}
	if len(p.Trays) != 2 {
		t.Fatalf("%d trays, want 2", len(p.Trays))
	}
	if p.CableCount() != 3 {
		t.Errorf("CableCount = %d, want 3", p.CableCount())
	}

	tr, ok := p.Tray("T-100")
	if !ok {
		t.Fatal("T-100 not found")
	}
	if tr.RungHeight != 15 {
		t.Errorf("RungHeight = %v, want 15", tr.RungHeight)
	}
	if tr.ID == "" {
		t.Error("missing generated tray ID")
	}

	cables := p.Cables("T-100")
	if len(cables) != 2 {
		t.Fatalf("%d cables on T-100, want 2", len(cables))
	}
	if cables[0].Category != tray.CategoryPower {
		t.Errorf("first cable category = %v, want power", cables[0].Category)
	}
	if cables[0].ID == "" {
		t.Error("missing generated cable ID")
	}

	mv := p.Cables("T-200")
	if len(mv) != 1 || mv[0].Category != tray.CategoryMediumVoltage {
		t.Fatalf("T-200 cables = %+v, want one mv cable", mv)
	}

	if got := len(p.AllCables()); got != 3 {
		t.Errorf("AllCables = %d, want 3", got)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		code errors.Code
	}{
		{
			"duplicate tray",
			`{"name":"x","trays":[{"name":"T1","width":1,"height":1},{"name":"T1","width":1,"height":1}],"cables":[]}`,
			errors.ErrCodeInvalidProject,
		},
		{
			"negative dimensions",
			`{"name":"x","trays":[{"name":"T1","width":-5,"height":1}],"cables":[]}`,
			errors.ErrCodeInvalidDimensions,
		},
		{
			"unknown tray reference",
			`{"name":"x","trays":[{"name":"T1","width":1,"height":1}],"cables":[{"tray":"T9","tag":"P1","diameter":10,"category":"power"}]}`,
			errors.ErrCodeTrayNotFound,
		},
		{
			"diameter below minimum",
			`{"name":"x","trays":[{"name":"T1","width":1,"height":1}],"cables":[{"tray":"T1","tag":"P1","diameter":0.5,"category":"power"}]}`,
			errors.ErrCodeInvalidDiameter,
		},
		{
			"bad category",
			`{"name":"x","trays":[{"name":"T1","width":1,"height":1}],"cables":[{"tray":"T1","tag":"P1","diameter":10,"category":"telecom"}]}`,
			errors.ErrCodeInvalidCategory,
		},
		{
			"unknown field",
			`{"name":"x","voltage":42,"trays":[],"cables":[]}`,
			errors.ErrCodeInvalidProject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := p.String(); !strings.Contains(got, "2 trays") || !strings.Contains(got, "3 cables") {
		t.Errorf("String() = %q", got)
	}
}
