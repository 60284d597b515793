package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/tray"
)

const sampleTOML = `
scale = 4.0
spacing = 2.0

[power]
max_rows = 3
max_columns = 10
bundle_spacing = 1
trefoil = true
trefoil_bundle_spacing = true
phase_rotation = true

[control]
max_rows = 4
bundle_spacing = 0

[mv]
cable_spacing = 5.0
`

func TestParseConfig(t *testing.T) {
	opts, err := ParseConfig([]byte(sampleTOML))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if opts.Scale != 4.0 {
		t.Errorf("Scale = %v, want 4.0", opts.Scale)
	}
	if opts.Spacing != 2.0 {
		t.Errorf("Spacing = %v, want 2.0", opts.Spacing)
	}

	power := opts.Configs[tray.CategoryPower]
	if power.MaxRows != 3 || power.MaxColumns != 10 {
		t.Errorf("power limits = %d x %d, want 3 x 10", power.MaxRows, power.MaxColumns)
	}
	if power.BundleSpacing != layout.BundleSpacingOneDiameter {
		t.Errorf("power BundleSpacing = %v, want one diameter", power.BundleSpacing)
	}
	if !power.Trefoil || !power.TrefoilBundleSpacing || !power.PhaseRotation {
		t.Error("power trefoil toggles not set")
	}

	control := opts.Configs[tray.CategoryControl]
	if control.MaxRows != 4 {
		t.Errorf("control MaxRows = %d, want 4", control.MaxRows)
	}
	// Unset max_columns keeps the default.
	if control.MaxColumns != layout.DefaultMaxColumns {
		t.Errorf("control MaxColumns = %d, want default %d", control.MaxColumns, layout.DefaultMaxColumns)
	}
	if control.BundleSpacing != layout.BundleSpacingNone {
		t.Errorf("control BundleSpacing = %v, want none", control.BundleSpacing)
	}

	mv := opts.Configs[tray.CategoryMediumVoltage]
	if mv.CableSpacing != 5.0 {
		t.Errorf("mv CableSpacing = %v, want 5.0", mv.CableSpacing)
	}
	// Unset bundle_spacing keeps the default.
	if mv.BundleSpacing != layout.BundleSpacingTwoDiameters {
		t.Errorf("mv BundleSpacing = %v, want two diameters", mv.BundleSpacing)
	}

	if _, ok := opts.Configs[tray.CategoryVFD]; ok {
		t.Error("vfd config present without a [vfd] section")
	}
}

func TestParseConfigUnknownSection(t *testing.T) {
	_, err := ParseConfig([]byte("[telecom]\nmax_rows = 1\n"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestParseConfigBadTOML(t *testing.T) {
	_, err := ParseConfig([]byte("scale = = 2"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestParseConfigBundleSpacingClamped(t *testing.T) {
	opts, err := ParseConfig([]byte("[power]\nbundle_spacing = 9\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if got := opts.Configs[tray.CategoryPower].BundleSpacing; got != layout.BundleSpacingTwoDiameters {
		t.Errorf("BundleSpacing = %v, want clamp to two diameters", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if opts.Scale != 4.0 {
		t.Errorf("Scale = %v, want 4.0", opts.Scale)
	}
}
