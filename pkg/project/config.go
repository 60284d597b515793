package project

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/tray"
)

// The TOML layout configuration has top-level engine options and one
// table per category:
//
//	scale = 2.0
//	spacing = 1.0
//
//	[power]
//	max_rows = 2
//	max_columns = 20
//	bundle_spacing = 2
//	trefoil = true
//	trefoil_bundle_spacing = true
//	phase_rotation = true
//
// Section names are category names ("power", "control", "mv", "vfd").
type categoryTable struct {
	MaxRows              int     `toml:"max_rows"`
	MaxColumns           int     `toml:"max_columns"`
	BundleSpacing        *int    `toml:"bundle_spacing"`
	CableSpacing         float64 `toml:"cable_spacing"`
	Trefoil              bool    `toml:"trefoil"`
	TrefoilBundleSpacing bool    `toml:"trefoil_bundle_spacing"`
	PhaseRotation        bool    `toml:"phase_rotation"`
}

// LoadConfig reads layout options from a TOML file.
func LoadConfig(path string) (layout.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return layout.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes layout options from TOML bytes. Unknown sections
// are rejected; numeric limits are coerced by the layout engine.
func ParseConfig(data []byte) (layout.Options, error) {
	var doc map[string]toml.Primitive
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return layout.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse layout config")
	}

	opts := layout.Options{
		Configs: make(map[tray.Category]layout.Config),
	}

	for name, prim := range doc {
		switch name {
		case "scale":
			if err := meta.PrimitiveDecode(prim, &opts.Scale); err != nil {
				return layout.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "scale")
			}
			continue
		case "spacing":
			if err := meta.PrimitiveDecode(prim, &opts.Spacing); err != nil {
				return layout.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "spacing")
			}
			continue
		}

		cat, err := tray.ParseCategory(name)
		if err != nil {
			return layout.Options{}, errors.New(errors.ErrCodeInvalidConfig,
				"unknown section [%s] in layout config", name)
		}

		var tbl categoryTable
		if err := meta.PrimitiveDecode(prim, &tbl); err != nil {
			return layout.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err,
				"section [%s]", name)
		}
		opts.Configs[cat] = toLayoutConfig(tbl)
	}

	return opts, nil
}

func toLayoutConfig(tbl categoryTable) layout.Config {
	cfg := layout.DefaultConfig()
	if tbl.MaxRows != 0 {
		cfg.MaxRows = tbl.MaxRows
	}
	if tbl.MaxColumns != 0 {
		cfg.MaxColumns = tbl.MaxColumns
	}
	if tbl.BundleSpacing != nil {
		cfg.BundleSpacing = clampBundleSpacing(*tbl.BundleSpacing)
	}
	cfg.CableSpacing = tbl.CableSpacing
	cfg.Trefoil = tbl.Trefoil
	cfg.TrefoilBundleSpacing = tbl.TrefoilBundleSpacing
	cfg.PhaseRotation = tbl.PhaseRotation
	return cfg
}

func clampBundleSpacing(v int) layout.BundleSpacing {
	switch {
	case v <= 0:
		return layout.BundleSpacingNone
	case v >= 2:
		return layout.BundleSpacingTwoDiameters
	default:
		return layout.BundleSpacingOneDiameter
	}
}
