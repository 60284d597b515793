package layout

import (
	"math"

	"github.com/MrToKa/traylay/pkg/tray"
)

// Defaults applied when the caller leaves options or per-category
// configuration unset.
const (
	DefaultScale   = 2.0 // px per mm
	DefaultSpacing = 1.0 // mm between adjacent cables

	DefaultMaxRows    = 2
	DefaultMaxColumns = 20
)

// hexMinUsableHeight is the minimum usable tray height in mm before the
// hexagonal packer is considered for the eligible diameter buckets.
const hexMinUsableHeight = 45.0

// BundleSpacing is the horizontal gap policy between adjacent bundles,
// expressed in multiples of the bundle's largest cable diameter.
type BundleSpacing int

const (
	BundleSpacingNone         BundleSpacing = 0
	BundleSpacingOneDiameter  BundleSpacing = 1
	BundleSpacingTwoDiameters BundleSpacing = 2
)

// Config holds the per-category layout limits and toggles.
// The zero value is not useful; start from [DefaultConfig].
type Config struct {
	// MaxRows and MaxColumns bound the packing grid. Values below 1 are
	// coerced to 1.
	MaxRows    int
	MaxColumns int

	// BundleSpacing is the gap policy between adjacent bundles and chunks.
	BundleSpacing BundleSpacing

	// CableSpacing is the intra-bundle cable gap in mm. Zero falls back to
	// the engine-wide spacing option.
	CableSpacing float64

	// Trefoil enables triangular clustering of co-routed cable triples.
	Trefoil bool

	// TrefoilBundleSpacing widens the gap after trefoil clusters (and between
	// single-row columns) from plain cable spacing to the bundle spacing.
	TrefoilBundleSpacing bool

	// PhaseRotation enables the round-robin reordering of three-phase-like
	// groups. Only effective together with Trefoil.
	PhaseRotation bool
}

// DefaultConfig returns the configuration applied to a category the caller
// did not configure: 2 rows, 20 columns, two-diameter bundle spacing, no
// trefoil, no phase rotation.
func DefaultConfig() Config {
	return Config{
		MaxRows:       DefaultMaxRows,
		MaxColumns:    DefaultMaxColumns,
		BundleSpacing: BundleSpacingTwoDiameters,
	}
}

// normalized coerces limits to at least one row and one column.
func (c Config) normalized() Config {
	if c.MaxRows < 1 {
		c.MaxRows = 1
	}
	if c.MaxColumns < 1 {
		c.MaxColumns = 1
	}
	return c
}

// Options configure a single [Compute] call.
type Options struct {
	// Scale is the canvas scale in px per mm. Non-finite or non-positive
	// values fall back to [DefaultScale].
	Scale float64

	// Spacing is the cable spacing in mm applied to categories whose Config
	// does not set its own. Zero falls back to [DefaultSpacing].
	Spacing float64

	// Configs overrides the per-category configuration. Absent categories use
	// [DefaultConfig].
	Configs map[tray.Category]Config

	// Trace receives structured layout events. Nil means no tracing.
	Trace Tracer
}

// withDefaults resolves zero values.
func (o Options) withDefaults() Options {
	if o.Scale <= 0 || math.IsInf(o.Scale, 0) || math.IsNaN(o.Scale) {
		o.Scale = DefaultScale
	}
	if o.Spacing <= 0 {
		o.Spacing = DefaultSpacing
	}
	if o.Trace == nil {
		o.Trace = NopTracer{}
	}
	return o
}

// configFor returns the normalized configuration for a category.
func (o Options) configFor(cat tray.Category) Config {
	if cfg, ok := o.Configs[cat]; ok {
		return cfg.normalized()
	}
	return DefaultConfig().normalized()
}

// spacingFor returns the effective cable spacing in mm for a category.
func (o Options) spacingFor(cfg Config) float64 {
	if cfg.CableSpacing > 0 {
		return cfg.CableSpacing
	}
	return o.Spacing
}
