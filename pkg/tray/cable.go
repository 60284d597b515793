package tray

import (
	"fmt"
	"strings"
)

// MinDiameter is the fallback diameter in mm used for cables with a missing
// or non-positive diameter.
const MinDiameter = 1.0

// Category is a cable purpose category. The set is closed: the layout engine
// switches over it exhaustively, so adding a category means touching every
// switch.
type Category int

const (
	CategoryPower Category = iota
	CategoryControl
	CategoryMediumVoltage
	CategoryVFD
)

// Categories lists all categories in declaration order.
func Categories() []Category {
	return []Category{CategoryPower, CategoryControl, CategoryMediumVoltage, CategoryVFD}
}

// String returns the short name used in config files and CLI output.
func (c Category) String() string {
	switch c {
	case CategoryPower:
		return "power"
	case CategoryControl:
		return "control"
	case CategoryMediumVoltage:
		return "mv"
	case CategoryVFD:
		return "vfd"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory converts a short name back into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "power":
		return CategoryPower, nil
	case "control":
		return CategoryControl, nil
	case "mv", "medium-voltage", "mediumvoltage":
		return CategoryMediumVoltage, nil
	case "vfd":
		return CategoryVFD, nil
	}
	return 0, fmt.Errorf("unknown category %q (must be power, control, mv, or vfd)", s)
}

// Cable is a single cable assigned to a tray. Diameter is millimeters.
type Cable struct {
	ID           string   `json:"id,omitempty"`
	Tag          string   `json:"tag"`
	Diameter     float64  `json:"diameter"`
	Purpose      string   `json:"purpose,omitempty"`
	Category     Category `json:"category"`
	FromLocation string   `json:"from_location,omitempty"`
	ToLocation   string   `json:"to_location,omitempty"`
}

// EffectiveDiameter returns the cable diameter, substituting [MinDiameter]
// when the recorded value is missing or non-positive.
func (c *Cable) EffectiveDiameter() float64 {
	if c.Diameter > 0 {
		return c.Diameter
	}
	return MinDiameter
}

// IsGrounding reports whether the cable is a grounding cable, detected by a
// case-insensitive "ground" substring in the purpose text.
func (c *Cable) IsGrounding() bool {
	return strings.Contains(strings.ToLower(c.Purpose), "ground")
}

// Route returns the origin/destination pair as a single key. ok is false when
// either location is missing; such cables never participate in trefoil
// grouping.
func (c *Cable) Route() (key string, ok bool) {
	if c.FromLocation == "" || c.ToLocation == "" {
		return "", false
	}
	return c.FromLocation + "\x00" + c.ToLocation, true
}
