package tray

import "testing"

func TestTrayUsableHeight(t *testing.T) {
	tests := []struct {
		name string
		tray Tray
		want float64
	}{
		{"explicit rung", Tray{Height: 300, RungHeight: 15}, 285},
		{"default rung", Tray{Height: 100}, 100 - DefaultRungHeight},
		{"rung taller than tray", Tray{Height: 10, RungHeight: 40}, 0},
		{"zero height", Tray{Height: 0, RungHeight: 15}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tray.UsableHeight(); got != tt.want {
				t.Errorf("UsableHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrayHasDimensions(t *testing.T) {
	tests := []struct {
		name string
		tray Tray
		want bool
	}{
		{"valid", Tray{Width: 400, Height: 300}, true},
		{"zero width", Tray{Width: 0, Height: 300}, false},
		{"zero height", Tray{Width: 400, Height: 0}, false},
		{"negative width", Tray{Width: -1, Height: 300}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tray.HasDimensions(); got != tt.want {
				t.Errorf("HasDimensions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCableEffectiveDiameter(t *testing.T) {
	if got := (&Cable{Diameter: 22.5}).EffectiveDiameter(); got != 22.5 {
		t.Errorf("EffectiveDiameter() = %v, want 22.5", got)
	}
	if got := (&Cable{}).EffectiveDiameter(); got != MinDiameter {
		t.Errorf("EffectiveDiameter() = %v, want %v", got, MinDiameter)
	}
	if got := (&Cable{Diameter: -3}).EffectiveDiameter(); got != MinDiameter {
		t.Errorf("EffectiveDiameter() = %v, want %v", got, MinDiameter)
	}
}

func TestCableIsGrounding(t *testing.T) {
	tests := []struct {
		purpose string
		want    bool
	}{
		{"Grounding", true},
		{"MV ground conductor", true},
		{"GROUND", true},
		{"Power feed", false},
		{"", false},
	}
	for _, tt := range tests {
		c := &Cable{Purpose: tt.purpose}
		if got := c.IsGrounding(); got != tt.want {
			t.Errorf("IsGrounding() with purpose %q = %v, want %v", tt.purpose, got, tt.want)
		}
	}
}

func TestCableRoute(t *testing.T) {
	c := &Cable{FromLocation: "MCC-1", ToLocation: "PUMP-3"}
	key, ok := c.Route()
	if !ok || key == "" {
		t.Fatalf("Route() = %q, %v, want non-empty key and ok", key, ok)
	}

	same := &Cable{FromLocation: "MCC-1", ToLocation: "PUMP-3"}
	if k2, _ := same.Route(); k2 != key {
		t.Errorf("identical routes produced different keys: %q vs %q", key, k2)
	}

	if _, ok := (&Cable{FromLocation: "MCC-1"}).Route(); ok {
		t.Error("Route() with missing destination should not be ok")
	}
	if _, ok := (&Cable{ToLocation: "PUMP-3"}).Route(); ok {
		t.Error("Route() with missing origin should not be ok")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"power", CategoryPower, false},
		{"Control", CategoryControl, false},
		{"mv", CategoryMediumVoltage, false},
		{"medium-voltage", CategoryMediumVoltage, false},
		{" vfd ", CategoryVFD, false},
		{"lighting", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
