package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/xmastree/pkg/render"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLayerGeometry(t *testing.T) {
	c := DefaultConfig()
	if got := c.LayerWidth(0); got != 280 {
		t.Errorf("LayerWidth(0) = %v, want 280", got)
	}
	if got := c.LayerWidth(3); math.Abs(got-140) > 1e-9 {
		t.Errorf("LayerWidth(3) = %v, want 140", got)
	}
	if got := c.LayerBase(0); got != -180 {
		t.Errorf("LayerBase(0) = %v, want -180", got)
	}
	if got := c.Apex(); got != -510 {
		t.Errorf("Apex() = %v, want -510", got)
	}
	if got := c.StarCenter(); got.Y != -565 || got.Z != -35 {
		t.Errorf("StarCenter() = %v, want y=-565 z=-35", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero trunk width", func(c *Config) { c.TrunkWidth = 0 }},
		{"NaN fov", func(c *Config) { c.FOV = math.NaN() }},
		{"infinite layer height", func(c *Config) { c.LayerHeight = math.Inf(1) }},
		{"no layers", func(c *Config) { c.Layers = 0 }},
		{"negative ornaments", func(c *Config) { c.OrnamentsPerLayer = -1 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"inverted radius range", func(c *Config) { c.OrnamentRadiusMin, c.OrnamentRadiusMax = 8, 4 }},
		{"spread above one", func(c *Config) { c.OrnamentSpread = 1.5 }},
		{"negative lights", func(c *Config) { c.LightCount = -3 }},
		{"alpha floor above one", func(c *Config) { c.LightAlphaMin = 2 }},
		{"inverted depth range", func(c *Config) { c.DepthNear, c.DepthFar = -40, -20 }},
		{"back plane in front", func(c *Config) { c.FrontZ, c.BackZ = -35, -20 }},
		{"one tip star", func(c *Config) { c.StarTips = 1 }},
		{"zero inner ratio", func(c *Config) { c.StarInnerRatio = 0 }},
		{"unknown star style", func(c *Config) { c.StarStyle = StarStyle(7) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestEmptyPaletteAllowedWithoutOrnaments(t *testing.T) {
	c := DefaultConfig()
	c.OrnamentsPerLayer = 0
	c.Palette = []render.Color{}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestParseStarStyle(t *testing.T) {
	for _, s := range []StarStyle{StarPolygon, StarPath} {
		got, err := ParseStarStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStarStyle(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStarStyle("comet"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseStarStyle(comet) error = %v, want ErrInvalidConfig", err)
	}
}

func TestVariants(t *testing.T) {
	if v, err := ParseVariant(""); err != nil || v != VariantClassic {
		t.Errorf("ParseVariant(\"\") = %v, %v", v, err)
	}
	if _, err := ParseVariant("wreath"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseVariant(wreath) error = %v, want ErrInvalidConfig", err)
	}

	c := DefaultConfig()
	VariantPathStar.Apply(&c)
	if c.StarStyle != StarPath || c.StarRotation != -math.Pi/2 {
		t.Errorf("path-star gave style %v rotation %v", c.StarStyle, c.StarRotation)
	}

	c = DefaultConfig()
	VariantFixed.Apply(&c)
	if c.AnchorY != 0.9 {
		t.Errorf("fixed AnchorY = %v, want 0.9", c.AnchorY)
	}
	if w, h, ok := VariantFixed.CanvasSize(); !ok || w != FixedCanvasWidth || h != FixedCanvasHeight {
		t.Errorf("fixed CanvasSize = %d, %d, %v", w, h, ok)
	}
	if _, _, ok := VariantClassic.CanvasSize(); ok {
		t.Error("classic should follow the viewport")
	}
}
