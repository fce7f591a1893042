package scene

import (
	"fmt"
	"math"
)

// Variant names a preset of the tree. Presets only change defaults; every
// field can still be overridden afterwards.
type Variant string

const (
	// VariantClassic fills the viewport and turns the star with the tree.
	VariantClassic Variant = "classic"
	// VariantFixed draws onto a fixed-size canvas.
	VariantFixed Variant = "fixed"
	// VariantPathStar keeps the star facing the viewer, tip up.
	VariantPathStar Variant = "path-star"
)

// FixedCanvasWidth and FixedCanvasHeight are the canvas size of VariantFixed.
const (
	FixedCanvasWidth  = 800
	FixedCanvasHeight = 720
)

// Variants lists the known presets.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantFixed, VariantPathStar}
}

// ParseVariant parses a preset name; empty means classic.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantClassic, nil
	}
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// Apply adjusts cfg for the variant.
func (v Variant) Apply(cfg *Config) {
	switch v {
	case VariantFixed:
		cfg.AnchorY = 0.9
	case VariantPathStar:
		cfg.StarStyle = StarPath
		cfg.StarRotation = -math.Pi / 2
	}
}

// CanvasSize returns the fixed canvas size for the variant, or ok=false when
// the canvas follows the viewport.
func (v Variant) CanvasSize() (width, height int, ok bool) {
	if v == VariantFixed {
		return FixedCanvasWidth, FixedCanvasHeight, true
	}
	return 0, 0, false
}
