package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA colour with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Common colours.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
	ColorBlue  = RGB(0, 0, 255)
)

// RGB creates an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA creates a colour with alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustHex is ParseHex for compile-time constants. It panics on bad input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// WithAlpha returns the colour with alpha set from a 0..1 fraction.
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

// Darken blends the colour toward black in Lab space by amount (0..1).
// Alpha is preserved.
func (c Color) Darken(amount float64) Color {
	if amount <= 0 {
		return c
	}
	d := c.colorful().BlendLab(colorful.Color{}, clamp01(amount)).Clamped()
	r, g, b := d.RGB255()
	return Color{r, g, b, c.A}
}

// Floats returns the components in the 0..1 range.
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// NRGBA converts to the standard library colour type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
