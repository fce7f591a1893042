// Package scene assembles the rotating Christmas tree: trunk, foliage layers,
// ornaments, twinkling lights and the star, drawn back to front each frame.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/xmastree/pkg/math3d"
	"github.com/taigrr/xmastree/pkg/render"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid scene config")

// StarStyle selects how the star at the apex is built.
type StarStyle int

const (
	// StarPolygon projects every outline vertex, so the star turns with the tree.
	StarPolygon StarStyle = iota
	// StarPath projects the centre only and draws the outline in screen space.
	StarPath
)

func (s StarStyle) String() string {
	switch s {
	case StarPolygon:
		return "polygon"
	case StarPath:
		return "path"
	default:
		return fmt.Sprintf("StarStyle(%d)", int(s))
	}
}

// ParseStarStyle parses "polygon" or "path".
func ParseStarStyle(s string) (StarStyle, error) {
	switch s {
	case "polygon", "":
		return StarPolygon, nil
	case "path":
		return StarPath, nil
	default:
		return 0, fmt.Errorf("%w: unknown star style %q", ErrInvalidConfig, s)
	}
}

// Config holds the scene constants. Lengths are in scene units, which equal
// pixels at perspective scale 1. Y grows downward; the trunk base sits at y=0.
type Config struct {
	TrunkWidth  float64
	TrunkHeight float64
	FrontZ      float64 // front plane of trunk and foliage
	BackZ       float64 // back plane of trunk and foliage

	Layers      int
	MaxWidth    float64 // width of the lowest layer; higher layers taper linearly
	LayerHeight float64

	OrnamentsPerLayer int
	OrnamentRadiusMin float64
	OrnamentRadiusMax float64
	OrnamentSpread    float64 // fraction of LayerHeight used for vertical scatter
	Palette           []render.Color

	LightCount    int
	LightRadius   float64
	LightAlphaMin float64
	LightColor    render.Color

	// Ornaments and lights get a depth in [DepthFar, DepthNear] every frame.
	DepthNear float64
	DepthFar  float64

	StarSize       float64
	StarInnerRatio float64
	StarTips       int
	StarZ          float64
	StarOffset     float64 // distance above the top layer apex
	StarRotation   float64 // angle of the first tip, radians
	StarStyle      StarStyle
	StarColor      render.Color

	// Anchor is the scene origin as a fraction of the surface size.
	AnchorX, AnchorY float64
	FOV              float64

	Background render.Color
	Trunk      render.BoxColors
	Foliage    render.PrismColors
}

// DefaultPalette is the ornament colour set.
func DefaultPalette() []render.Color {
	hexes := []string{
		"#FF5733", "#33FF57", "#3357FF", "#F333FF",
		"#FF33A8", "#33FFF5", "#FFFF33", "#FFA500",
	}
	out := make([]render.Color, len(hexes))
	for i, h := range hexes {
		out[i] = render.MustHex(h)
	}
	return out
}

// DefaultConfig returns the classic tree.
func DefaultConfig() Config {
	return Config{
		TrunkWidth:  40,
		TrunkHeight: 180,
		FrontZ:      -20,
		BackZ:       -35,

		Layers:      6,
		MaxWidth:    280,
		LayerHeight: 55,

		OrnamentsPerLayer: 6,
		OrnamentRadiusMin: 4,
		OrnamentRadiusMax: 8,
		OrnamentSpread:    0.8,
		Palette:           DefaultPalette(),

		LightCount:    120,
		LightRadius:   2,
		LightAlphaMin: 0.3,
		LightColor:    render.ColorWhite,

		DepthNear: -20,
		DepthFar:  -40,

		StarSize:       20,
		StarInnerRatio: 0.4,
		StarTips:       5,
		StarZ:          -35,
		StarOffset:     55,
		StarRotation:   0,
		StarStyle:      StarPolygon,
		StarColor:      render.MustHex("#FFD700"),

		AnchorX: 0.5,
		AnchorY: 0.78,
		FOV:     math3d.DefaultFOV,

		Background: render.MustHex("#0B1026"),
		Trunk: render.BoxColors{
			Front:     render.MustHex("#8B4513"),
			Back:      render.MustHex("#5D3A1A"),
			TopBottom: render.MustHex("#6B3E11"),
			Sides:     render.MustHex("#724214"),
		},
		Foliage: render.PrismColors{
			Front: render.MustHex("#0D500D"),
			Back:  render.MustHex("#0A3A0A"),
			Side:  render.MustHex("#0C6B0C"),
		},
	}
}

// Validate reports the first constant that would produce broken geometry.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"trunk width", c.TrunkWidth},
		{"trunk height", c.TrunkHeight},
		{"max width", c.MaxWidth},
		{"layer height", c.LayerHeight},
		{"fov", c.FOV},
		{"star size", c.StarSize},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return bad("%s must be positive, got %v", p.name, p.v)
		}
	}
	switch {
	case c.Layers < 1:
		return bad("layers must be at least 1, got %d", c.Layers)
	case c.OrnamentsPerLayer < 0:
		return bad("ornaments per layer must not be negative, got %d", c.OrnamentsPerLayer)
	case c.OrnamentsPerLayer > 0 && len(c.Palette) == 0:
		return bad("ornament palette is empty")
	case c.OrnamentRadiusMin < 0 || c.OrnamentRadiusMax < c.OrnamentRadiusMin:
		return bad("ornament radius range [%v, %v] is invalid", c.OrnamentRadiusMin, c.OrnamentRadiusMax)
	case c.OrnamentSpread < 0 || c.OrnamentSpread > 1:
		return bad("ornament spread must be in [0, 1], got %v", c.OrnamentSpread)
	case c.LightCount < 0:
		return bad("light count must not be negative, got %d", c.LightCount)
	case c.LightAlphaMin < 0 || c.LightAlphaMin > 1:
		return bad("light alpha floor must be in [0, 1], got %v", c.LightAlphaMin)
	case c.DepthFar > c.DepthNear:
		return bad("depth range far %v is in front of near %v", c.DepthFar, c.DepthNear)
	case c.BackZ > c.FrontZ:
		return bad("back plane %v is in front of front plane %v", c.BackZ, c.FrontZ)
	case c.StarTips < 2:
		return bad("star needs at least 2 tips, got %d", c.StarTips)
	case c.StarInnerRatio <= 0 || c.StarInnerRatio > 1:
		return bad("star inner ratio must be in (0, 1], got %v", c.StarInnerRatio)
	case c.StarStyle != StarPolygon && c.StarStyle != StarPath:
		return bad("unknown star style %v", c.StarStyle)
	}
	return nil
}

// LayerWidth returns the base width of foliage layer i (0 is the lowest).
func (c Config) LayerWidth(i int) float64 {
	return c.MaxWidth - float64(i)*(c.MaxWidth/float64(c.Layers))
}

// LayerBase returns the y of the base edge of layer i.
func (c Config) LayerBase(i int) float64 {
	return -c.TrunkHeight - float64(i)*c.LayerHeight
}

// Apex returns the y of the top layer's tip.
func (c Config) Apex() float64 {
	return c.LayerBase(c.Layers)
}

// StarCenter returns the centre of the star above the apex.
func (c Config) StarCenter() math3d.Vec3 {
	return math3d.V3(0, c.Apex()-c.StarOffset, c.StarZ)
}
