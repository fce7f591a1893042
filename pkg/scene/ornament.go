package scene

import (
	"math/rand/v2"

	"github.com/taigrr/xmastree/pkg/math3d"
	"github.com/taigrr/xmastree/pkg/render"
)

// Ornament is a bauble hung on a foliage layer. Ornaments are generated once
// and never change; only their depth is re-rolled each frame.
type Ornament struct {
	Layer   int
	X       float64 // horizontal offset from the trunk axis
	YOffset float64 // distance up from the bottom of the hanging band
	Radius  float64
	Color   render.Color
}

// Disc is a perspective-scaled circle placed for one frame.
type Disc struct {
	Center math3d.Vec3
	Radius float64
	Color  render.Color
}

// GenerateOrnaments scatters OrnamentsPerLayer ornaments across each layer.
func GenerateOrnaments(cfg Config, rng *rand.Rand) []Ornament {
	out := make([]Ornament, 0, cfg.Layers*cfg.OrnamentsPerLayer)
	for i := range cfg.Layers {
		width := cfg.LayerWidth(i)
		for range cfg.OrnamentsPerLayer {
			o := Ornament{Layer: i}
			o.Radius = cfg.OrnamentRadiusMin + rng.Float64()*(cfg.OrnamentRadiusMax-cfg.OrnamentRadiusMin)
			o.X = rng.Float64()*width - width/2
			o.YOffset = rng.Float64() * cfg.LayerHeight * cfg.OrnamentSpread
			o.Color = cfg.Palette[rng.IntN(len(cfg.Palette))]
			out = append(out, o)
		}
	}
	return out
}

// Y returns the ornament's vertical position. Ornaments hang in the band
// between their layer's base and one layer height below it.
func (o Ornament) Y(cfg Config) float64 {
	return cfg.LayerBase(o.Layer) + cfg.LayerHeight - o.YOffset
}

// randomDepth draws a depth in [DepthFar, DepthNear].
func randomDepth(cfg Config, rng *rand.Rand) float64 {
	return cfg.DepthNear - rng.Float64()*(cfg.DepthNear-cfg.DepthFar)
}

// placeOrnaments positions every ornament for one frame.
func placeOrnaments(cfg Config, ornaments []Ornament, rng *rand.Rand) []Disc {
	out := make([]Disc, len(ornaments))
	for i, o := range ornaments {
		out[i] = Disc{
			Center: math3d.V3(o.X, o.Y(cfg), randomDepth(cfg, rng)),
			Radius: o.Radius,
			Color:  o.Color,
		}
	}
	return out
}

// scatterLights generates the per-frame twinkle lights.
func scatterLights(cfg Config, rng *rand.Rand) []Disc {
	out := make([]Disc, cfg.LightCount)
	height := float64(cfg.Layers) * cfg.LayerHeight
	for i := range out {
		x := rng.Float64()*cfg.MaxWidth - cfg.MaxWidth/2
		y := -cfg.TrunkHeight - rng.Float64()*height
		z := randomDepth(cfg, rng)
		alpha := cfg.LightAlphaMin + rng.Float64()*(1-cfg.LightAlphaMin)
		out[i] = Disc{
			Center: math3d.V3(x, y, z),
			Radius: cfg.LightRadius,
			Color:  cfg.LightColor.WithAlpha(alpha),
		}
	}
	return out
}
