// Package snow animates the ambient layer drawn over the tree: falling
// snowflakes and coloured decorations. Positions are fractions of the
// viewport so every host can place them in its own units.
package snow

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/taigrr/xmastree/pkg/math3d"
	"github.com/taigrr/xmastree/pkg/render"
)

// Kind separates snowflakes from decorations.
type Kind int

const (
	KindFlake Kind = iota
	KindDecoration
)

// FlakeGlyph is the glyph used for every snowflake.
const FlakeGlyph = "❄"

// DecorationGlyphs are the decoration shapes.
var DecorationGlyphs = []string{"🌟", "⭐", "🎈", "🎊", "🥟"}

// DecorationPalette are the decoration tints.
var DecorationPalette = []render.Color{
	render.MustHex("#FF5733"),
	render.MustHex("#33FF57"),
	render.MustHex("#3357FF"),
	render.MustHex("#F333FF"),
	render.MustHex("#FFFF33"),
}

// Config sizes the field.
type Config struct {
	Flakes      int
	Decorations int
	// EntryMargin is how far above the top edge decorations start, as a
	// fraction of the viewport height.
	EntryMargin float64
}

// DefaultConfig matches the classic scene: 100 flakes and 30 decorations.
func DefaultConfig() Config {
	return Config{Flakes: 100, Decorations: 30, EntryMargin: 0.03}
}

// Particle is a single item with a fixed schedule.
type Particle struct {
	Kind     Kind
	Glyph    string
	X        float64 // 0..1 across the viewport
	Top      float64 // starting y fraction
	Size     float64 // nominal pixel size
	Opacity  float64
	Color    render.Color
	Duration time.Duration // one full fall
	Delay    time.Duration // time before the first fall starts
}

// Sprite is a particle placed at a point in time.
type Sprite struct {
	Kind    Kind
	Glyph   string
	Pos     math3d.Vec2 // viewport fractions; y grows downward
	Size    float64
	Opacity float64
	Color   render.Color
}

// Field holds every particle. It is immutable once built.
type Field struct {
	Particles []Particle
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// NewField generates a field from rng.
func NewField(cfg Config, rng *rand.Rand) *Field {
	f := &Field{Particles: make([]Particle, 0, max(cfg.Flakes, 0)+max(cfg.Decorations, 0))}
	for range cfg.Flakes {
		f.Particles = append(f.Particles, Particle{
			Kind:     KindFlake,
			Glyph:    FlakeGlyph,
			X:        rng.Float64(),
			Top:      rng.Float64(),
			Opacity:  rng.Float64(),
			Size:     between(rng, 10, 20),
			Color:    render.ColorWhite,
			Duration: seconds(between(rng, 5, 10)),
			Delay:    seconds(between(rng, 0, 5)),
		})
	}
	for range cfg.Decorations {
		f.Particles = append(f.Particles, Particle{
			Kind:     KindDecoration,
			Glyph:    DecorationGlyphs[rng.IntN(len(DecorationGlyphs))],
			Color:    DecorationPalette[rng.IntN(len(DecorationPalette))],
			X:        rng.Float64(),
			Top:      -cfg.EntryMargin,
			Opacity:  1,
			Size:     between(rng, 15, 30),
			Duration: seconds(between(rng, 4, 12)),
			Delay:    seconds(between(rng, 0, 5)),
		})
	}
	return f
}

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.Particles) }

// progress returns how far through its current fall p is at t, or false
// while it is still waiting for its first fall.
func (p Particle) progress(t time.Duration) (float64, bool) {
	if t < p.Delay || p.Duration <= 0 {
		return 0, false
	}
	elapsed := (t - p.Delay) % p.Duration
	return float64(elapsed) / float64(p.Duration), true
}

// At returns the particles on screen at elapsed time t. It depends only on
// t, so hosts can skip or replay frames freely.
func (f *Field) At(t time.Duration) []Sprite {
	out := make([]Sprite, 0, len(f.Particles))
	for _, p := range f.Particles {
		prog, ok := p.progress(t)
		if !ok {
			continue
		}
		var y float64
		switch p.Kind {
		case KindFlake:
			// Flakes fall one viewport height and wrap to the top.
			y = p.Top + prog
			y -= math.Floor(y)
		default:
			y = p.Top + prog*(1-p.Top)
		}
		if y < 0 || y >= 1 {
			continue
		}
		out = append(out, Sprite{
			Kind:    p.Kind,
			Glyph:   p.Glyph,
			Pos:     math3d.V2(p.X, y),
			Size:    p.Size,
			Opacity: p.Opacity,
			Color:   p.Color,
		})
	}
	return out
}

// Draw paints sprites onto s as translucent discs. scale converts the
// nominal pixel size to surface pixels.
func Draw(s render.Surface, sprites []Sprite, scale float64) error {
	w, h := float64(s.Width()), float64(s.Height())
	for _, sp := range sprites {
		r := sp.Size * scale / 4
		if sp.Kind == KindDecoration {
			r = sp.Size * scale / 3
		}
		if err := s.FillCircle(sp.Pos.X*w, sp.Pos.Y*h, r, sp.Color.WithAlpha(sp.Opacity)); err != nil {
			return err
		}
	}
	return nil
}
