package scene

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/taigrr/xmastree/pkg/math3d"
	"github.com/taigrr/xmastree/pkg/render"
)

// ErrNoSurface is returned when DrawFrame is given no surface to draw on.
var ErrNoSurface = errors.New("no drawing surface")

// ornamentStream separates the ornament layout source from per-frame noise.
const ornamentStream = 0x6f726e616d656e74

// Renderer draws the tree. Everything it holds is fixed at construction and
// only read afterwards.
type Renderer struct {
	cfg       Config
	seed      uint64
	proj      math3d.Projector
	ornaments []Ornament
	trunk     render.Box
	layers    []render.Prism
}

// NewRenderer validates cfg, lays out the static geometry and generates the
// ornaments from seed.
func NewRenderer(cfg Config, seed uint64) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Palette = slices.Clone(cfg.Palette)
	r := &Renderer{
		cfg:  cfg,
		seed: seed,
		proj: math3d.NewProjector(cfg.FOV),
	}
	r.trunk = render.NewBox(-cfg.TrunkWidth/2, -cfg.TrunkHeight, cfg.TrunkWidth/2, 0, cfg.FrontZ, cfg.BackZ)
	r.layers = make([]render.Prism, cfg.Layers)
	for i := range r.layers {
		half := cfg.LayerWidth(i) / 2
		base := cfg.LayerBase(i)
		r.layers[i] = render.NewPrism(
			math3d.V3(0, base-cfg.LayerHeight, 0),
			math3d.V3(-half, base, 0),
			math3d.V3(half, base, 0),
			cfg.FrontZ, cfg.BackZ,
		)
	}
	r.ornaments = GenerateOrnaments(cfg, rand.New(rand.NewPCG(seed, ornamentStream)))
	return r, nil
}

// Config returns the scene constants.
func (r *Renderer) Config() Config { return r.cfg }

// Seed returns the seed the renderer was built with.
func (r *Renderer) Seed() uint64 { return r.seed }

// Projector returns the projection used for every draw.
func (r *Renderer) Projector() math3d.Projector { return r.proj }

// Ornaments returns a copy of the persisted ornaments.
func (r *Renderer) Ornaments() []Ornament { return slices.Clone(r.ornaments) }

// frameNoise is the random source for one frame's ornament depths and lights.
func (r *Renderer) frameNoise(f Frame) *rand.Rand {
	return rand.New(rand.NewPCG(r.seed, f.Index))
}

// FrameDiscs returns the ornament and light discs for f. The same frame
// always yields the same discs.
func (r *Renderer) FrameDiscs(f Frame) (ornaments, lights []Disc) {
	rng := r.frameNoise(f)
	ornaments = placeOrnaments(r.cfg, r.ornaments, rng)
	lights = scatterLights(r.cfg, rng)
	return ornaments, lights
}

// StarOutline returns the star polygon in scene space.
func (r *Renderer) StarOutline() []math3d.Vec3 {
	c := r.cfg
	return render.StarPoints(c.StarCenter(), c.StarSize, c.StarInnerRatio, c.StarTips, c.StarRotation)
}

// Anchor returns the scene origin on a surface of the given size.
func (r *Renderer) Anchor(width, height int) (x, y float64) {
	return float64(width) * r.cfg.AnchorX, float64(height) * r.cfg.AnchorY
}

// DrawFrame paints one frame: trunk, foliage, ornaments, lights, then the
// star, each over the previous. The surface transform is restored on return.
func (r *Renderer) DrawFrame(s render.Surface, f Frame) error {
	if s == nil {
		return ErrNoSurface
	}
	c := r.cfg
	s.Clear(c.Background)
	s.Push()
	defer s.Pop()
	s.Translate(r.Anchor(s.Width(), s.Height()))

	p := render.NewPainter(s, r.proj)
	if err := p.FillBox(r.trunk, c.Trunk, f.Angle); err != nil {
		return fmt.Errorf("trunk: %w", err)
	}
	for i, layer := range r.layers {
		if err := p.FillPrism(layer, c.Foliage, f.Angle); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}

	ornaments, lights := r.FrameDiscs(f)
	for _, d := range ornaments {
		if err := p.FillDisc(d.Center, d.Radius, d.Color, f.Angle); err != nil {
			return fmt.Errorf("ornament: %w", err)
		}
	}
	for _, d := range lights {
		if err := p.FillDisc(d.Center, d.Radius, d.Color, f.Angle); err != nil {
			return fmt.Errorf("light: %w", err)
		}
	}

	var err error
	switch c.StarStyle {
	case StarPath:
		err = p.FillStarPath(c.StarCenter(), c.StarSize, c.StarInnerRatio, c.StarTips, c.StarRotation, c.StarColor, f.Angle)
	default:
		err = p.FillPolygon(r.StarOutline(), c.StarColor, f.Angle)
	}
	if err != nil {
		return fmt.Errorf("star: %w", err)
	}
	return nil
}

// Stats summarises the scene geometry.
type Stats struct {
	Faces     int // trunk and foliage faces
	Ornaments int
	Lights    int
	StarTips  int
	Height    float64 // trunk base to star tip, unprojected
}

// Stats returns counts for the info command and HUD.
func (r *Renderer) Stats() Stats {
	c := r.cfg
	top := c.Apex()
	for _, p := range r.StarOutline() {
		top = min(top, p.Y)
	}
	return Stats{
		Faces:     6 + 5*len(r.layers),
		Ornaments: len(r.ornaments),
		Lights:    c.LightCount,
		StarTips:  c.StarTips,
		Height:    -top,
	}
}
