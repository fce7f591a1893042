package render

import (
	"fmt"
	"math"

	"github.com/taigrr/xmastree/pkg/math3d"
)

// Painter projects scene geometry and fills it onto a Surface in call order.
// There is no depth buffer: later fills cover earlier ones.
type Painter struct {
	Surface   Surface
	Projector math3d.Projector
}

// NewPainter creates a painter for s.
func NewPainter(s Surface, proj math3d.Projector) *Painter {
	return &Painter{Surface: s, Projector: proj}
}

// FillPolygon projects pts at angle and fills the closed path through them.
func (p *Painter) FillPolygon(pts []math3d.Vec3, c Color, angle float64) error {
	if len(pts) < 3 {
		return ErrDegenerateFace
	}
	return p.Surface.FillPath(p.Projector.ProjectAll(pts, angle), c)
}

// FillFaces fills each face in order.
func (p *Painter) FillFaces(faces []Face, angle float64) error {
	for i, f := range faces {
		if err := p.FillPolygon(f.Points, f.Color, angle); err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
	}
	return nil
}

// FillPrism fills the five faces of a foliage wedge.
func (p *Painter) FillPrism(pr Prism, c PrismColors, angle float64) error {
	return p.FillFaces(pr.Faces(c), angle)
}

// FillBox fills the six faces of a block.
func (p *Painter) FillBox(b Box, c BoxColors, angle float64) error {
	return p.FillFaces(b.Faces(c), angle)
}

// FillDisc fills a sphere-like disc whose radius follows the perspective
// scale at the projected depth.
func (p *Painter) FillDisc(center math3d.Vec3, r float64, c Color, angle float64) error {
	pr := p.Projector.Project(center, angle)
	return p.Surface.FillCircle(pr.X, pr.Y, math.Abs(r*pr.Scale), c)
}

// FillStarPath projects only the star centre and draws the alternating-radius
// outline in screen space, scaled by the perspective at that depth. The star
// stays facing the viewer as the scene turns.
func (p *Painter) FillStarPath(center math3d.Vec3, outer, innerRatio float64, tips int, start float64, c Color, angle float64) error {
	pr := p.Projector.Project(center, angle)
	outline := StarOutline(pr.Screen(), outer*pr.Scale, innerRatio, tips, start)
	return p.Surface.FillPath(outline, c)
}
