package math3d

import "math"

// DefaultFOV is the focal distance of the scene camera, in scene units.
const DefaultFOV = 600.0

// DefaultMinGap is the smallest allowed distance between the rotated depth
// and the focal plane. It keeps the perspective scale finite and positive.
const DefaultMinGap = 1.0

// Projected is a point after rotation about Y and perspective scaling.
type Projected struct {
	X, Y  float64 // screen position relative to the scene anchor
	Depth float64 // rotated z; drives Scale, never occlusion
	Scale float64
}

// Screen returns the projected position as a Vec2.
func (p Projected) Screen() Vec2 {
	return Vec2{p.X, p.Y}
}

// Projector maps scene points to screen space. The zero value is not usable;
// use NewProjector or fill both fields.
type Projector struct {
	FOV    float64
	MinGap float64
}

// NewProjector returns a projector with the given field of view and the
// default clamp.
func NewProjector(fov float64) Projector {
	return Projector{FOV: fov, MinGap: DefaultMinGap}
}

// ScaleAt returns the perspective scale for a rotated depth:
// fov / (fov - depth), with the denominator clamped to MinGap.
func (p Projector) ScaleAt(depth float64) float64 {
	gap := p.FOV - depth
	minGap := p.MinGap
	if minGap <= 0 {
		minGap = DefaultMinGap
	}
	if gap < minGap || math.IsNaN(gap) {
		gap = minGap
	}
	return p.FOV / gap
}

// Project rotates pt about the vertical axis by angle and applies perspective.
// It is a pure function of its inputs.
func (p Projector) Project(pt Vec3, angle float64) Projected {
	r := pt.RotateY(angle)
	scale := p.ScaleAt(r.Z)
	return Projected{
		X:     r.X * scale,
		Y:     r.Y * scale,
		Depth: r.Z,
		Scale: scale,
	}
}

// ProjectAll projects every point with the same angle.
func (p Projector) ProjectAll(pts []Vec3, angle float64) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, pt := range pts {
		out[i] = p.Project(pt, angle).Screen()
	}
	return out
}
