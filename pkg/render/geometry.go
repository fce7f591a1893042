package render

import (
	"math"

	"github.com/taigrr/xmastree/pkg/math3d"
)

// Face is a flat-coloured polygon in scene space.
type Face struct {
	Points []math3d.Vec3
	Color  Color
}

// Prism is a triangular wedge: a front triangle and the matching back one.
type Prism struct {
	FrontA, FrontB, FrontC math3d.Vec3
	BackA, BackB, BackC    math3d.Vec3
}

// PrismColors are the fills for a prism. All three sides share Side.
type PrismColors struct {
	Front, Back, Side Color
}

// NewPrism extrudes the triangle a, b, c (given at zFront) back to zBack.
func NewPrism(a, b, c math3d.Vec3, zFront, zBack float64) Prism {
	a.Z, b.Z, c.Z = zFront, zFront, zFront
	return Prism{
		FrontA: a, FrontB: b, FrontC: c,
		BackA: math3d.V3(a.X, a.Y, zBack),
		BackB: math3d.V3(b.X, b.Y, zBack),
		BackC: math3d.V3(c.X, c.Y, zBack),
	}
}

// Faces returns front, back and the three side quads, in paint order.
func (p Prism) Faces(c PrismColors) []Face {
	return []Face{
		{Points: []math3d.Vec3{p.FrontA, p.FrontB, p.FrontC}, Color: c.Front},
		{Points: []math3d.Vec3{p.BackA, p.BackB, p.BackC}, Color: c.Back},
		{Points: []math3d.Vec3{p.FrontA, p.BackA, p.BackB, p.FrontB}, Color: c.Side},
		{Points: []math3d.Vec3{p.FrontB, p.BackB, p.BackC, p.FrontC}, Color: c.Side},
		{Points: []math3d.Vec3{p.FrontC, p.BackC, p.BackA, p.FrontA}, Color: c.Side},
	}
}

// Box is an axis-aligned block. Each quad is ordered top-left, top-right,
// bottom-right, bottom-left.
type Box struct {
	Front, Back [4]math3d.Vec3
}

// BoxColors are the fills for a box. Top and bottom share a colour, as do
// left and right.
type BoxColors struct {
	Front, Back, TopBottom, Sides Color
}

// NewBox builds the block spanning [x0,x1] × [y0,y1] between zFront and zBack.
func NewBox(x0, y0, x1, y1, zFront, zBack float64) Box {
	quad := func(z float64) [4]math3d.Vec3 {
		return [4]math3d.Vec3{
			{X: x0, Y: y0, Z: z},
			{X: x1, Y: y0, Z: z},
			{X: x1, Y: y1, Z: z},
			{X: x0, Y: y1, Z: z},
		}
	}
	return Box{Front: quad(zFront), Back: quad(zBack)}
}

// Faces returns front, back, top, bottom, left and right, in paint order.
func (b Box) Faces(c BoxColors) []Face {
	f, k := b.Front, b.Back
	return []Face{
		{Points: f[:], Color: c.Front},
		{Points: k[:], Color: c.Back},
		{Points: []math3d.Vec3{f[0], f[1], k[1], k[0]}, Color: c.TopBottom},
		{Points: []math3d.Vec3{f[2], f[3], k[3], k[2]}, Color: c.TopBottom},
		{Points: []math3d.Vec3{f[0], f[3], k[3], k[0]}, Color: c.Sides},
		{Points: []math3d.Vec3{f[1], f[2], k[2], k[1]}, Color: c.Sides},
	}
}

// StarPoints returns 2·tips points alternating between the outer radius and
// outer·innerRatio, in the plane z = center.Z, starting at angle start.
func StarPoints(center math3d.Vec3, outer, innerRatio float64, tips int, start float64) []math3d.Vec3 {
	if tips < 2 {
		tips = 2
	}
	n := tips * 2
	pts := make([]math3d.Vec3, n)
	for i := range n {
		r := outer
		if i%2 == 1 {
			r = outer * innerRatio
		}
		sin, cos := math.Sincos(start + float64(i)*math.Pi/float64(tips))
		pts[i] = math3d.V3(center.X+r*cos, center.Y+r*sin, center.Z)
	}
	return pts
}

// StarOutline is the screen-space version of StarPoints.
func StarOutline(center math3d.Vec2, outer, innerRatio float64, tips int, start float64) []math3d.Vec2 {
	pts3 := StarPoints(math3d.V3(center.X, center.Y, 0), outer, innerRatio, tips, start)
	pts := make([]math3d.Vec2, len(pts3))
	for i, p := range pts3 {
		pts[i] = math3d.V2(p.X, p.Y)
	}
	return pts
}
