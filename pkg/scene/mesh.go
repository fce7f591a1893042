package scene

import (
	"strings"

	"github.com/taigrr/xmastree/pkg/math3d"
	"github.com/taigrr/xmastree/pkg/models"
	"github.com/taigrr/xmastree/pkg/render"
)

// meshBuilder collects faces into a mesh with one material per colour.
type meshBuilder struct {
	mesh      *models.Mesh
	materials map[render.Color]int
}

func (b *meshBuilder) material(role string, c render.Color) int {
	if i, ok := b.materials[c]; ok {
		return i
	}
	r, g, bl, a := c.Floats()
	name := role + "_" + strings.TrimPrefix(c.Hex(), "#")
	i := b.mesh.AddMaterial(name, [4]float64{r, g, bl, a})
	b.materials[c] = i
	return i
}

// toMesh converts scene space (y down) to model space (y up).
func toMesh(p math3d.Vec3) math3d.Vec3 {
	return math3d.V3(p.X, -p.Y, p.Z)
}

func meshPoints(pts []math3d.Vec3) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(pts))
	for i, p := range pts {
		out[i] = toMesh(p)
	}
	return out
}

func (b *meshBuilder) faces(role string, faces []render.Face) {
	for _, f := range faces {
		b.mesh.AddPolygon(meshPoints(f.Points), b.material(role, f.Color))
	}
}

// octahedron adds a diamond standing in for a disc of radius r.
func (b *meshBuilder) octahedron(c math3d.Vec3, r float64, mat int) {
	c = toMesh(c)
	top := c.Add(math3d.V3(0, r, 0))
	bottom := c.Add(math3d.V3(0, -r, 0))
	ring := []math3d.Vec3{
		c.Add(math3d.V3(r, 0, 0)),
		c.Add(math3d.V3(0, 0, r)),
		c.Add(math3d.V3(-r, 0, 0)),
		c.Add(math3d.V3(0, 0, -r)),
	}
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		b.mesh.AddTriangle(top, next, ring[i], mat)
		b.mesh.AddTriangle(bottom, ring[i], next, mat)
	}
}

// BuildMesh triangulates the static scene at angle 0: trunk, foliage, star
// and one octahedron per ornament at the middle of the depth range. Lights
// are per-frame noise and are left out.
func BuildMesh(r *Renderer) *models.Mesh {
	c := r.cfg
	b := &meshBuilder{
		mesh:      models.NewMesh("xmastree"),
		materials: make(map[render.Color]int),
	}

	b.faces("trunk", r.trunk.Faces(c.Trunk))
	for _, layer := range r.layers {
		b.faces("foliage", layer.Faces(c.Foliage))
	}

	depth := (c.DepthNear + c.DepthFar) / 2
	for _, o := range r.ornaments {
		b.octahedron(math3d.V3(o.X, o.Y(c), depth), o.Radius, b.material("ornament", o.Color))
	}

	b.mesh.AddFan(toMesh(c.StarCenter()), meshPoints(r.StarOutline()), b.material("star", c.StarColor))

	b.mesh.RemoveDegenerateFaces()
	b.mesh.RemoveUnreferencedVertices()
	b.mesh.CalculateNormals()
	b.mesh.CalculateBounds()
	return b.mesh
}
