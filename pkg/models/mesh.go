// Package models holds triangle meshes built from the tree scene and writes
// them out as STL, OBJ or glTF binary.
package models

import (
	"github.com/taigrr/xmastree/pkg/math3d"
)

// Mesh represents a 3D mesh with vertices, faces, and materials.
type Mesh struct {
	Name      string
	Vertices  []MeshVertex
	Faces     []Face
	Materials []Material

	// Bounding box (calculated by CalculateBounds)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is a flat colour.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// AddMaterial returns the index of the material with this name, adding it
// if it is new.
func (m *Mesh) AddMaterial(name string, rgba [4]float64) int {
	for i, mat := range m.Materials {
		if mat.Name == name {
			return i
		}
	}
	m.Materials = append(m.Materials, Material{Name: name, BaseColor: rgba})
	return len(m.Materials) - 1
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos math3d.Vec3) int {
	m.Vertices = append(m.Vertices, MeshVertex{Position: pos})
	return len(m.Vertices) - 1
}

// AddTriangle appends one triangle of new vertices.
func (m *Mesh) AddTriangle(a, b, c math3d.Vec3, material int) {
	i := m.AddVertex(a)
	j := m.AddVertex(b)
	k := m.AddVertex(c)
	m.Faces = append(m.Faces, Face{V: [3]int{i, j, k}, Material: material})
}

// AddPolygon triangulates a convex polygon as a fan from its first point.
// Polygons with fewer than three points are ignored.
func (m *Mesh) AddPolygon(pts []math3d.Vec3, material int) {
	if len(pts) < 3 {
		return
	}
	first := m.AddVertex(pts[0])
	prev := m.AddVertex(pts[1])
	for _, p := range pts[2:] {
		cur := m.AddVertex(p)
		m.Faces = append(m.Faces, Face{V: [3]int{first, prev, cur}, Material: material})
		prev = cur
	}
}

// AddFan triangulates a closed ring around a centre point. It handles
// star-shaped (concave) outlines that AddPolygon cannot.
func (m *Mesh) AddFan(center math3d.Vec3, ring []math3d.Vec3, material int) {
	if len(ring) < 2 {
		return
	}
	c := m.AddVertex(center)
	idx := make([]int, len(ring))
	for i, p := range ring {
		idx[i] = m.AddVertex(p)
	}
	for i := range idx {
		next := idx[(i+1)%len(idx)]
		m.Faces = append(m.Faces, Face{V: [3]int{c, idx[i], next}, Material: material})
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceNormal returns the unit normal of face i.
func (m *Mesh) FaceNormal(i int) math3d.Vec3 {
	f := m.Faces[i]
	v0 := m.Vertices[f.V[0]].Position
	v1 := m.Vertices[f.V[1]].Position
	v2 := m.Vertices[f.V[2]].Position
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

// CalculateNormals computes face normals and assigns them to vertices.
// Every face built by the Add helpers owns its vertices, so this gives
// flat shading.
func (m *Mesh) CalculateNormals() {
	for i, f := range m.Faces {
		normal := m.FaceNormal(i)
		m.Vertices[f.V[0]].Normal = normal
		m.Vertices[f.V[1]].Normal = normal
		m.Vertices[f.V[2]].Normal = normal
	}
}

// RemoveDegenerateFaces removes faces with zero or near-zero area.
// Returns the number of faces removed.
func (m *Mesh) RemoveDegenerateFaces() int {
	if len(m.Faces) == 0 {
		return 0
	}

	const minArea = 1e-10
	kept := make([]Face, 0, len(m.Faces))

	for _, f := range m.Faces {
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[0] == f.V[2] {
			continue
		}

		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position
		area := v1.Sub(v0).Cross(v2.Sub(v0)).Len() * 0.5

		if area > minArea {
			kept = append(kept, f)
		}
	}

	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	return removed
}

// RemoveUnreferencedVertices removes vertices that are not referenced by any face.
// This compacts the vertex array and updates face indices accordingly.
func (m *Mesh) RemoveUnreferencedVertices() {
	if len(m.Faces) == 0 || len(m.Vertices) == 0 {
		return
	}

	referenced := make([]bool, len(m.Vertices))
	for _, f := range m.Faces {
		referenced[f.V[0]] = true
		referenced[f.V[1]] = true
		referenced[f.V[2]] = true
	}

	newIndex := make([]int, len(m.Vertices))
	newVertices := make([]MeshVertex, 0, len(m.Vertices))
	for i, v := range m.Vertices {
		if referenced[i] {
			newIndex[i] = len(newVertices)
			newVertices = append(newVertices, v)
		}
	}

	for i := range m.Faces {
		m.Faces[i].V[0] = newIndex[m.Faces[i].V[0]]
		m.Faces[i].V[1] = newIndex[m.Faces[i].V[1]]
		m.Faces[i].V[2] = newIndex[m.Faces[i].V[2]]
	}

	m.Vertices = newVertices
}

// FacesByMaterial groups face indices by material, in material order.
// Faces without a material are returned under key -1.
func (m *Mesh) FacesByMaterial() map[int][]int {
	groups := make(map[int][]int)
	for i, f := range m.Faces {
		groups[f.Material] = append(groups[f.Material], i)
	}
	return groups
}
