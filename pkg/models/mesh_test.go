package models

import (
	"math"
	"testing"

	"github.com/taigrr/xmastree/pkg/math3d"
)

func TestAddPolygonFan(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   int
	}{
		{"triangle", 3, 1},
		{"quad", 4, 2},
		{"hexagon", 6, 4},
		{"too few", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := NewMesh("test")
			pts := make([]math3d.Vec3, tt.points)
			for i := range pts {
				a := float64(i) * 2 * math.Pi / float64(tt.points)
				pts[i] = math3d.V3(math.Cos(a), math.Sin(a), 0)
			}
			mesh.AddPolygon(pts, -1)
			if mesh.TriangleCount() != tt.want {
				t.Errorf("AddPolygon(%d points) made %d triangles, want %d", tt.points, mesh.TriangleCount(), tt.want)
			}
		})
	}
}

func TestAddFan(t *testing.T) {
	mesh := NewMesh("star")
	ring := []math3d.Vec3{
		math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), math3d.V3(-1, 0, 0), math3d.V3(0, -1, 0),
	}
	mesh.AddFan(math3d.Zero3(), ring, 0)
	if mesh.TriangleCount() != 4 {
		t.Errorf("TriangleCount = %d, want 4", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 5 {
		t.Errorf("VertexCount = %d, want 5", mesh.VertexCount())
	}
	// Last triangle wraps back to the first ring vertex.
	last := mesh.Faces[3].V
	if last[2] != mesh.Faces[0].V[1] {
		t.Errorf("last face %v does not close the ring", last)
	}
}

func TestAddMaterialDedupes(t *testing.T) {
	mesh := NewMesh("test")
	a := mesh.AddMaterial("green", [4]float64{0, 1, 0, 1})
	b := mesh.AddMaterial("red", [4]float64{1, 0, 0, 1})
	c := mesh.AddMaterial("green", [4]float64{0, 1, 0, 1})
	if a != 0 || b != 1 || c != 0 {
		t.Errorf("AddMaterial indices = %d, %d, %d, want 0, 1, 0", a, b, c)
	}
	if len(mesh.Materials) != 2 {
		t.Errorf("len(Materials) = %d, want 2", len(mesh.Materials))
	}
}

func TestCalculateNormals(t *testing.T) {
	mesh := NewMesh("test")
	mesh.AddTriangle(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), -1)
	mesh.CalculateNormals()
	for i, v := range mesh.Vertices {
		if v.Normal != math3d.V3(0, 0, 1) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestBounds(t *testing.T) {
	mesh := NewMesh("test")
	mesh.AddTriangle(math3d.V3(-1, 0, 2), math3d.V3(3, 4, 0), math3d.V3(0, -2, 1), -1)
	mesh.CalculateBounds()
	if mesh.BoundsMin != math3d.V3(-1, -2, 0) {
		t.Errorf("BoundsMin = %v, want (-1, -2, 0)", mesh.BoundsMin)
	}
	if mesh.BoundsMax != math3d.V3(3, 4, 2) {
		t.Errorf("BoundsMax = %v, want (3, 4, 2)", mesh.BoundsMax)
	}
	if mesh.Size() != math3d.V3(4, 6, 2) {
		t.Errorf("Size = %v, want (4, 6, 2)", mesh.Size())
	}
}

func TestRemoveDegenerateFaces(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0)},
		{Position: math3d.V3(1, 0, 0)},
		{Position: math3d.V3(0, 1, 0)},
		{Position: math3d.V3(0, 0, 0)}, // duplicate of vertex 0
	}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}}, // valid face
		{V: [3]int{0, 0, 1}}, // degenerate: duplicate vertex index
		{V: [3]int{0, 1, 0}}, // degenerate: duplicate vertex index
		{V: [3]int{0, 3, 1}}, // vertices 0 and 3 coincide
	}
	removed := mesh.RemoveDegenerateFaces()
	if removed != 3 {
		t.Errorf("RemoveDegenerateFaces() removed %d faces, want 3", removed)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("After removal: TriangleCount = %d, want 1", mesh.TriangleCount())
	}
}

func TestRemoveUnreferencedVertices(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0)}, // index 0 - used
		{Position: math3d.V3(1, 0, 0)}, // index 1 - used
		{Position: math3d.V3(2, 0, 0)}, // index 2 - NOT used
		{Position: math3d.V3(0, 1, 0)}, // index 3 - used
	}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 3}},
	}
	mesh.RemoveUnreferencedVertices()
	if mesh.VertexCount() != 3 {
		t.Errorf("After removal: VertexCount = %d, want 3", mesh.VertexCount())
	}
	// Old: 0,1,3 -> New: 0,1,2
	if mesh.Faces[0].V != [3]int{0, 1, 2} {
		t.Errorf("Face after remap = %v, want [0,1,2]", mesh.Faces[0].V)
	}
}
