package models

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/xmastree/pkg/math3d"
)

// twoColourMesh is a quad in one material and a triangle in another.
func twoColourMesh() *Mesh {
	m := NewMesh("test tree")
	green := m.AddMaterial("foliage front", [4]float64{0.05, 0.31, 0.05, 1})
	gold := m.AddMaterial("star", [4]float64{1, 0.84, 0, 1})
	m.AddPolygon([]math3d.Vec3{
		math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(1, 1, 0), math3d.V3(0, 1, 0),
	}, green)
	m.AddTriangle(math3d.V3(0, 2, 0), math3d.V3(1, 2, 0), math3d.V3(0.5, 3, 0), gold)
	m.CalculateNormals()
	return m
}

func TestWriteSTL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, twoColourMesh()); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	n, err := STLTriangleCount(buf.Bytes())
	if err != nil {
		t.Fatalf("STLTriangleCount: %v", err)
	}
	if n != 3 {
		t.Errorf("triangle count = %d, want 3", n)
	}
	if buf.Len() != 84+3*50 {
		t.Errorf("size = %d, want %d", buf.Len(), 84+3*50)
	}
}

func TestSTLTriangleCountRejectsTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, twoColourMesh()); err != nil {
		t.Fatal(err)
	}
	if _, err := STLTriangleCount(buf.Bytes()[:buf.Len()-10]); err == nil {
		t.Error("expected error for truncated STL")
	}
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, twoColourMesh(), "tree.mtl"); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	counts := map[string]int{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			counts[fields[0]]++
		}
	}
	want := map[string]int{"v": 7, "vn": 7, "f": 3, "usemtl": 2, "mtllib": 1, "o": 1}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("%q lines = %d, want %d", k, counts[k], v)
		}
	}
}

func TestWriteMTL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMTL(&buf, twoColourMesh()); err != nil {
		t.Fatalf("WriteMTL failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"newmtl foliage_front", "newmtl star", "Kd 1 0.84 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("MTL missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGLB(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGLB(&buf, twoColourMesh()); err != nil {
		t.Fatalf("WriteGLB failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("glTF")) {
		t.Fatalf("output does not start with the GLB magic")
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Meshes) != 1 {
		t.Fatalf("meshes = %d, want 1", len(doc.Meshes))
	}
	if len(doc.Materials) != 2 {
		t.Errorf("materials = %d, want 2", len(doc.Materials))
	}
	prims := doc.Meshes[0].Primitives
	if len(prims) != 2 {
		t.Fatalf("primitives = %d, want 2", len(prims))
	}
	total := 0
	for _, p := range prims {
		total += int(doc.Accessors[*p.Indices].Count)
	}
	if total != 9 {
		t.Errorf("index count = %d, want 9", total)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	m := twoColourMesh()
	for _, ext := range Formats() {
		path := filepath.Join(dir, "tree"+ext)
		if err := Save(path, m); err != nil {
			t.Errorf("Save(%s) failed: %v", ext, err)
			continue
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("Save(%s) wrote nothing: %v", ext, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "tree.mtl")); err != nil {
		t.Errorf("OBJ export did not write material library: %v", err)
	}

	err := Save(filepath.Join(dir, "tree.fbx"), m)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.fbx) error = %v, want ErrUnsupportedFormat", err)
	}
	if err != nil && !strings.Contains(err.Error(), ".stl, .obj, .glb") {
		t.Errorf("Save(.fbx) error %q should list the supported formats", err)
	}
}
