package models

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// WriteOBJ writes the mesh as Wavefront OBJ. If mtlLib is not empty an
// mtllib line is emitted and faces are grouped by usemtl; write the library
// itself with WriteMTL.
func WriteOBJ(w io.Writer, m *Mesh, mtlLib string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s: %d vertices, %d triangles\n", m.Name, m.VertexCount(), m.TriangleCount())
	if mtlLib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtlLib)
	}
	fmt.Fprintf(bw, "o %s\n", objName(m.Name))

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", ff(v.Position.X), ff(v.Position.Y), ff(v.Position.Z))
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %s %s %s\n", ff(v.Normal.X), ff(v.Normal.Y), ff(v.Normal.Z))
	}

	groups := m.FacesByMaterial()
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, mat := range keys {
		if mtlLib != "" && mat >= 0 && mat < len(m.Materials) {
			fmt.Fprintf(bw, "usemtl %s\n", objName(m.Materials[mat].Name))
		}
		for _, fi := range groups[mat] {
			f := m.Faces[fi]
			// OBJ indices are 1-based.
			a, b, c := f.V[0]+1, f.V[1]+1, f.V[2]+1
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
	}
	return bw.Flush()
}

// WriteMTL writes the material library for WriteOBJ.
func WriteMTL(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	for _, mat := range m.Materials {
		c := mat.BaseColor
		fmt.Fprintf(bw, "newmtl %s\n", objName(mat.Name))
		fmt.Fprintf(bw, "Kd %s %s %s\n", ff(c[0]), ff(c[1]), ff(c[2]))
		fmt.Fprintf(bw, "d %s\n\n", ff(c[3]))
	}
	return bw.Flush()
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// objName replaces whitespace, which OBJ statements cannot carry.
func objName(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == ' ' || c == '\t' {
			b[i] = '_'
		}
	}
	if len(b) == 0 {
		return "mesh"
	}
	return string(b)
}
