package models

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// WriteSTL writes the mesh as binary STL. Materials are dropped; STL has no
// colour.
func WriteSTL(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, stlHeaderSize)
	copy(header, "binary STL "+m.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("write stl header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Faces))); err != nil {
		return fmt.Errorf("write stl triangle count: %w", err)
	}

	buf := make([]byte, stlTriangleSize)
	for i, f := range m.Faces {
		n := m.FaceNormal(i)
		putFloat32LE(buf[0:], n.X)
		putFloat32LE(buf[4:], n.Y)
		putFloat32LE(buf[8:], n.Z)
		for v := range 3 {
			p := m.Vertices[f.V[v]].Position
			off := 12 + v*12
			putFloat32LE(buf[off:], p.X)
			putFloat32LE(buf[off+4:], p.Y)
			putFloat32LE(buf[off+8:], p.Z)
		}
		buf[48], buf[49] = 0, 0
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write stl triangle %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// STLTriangleCount reads the triangle count from a binary STL and checks the
// payload size matches.
func STLTriangleCount(data []byte) (int, error) {
	if len(data) < stlHeaderSize+4 {
		return 0, fmt.Errorf("binary STL too short: %d bytes", len(data))
	}
	triCount := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	expectedSize := stlHeaderSize + 4 + int(triCount)*stlTriangleSize
	if len(data) != expectedSize {
		return 0, fmt.Errorf("binary STL size mismatch: expected %d bytes, got %d", expectedSize, len(data))
	}
	return int(triCount), nil
}

func putFloat32LE(b []byte, v float64) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
}
