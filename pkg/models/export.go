package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Save for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats lists the extensions Save understands.
func Formats() []string {
	return []string{".stl", ".obj", ".glb"}
}

// Save writes the mesh to path, choosing the format from the extension.
// OBJ output also writes a material library next to it.
func Save(path string, m *Mesh) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".stl":
		return writeFile(path, func(f *os.File) error { return WriteSTL(f, m) })
	case ".glb":
		return writeFile(path, func(f *os.File) error { return WriteGLB(f, m) })
	case ".obj":
		mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"
		if err := writeFile(mtlPath, func(f *os.File) error { return WriteMTL(f, m) }); err != nil {
			return err
		}
		return writeFile(path, func(f *os.File) error { return WriteOBJ(f, m, filepath.Base(mtlPath)) })
	default:
		return fmt.Errorf("%w: %q (use %s)", ErrUnsupportedFormat, ext, strings.Join(Formats(), ", "))
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
