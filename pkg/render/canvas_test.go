package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/xmastree/pkg/math3d"
)

func square(x0, y0, x1, y1 float64) []math3d.Vec2 {
	return []math3d.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestCanvasSavePNG(t *testing.T) {
	c := NewCanvas(100, 100)
	defer c.Close()
	c.Clear(RGB(10, 20, 30))
	if err := c.FillPath(square(20, 20, 80, 80), ColorGreen); err != nil {
		t.Fatalf("FillPath failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("File not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("File is empty")
	}
}

func TestCanvasFillPath(t *testing.T) {
	c := NewCanvas(50, 50)
	defer c.Close()
	c.Clear(ColorWhite)
	if err := c.FillPath(square(10, 10, 40, 40), ColorRed); err != nil {
		t.Fatalf("FillPath failed: %v", err)
	}

	img := c.Image()
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Errorf("Image dimensions wrong: got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	r, g, b, _ := img.At(25, 25).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("inside pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("outside pixel = %d,%d,%d, want white", r>>8, g>>8, b>>8)
	}
}

func TestCanvasTranslate(t *testing.T) {
	c := NewCanvas(60, 60)
	defer c.Close()
	c.Clear(ColorBlack)
	c.Push()
	c.Translate(30, 30)
	if err := c.FillCircle(0, 0, 10, ColorBlue); err != nil {
		t.Fatalf("FillCircle failed: %v", err)
	}
	c.Pop()

	img := c.Image()
	_, _, b, _ := img.At(30, 30).RGBA()
	if b>>8 != 255 {
		t.Errorf("centre blue = %d, want 255", b>>8)
	}
	_, _, b, _ = img.At(3, 3).RGBA()
	if b>>8 != 0 {
		t.Errorf("corner blue = %d, want 0", b>>8)
	}
}

func TestCanvasDegenerate(t *testing.T) {
	c := NewCanvas(10, 10)
	defer c.Close()
	err := c.FillPath([]math3d.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, ColorRed)
	if err != ErrDegenerateFace {
		t.Errorf("FillPath(2 points) error = %v, want ErrDegenerateFace", err)
	}
}

func TestCanvasEncodePNG(t *testing.T) {
	c := NewCanvas(16, 8)
	defer c.Close()
	c.Clear(ColorRed)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v, want 16x8", img.Bounds())
	}
}
