package render

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestToRGBAReusesBuffer(t *testing.T) {
	src := solid(4, 3, color.RGBA{10, 20, 30, 255})
	dst := ToRGBA(src, nil)
	if dst.Bounds().Dx() != 4 || dst.Bounds().Dy() != 3 {
		t.Fatalf("size = %v", dst.Bounds())
	}
	again := ToRGBA(src, dst)
	if &again.Pix[0] != &dst.Pix[0] {
		t.Error("same-size conversion should reuse the buffer")
	}
	if got := again.RGBAAt(2, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}
	bigger := ToRGBA(solid(8, 8, color.RGBA{A: 255}), dst)
	if bigger.Bounds().Dx() != 8 {
		t.Errorf("resized buffer width = %d, want 8", bigger.Bounds().Dx())
	}
}

func TestDownsample(t *testing.T) {
	src := solid(40, 20, color.RGBA{200, 100, 50, 255})
	tests := []struct {
		factor int
		w, h   int
	}{
		{1, 40, 20},
		{0, 40, 20},
		{2, 20, 10},
		{4, 10, 5},
	}
	for _, tt := range tests {
		got := Downsample(src, tt.factor)
		if got.Bounds().Dx() != tt.w || got.Bounds().Dy() != tt.h {
			t.Errorf("Downsample(%d) size = %v, want %dx%d", tt.factor, got.Bounds(), tt.w, tt.h)
		}
		c := got.RGBAAt(tt.w/2, tt.h/2)
		if off(c.R, 200) || off(c.G, 100) || off(c.B, 50) {
			t.Errorf("Downsample(%d) centre pixel = %v, want ~{200 100 50}", tt.factor, c)
		}
	}
}

// off reports whether v is more than one step away from want.
func off(v, want uint8) bool {
	d := int(v) - int(want)
	return d > 1 || d < -1
}
