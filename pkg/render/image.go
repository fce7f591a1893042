package render

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA copies img into dst, reallocating dst when the size differs.
func ToRGBA(img image.Image, dst *image.RGBA) *image.RGBA {
	b := img.Bounds()
	if dst == nil || dst.Bounds().Dx() != b.Dx() || dst.Bounds().Dy() != b.Dy() {
		dst = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Downsample shrinks img by an integer factor with a Catmull-Rom filter.
// A factor of 1 or less only converts to RGBA.
func Downsample(img image.Image, factor int) *image.RGBA {
	if factor <= 1 {
		return ToRGBA(img, nil)
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, max(b.Dx()/factor, 1), max(b.Dy()/factor, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
