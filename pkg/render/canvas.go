package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/taigrr/xmastree/pkg/math3d"
)

// Canvas is a Surface backed by the gg software rasterizer.
type Canvas struct {
	dc *gg.Context
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear fills the entire canvas with bg.
func (c *Canvas) Clear(bg Color) {
	r, g, b, a := bg.Floats()
	c.dc.ClearWithColor(gg.RGBA2(r, g, b, a))
}

// Push saves the transform state.
func (c *Canvas) Push() { c.dc.Push() }

// Pop restores the last saved transform state.
func (c *Canvas) Pop() { c.dc.Pop() }

// Translate moves the origin.
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

// FillPath fills the closed polygon through pts.
func (c *Canvas) FillPath(pts []math3d.Vec2, col Color) error {
	if len(pts) < 3 {
		return ErrDegenerateFace
	}
	c.setColor(col)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	return c.dc.Fill()
}

// FillCircle fills a disc centred on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) error {
	if r <= 0 {
		return nil
	}
	c.setColor(col)
	c.dc.DrawCircle(cx, cy, r)
	return c.dc.Fill()
}

func (c *Canvas) setColor(col Color) {
	r, g, b, a := col.Floats()
	c.dc.SetRGBA(r, g, b, a)
}

// Resize changes the canvas dimensions. The transform stack is kept.
func (c *Canvas) Resize(width, height int) error {
	return c.dc.Resize(width, height)
}

// Image returns a snapshot of the canvas pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
