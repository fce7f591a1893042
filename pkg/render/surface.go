// Package render paints projected scene geometry onto a 2D drawing surface.
//
// The Surface contract mirrors a canvas: clear, filled closed paths, filled
// circles and a save/restore/translate state stack. Canvas implements it with
// gogpu/gg; Recorder captures the calls for inspection.
package render

import (
	"errors"

	"github.com/taigrr/xmastree/pkg/math3d"
)

// ErrDegenerateFace is returned when a polygon has fewer than three points.
var ErrDegenerateFace = errors.New("polygon needs at least 3 points")

// Surface is a 2D drawing target. Coordinates passed to FillPath and
// FillCircle are relative to the current translation.
type Surface interface {
	Width() int
	Height() int
	// Clear fills the whole surface, ignoring the translation.
	Clear(bg Color)
	// Push saves the translation; Pop restores the last saved one.
	Push()
	Pop()
	Translate(x, y float64)
	// FillPath fills the closed polygon through pts in order.
	FillPath(pts []math3d.Vec2, c Color) error
	FillCircle(cx, cy, r float64, c Color) error
}
