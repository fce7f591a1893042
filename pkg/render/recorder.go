package render

import "github.com/taigrr/xmastree/pkg/math3d"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpPath   OpKind = iota // filled closed polygon
	OpCircle               // filled disc
)

// Op is one recorded fill, in absolute surface coordinates.
type Op struct {
	Kind   OpKind
	Points []math3d.Vec2 // closed: the first point is repeated at the end
	Center math3d.Vec2
	Radius float64
	Color  Color
}

// Recorder is a Surface that records fills instead of rasterizing them.
// Clear starts a new frame and drops previously recorded ops.
type Recorder struct {
	W, H       int
	Background Color
	Ops        []Op
	Clears     int

	offset math3d.Vec2
	stack  []math3d.Vec2
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Clear(bg Color) {
	r.Background = bg
	r.Ops = nil
	r.Clears++
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.offset)
}

func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.offset = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.offset = r.offset.Add(math3d.V2(x, y))
}

// Depth returns the number of unbalanced Push calls.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

func (r *Recorder) FillPath(pts []math3d.Vec2, c Color) error {
	if len(pts) < 3 {
		return ErrDegenerateFace
	}
	closed := make([]math3d.Vec2, 0, len(pts)+1)
	for _, p := range pts {
		closed = append(closed, p.Add(r.offset))
	}
	closed = append(closed, closed[0])
	r.Ops = append(r.Ops, Op{Kind: OpPath, Points: closed, Color: c})
	return nil
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) error {
	r.Ops = append(r.Ops, Op{
		Kind:   OpCircle,
		Center: math3d.V2(cx, cy).Add(r.offset),
		Radius: radius,
		Color:  c,
	})
	return nil
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
