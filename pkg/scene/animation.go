package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// DefaultStep is the rotation added per frame, in radians.
const DefaultStep = 0.006

// Frame is the immutable animation snapshot handed to a single draw call.
type Frame struct {
	Angle float64
	Index uint64
}

// Animation owns the rotation angle. It advances by Step each frame, plus a
// temporary boost from Nudge that a critically damped spring eases back to 0.
type Animation struct {
	Angle  float64
	Step   float64
	Index  uint64
	Wrap   bool // keep Angle in [0, 2π)
	Paused bool // hold the angle; Index still advances

	spring   harmonica.Spring
	boost    float64
	boostVel float64
}

// NewAnimation creates an animation stepping by step radians per frame at
// the given frame rate (the rate only tunes the nudge spring).
func NewAnimation(step float64, fps int) *Animation {
	if fps <= 0 {
		fps = 60
	}
	return &Animation{
		Step: step,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Advance moves to the next frame and returns its snapshot.
func (a *Animation) Advance() Frame {
	if !a.Paused {
		a.Angle += a.Step + a.boost
		if a.Wrap {
			a.Angle = wrapAngle(a.Angle)
		}
	}
	if a.boost != 0 || a.boostVel != 0 {
		a.boost, a.boostVel = a.spring.Update(a.boost, a.boostVel, 0)
	}
	a.Index++
	return a.Frame()
}

// Frame returns the current snapshot without advancing.
func (a *Animation) Frame() Frame {
	return Frame{Angle: a.Angle, Index: a.Index}
}

// Nudge adds delta radians per frame of extra spin that decays back to 0.
func (a *Animation) Nudge(delta float64) {
	a.boost += delta
}

// Boost returns the current extra spin per frame.
func (a *Animation) Boost() float64 {
	return a.boost
}

// Reset returns to angle 0, frame 0 with no boost.
func (a *Animation) Reset() {
	a.Angle = 0
	a.Index = 0
	a.boost = 0
	a.boostVel = 0
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
