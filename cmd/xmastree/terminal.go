package main

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"

	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"go.uber.org/zap"

	"github.com/taigrr/xmastree/internal/logger"
	"github.com/taigrr/xmastree/pkg/render"
	"github.com/taigrr/xmastree/pkg/scene"
	"github.com/taigrr/xmastree/pkg/snow"
)

// terminalCanvasHeight is the virtual canvas height in pixels. The image is
// scaled down to the terminal, so the tree keeps its proportions at any
// window size.
const terminalCanvasHeight = 720

// terminalCanvasSize returns a canvas with the terminal's aspect ratio.
// Each cell holds two vertical pixels.
func terminalCanvasSize(cols, rows int, v scene.Variant) (int, int) {
	if w, h, ok := v.CanvasSize(); ok {
		return w, h
	}
	if cols <= 0 || rows <= 0 {
		return terminalCanvasHeight, terminalCanvasHeight
	}
	w := int(math.Round(terminalCanvasHeight * float64(cols) / float64(2*rows)))
	return max(w, 1), terminalCanvasHeight
}

// HUD renders an overlay with scene info and toggles.
type HUD struct {
	variant   scene.Variant
	stats     scene.Stats
	seed      uint64
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	view      *viewState
}

// NewHUD creates a new HUD.
func NewHUD(s *session, view *viewState) *HUD {
	return &HUD{
		variant: s.variant,
		stats:   s.renderer.Stats(),
		seed:    s.renderer.Seed(),
		fpsTime: time.Now(),
		view:    view,
	}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Draw renders the HUD overlay to the terminal using ansipixels.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels, anim *scene.Animation) {
	if !h.view.ShowHUD {
		return
	}

	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, h.fps)
	ap.WriteCentered(0, "xmastree · %s", h.variant)
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"%d faces %d ornaments"+tcolor.Reset, h.stats.Faces, h.stats.Ornaments)

	checkSnow := "[ ]"
	if h.view.Snow {
		checkSnow = "[✓]"
	}
	checkPause := "[ ]"
	if anim.Paused {
		checkPause = "[✓]"
	}
	ap.WriteAt(0, ap.H-1, "%s Snow  %s Paused  angle %.2f", checkSnow, checkPause, anim.Angle)
	ap.WriteRight(ap.H-1, "%sseed %d%s", tcolor.Yellow.Foreground(), h.seed, tcolor.Reset)
}

// glyphCell places a sprite on the terminal grid. Glyphs are up to two
// cells wide, so the last column is never used.
func glyphCell(sp snow.Sprite, cols, rows int) (x, y int, ok bool) {
	if cols < 2 || rows < 1 {
		return 0, 0, false
	}
	x = min(int(sp.Pos.X*float64(cols)), cols-2)
	y = int(sp.Pos.Y * float64(rows))
	return x, y, y >= 0 && y < rows
}

// glyphColor fades flakes toward the background by their opacity.
func glyphColor(sp snow.Sprite) tcolor.RGBColor {
	c := sp.Color
	if sp.Kind == snow.KindFlake {
		c = c.Darken(0.7 * (1 - sp.Opacity))
	}
	return tcolor.RGBColor{R: c.R, G: c.G, B: c.B}
}

// drawGlyphs writes the snow layer over the image. HUD rows are left alone.
func drawGlyphs(ap *ansipixels.AnsiPixels, sprites []snow.Sprite, hud bool) {
	for _, sp := range sprites {
		x, y, ok := glyphCell(sp, ap.W, ap.H)
		if !ok || (hud && (y == 0 || y == ap.H-1)) {
			continue
		}
		ap.WriteAt(x, y, "%s%s%s", glyphColor(sp).Foreground(), sp.Glyph, tcolor.Reset)
	}
}

// frameSink receives each finished frame and the snow visible on it.
type frameSink func(img *image.RGBA, sprites []snow.Sprite) error

// terminalLoop is the per-tick state of the terminal host.
type terminalLoop struct {
	s      *session
	canvas *render.Canvas
	anim   *scene.Animation
	view   *viewState
	buf    *image.RGBA
}

func newTerminalLoop(s *session, canvas *render.Canvas) *terminalLoop {
	return &terminalLoop{
		s:      s,
		canvas: canvas,
		anim:   s.newAnimation(),
		view:   &viewState{Snow: s.cfg.Snow.Enabled},
	}
}

// tick handles the pending keys, draws one frame and hands it to show.
// It returns false once the user asked to quit.
func (l *terminalLoop) tick(keys []byte, elapsed time.Duration, show frameSink) (bool, error) {
	for _, a := range parseKeys(keys) {
		if !apply(a, l.anim, l.view) {
			return false, nil
		}
	}

	f := l.anim.Advance()
	if err := l.s.renderer.DrawFrame(l.canvas, f); err != nil {
		return false, fmt.Errorf("draw frame: %w", err)
	}
	l.buf = render.ToRGBA(l.canvas.Image(), l.buf)

	var sprites []snow.Sprite
	if l.view.Snow {
		sprites = l.s.field.At(elapsed)
	}
	if err := show(l.buf, sprites); err != nil {
		return false, fmt.Errorf("show image: %w", err)
	}
	return true, nil
}

func runTerminal(ctx context.Context, s *session) error {
	ap := ansipixels.NewAnsiPixels(float64(s.cfg.Animation.FPS))
	if err := ap.Open(); err != nil {
		logger.Error("open terminal", zap.Error(err))
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.HideCursor()

	canvas := render.NewCanvas(terminalCanvasSize(ap.W, ap.H, s.variant))
	defer canvas.Close()

	ap.OnResize = func() error {
		w, h := terminalCanvasSize(ap.W, ap.H, s.variant)
		logger.Debug("resize", zap.Int("cols", ap.W), zap.Int("rows", ap.H), zap.Int("width", w), zap.Int("height", h))
		return canvas.Resize(w, h)
	}

	loop := newTerminalLoop(s, canvas)
	hud := NewHUD(s, loop.view)
	start := time.Now()

	show := func(img *image.RGBA, sprites []snow.Sprite) error {
		ap.StartSyncMode()
		defer ap.EndSyncMode()
		ap.ClearScreen()
		if err := ap.ShowScaledImage(img); err != nil {
			return err
		}
		drawGlyphs(ap, sprites, loop.view.ShowHUD)
		hud.UpdateFPS()
		hud.Draw(ap, loop.anim)
		return nil
	}

	var frameErr error
	err := ap.FPSTicks(ctx, func(context.Context) bool {
		var more bool
		more, frameErr = loop.tick(ap.Data, time.Since(start), show)
		return more
	})
	if frameErr != nil {
		logger.Error("frame", zap.Error(frameErr))
		return frameErr
	}
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	logger.Info("terminal closed", zap.Uint64("frames", loop.anim.Index))
	return nil
}
