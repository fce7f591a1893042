package main

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/xmastree/internal/config"
	"github.com/taigrr/xmastree/internal/logger"
	"github.com/taigrr/xmastree/pkg/render"
	"github.com/taigrr/xmastree/pkg/scene"
	"github.com/taigrr/xmastree/pkg/snow"
)

func newWindowCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the tree in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(true, config.Overrides{Width: width, Height: height})
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runWindow(s)
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "Window width in pixels (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "Window height in pixels (default from config)")
	return cmd
}

// windowKeys maps ebiten keys to actions.
var windowKeys = map[ebiten.Key]action{
	ebiten.KeyEscape:     actQuit,
	ebiten.KeyQ:          actQuit,
	ebiten.KeySpace:      actPause,
	ebiten.KeyArrowLeft:  actNudgeLeft,
	ebiten.KeyA:          actNudgeLeft,
	ebiten.KeyArrowRight: actNudgeRight,
	ebiten.KeyD:          actNudgeRight,
	ebiten.KeyS:          actToggleSnow,
	ebiten.KeySlash:      actToggleHUD,
	ebiten.KeyR:          actReset,
}

type treeGame struct {
	s      *session
	anim   *scene.Animation
	view   *viewState
	canvas *render.Canvas
	img    *image.RGBA
	fbImg  *ebiten.Image
	start  time.Time
	frame  scene.Frame
}

func (g *treeGame) Update() error {
	for key, a := range windowKeys {
		if inpututil.IsKeyJustPressed(key) && !apply(a, g.anim, g.view) {
			return ebiten.Termination
		}
	}
	g.frame = g.anim.Advance()
	return nil
}

func (g *treeGame) Draw(screen *ebiten.Image) {
	if err := g.s.renderer.DrawFrame(g.canvas, g.frame); err != nil {
		logger.Error("draw frame", zap.Error(err))
		return
	}
	if g.view.Snow {
		if err := snow.Draw(g.canvas, g.s.field.At(time.Since(g.start)), 1); err != nil {
			logger.Error("draw snow", zap.Error(err))
		}
	}

	g.img = render.ToRGBA(g.canvas.Image(), g.img)
	b := g.img.Bounds()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != b.Dx() || g.fbImg.Bounds().Dy() != b.Dy() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	if g.view.ShowHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f FPS  angle %.2f  seed %d  paused %v",
			ebiten.ActualFPS(), g.frame.Angle, g.s.renderer.Seed(), g.anim.Paused))
	}
}

func (g *treeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}

func runWindow(s *session) error {
	w, h := s.canvasSize()
	g := &treeGame{
		s:      s,
		anim:   s.newAnimation(),
		view:   &viewState{Snow: s.cfg.Snow.Enabled},
		canvas: render.NewCanvas(w, h),
		start:  time.Now(),
	}
	defer g.canvas.Close()

	ebiten.SetWindowTitle(fmt.Sprintf("xmastree (%s)", s.variant))
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(s.cfg.Animation.FPS)
	logger.Info("window open", zap.Int("width", w), zap.Int("height", h))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
