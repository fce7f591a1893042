// xmastree - rotating 3D Christmas tree
// Draws a spinning tree with ornaments, twinkling lights and falling snow in
// your terminal, a desktop window, or image files.
//
// Controls (terminal and window):
//
//	Space       - Pause/resume the spin
//	Left/Right  - Nudge the spin (also A/D)
//	S           - Toggle snow
//	?           - Toggle HUD overlay
//	R           - Reset rotation
//	Q/Esc       - Quit
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/xmastree/internal/config"
	"github.com/taigrr/xmastree/internal/logger"
	"github.com/taigrr/xmastree/pkg/scene"
	"github.com/taigrr/xmastree/pkg/snow"
)

var version = "dev"

// snowStream keeps the snow layout independent of the ornament layout.
const snowStream = 0x736e6f77

var (
	configPath string
	targetFPS  int
	seed       uint64
	noSnow     bool
	variant    string
	debug      bool
	logFile    string
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xmastree",
		Short: "Rotating 3D Christmas tree",
		Long: `xmastree - rotating 3D Christmas tree

Draws a spinning tree with ornaments, twinkling lights, a star and falling
snow. Runs in the terminal by default.

Controls:
  Space       - Pause/resume the spin
  Left/Right  - Nudge the spin (also A/D)
  S           - Toggle snow
  ?           - Toggle HUD overlay
  R           - Reset rotation
  Q/Esc       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(false, config.Overrides{})
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runTerminal(cmd.Context(), s)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to config file")
	pf.IntVar(&targetFPS, "fps", 0, "Target FPS (default from config, 60)")
	pf.Uint64Var(&seed, "seed", 0, "Random seed for ornaments and lights (0 = from the clock)")
	pf.BoolVar(&noSnow, "no-snow", false, "Start with snow turned off")
	pf.StringVar(&variant, "variant", "", "Tree preset: classic, fixed or path-star")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newWindowCmd(), newRenderCmd(), newExportCmd(), newInfoCmd(), newConfigCmd())
	return cmd
}

// session is everything a host needs to draw frames.
type session struct {
	cfg      *config.Config
	variant  scene.Variant
	renderer *scene.Renderer
	field    *snow.Field
}

// setup loads the config, starts logging and builds the scene. Terminal
// mode passes console=false because the screen belongs to the animation.
func setup(console bool, extra config.Overrides) (*session, error) {
	o := extra
	o.FPS = targetFPS
	o.Seed = seed
	o.Variant = variant
	o.NoSnow = noSnow
	o.Debug = debug
	o.LogFile = logFile

	cfg, err := config.Load(configPath, o)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, console); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	v, err := cfg.Variant()
	if err != nil {
		return nil, err
	}
	if ignoredCanvasOverride(v, extra) {
		w, h, _ := v.CanvasSize()
		logger.Warn("canvas size is fixed by the variant; ignoring --width/--height",
			zap.String("variant", string(v)), zap.Int("width", w), zap.Int("height", h))
	}
	sc, err := cfg.SceneConfig()
	if err != nil {
		return nil, err
	}
	sceneSeed := cfg.Scene.Seed
	if sceneSeed == 0 {
		sceneSeed = uint64(time.Now().UnixNano())
	}
	r, err := scene.NewRenderer(sc, sceneSeed)
	if err != nil {
		logger.Error("build scene", zap.Error(err))
		return nil, err
	}
	field := snow.NewField(cfg.SnowConfig(), rand.New(rand.NewPCG(sceneSeed, snowStream)))

	logger.Info("scene ready",
		zap.String("variant", string(v)),
		zap.Uint64("seed", sceneSeed),
		zap.Int("ornaments", len(r.Ornaments())),
		zap.Int("particles", field.Len()),
	)
	return &session{cfg: cfg, variant: v, renderer: r, field: field}, nil
}

// ignoredCanvasOverride reports whether o asks for a canvas size that v
// does not allow.
func ignoredCanvasOverride(v scene.Variant, o config.Overrides) bool {
	_, _, fixed := v.CanvasSize()
	return fixed && (o.Width != 0 || o.Height != 0)
}

// newAnimation creates the spin state from the config.
func (s *session) newAnimation() *scene.Animation {
	a := scene.NewAnimation(s.cfg.Animation.Step, s.cfg.Animation.FPS)
	a.Wrap = s.cfg.Animation.Wrap
	return a
}

// canvasSize is the drawing size for window and file output.
func (s *session) canvasSize() (int, int) {
	if w, h, ok := s.variant.CanvasSize(); ok {
		return w, h
	}
	return s.cfg.Canvas.Width, s.cfg.Canvas.Height
}
