// Package config handles loading the xmastree settings file.
package config

import (
	"errors"
	"fmt"

	"github.com/taigrr/xmastree/pkg/render"
	"github.com/taigrr/xmastree/pkg/scene"
	"github.com/taigrr/xmastree/pkg/snow"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Scene     SceneConfig     `yaml:"scene"`
	Animation AnimationConfig `yaml:"animation"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Snow      SnowConfig      `yaml:"snow"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SceneConfig holds the tree shape. Fields left at their variant default
// are pointers or empty strings.
type SceneConfig struct {
	Variant           string   `yaml:"variant"`
	Seed              uint64   `yaml:"seed"` // 0 picks a seed from the clock
	TrunkWidth        float64  `yaml:"trunk_width"`
	TrunkHeight       float64  `yaml:"trunk_height"`
	Layers            int      `yaml:"layers"`
	MaxWidth          float64  `yaml:"max_width"`
	LayerHeight       float64  `yaml:"layer_height"`
	OrnamentsPerLayer int      `yaml:"ornaments_per_layer"`
	LightCount        int      `yaml:"light_count"`
	FOV               float64  `yaml:"fov"`
	StarSize          float64  `yaml:"star_size"`
	StarStyle         string   `yaml:"star_style,omitempty"`
	StarRotation      *float64 `yaml:"star_rotation,omitempty"`
	AnchorY           *float64 `yaml:"anchor_y,omitempty"`
	Background        string   `yaml:"background"`
	StarColor         string   `yaml:"star_color"`
	Palette           []string `yaml:"palette"`
}

// AnimationConfig holds the spin settings.
type AnimationConfig struct {
	Step float64 `yaml:"step"` // radians per frame
	FPS  int     `yaml:"fps"`
	Wrap bool    `yaml:"wrap"`
}

// CanvasConfig sizes the window and file outputs.
type CanvasConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Supersample int `yaml:"supersample"`
}

// SnowConfig holds the ambient layer settings.
type SnowConfig struct {
	Enabled     bool `yaml:"enabled"`
	Flakes      int  `yaml:"flakes"`
	Decorations int  `yaml:"decorations"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the classic tree.
func Default() *Config {
	sc := scene.DefaultConfig()
	sn := snow.DefaultConfig()
	palette := make([]string, len(sc.Palette))
	for i, c := range sc.Palette {
		palette[i] = c.Hex()
	}
	return &Config{
		Scene: SceneConfig{
			Variant:           string(scene.VariantClassic),
			TrunkWidth:        sc.TrunkWidth,
			TrunkHeight:       sc.TrunkHeight,
			Layers:            sc.Layers,
			MaxWidth:          sc.MaxWidth,
			LayerHeight:       sc.LayerHeight,
			OrnamentsPerLayer: sc.OrnamentsPerLayer,
			LightCount:        sc.LightCount,
			FOV:               sc.FOV,
			StarSize:          sc.StarSize,
			Background:        sc.Background.Hex(),
			StarColor:         sc.StarColor.Hex(),
			Palette:           palette,
		},
		Animation: AnimationConfig{
			Step: scene.DefaultStep,
			FPS:  60,
			Wrap: true,
		},
		Canvas: CanvasConfig{
			Width:       scene.FixedCanvasWidth,
			Height:      scene.FixedCanvasHeight,
			Supersample: 1,
		},
		Snow: SnowConfig{
			Enabled:     true,
			Flakes:      sn.Flakes,
			Decorations: sn.Decorations,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Variant returns the parsed scene preset.
func (c *Config) Variant() (scene.Variant, error) {
	return scene.ParseVariant(c.Scene.Variant)
}

// SceneConfig builds the renderer constants: the variant preset first, then
// every value from the file.
func (c *Config) SceneConfig() (scene.Config, error) {
	s := c.Scene
	v, err := c.Variant()
	if err != nil {
		return scene.Config{}, err
	}
	out := scene.DefaultConfig()
	v.Apply(&out)

	out.TrunkWidth = s.TrunkWidth
	out.TrunkHeight = s.TrunkHeight
	out.Layers = s.Layers
	out.MaxWidth = s.MaxWidth
	out.LayerHeight = s.LayerHeight
	out.StarOffset = s.LayerHeight
	out.OrnamentsPerLayer = s.OrnamentsPerLayer
	out.LightCount = s.LightCount
	out.FOV = s.FOV
	out.StarSize = s.StarSize
	if s.StarStyle != "" {
		if out.StarStyle, err = scene.ParseStarStyle(s.StarStyle); err != nil {
			return scene.Config{}, err
		}
	}
	if s.StarRotation != nil {
		out.StarRotation = *s.StarRotation
	}
	if s.AnchorY != nil {
		out.AnchorY = *s.AnchorY
	}
	if out.Background, err = parseColor("background", s.Background); err != nil {
		return scene.Config{}, err
	}
	if out.StarColor, err = parseColor("star_color", s.StarColor); err != nil {
		return scene.Config{}, err
	}
	out.Palette = make([]render.Color, len(s.Palette))
	for i, h := range s.Palette {
		if out.Palette[i], err = parseColor(fmt.Sprintf("palette[%d]", i), h); err != nil {
			return scene.Config{}, err
		}
	}
	return out, nil
}

// SnowConfig returns the ambient field size.
func (c *Config) SnowConfig() snow.Config {
	out := snow.DefaultConfig()
	out.Flakes = c.Snow.Flakes
	out.Decorations = c.Snow.Decorations
	return out
}

func parseColor(field, hex string) (render.Color, error) {
	col, err := render.ParseHex(hex)
	if err != nil {
		return render.Color{}, fmt.Errorf("%w: %s: %w", ErrInvalid, field, err)
	}
	return col, nil
}

// Validate checks every section and the scene it describes.
func (c *Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}
	switch {
	case c.Animation.FPS <= 0:
		return bad("animation.fps must be positive, got %d", c.Animation.FPS)
	case c.Animation.Step < 0:
		return bad("animation.step must not be negative, got %v", c.Animation.Step)
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return bad("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.Supersample < 1 || c.Canvas.Supersample > 8:
		return bad("canvas.supersample must be in [1, 8], got %d", c.Canvas.Supersample)
	case c.Snow.Flakes < 0 || c.Snow.Decorations < 0:
		return bad("snow counts must not be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return bad("unknown log level %q", c.Logging.Level)
	}
	sc, err := c.SceneConfig()
	if err != nil {
		return err
	}
	return sc.Validate()
}
