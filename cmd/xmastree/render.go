package main

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/taigrr/xmastree/internal/config"
	"github.com/taigrr/xmastree/internal/logger"
	"github.com/taigrr/xmastree/pkg/render"
	"github.com/taigrr/xmastree/pkg/snow"
)

var errNoFrames = errors.New("frame count must be positive")

func newRenderCmd() *cobra.Command {
	var (
		output      string
		frames      int
		supersample int
		width       int
		height      int
	)
	cmd := &cobra.Command{
		Use:   "render -o <out.gif|out.png|dir>",
		Short: "Render frames to an animated GIF, a PNG, or a directory of PNGs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(true, config.Overrides{Width: width, Height: height, Supersample: supersample})
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runRender(s, output, frames)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "xmastree.gif", "Output .gif, .png (single frame) or directory")
	cmd.Flags().IntVarP(&frames, "frames", "n", 120, "Number of frames")
	cmd.Flags().IntVar(&supersample, "supersample", 0, "Draw at k times the size and scale down (default from config)")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels (default from config)")
	return cmd
}

// renderSequence draws n consecutive frames and hands each to emit.
func renderSequence(s *session, n int, emit func(i int, img *image.RGBA) error) error {
	if n <= 0 {
		return errNoFrames
	}
	k := max(s.cfg.Canvas.Supersample, 1)
	w, h := s.canvasSize()
	canvas := render.NewCanvas(w*k, h*k)
	defer canvas.Close()

	anim := s.newAnimation()
	frameTime := time.Second / time.Duration(s.cfg.Animation.FPS)
	for i := range n {
		f := anim.Advance()
		if err := s.renderer.DrawFrame(canvas, f); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if s.cfg.Snow.Enabled {
			sprites := s.field.At(time.Duration(i) * frameTime)
			if err := snow.Draw(canvas, sprites, float64(k)); err != nil {
				return fmt.Errorf("frame %d snow: %w", i, err)
			}
		}
		if err := emit(i, render.Downsample(canvas.Image(), k)); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// writeGIF encodes the frames as a looping animated GIF.
func writeGIF(s *session, path string, n int) error {
	delay := max(100/s.cfg.Animation.FPS, 2) // hundredths of a second
	anim := &gif.GIF{}
	err := renderSequence(s, n, func(_ int, img *image.RGBA) error {
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
		return nil
	})
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	return f.Close()
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// writePNGs writes a single PNG for a .png path, or numbered frames into a
// directory otherwise.
func writePNGs(s *session, out string, n int) error {
	if strings.EqualFold(filepath.Ext(out), ".png") {
		return renderSequence(s, 1, func(_ int, img *image.RGBA) error {
			return writePNG(out, img)
		})
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	return renderSequence(s, n, func(i int, img *image.RGBA) error {
		return writePNG(filepath.Join(out, fmt.Sprintf("frame_%04d.png", i)), img)
	})
}

func runRender(s *session, out string, n int) error {
	start := time.Now()
	var err error
	if strings.EqualFold(filepath.Ext(out), ".gif") {
		err = writeGIF(s, out, n)
	} else {
		err = writePNGs(s, out, n)
	}
	if err != nil {
		logger.Error("render", zap.String("output", out), zap.Error(err))
		return err
	}
	logger.Info("rendered",
		zap.String("output", out),
		zap.Int("frames", n),
		zap.Int("supersample", s.cfg.Canvas.Supersample),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
