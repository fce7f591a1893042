package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taigrr/xmastree/internal/config"
	"github.com/taigrr/xmastree/internal/logger"
	"github.com/taigrr/xmastree/pkg/scene"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display scene information",
		Long:  "Display the tree dimensions, face and ornament counts, and the mesh an export would produce.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(true, config.Overrides{})
			if err != nil {
				return err
			}
			defer logger.Sync()
			writeInfo(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func writeInfo(w io.Writer, s *session) {
	r := s.renderer
	st := r.Stats()
	c := r.Config()
	width, height := s.canvasSize()

	mesh := scene.BuildMesh(r)
	size := mesh.Size()

	fmt.Fprintf(w, "Variant:    %s\n", s.variant)
	fmt.Fprintf(w, "Seed:       %d\n", r.Seed())
	fmt.Fprintf(w, "Canvas:     %dx%d\n", width, height)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Layers:     %d\n", c.Layers)
	fmt.Fprintf(w, "Faces:      %d\n", st.Faces)
	fmt.Fprintf(w, "Ornaments:  %d\n", st.Ornaments)
	fmt.Fprintf(w, "Lights:     %d per frame\n", st.Lights)
	fmt.Fprintf(w, "Star:       %d tips, %s\n", st.StarTips, c.StarStyle)
	fmt.Fprintf(w, "Height:     %.1f\n", st.Height)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Vertices:   %d\n", mesh.VertexCount())
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintf(w, "Materials:  %d\n", len(mesh.Materials))
	fmt.Fprintf(w, "Dimensions: %.1f x %.1f x %.1f\n", size.X, size.Y, size.Z)
	if s.cfg.Snow.Enabled {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Snow:       %d particles\n", s.field.Len())
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "Write the default config file",
		Long:  "Write the default settings as YAML to path, or to stdout when no path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if len(args) == 0 {
				return cfg.Write(cmd.OutOrStdout())
			}
			if err := cfg.SaveTo(args[0]); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", args[0])
			return nil
		},
	}
}
