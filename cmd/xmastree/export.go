package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/xmastree/internal/config"
	"github.com/taigrr/xmastree/internal/logger"
	"github.com/taigrr/xmastree/pkg/models"
	"github.com/taigrr/xmastree/pkg/scene"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <out.stl|out.obj|out.glb>",
		Short: "Export the static tree as a 3D model",
		Long: "Export the trunk, foliage, star and ornaments as a triangle mesh. " +
			"The format follows the file extension; OBJ also writes a .mtl material library.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(true, config.Overrides{})
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runExport(s, args[0])
		},
	}
}

func runExport(s *session, path string) error {
	mesh := scene.BuildMesh(s.renderer)
	if err := models.Save(path, mesh); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	logger.Info("exported",
		zap.String("path", path),
		zap.String("format", strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("materials", len(mesh.Materials)),
	)
	return nil
}
