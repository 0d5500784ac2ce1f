package commands

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/rasterizer"
)

// NewASCIICommand creates the ascii command.
func NewASCIICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ascii",
		Short: "Render a mesh as ASCII art on stdout",
		Long: `Render a triangle mesh and print it using the luminance ramp
" .:-=+*#%@", one glyph per terminal cell.

Rows are halved relative to the frame aspect because terminal cells are
about twice as tall as they are wide.`,
		Example: `  # The demo cube in 60 columns
  rasterize ascii --columns 60

  # A rotated cube
  rasterize ascii --rotate-x 30 --rotate-y 40 --distance 2.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			scene, err := LoadScene(cfg.Mesh, cfg.Camera)
			if err != nil {
				return err
			}

			r := newRasterizer(cfg, scene, 0)
			img, _, err := r.RenderImage(cmd.Context(), scene.Mesh, scene.Transform(0), cfg.Width, cfg.Height)
			if err != nil {
				return err
			}
			return rasterizer.ASCII(cmd.OutOrStdout(), img, cfg.Columns)
		},
	}

	addSceneFlags(cmd.Flags())
	return cmd
}
