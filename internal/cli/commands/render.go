package commands

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/rasterizer"
	"github.com/gogpu/rasterizer/internal/cli/config"
	imgio "github.com/gogpu/rasterizer/internal/image"
)

// errStdoutFrames is returned when a turntable would go to stdout.
var errStdoutFrames = errors.New("cannot write several frames to stdout")

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Watch bool
	Stats bool
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a mesh to an image file",
		Long: `Render a triangle mesh with the CPU rasterizer and write the frame to a file.

Without --mesh the built-in cube is drawn head on, as in the classic demo.
The output format follows --format or the output file extension
(png, jpg, bmp, tiff, txt). Use "-o -" to print ASCII art to stdout.

With --frames N the mesh spins once around the Y axis over N frames,
written as name_000.ext, name_001.ext and so on.`,
		Example: `  # Render the demo cube to output.jpg
  rasterize render

  # Spin an OBJ model and render it at 3x supersampling
  rasterize render -m teapot.obj --rotate-x 20 --rotate-y 35 --distance 8 --samples 3 -o teapot.png

  # 36-frame turntable with per-frame statistics
  rasterize render --rotate-x 25 --distance 2.5 --frames 36 -o spin/cube.png --stats

  # Re-render whenever the mesh or rasterizer.yaml changes
  rasterize render -m model.obj -o preview.png --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	addSceneFlags(cmd.Flags())
	cmd.Flags().StringP("output", "o", config.DefaultOutput, "Output file, or - for ASCII on stdout")
	cmd.Flags().StringP("format", "f", "", "Output format (png|jpeg|bmp|tiff|ascii)")
	cmd.Flags().Int("quality", config.DefaultQuality, "JPEG quality (1-100)")
	cmd.Flags().IntP("frames", "n", config.DefaultFrames, "Number of turntable frames")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-render when the mesh or config file changes")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "Print render statistics")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return imgio.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("shading", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ShadingFacing, config.ShadingDepth}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := renderOnce(cmd, cfg, opts); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	return watch(cmd.Context(), watchTargets(cfg), func() ([]string, error) {
		// Flags still win, but the file and environment are read again.
		// The reloaded config may name a different mesh to follow.
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		return watchTargets(cfg), renderOnce(cmd, cfg, opts)
	})
}

// renderOnce renders every frame cfg describes and reports statistics.
func renderOnce(cmd *cobra.Command, cfg *config.Config, opts *RenderOptions) error {
	scene, err := LoadScene(cfg.Mesh, cfg.Camera)
	if err != nil {
		return err
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	frames, err := renderFrames(cmd.Context(), cfg, scene, format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if opts.Stats {
		return printStats(cmd.OutOrStdout(), frames)
	}
	return nil
}

// frame is one rendered and written frame.
type frame struct {
	Index int
	Path  string
	Stats rasterizer.Stats
}

// renderFrames renders cfg.Frames frames. A single frame uses all
// configured workers; a turntable renders frames concurrently with one
// worker each.
func renderFrames(ctx context.Context, cfg *config.Config, scene *Scene, format imgio.Format, stdout io.Writer) ([]frame, error) {
	if cfg.Frames == 1 {
		r := newRasterizer(cfg, scene, 0)
		f, err := renderFrame(ctx, r, cfg, scene, format, 0, cfg.Output, stdout)
		if err != nil {
			return nil, err
		}
		return []frame{f}, nil
	}

	if cfg.Output == "-" {
		return nil, errStdoutFrames
	}

	limit := cfg.Workers
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	r := newRasterizer(cfg, scene, 1)

	out := make([]frame, cfg.Frames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range cfg.Frames {
		g.Go(func() error {
			f, err := renderFrame(gctx, r, cfg, scene, format, i, framePath(cfg.Output, i, cfg.Frames), stdout)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			out[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// renderFrame renders frame i of cfg.Frames and writes it to path.
func renderFrame(ctx context.Context, r *rasterizer.Rasterizer, cfg *config.Config, scene *Scene,
	format imgio.Format, i int, path string, stdout io.Writer) (frame, error) {
	yaw := 360 * float64(i) / float64(cfg.Frames)

	img, stats, err := r.RenderImage(ctx, scene.Mesh, scene.Transform(yaw), cfg.Width, cfg.Height)
	if err != nil {
		return frame{}, err
	}
	if err := writeFrame(path, img, format, cfg, stdout); err != nil {
		return frame{}, err
	}

	rasterizer.Logger().Info("frame written", "path", path, "frame", i, "pixels", stats.Pixels, "elapsed", stats.Elapsed)
	return frame{Index: i, Path: path, Stats: stats}, nil
}

// writeFrame stores img at path in format. The path "-" means stdout.
func writeFrame(path string, img image.Image, format imgio.Format, cfg *config.Config, stdout io.Writer) error {
	if path == "-" {
		if format.IsText() {
			return rasterizer.ASCII(stdout, img, cfg.Columns)
		}
		return imgio.Encode(stdout, img, format, imgio.Options{Quality: cfg.Quality})
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if format.IsText() {
		return imgio.WriteAtomic(path, func(w io.Writer) error {
			return rasterizer.ASCII(w, img, cfg.Columns)
		})
	}
	return imgio.WriteFile(path, img, format, imgio.Options{Quality: cfg.Quality})
}

// framePath numbers path for frame i of n: "out/cube.png" becomes
// "out/cube_007.png". Frame numbers are zero-padded to a common width.
func framePath(path string, i, n int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	digits := max(3, len(fmt.Sprint(n-1)))
	return fmt.Sprintf("%s_%0*d%s", base, digits, i, ext)
}
