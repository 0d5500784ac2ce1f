// Package commands implements the rasterize subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/rasterizer"
	"github.com/gogpu/rasterizer/internal/cli/config"
)

// addSceneFlags registers the flags shared by every rendering command.
// Defaults shown in help come from config; only flags the user sets
// override the file and environment layers.
func addSceneFlags(fs *pflag.FlagSet) {
	fs.StringP("mesh", "m", "", "Wavefront OBJ mesh to render (default: built-in cube)")
	fs.Int("width", config.DefaultWidth, "Frame width in pixels")
	fs.Int("height", config.DefaultHeight, "Frame height in pixels")
	fs.Int("background", config.DefaultBackground, "Background gray level (0-255)")
	fs.Float64("near", config.DefaultNear, "Image plane distance")
	fs.Float64("far", config.DefaultFar, "Far plane depth")
	fs.Float64("aspect", config.DefaultAspect, "Device pixel aspect ratio")
	fs.IntP("workers", "j", 0, "Render goroutines per frame (0 = GOMAXPROCS)")
	fs.Int("samples", config.DefaultSamples, "Supersampling factor per axis")
	fs.Bool("cull", true, "Cull back-facing triangles")
	fs.String("shading", config.DefaultShading, "Shading mode (facing|depth)")
	fs.Float64("rotate-x", 0, "Rotation about X in degrees")
	fs.Float64("rotate-y", 0, "Rotation about Y in degrees")
	fs.Float64("rotate-z", 0, "Rotation about Z in degrees")
	fs.Float64("distance", config.DefaultDistance, "Distance from the eye to the mesh centre")
	fs.Int("columns", config.DefaultColumns, "Columns of ASCII output")
}

// loadConfig resolves the configuration for cmd from the --config file,
// the environment and its flags, and installs the library logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	rasterizer.SetLogger(logger)
	if cfg.File != "" {
		logger.Debug("using config file", "path", cfg.File)
	}
	return cfg, nil
}

// newLogger returns a text logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRasterizer builds a rasterizer for cfg. workers overrides
// cfg.Workers when positive.
func newRasterizer(cfg *config.Config, scene *Scene, workers int) *rasterizer.Rasterizer {
	if workers <= 0 {
		workers = cfg.Workers
	}

	opts := []rasterizer.Option{
		rasterizer.WithBackground(uint8(cfg.Background)),
		rasterizer.WithNearPlane(cfg.Near),
		rasterizer.WithFarPlane(float32(cfg.Far)),
		rasterizer.WithDeviceAspect(cfg.Aspect),
		rasterizer.WithCullBackFaces(cfg.Cull),
		rasterizer.WithWorkers(workers),
		rasterizer.WithSupersample(cfg.Samples),
	}
	if cfg.Shading == config.ShadingDepth {
		near, far := scene.DepthRange()
		opts = append(opts, rasterizer.WithShader(rasterizer.DepthShader{Near: near, Far: far}))
	}
	return rasterizer.New(opts...)
}
