package config

import (
	"errors"
	"fmt"

	"github.com/gogpu/rasterizer"
	imgio "github.com/gogpu/rasterizer/internal/image"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case c.Background < 0 || c.Background > 255:
		return fmt.Errorf("%w: background %d is outside 0-255", ErrInvalid, c.Background)
	case c.Quality < 1 || c.Quality > 100:
		return fmt.Errorf("%w: quality %d is outside 1-100", ErrInvalid, c.Quality)
	case c.Near <= 0:
		return fmt.Errorf("%w: near plane %g must be positive", ErrInvalid, c.Near)
	case c.Far <= 0:
		return fmt.Errorf("%w: far plane %g must be positive", ErrInvalid, c.Far)
	case c.Aspect <= 0:
		return fmt.Errorf("%w: device aspect %g must be positive", ErrInvalid, c.Aspect)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalid, c.Workers)
	case c.Samples < 1 || c.Samples > rasterizer.MaxSupersample:
		return fmt.Errorf("%w: samples %d is outside 1-%d", ErrInvalid, c.Samples, rasterizer.MaxSupersample)
	case c.Shading != ShadingFacing && c.Shading != ShadingDepth:
		return fmt.Errorf("%w: shading %q (want %s or %s)", ErrInvalid, c.Shading, ShadingFacing, ShadingDepth)
	case c.Frames < 1:
		return fmt.Errorf("%w: frames %d must be at least 1", ErrInvalid, c.Frames)
	case c.Columns < 1:
		return fmt.Errorf("%w: columns %d must be at least 1", ErrInvalid, c.Columns)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera distance %g must be positive", ErrInvalid, c.Camera.Distance)
	}
	if c.Format != "" {
		if _, err := imgio.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// OutputFormat resolves the output format from Format or, when that is
// empty, from the Output file extension.
func (c *Config) OutputFormat() (imgio.Format, error) {
	if c.Format != "" {
		return imgio.ParseFormat(c.Format)
	}
	if c.Output == "-" {
		return imgio.FormatASCII, nil
	}
	return imgio.FormatFromPath(c.Output)
}
