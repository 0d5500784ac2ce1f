package rasterizer

import (
	"log/slog"
	"time"
)

// Stats summarises one rendered frame.
type Stats struct {
	// Triangles is the number of triangles submitted.
	Triangles int

	// Rasterized is the number of triangles that reached pixel traversal.
	Rasterized int

	// Culled counts back-facing and degenerate triangles.
	Culled int

	// Clipped counts triangles with a vertex at or behind the eye.
	Clipped int

	// Offscreen counts triangles whose bounding box misses the frame.
	Offscreen int

	// Pixels counts fragments written to the framebuffer.
	Pixels int

	// DepthRejects counts covered pixels hidden by closer geometry.
	DepthRejects int

	// Tiles is the number of tiles the frame was split into.
	Tiles int

	// Elapsed is the wall-clock render time.
	Elapsed time.Duration
}

// add accumulates the per-tile pixel counters of other into s.
func (s *Stats) add(other Stats) {
	s.Pixels += other.Pixels
	s.DepthRejects += other.DepthRejects
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("triangles", s.Triangles),
		slog.Int("rasterized", s.Rasterized),
		slog.Int("culled", s.Culled),
		slog.Int("clipped", s.Clipped),
		slog.Int("offscreen", s.Offscreen),
		slog.Int("pixels", s.Pixels),
		slog.Int("depth_rejects", s.DepthRejects),
		slog.Int("tiles", s.Tiles),
		slog.Duration("elapsed", s.Elapsed),
	)
}
