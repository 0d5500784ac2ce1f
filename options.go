package rasterizer

import "runtime"

// Default rendering parameters.
const (
	// DefaultBackground is the color plane clear value (white).
	DefaultBackground uint8 = 255

	// DefaultNearPlane is the distance from the eye to the image plane.
	DefaultNearPlane = 1.0

	// DefaultFarPlane is the depth plane clear value. Nothing farther
	// than this is drawn.
	DefaultFarPlane float32 = 10000

	// DefaultDeviceAspect is the width/height ratio of the display the
	// image is meant for.
	DefaultDeviceAspect = 1.0

	// MaxSupersample is the largest accepted supersampling factor.
	MaxSupersample = 8
)

// Option configures a Rasterizer during creation.
//
// Example:
//
//	r := rasterizer.New(
//	    rasterizer.WithBackground(0),
//	    rasterizer.WithSupersample(2),
//	)
type Option func(*options)

// options holds the configuration of a Rasterizer.
type options struct {
	background    uint8
	nearPlane     float64
	farPlane      float32
	deviceAspect  float64
	cullBackFaces bool
	workers       int
	supersample   int
	shader        Shader
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() options {
	return options{
		background:    DefaultBackground,
		nearPlane:     DefaultNearPlane,
		farPlane:      DefaultFarPlane,
		deviceAspect:  DefaultDeviceAspect,
		cullBackFaces: true,
		workers:       runtime.GOMAXPROCS(0),
		supersample:   1,
		shader:        nil, // FacingShader over background
	}
}

// WithBackground sets the value the color plane is cleared to.
// The default FacingShader also darkens relative to this value.
func WithBackground(v uint8) Option {
	return func(o *options) {
		o.background = v
	}
}

// WithNearPlane sets the distance from the eye to the image plane.
// Larger values zoom in. Non-positive values are ignored.
func WithNearPlane(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.nearPlane = d
		}
	}
}

// WithFarPlane sets the depth plane clear value. Fragments at or beyond
// this depth are rejected. Non-positive values are ignored.
func WithFarPlane(d float32) Option {
	return func(o *options) {
		if d > 0 {
			o.farPlane = d
		}
	}
}

// WithDeviceAspect sets the width/height ratio of the target display.
// When it differs from the frame's own ratio, the projection is squeezed
// along one axis so that geometry keeps its proportions on that display.
// Non-positive values are ignored.
func WithDeviceAspect(aspect float64) Option {
	return func(o *options) {
		if aspect > 0 {
			o.deviceAspect = aspect
		}
	}
}

// WithCullBackFaces controls whether triangles wound clockwise on screen
// are skipped. When disabled, both sides are drawn and shaded as if they
// faced the eye.
func WithCullBackFaces(cull bool) Option {
	return func(o *options) {
		o.cullBackFaces = cull
	}
}

// WithWorkers sets the number of goroutines that rasterize tiles.
// 1 renders on the calling goroutine. Non-positive values select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithSupersample renders RenderImage frames at n times the requested
// size in each direction and filters them down, smoothing edges.
// Values are clamped to [1, MaxSupersample].
func WithSupersample(n int) Option {
	return func(o *options) {
		o.supersample = min(max(n, 1), MaxSupersample)
	}
}

// WithShader replaces the default FacingShader.
func WithShader(s Shader) Option {
	return func(o *options) {
		o.shader = s
	}
}
