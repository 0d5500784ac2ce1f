// Package config loads rasterize CLI settings.
//
// Values are layered, lowest to highest precedence: built-in defaults,
// rasterizer.yaml, RASTERIZER_* environment variables and explicitly set
// command-line flags.
package config

// Defaults reproduce the classic demo: the cube, head on, at 600x600.
const (
	DefaultWidth      = 600
	DefaultHeight     = 600
	DefaultOutput     = "output.jpg"
	DefaultQuality    = 90
	DefaultBackground = 255
	DefaultNear       = 1.0
	DefaultFar        = 10000.0
	DefaultAspect     = 1.0
	DefaultSamples    = 1
	DefaultShading    = ShadingFacing
	DefaultDistance   = 1.0
	DefaultFrames     = 1
	DefaultColumns    = 80
)

// Shading modes.
const (
	ShadingFacing = "facing"
	ShadingDepth  = "depth"
)

// Config holds all CLI configuration options.
type Config struct {
	Mesh       string  `koanf:"mesh"`
	Width      int     `koanf:"width"`
	Height     int     `koanf:"height"`
	Output     string  `koanf:"output"`
	Format     string  `koanf:"format"`
	Quality    int     `koanf:"quality"`
	Background int     `koanf:"background"`
	Near       float64 `koanf:"near"`
	Far        float64 `koanf:"far"`
	Aspect     float64 `koanf:"aspect"`
	Workers    int     `koanf:"workers"`
	Samples    int     `koanf:"samples"`
	Cull       bool    `koanf:"cull"`
	Shading    string  `koanf:"shading"`
	Frames     int     `koanf:"frames"`
	Columns    int     `koanf:"columns"`
	Verbose    bool    `koanf:"verbose"`

	Camera Camera `koanf:"camera"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`
}

// Camera places the mesh in front of the eye. Angles are in degrees.
type Camera struct {
	RotateX  float64 `koanf:"rotate_x"`
	RotateY  float64 `koanf:"rotate_y"`
	RotateZ  float64 `koanf:"rotate_z"`
	Distance float64 `koanf:"distance"`
}

func defaults() map[string]any {
	return map[string]any{
		"mesh":            "",
		"width":           DefaultWidth,
		"height":          DefaultHeight,
		"output":          DefaultOutput,
		"format":          "",
		"quality":         DefaultQuality,
		"background":      DefaultBackground,
		"near":            DefaultNear,
		"far":             DefaultFar,
		"aspect":          DefaultAspect,
		"workers":         0,
		"samples":         DefaultSamples,
		"cull":            true,
		"shading":         DefaultShading,
		"frames":          DefaultFrames,
		"columns":         DefaultColumns,
		"verbose":         false,
		"camera.rotate_x": 0.0,
		"camera.rotate_y": 0.0,
		"camera.rotate_z": 0.0,
		"camera.distance": DefaultDistance,
	}
}
