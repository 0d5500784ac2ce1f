package rasterizer

// Fragment describes one covered pixel that passed the depth test.
type Fragment struct {
	// X and Y are the pixel coordinates.
	X, Y int

	// Camera holds the triangle's vertices in camera space.
	Camera [3]Vec3

	// Bary holds the barycentric weights of the pixel centre in raster
	// space. They sum to 1.
	Bary [3]float64

	// Depth is the perspective-correct camera distance of the pixel.
	Depth float64

	// Normal is the unit face normal in camera space. It is the zero
	// vector for triangles that collapse to a line in camera space.
	Normal Vec3

	// View is the unit vector from the surface point back to the eye.
	View Vec3

	// Background is the rasterizer's configured background value.
	Background uint8
}

// Shader computes the color of a fragment.
//
// Shade is called concurrently from several goroutines when the
// rasterizer uses more than one worker; implementations must not mutate
// shared state without synchronization.
type Shader interface {
	Shade(f *Fragment) uint8
}

// ShaderFunc adapts an ordinary function to the Shader interface.
type ShaderFunc func(f *Fragment) uint8

// Shade calls fn(f).
func (fn ShaderFunc) Shade(f *Fragment) uint8 {
	return fn(f)
}

// FacingShader darkens pixels by how directly their triangle faces the eye.
//
// The facing ratio is the cosine between the face normal and the view
// vector, clamped to zero. The result is Background minus the ratio scaled
// to 0..255, saturating at black. Surfaces seen edge-on therefore blend
// into the background while surfaces seen head-on are darkest.
type FacingShader struct{}

// Shade implements Shader.
func (FacingShader) Shade(f *Fragment) uint8 {
	s := uint8(FacingRatio(f.Normal, f.View) * 255)
	if s >= f.Background {
		return 0
	}
	return f.Background - s
}

// FacingRatio returns max(0, normal·view) for unit vectors.
func FacingRatio(normal, view Vec3) float64 {
	return min(max(normal.Dot(view), 0), 1)
}

// DepthShader maps camera depth linearly onto gray levels: Near and
// anything closer is white, Far and beyond is black.
type DepthShader struct {
	Near float64
	Far  float64
}

// Shade implements Shader.
func (s DepthShader) Shade(f *Fragment) uint8 {
	span := s.Far - s.Near
	if span <= 0 {
		return 255
	}
	t := (f.Depth - s.Near) / span
	t = min(max(t, 0), 1)
	return uint8((1 - t) * 255)
}
