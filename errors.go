package rasterizer

import "errors"

// Errors returned by the rasterizer.
var (
	// ErrInvalidSize is returned when a framebuffer or image has a
	// non-positive width or height.
	ErrInvalidSize = errors.New("rasterizer: invalid size")

	// ErrInvalidMesh is returned when a mesh has a dangling index or an
	// incomplete triangle.
	ErrInvalidMesh = errors.New("rasterizer: invalid mesh")

	// ErrInvalidOBJ is returned when Wavefront OBJ data cannot be parsed.
	ErrInvalidOBJ = errors.New("rasterizer: invalid OBJ")
)
