package rasterizer

import (
	"fmt"
	"image"
	"image/color"
)

// Framebuffer is a grayscale color plane paired with a depth plane.
//
// Pixel (x, y) lives at index y*Width()+x in both planes. The depth plane
// stores camera-space distance; smaller values are closer to the eye.
type Framebuffer struct {
	width  int
	height int
	color  []uint8
	depth  []float32
}

// NewFramebuffer creates a framebuffer with the given dimensions.
// The color plane starts black and the depth plane at zero; call Clear
// before rendering into it.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	n := width * height
	return &Framebuffer{
		width:  width,
		height: height,
		color:  make([]uint8, n),
		depth:  make([]float32, n),
	}, nil
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Pix returns the raw color plane, one byte per pixel.
func (fb *Framebuffer) Pix() []uint8 {
	return fb.color
}

// DepthPlane returns the raw depth plane.
func (fb *Framebuffer) DepthPlane() []float32 {
	return fb.depth
}

// Clear fills the color plane with background and the depth plane with far.
func (fb *Framebuffer) Clear(background uint8, far float32) {
	for i := range fb.color {
		fb.color[i] = background
	}
	for i := range fb.depth {
		fb.depth[i] = far
	}
}

// GrayAt returns the color value of a single pixel.
// Out-of-bounds coordinates return 0.
func (fb *Framebuffer) GrayAt(x, y int) uint8 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return fb.color[y*fb.width+x]
}

// Depth returns the depth value of a single pixel.
// Out-of-bounds coordinates return 0.
func (fb *Framebuffer) Depth(x, y int) float32 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return fb.depth[y*fb.width+x]
}

// Gray returns a copy of the color plane as an image.Gray.
func (fb *Framebuffer) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, fb.width, fb.height))
	copy(img.Pix, fb.color)
	return img
}

// At implements the image.Image interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	return color.Gray{Y: fb.GrayAt(x, y)}
}

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.GrayModel
}
