package rasterizer

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func mustFramebuffer(t testing.TB, w, h int) *Framebuffer {
	t.Helper()
	fb, err := NewFramebuffer(w, h)
	if err != nil {
		t.Fatalf("NewFramebuffer(%d, %d) error = %v", w, h, err)
	}
	return fb
}

func TestNewFramebuffer(t *testing.T) {
	fb := mustFramebuffer(t, 7, 3)
	if fb.Width() != 7 || fb.Height() != 3 {
		t.Errorf("size = %dx%d, want 7x3", fb.Width(), fb.Height())
	}
	if len(fb.Pix()) != 21 || len(fb.DepthPlane()) != 21 {
		t.Errorf("plane lengths = %d, %d, want 21", len(fb.Pix()), len(fb.DepthPlane()))
	}

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-2, 5}} {
		if _, err := NewFramebuffer(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewFramebuffer(%d, %d) error = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestFramebuffer_Clear(t *testing.T) {
	fb := mustFramebuffer(t, 4, 4)
	fb.Clear(200, 42)

	for y := range 4 {
		for x := range 4 {
			if fb.GrayAt(x, y) != 200 {
				t.Fatalf("GrayAt(%d,%d) = %d, want 200", x, y, fb.GrayAt(x, y))
			}
			if fb.Depth(x, y) != 42 {
				t.Fatalf("Depth(%d,%d) = %v, want 42", x, y, fb.Depth(x, y))
			}
		}
	}
}

func TestFramebuffer_OutOfBounds(t *testing.T) {
	fb := mustFramebuffer(t, 2, 2)
	fb.Clear(9, 9)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if fb.GrayAt(p[0], p[1]) != 0 || fb.Depth(p[0], p[1]) != 0 {
			t.Errorf("out-of-bounds (%d,%d) returned non-zero", p[0], p[1])
		}
	}
}

func TestFramebuffer_Image(t *testing.T) {
	fb := mustFramebuffer(t, 3, 2)
	fb.Clear(10, 1)
	fb.Pix()[1*3+2] = 77

	var img image.Image = fb
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if img.ColorModel() != color.GrayModel {
		t.Error("ColorModel() is not GrayModel")
	}
	if got := img.At(2, 1); got != (color.Gray{Y: 77}) {
		t.Errorf("At(2,1) = %v, want Gray{77}", got)
	}

	gray := fb.Gray()
	if gray.GrayAt(2, 1).Y != 77 || gray.GrayAt(0, 0).Y != 10 {
		t.Error("Gray() did not copy pixel values")
	}

	// The copy must be independent of the framebuffer.
	gray.Pix[0] = 0
	if fb.GrayAt(0, 0) != 10 {
		t.Error("Gray() shares memory with the framebuffer")
	}
}
