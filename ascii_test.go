package rasterizer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		v    uint8
		want byte
	}{
		{255, ' '},
		{0, '@'},
		{128, '='},
	}
	for _, tt := range tests {
		if got := Glyph(tt.v); got != tt.want {
			t.Errorf("Glyph(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}

	// Darker never maps to a lighter glyph.
	last := 0
	for v := 255; v >= 0; v-- {
		i := strings.IndexByte(LuminanceRamp, Glyph(uint8(v)))
		if i < last {
			t.Fatalf("Glyph(%d) lighter than Glyph(%d)", v, v+1)
		}
		last = i
	}
}

func TestASCII(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	// Black left half.
	for y := range 40 {
		for x := range 20 {
			img.SetGray(x, y, color.Gray{})
		}
	}

	var buf bytes.Buffer
	if err := ASCII(&buf, img, 10); err != nil {
		t.Fatalf("ASCII() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d rows, want 5", len(lines))
	}
	for i, line := range lines {
		if len(line) != 10 {
			t.Fatalf("row %d has %d columns, want 10", i, len(line))
		}
		if line[0] != '@' || line[9] != ' ' {
			t.Errorf("row %d = %q, want dense left and blank right", i, line)
		}
	}
}

func TestASCII_RenderedCube(t *testing.T) {
	fb := mustFramebuffer(t, 64, 64)
	if _, err := New().Render(t.Context(), Cube(), Identity(), fb); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ASCII(&buf, fb, 32); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 16 {
		t.Errorf("rows = %d, want 16", got)
	}
	if !strings.Contains(buf.String(), "@") {
		t.Error("head-on face should render with the densest glyph")
	}
}

func TestASCII_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := ASCII(&buf, image.NewGray(image.Rect(0, 0, 4, 4)), 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("cols=0 error = %v, want ErrInvalidSize", err)
	}
	if err := ASCII(&buf, image.NewGray(image.Rectangle{}), 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("empty image error = %v, want ErrInvalidSize", err)
	}
}
