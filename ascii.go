package rasterizer

import (
	"bufio"
	"fmt"
	"image"
	"io"

	xdraw "golang.org/x/image/draw"
)

// LuminanceRamp lists glyphs from lightest to darkest.
const LuminanceRamp = " .:-=+*#%@"

// ASCII writes img as text, one glyph per cell, one line per row.
//
// The image is filtered down to cols columns. Terminal cells are roughly
// twice as tall as they are wide, so half as many rows as the aspect ratio
// would suggest are used. Dark pixels map to dense glyphs, so the default
// white background becomes blank space.
func ASCII(w io.Writer, img image.Image, cols int) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: empty image", ErrInvalidSize)
	}
	if cols <= 0 {
		return fmt.Errorf("%w: %d columns", ErrInvalidSize, cols)
	}
	rows := max(1, int(float64(cols)*float64(b.Dy())/float64(b.Dx())/2+0.5))

	cells := image.NewGray(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(cells, cells.Bounds(), img, b, xdraw.Src, nil)

	bw := bufio.NewWriter(w)
	line := make([]byte, cols+1)
	line[cols] = '\n'
	for y := range rows {
		for x := range cols {
			line[x] = Glyph(cells.GrayAt(x, y).Y)
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("rasterizer: write ASCII: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("rasterizer: write ASCII: %w", err)
	}
	return nil
}

// Glyph returns the ramp glyph for a gray value: 255 is blank and 0 is
// the densest glyph.
func Glyph(v uint8) byte {
	n := len(LuminanceRamp)
	i := (255 - int(v)) * n / 256
	return LuminanceRamp[i]
}
