package image

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// DefaultJPEGQuality is used when Options.Quality is zero.
const DefaultJPEGQuality = 90

// Options controls encoding.
type Options struct {
	// Quality is the JPEG quality, 1-100. Zero selects DefaultJPEGQuality.
	Quality int
}

func (o Options) jpegQuality() int {
	if o.Quality == 0 {
		return DefaultJPEGQuality
	}
	return min(max(o.Quality, 1), 100)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts Options) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.jpegQuality()})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// WriteFile encodes img into the file at path, replacing it atomically.
func WriteFile(path string, img image.Image, format Format, opts Options) error {
	return WriteAtomic(path, func(w io.Writer) error {
		return Encode(w, img, format, opts)
	})
}

// WriteAtomic creates path with the content produced by write.
//
// Data goes to a temporary file in the same directory which is synced and
// renamed over path only if write succeeds. On failure the previous file,
// if any, is left untouched.
func WriteAtomic(path string, write func(io.Writer) error) error {
	pending, err := renameio.NewPendingFile(filepath.Clean(path),
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("image: create pending file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if err := write(pending); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("image: replace %s: %w", path, err)
	}
	return nil
}
