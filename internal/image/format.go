// Package image encodes rendered frames into image files.
//
// Binary formats are written through the standard library (PNG, JPEG) and
// golang.org/x/image (BMP, TIFF). Files are replaced atomically so a
// viewer or watcher never observes a half-written frame.
package image

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Format is an output file format.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG.
	FormatJPEG

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with deflate compression.
	FormatTIFF

	// FormatASCII is plain text using a luminance ramp. It is rendered by
	// the caller; Encode rejects it.
	FormatASCII

	formatCount
)

var formatNames = [formatCount]string{
	FormatPNG:   "png",
	FormatJPEG:  "jpeg",
	FormatBMP:   "bmp",
	FormatTIFF:  "tiff",
	FormatASCII: "ascii",
}

// aliases maps accepted names and extensions to formats.
var aliases = map[string]Format{
	"png":   FormatPNG,
	"jpg":   FormatJPEG,
	"jpeg":  FormatJPEG,
	"bmp":   FormatBMP,
	"tif":   FormatTIFF,
	"tiff":  FormatTIFF,
	"txt":   FormatASCII,
	"ascii": FormatASCII,
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatNames[f]
}

// IsText reports whether the format is a text rendering rather than an
// image encoding.
func (f Format) IsText() bool {
	return f == FormatASCII
}

// ParseFormat resolves a format name such as "png" or "jpg".
// Matching is case-insensitive and ignores a leading dot.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if f, ok := aliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension in %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Formats returns the canonical names of all formats.
func Formats() []string {
	return slices.Clone(formatNames[:])
}
