package image

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{".jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{" tiff ", FormatTIFF, false},
		{"txt", FormatASCII, false},
		{"ascii", FormatASCII, false},
		{"gif", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out/cube.png", FormatPNG, false},
		{"frame_001.JPG", FormatJPEG, false},
		{"render.tiff", FormatTIFF, false},
		{"render.txt", FormatASCII, false},
		{"render", 0, true},
		{"render.webp", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	if FormatJPEG.String() != "jpeg" {
		t.Errorf("FormatJPEG.String() = %q, want jpeg", FormatJPEG.String())
	}
	if got := Format(42).String(); got != "Format(42)" {
		t.Errorf("Format(42).String() = %q", got)
	}
	if !FormatASCII.IsText() || FormatPNG.IsText() {
		t.Error("IsText() mismatch")
	}
	if len(Formats()) != int(formatCount) {
		t.Errorf("Formats() has %d entries, want %d", len(Formats()), formatCount)
	}
}
