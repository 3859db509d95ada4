package pix

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when the output format is not supported.
var ErrUnsupportedFormat = errors.New("pix: unsupported format")

// Save writes the buffer to the given file path, choosing the encoding from
// the file extension: .png, .bmp, .tif or .tiff.
func (b *Buf) Save(path string) error {
	var encode func(io.Writer) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = b.EncodePNG
	case ".bmp":
		encode = b.EncodeBMP
	case ".tif", ".tiff":
		encode = b.EncodeTIFF
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the buffer as an 8-bit grayscale PNG.
func (b *Buf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("pix: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP encodes the buffer as an 8-bit grayscale BMP.
func (b *Buf) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("pix: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF encodes the buffer as a deflate-compressed grayscale TIFF.
func (b *Buf) EncodeTIFF(w io.Writer) error {
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, b.ToStdImage(), opts); err != nil {
		return fmt.Errorf("pix: encode TIFF: %w", err)
	}
	return nil
}
