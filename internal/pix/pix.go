// Package pix provides the grayscale pixel buffer shared by the renderer
// and the image encoders.
//
// A Buf is a flat row-major Gray8 byte slice with its dimensions attached.
// FromRaw wraps caller-owned memory without copying, so a fully rendered
// pixel buffer can be encoded without an extra allocation.
package pix

import (
	"errors"
	"image"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pix: data buffer too small")
)

// Buf is an 8-bit grayscale image buffer with one byte per pixel and no
// row padding.
type Buf struct {
	data   []byte
	width  int
	height int
}

// New creates a zero-initialized buffer with the given dimensions.
func New(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Buf{
		data:   make([]byte, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromRaw creates a Buf from existing pixel data without copying.
// The caller must ensure data remains valid for the lifetime of the Buf.
// data may be longer than width*height; the excess is ignored.
func FromRaw(data []byte, width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) < width*height {
		return nil, ErrDataTooSmall
	}

	return &Buf{
		data:   data[:width*height],
		width:  width,
		height: height,
	}, nil
}

// Width returns the image width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Bounds returns the image dimensions as (width, height).
func (b *Buf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *Buf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.data[y*b.width : (y+1)*b.width]
}

// At returns the intensity of pixel (x, y), or 0 if out of bounds.
func (b *Buf) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.width+x]
}

// ToStdImage converts the buffer to a standard library *image.Gray.
// The pixel data is copied; later writes to the Buf do not affect the
// returned image.
func (b *Buf) ToStdImage() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
	}
	return gray
}
