package mandel

import "errors"

// ErrInvalidBounds is returned when width or height is non-positive.
var ErrInvalidBounds = errors.New("mandel: invalid bounds")

// Bounds is an image size in pixels.
type Bounds struct {
	Width  int
	Height int
}

// Validate returns ErrInvalidBounds unless both dimensions are positive.
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return ErrInvalidBounds
	}
	return nil
}

// Pixels returns the number of pixels covered by the bounds.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Viewport is the rectangle of the complex plane mapped onto an image,
// given by its upper-left and lower-right corner points. UpperLeft's
// imaginary part must exceed LowerRight's for image rows to grow downward.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// PixelToPoint returns the point on the complex plane corresponding to
// pixel (col, row) of an image of the given bounds.
//
// Both coordinates are accepted up to and including the bounds themselves,
// so the same mapping derives the corner points of band sub-viewports.
// Increasing row decreases the imaginary part: image rows grow downward,
// the imaginary axis grows upward.
func (v Viewport) PixelToPoint(b Bounds, col, row int) complex128 {
	width := real(v.LowerRight) - real(v.UpperLeft)
	height := imag(v.UpperLeft) - imag(v.LowerRight)

	return complex(
		real(v.UpperLeft)+float64(col)*width/float64(b.Width),
		imag(v.UpperLeft)-float64(row)*height/float64(b.Height),
	)
}
