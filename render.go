package mandel

import "fmt"

// Render fills pixels with a grayscale rendering of the viewport using
// DefaultLimit iterations per point. See RenderLimit.
func Render(pixels []byte, b Bounds, vp Viewport) {
	RenderLimit(pixels, b, vp, DefaultLimit)
}

// RenderLimit fills pixels, a row-major Gray8 buffer of the given bounds,
// with a rendering of the viewport. A pixel whose point escapes at
// iteration i is written as intensity 255-i, so earlier escape means a
// darker pixel; points classified as set members are written as 0.
//
// Every pixel is written exactly once. RenderLimit reads no global state
// and has no side effects beyond the buffer.
//
// A buffer whose length does not match the bounds indicates a bug in the
// caller's decomposition, not bad input, and panics. limit must be in
// [1, 255] so that the intensity encoding fits a byte.
func RenderLimit(pixels []byte, b Bounds, vp Viewport, limit int) {
	if len(pixels) != b.Pixels() {
		panic(fmt.Sprintf("mandel: pixel buffer length %d does not match bounds %dx%d",
			len(pixels), b.Width, b.Height))
	}

	renderRows(pixels, b, vp, 0, b.Height, limit)
}

// renderRows fills pixels with image rows [top, top+height) of a b-sized
// rendering of vp. Every pixel is interpolated against the full-image
// bounds and viewport at its absolute row, so a band render computes
// bit-identical points to the sequential full-image render regardless of
// how the image was split.
func renderRows(pixels []byte, b Bounds, vp Viewport, top, height, limit int) {
	if len(pixels) != b.Width*height {
		panic(fmt.Sprintf("mandel: pixel buffer length %d does not match %d rows of width %d",
			len(pixels), height, b.Width))
	}
	if limit < 1 || limit > 255 {
		panic(fmt.Sprintf("mandel: iteration limit %d outside [1, 255]", limit))
	}

	for r := 0; r < height; r++ {
		line := pixels[r*b.Width : (r+1)*b.Width]
		row := top + r
		for col := range line {
			iter, escaped := EscapeTime(vp.PixelToPoint(b, col, row), limit)
			if escaped {
				line[col] = byte(255 - iter)
			} else {
				line[col] = 0
			}
		}
	}
}
