// Package mandel renders the Mandelbrot set into 8-bit grayscale pixel
// buffers.
//
// The package is built from a handful of pure functions: EscapeTime
// classifies a single point of the complex plane, Viewport.PixelToPoint maps
// pixel coordinates onto the plane, and Render fills a row-major byte buffer
// one pixel at a time. SplitBands cuts a buffer into disjoint row bands that
// an Executor can render concurrently without locking: no two bands share a
// byte, so every backend produces the same output.
package mandel

// DefaultLimit is the iteration limit used by Render. Escape counts are
// encoded as 255-i grayscale intensities, so the limit must fit in a byte.
const DefaultLimit = 255

// EscapeTime determines whether c is in the Mandelbrot set, watching its
// orbit for at most limit iterations.
//
// Starting from z = 0, it repeatedly applies z ← z² + c. Once the squared
// magnitude of z exceeds 4 the orbit is certain to diverge; EscapeTime then
// returns the 0-based iteration index at which that happened and true. If
// the orbit stays bounded for limit iterations the point is taken to be a
// member of the set and EscapeTime returns (0, false): membership has no
// finite escape count.
//
// EscapeTime is the hot path of a render; it performs no allocation.
func EscapeTime(c complex128, limit int) (iter int, escaped bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
	}
	return 0, false
}
