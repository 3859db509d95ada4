package mandel

import "fmt"

// Band is a contiguous run of image rows scheduled as one unit of parallel
// work. It owns a disjoint sub-slice of the full pixel buffer; rendering a
// band touches nothing outside that slice.
//
// Band pixels are mapped through the full-image viewport at their absolute
// rows, never through re-derived corner points: re-deriving a sub-viewport
// rounds `span/height` differently in float64 and can flip escape counts on
// boundary pixels, breaking byte-identity with the sequential render. The
// Viewport field holds the band's corner points as descriptor metadata only.
//
// Bands are ephemeral descriptors: they are created by SplitBands, consumed
// by an Executor, and carry no state once rendered.
type Band struct {
	// Top is the first image row covered by the band.
	Top int

	// Bounds is the band's own size: full image width, band height.
	Bounds Bounds

	// Viewport is the plane rectangle covered by the band's rows,
	// derived from the global viewport via PixelToPoint.
	Viewport Viewport

	// Pix is the band's slice of the image buffer.
	// Its length is Bounds.Pixels().
	Pix []byte

	// image and global are the full-image bounds and viewport the band
	// was split from; Render interpolates against these.
	image  Bounds
	global Viewport
}

// Render fills the band's slice of the image.
func (bd Band) Render(limit int) {
	renderRows(bd.Pix, bd.image, bd.global, bd.Top, bd.Bounds.Height, limit)
}

// SplitBands partitions pixels into at most n disjoint contiguous row bands
// that together cover the image exactly once. Each band holds
// ceil(b.Height/n) rows; the final band may be shorter when the height does
// not divide evenly. Band corner points are derived by mapping the band's
// boundary rows through vp with the same PixelToPoint used per pixel.
//
// Decomposition granularity is a performance knob only: rendering the bands
// in any order, on any backend, yields bytes identical to a sequential
// full-image render. Splitting with n equal to the image height yields
// one-row bands.
//
// Panics if len(pixels) does not match the bounds or n < 1.
func SplitBands(pixels []byte, b Bounds, vp Viewport, n int) []Band {
	if len(pixels) != b.Pixels() {
		panic(fmt.Sprintf("mandel: pixel buffer length %d does not match bounds %dx%d",
			len(pixels), b.Width, b.Height))
	}
	if n < 1 {
		panic(fmt.Sprintf("mandel: band count %d < 1", n))
	}

	rowsPerBand := (b.Height + n - 1) / n
	bands := make([]Band, 0, n)

	for top := 0; top < b.Height; top += rowsPerBand {
		height := rowsPerBand
		if top+height > b.Height {
			height = b.Height - top
		}

		bands = append(bands, Band{
			Top:    top,
			Bounds: Bounds{Width: b.Width, Height: height},
			Viewport: Viewport{
				UpperLeft:  vp.PixelToPoint(b, 0, top),
				LowerRight: vp.PixelToPoint(b, b.Width, top+height),
			},
			Pix:    pixels[top*b.Width : (top+height)*b.Width],
			image:  b,
			global: vp,
		})
	}

	return bands
}
