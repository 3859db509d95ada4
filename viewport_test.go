package mandel

import "testing"

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		b    Bounds
		want error
	}{
		{Bounds{100, 100}, nil},
		{Bounds{1, 1}, nil},
		{Bounds{0, 100}, ErrInvalidBounds},
		{Bounds{100, 0}, ErrInvalidBounds},
		{Bounds{-1, 100}, ErrInvalidBounds},
	}

	for _, tt := range tests {
		if got := tt.b.Validate(); got != tt.want {
			t.Errorf("Validate(%dx%d) = %v, want %v", tt.b.Width, tt.b.Height, got, tt.want)
		}
	}
}

func TestViewport_PixelToPoint(t *testing.T) {
	vp := Viewport{UpperLeft: -1 + 1i, LowerRight: 1 - 1i}
	b := Bounds{Width: 100, Height: 100}

	if got := vp.PixelToPoint(b, 25, 75); got != -0.5-0.5i {
		t.Errorf("PixelToPoint(25, 75) = %v, want (-0.5-0.5i)", got)
	}
}

func TestViewport_PixelToPointCorners(t *testing.T) {
	vp := Viewport{UpperLeft: -1 + 1i, LowerRight: 1 - 1i}
	b := Bounds{Width: 100, Height: 100}

	if got := vp.PixelToPoint(b, 0, 0); got != vp.UpperLeft {
		t.Errorf("PixelToPoint(0, 0) = %v, want upper left %v", got, vp.UpperLeft)
	}
	// Both coordinates are accepted inclusively so band boundaries can be
	// mapped; (W, H) is the lower-right corner.
	if got := vp.PixelToPoint(b, b.Width, b.Height); got != vp.LowerRight {
		t.Errorf("PixelToPoint(W, H) = %v, want lower right %v", got, vp.LowerRight)
	}
}

func TestViewport_RowDecreasesImaginary(t *testing.T) {
	vp := Viewport{UpperLeft: -1.2 + 0.35i, LowerRight: -1 + 0.2i}
	b := Bounds{Width: 1000, Height: 750}

	upper := vp.PixelToPoint(b, 500, 100)
	lower := vp.PixelToPoint(b, 500, 600)

	if imag(lower) >= imag(upper) {
		t.Errorf("imag at row 600 (%g) not below imag at row 100 (%g)", imag(lower), imag(upper))
	}
	if real(lower) != real(upper) {
		t.Errorf("real part changed between rows: %g vs %g", real(upper), real(lower))
	}
}
