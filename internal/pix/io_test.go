package pix

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// gradientBuf returns a small buffer with distinct per-pixel intensities.
func gradientBuf(t *testing.T, w, h int) *Buf {
	t.Helper()

	b, err := New(w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range b.Data() {
		b.Data()[i] = byte(i * 7)
	}
	return b
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	b := gradientBuf(t, 9, 5)

	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if got := uint8(r >> 8); got != b.At(x, y) {
				t.Fatalf("pixel (%d, %d) = %d after round trip, want %d", x, y, got, b.At(x, y))
			}
		}
	}
}

func TestEncodeBMP_RoundTrip(t *testing.T) {
	b := gradientBuf(t, 8, 4)

	var buf bytes.Buffer
	if err := b.EncodeBMP(&buf); err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}

	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if got := uint8(r >> 8); got != b.At(x, y) {
				t.Fatalf("pixel (%d, %d) = %d after round trip, want %d", x, y, got, b.At(x, y))
			}
		}
	}
}

func TestEncodeTIFF_RoundTrip(t *testing.T) {
	b := gradientBuf(t, 6, 6)

	var buf bytes.Buffer
	if err := b.EncodeTIFF(&buf); err != nil {
		t.Fatalf("EncodeTIFF: %v", err)
	}

	img, err := tiff.Decode(&buf)
	if err != nil {
		t.Fatalf("tiff.Decode: %v", err)
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if got := uint8(r >> 8); got != b.At(x, y) {
				t.Fatalf("pixel (%d, %d) = %d after round trip, want %d", x, y, got, b.At(x, y))
			}
		}
	}
}

func TestSave_ByExtension(t *testing.T) {
	dir := t.TempDir()
	b := gradientBuf(t, 4, 4)

	for _, name := range []string{"out.png", "out.bmp", "out.tif", "OUT.TIFF"} {
		path := filepath.Join(dir, name)
		if err := b.Save(path); err != nil {
			t.Errorf("Save(%q): %v", name, err)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("Stat(%q): %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Save(%q) wrote an empty file", name)
		}
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	b := gradientBuf(t, 2, 2)

	err := b.Save(filepath.Join(t.TempDir(), "out.webp"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.webp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSave_BadPath(t *testing.T) {
	b := gradientBuf(t, 2, 2)

	if err := b.Save(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("Save into a nonexistent directory succeeded, want error")
	}
}
