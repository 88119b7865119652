package imageio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gogpu/convolve"
)

// testPixmap builds a small pixmap with distinct channel values.
func testPixmap() *convolve.Pixmap {
	pm := convolve.NewPixmap(4, 3)
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			pm.SetPixel8(x, y, uint8(40*x), uint8(80*y), uint8(10+x+y), 255)
		}
	}
	return pm
}

func TestSaveLoadRoundTrip(t *testing.T) {
	// Lossless formats must reproduce the pixmap byte for byte.
	for _, ext := range []string{".png", ".bmp", ".tif"} {
		t.Run(ext, func(t *testing.T) {
			pm := testPixmap()
			path := filepath.Join(t.TempDir(), "out"+ext)

			if err := Save(path, pm); err != nil {
				t.Fatalf("Save() = %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() = %v", err)
			}
			if !got.Equal(pm) {
				t.Error("round trip changed pixel data")
			}
		})
	}
}

func TestSaveJPEG(t *testing.T) {
	// JPEG is lossy; only dimensions are checked.
	pm := testPixmap()
	path := filepath.Join(t.TempDir(), "out.jpg")

	if err := Save(path, pm); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got.Width() != pm.Width() || got.Height() != pm.Height() {
		t.Errorf("loaded %dx%d, want %dx%d",
			got.Width(), got.Height(), pm.Width(), pm.Height())
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	err := Save(path, testPixmap())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save() = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveNilPixmap(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.png"), nil)
	if !errors.Is(err, ErrNilPixmap) {
		t.Errorf("Save(nil) = %v, want ErrNilPixmap", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
