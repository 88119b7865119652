// Package imageio loads and stores pixmaps as image files.
//
// The convolution core never touches files; this package is the codec
// collaborator that decodes an input image into a Pixmap before filtering
// and encodes the filtered Pixmap afterwards.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/convolve"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrNilPixmap is returned when a nil pixmap is passed for encoding.
	ErrNilPixmap = errors.New("imageio: nil pixmap")
)

// jpegQuality is the encoder quality used for JPEG output.
const jpegQuality = 95

// Load reads the image file at path into a pixmap. The format is chosen by
// file extension (png, jpg/jpeg, bmp, tif/tiff); an unknown extension falls
// back to content sniffing across the registered formats.
func Load(path string) (*convolve.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	pm, err := Decode(f)
	if err != nil {
		return nil, err
	}

	convolve.Logger().Debug("imageio: loaded",
		"path", path, "width", pm.Width(), "height", pm.Height())
	return pm, nil
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*convolve.Pixmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return convolve.FromImage(img), nil
}

// Save writes pm to the file at path, choosing the encoder from the file
// extension. Supported extensions: .png, .jpg, .jpeg, .bmp, .tif, .tiff.
func Save(path string, pm *convolve.Pixmap) error {
	if pm == nil {
		return ErrNilPixmap
	}

	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := encode(f, pm.ToImage()); err != nil {
		return fmt.Errorf("imageio: encode: %w", err)
	}

	convolve.Logger().Debug("imageio: stored",
		"path", path, "width", pm.Width(), "height", pm.Height())
	return nil
}

// encoderFor maps a file extension to its encoding function.
func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
