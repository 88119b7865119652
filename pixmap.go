package convolve

import (
	"image"
	"image/color"
)

// bytesPerPixel is the storage size of one RGBA pixel.
const bytesPerPixel = 4

// Channel offsets within a pixel.
const (
	channelRed   = 0
	channelGreen = 1
	channelBlue  = 2
	channelAlpha = 3
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * bytesPerPixel
	p.data[i+channelRed] = uint8(clamp255(c.R * 255))
	p.data[i+channelGreen] = uint8(clamp255(c.G * 255))
	p.data[i+channelBlue] = uint8(clamp255(c.B * 255))
	p.data[i+channelAlpha] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * bytesPerPixel
	return RGBA{
		R: float64(p.data[i+channelRed]) / 255,
		G: float64(p.data[i+channelGreen]) / 255,
		B: float64(p.data[i+channelBlue]) / 255,
		A: float64(p.data[i+channelAlpha]) / 255,
	}
}

// SetPixel8 sets a single pixel from raw 8-bit channel values.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel8(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * bytesPerPixel
	p.data[i+channelRed] = r
	p.data[i+channelGreen] = g
	p.data[i+channelBlue] = b
	p.data[i+channelAlpha] = a
}

// Pixel8 returns the raw 8-bit channel values of a single pixel.
// Out-of-bounds coordinates return a zero pixel.
func (p *Pixmap) Pixel8(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * bytesPerPixel
	return p.data[i+channelRed], p.data[i+channelGreen], p.data[i+channelBlue], p.data[i+channelAlpha]
}

// channel returns one channel byte of the pixel at (x, y).
// Coordinates must be in bounds; the convolution worker clamps them first.
func (p *Pixmap) channel(x, y, ch int) uint8 {
	return p.data[(y*p.width+x)*bytesPerPixel+ch]
}

// setChannel writes one channel byte of the pixel at (x, y).
func (p *Pixmap) setChannel(x, y, ch int, v uint8) {
	p.data[(y*p.width+x)*bytesPerPixel+ch] = v
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += bytesPerPixel {
		p.data[i+channelRed] = r
		p.data[i+channelGreen] = g
		p.data[i+channelBlue] = b
		p.data[i+channelAlpha] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// Equal reports whether two pixmaps have the same dimensions and pixel data.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if other == nil || p.width != other.width || p.height != other.height {
		return false
	}
	for i, v := range p.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if src, ok := img.(*image.NRGBA); ok && src.Stride == width*bytesPerPixel {
		copy(pm.data, src.Pix)
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetPixel8(x, y, c.R, c.G, c.B, c.A)
		}
	}

	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.Pixel8(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
