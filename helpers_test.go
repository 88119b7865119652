package convolve

import "testing"

// identityKernel returns the kernel that maps every image to itself.
func identityKernel() Kernel {
	return NewKernel([KernelDim][KernelDim]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
}

// edgeDetectKernel returns the zero-sum edge detection kernel.
func edgeDetectKernel() Kernel {
	return NewKernel([KernelDim][KernelDim]int{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	})
}

// testPixmap builds a deterministic pseudo-random pixmap so that parallel
// runs can be compared byte for byte.
func testPixmap(width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	seed := uint32(2463534242)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// xorshift32
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			pm.SetPixel8(x, y, uint8(seed), uint8(seed>>8), uint8(seed>>16), uint8(seed>>24))
		}
	}
	return pm
}

// wantPixel8 fails the test if the pixel at (x, y) does not match.
func wantPixel8(t *testing.T, pm *Pixmap, x, y int, r, g, b, a uint8) {
	t.Helper()
	gr, gg, gb, ga := pm.Pixel8(x, y)
	if gr != r || gg != g || gb != b || ga != a {
		t.Errorf("pixel (%d,%d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
			x, y, gr, gg, gb, ga, r, g, b, a)
	}
}
