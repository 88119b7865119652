package convolve

import (
	"errors"
	"time"

	"github.com/gogpu/convolve/internal/parallel"
)

// Convolution errors.
var (
	// ErrInvalidWorkerCount is returned when the worker count is below 1.
	ErrInvalidWorkerCount = errors.New("convolve: worker count must be at least 1")

	// ErrDimensionMismatch is returned when the output pixmap does not have
	// the same dimensions as the input.
	ErrDimensionMismatch = errors.New("convolve: output dimensions do not match input")

	// ErrNilPixmap is returned when the input or output pixmap is nil.
	ErrNilPixmap = errors.New("convolve: nil pixmap")
)

// Convolve applies kernel k to input, splitting the image across the given
// number of parallel workers, and returns a freshly allocated result.
//
// The result is independent of the worker count: partitioning is purely a
// parallelism mechanism. Convolve blocks until every worker has finished;
// on error the returned pixmap is nil.
func Convolve(input *Pixmap, k Kernel, workers int) (*Pixmap, error) {
	if input == nil {
		return nil, ErrNilPixmap
	}
	output := NewPixmap(input.width, input.height)
	if err := ConvolveInto(output, input, k, workers); err != nil {
		return nil, err
	}
	return output, nil
}

// ConvolveInto applies kernel k to src and writes the result into the
// caller-allocated dst, which must have the same dimensions as src.
//
// During the call src is only read and dst is only written; each worker
// writes a disjoint pixel range, so neither buffer is locked. dst must not
// be read until ConvolveInto returns, and must not be used at all if it
// returns an error.
func ConvolveInto(dst, src *Pixmap, k Kernel, workers int) error {
	if dst == nil || src == nil {
		return ErrNilPixmap
	}
	if workers < 1 {
		return ErrInvalidWorkerCount
	}
	if dst.width != src.width || dst.height != src.height {
		return ErrDimensionMismatch
	}

	start := time.Now()
	ranges := Partition(src.width*src.height, workers)

	tasks := make([]func() error, len(ranges))
	for i, r := range ranges {
		r := r
		tasks[i] = func() error {
			convolveRange(dst, src, k, r)
			return nil
		}
	}
	if err := parallel.Join(tasks); err != nil {
		return err
	}

	Logger().Debug("convolve: done",
		"width", src.width,
		"height", src.height,
		"workers", workers,
		"norm", k.Norm(),
		"elapsed", time.Since(start))
	return nil
}

// convolveRange convolves the pixels with indices in [r.Start, r.End),
// reading from src and writing to dst. It may read any src pixel (a 3x3
// neighborhood crosses range boundaries) but writes only its own range.
//
// Border pixels sample clamp-to-edge: out-of-bounds taps replicate the
// nearest in-bounds pixel. The alpha channel is copied through unchanged.
// The normalized sum uses integer division, truncating toward zero, and is
// clamped to [0, 255].
func convolveRange(dst, src *Pixmap, k Kernel, r Range) {
	width := src.width
	height := src.height

	for idx := r.Start; idx < r.End; idx++ {
		y := idx / width
		x := idx % width

		dst.setChannel(x, y, channelAlpha, src.channel(x, y, channelAlpha))

		for ch := channelRed; ch <= channelBlue; ch++ {
			value := 0
			for kr := 0; kr < KernelDim; kr++ {
				for kc := 0; kc < KernelDim; kc++ {
					sy := clampInt(y+kr-kernelHalf, 0, height-1)
					sx := clampInt(x+kc-kernelHalf, 0, width-1)
					value += k.Weight(kr, kc) * int(src.channel(sx, sy, ch))
				}
			}
			value /= k.Norm()
			dst.setChannel(x, y, ch, uint8(clampInt(value, 0, 255)))
		}
	}
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
