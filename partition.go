package convolve

// Range is a half-open interval [Start, End) of pixel indices assigned to
// one worker. Indices count pixels, not bytes, so a range can never split
// a pixel.
type Range struct {
	Start int
	End   int
}

// Len returns the number of pixels in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition divides [0, totalPixels) into exactly workers contiguous
// ranges. The ranges are pairwise disjoint and their union covers every
// pixel index exactly once.
//
// Each worker nominally receives totalPixels/workers pixels (integer
// division); the last range absorbs the remainder so that coverage is
// complete even when totalPixels is not evenly divisible. When workers
// exceeds totalPixels, the leading ranges are empty.
//
// Partition panics if workers < 1 or totalPixels < 0; Convolve validates
// both before calling it.
func Partition(totalPixels, workers int) []Range {
	if workers < 1 {
		panic("convolve: Partition requires at least one worker")
	}
	if totalPixels < 0 {
		panic("convolve: Partition requires a non-negative pixel count")
	}

	section := totalPixels / workers
	ranges := make([]Range, workers)
	for i := range ranges {
		ranges[i] = Range{Start: i * section, End: (i + 1) * section}
	}
	ranges[workers-1].End = totalPixels
	return ranges
}
