// Package convolve applies fixed 3x3 convolution filters to RGBA pixel
// buffers, distributing the work across a configurable number of parallel
// workers.
//
// # Quick Start
//
//	import "github.com/gogpu/convolve"
//
//	catalog := convolve.DefaultCatalog()
//	kernel, _ := catalog.Lookup("sharpen")
//
//	out, err := convolve.Convolve(input, kernel, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Model
//
// An image is a Pixmap: a row-major RGBA byte buffer. Convolution reads the
// shared input from any position (a pixel's neighborhood crosses worker
// boundaries) but each worker writes only its own disjoint pixel range, so
// no synchronization is needed on the output. The result is independent of
// the worker count.
//
// Border pixels use clamp-to-edge sampling: out-of-bounds kernel taps
// replicate the nearest in-bounds pixel. The alpha channel is copied from
// the input unchanged.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixmap, Kernel, Catalog, Partition, Convolve
//   - Internal: parallel (fork-join), imageio (file codecs)
//   - Command: cmd/convolve (file-to-file filtering)
package convolve

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
