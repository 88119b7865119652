// Command convolve applies a named 3x3 convolution filter to an image file.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/nfnt/resize"
	flag "github.com/spf13/pflag"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/internal/imageio"
)

func main() {
	var (
		input      = flag.StringP("input", "i", "", "input image file")
		output     = flag.StringP("output", "o", "", "output image file")
		kernelName = flag.StringP("kernel", "k", convolve.DefaultKernelName, "kernel name")
		workers    = flag.IntP("workers", "n", 1, "number of parallel workers")
		resizeSpec = flag.String("resize", "", "resize input to WxH before filtering")
		verbose    = flag.BoolP("verbose", "v", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		convolve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *input == "" {
		fatalUsage("no input file specified")
	}
	if *output == "" {
		fatalUsage("no output file specified")
	}
	if *input == *output {
		fatalUsage("input and output file can't be the same")
	}

	kernel, ok := convolve.DefaultCatalog().Lookup(*kernelName)
	if !ok {
		fatalUsage(fmt.Sprintf("no kernel named %q", *kernelName))
	}

	pm, err := imageio.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	log.Printf("Loaded %s (%dx%d)", *input, pm.Width(), pm.Height())

	if *resizeSpec != "" {
		pm, err = resizePixmap(pm, *resizeSpec)
		if err != nil {
			log.Fatalf("Failed to resize: %v", err)
		}
		log.Printf("Resized to %dx%d", pm.Width(), pm.Height())
	}

	start := time.Now()
	out, err := convolve.Convolve(pm, kernel, *workers)
	if err != nil {
		log.Fatalf("Failed to convolve: %v", err)
	}
	log.Printf("Convolved with %q using %d worker(s) in %.3fs",
		*kernelName, *workers, time.Since(start).Seconds())

	if err := imageio.Save(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Stored %s (%dx%d)", *output, out.Width(), out.Height())
}

// resizePixmap scales pm to the dimensions given as "WxH", using
// nearest-neighbor interpolation so filter output stays crisp.
func resizePixmap(pm *convolve.Pixmap, spec string) (*convolve.Pixmap, error) {
	var w, h uint
	if _, err := fmt.Sscanf(spec, "%dx%d", &w, &h); err != nil || w == 0 || h == 0 {
		return nil, fmt.Errorf("invalid resize spec %q, want WxH", spec)
	}
	scaled := resize.Resize(w, h, pm.ToImage(), resize.NearestNeighbor)
	return convolve.FromImage(scaled), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, flag.CommandLine.FlagUsages())
	fmt.Fprintln(os.Stderr, "kernels:")
	for _, name := range convolve.DefaultCatalog().Names() {
		suffix := ""
		if name == convolve.DefaultKernelName {
			suffix = " (default)"
		}
		fmt.Fprintf(os.Stderr, "  %s%s\n", name, suffix)
	}
}

func fatalUsage(msg string) {
	fmt.Fprintf(os.Stderr, "\n%s\n\n", msg)
	usage()
	os.Exit(1)
}
