// Command mandel renders the Mandelbrot set to a grayscale image file.
//
// Usage:
//
//	mandel [flags] <file> <WIDTHxHEIGHT> <UPPER_LEFT> <LOWER_RIGHT>
//
// Corner points are complex numbers written as RE,IM. The output format is
// chosen by the file extension: .png, .bmp, .tif or .tiff.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/internal/cli"
	"github.com/gogpu/mandel/internal/pix"
)

func main() {
	var (
		workers = flag.Int("workers", 0, "number of render workers (0 = all CPUs)")
		backend = flag.String("backend", "go", "band executor: go, steal or seq")
		limit   = flag.Int("limit", mandel.DefaultLimit, "iteration limit (1-255)")
		verbose = flag.Bool("v", false, "log render progress to stderr")
	)
	flag.Parse()

	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	args := flag.Args()
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: mandel [flags] <file> <WIDTHxHEIGHT> <UPPER_LEFT> <LOWER_RIGHT>")
		fmt.Fprintln(os.Stderr, "Example: mandel mandel.png 1000x750 -1.20,0.35 -1,0.20")
		os.Exit(1)
	}

	bounds, err := cli.ParseBounds(args[1])
	if err != nil {
		log.Fatalf("Error parsing image dimensions: %v", err)
	}
	upperLeft, err := cli.ParseComplex(args[2])
	if err != nil {
		log.Fatalf("Error parsing upper left corner point: %v", err)
	}
	lowerRight, err := cli.ParseComplex(args[3])
	if err != nil {
		log.Fatalf("Error parsing lower right corner point: %v", err)
	}
	if *limit < 1 || *limit > 255 {
		log.Fatalf("Iteration limit %d outside 1-255", *limit)
	}
	if *workers <= 0 {
		*workers = runtime.GOMAXPROCS(0)
	}

	// The stealing backend takes one-row bands, matching its per-row work
	// distribution; the others take one band per worker.
	nbands := *workers
	var ex mandel.Executor
	switch *backend {
	case "go":
		ex = mandel.GoExecutor{}
	case "steal":
		se := mandel.NewStealingExecutor(*workers)
		defer se.Close()
		ex = se
		nbands = bounds.Height
	case "seq":
		ex = mandel.SeqExecutor{}
	default:
		log.Fatalf("Unknown backend %q (want go, steal or seq)", *backend)
	}

	vp := mandel.Viewport{UpperLeft: upperLeft, LowerRight: lowerRight}
	pixels := make([]byte, bounds.Pixels())
	ex.Execute(mandel.SplitBands(pixels, bounds, vp, nbands), *limit)

	buf, err := pix.FromRaw(pixels, bounds.Width, bounds.Height)
	if err != nil {
		log.Fatalf("Error wrapping pixel buffer: %v", err)
	}
	if err := buf.Save(args[0]); err != nil {
		log.Fatalf("Error writing image: %v", err)
	}

	log.Printf("Rendered %s (%dx%d)\n", args[0], bounds.Width, bounds.Height)
}
