// Package main renders a pendulum composition to SVG.
//
// Usage:
//
//	phasor [-out drawing.svg] [-size 2048] [-seed 1] [-framerate 50000]
//	       [-duration 1] [-packing 5000] [-harmonics 2] [-v]
//
// Without -out the document is written to stdout. The same flags always
// produce the same bytes.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/phasor/composition"
)

type options struct {
	out       string
	size      float64
	seed      int64
	framerate float64
	duration  float64
	packing   int
	harmonics int
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("phasor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.out, "out", "", "output file (default stdout)")
	fs.Float64Var(&o.size, "size", 2048, "document edge in pixels")
	fs.Int64Var(&o.seed, "seed", composition.DefaultSeed, "random seed")
	fs.Float64Var(&o.framerate, "framerate", 5e4, "pendulum samples per time unit")
	fs.Float64Var(&o.duration, "duration", 1, "pendulum sampling duration")
	fs.IntVar(&o.packing, "packing", 5000, "circle packing candidates (0 disables)")
	fs.IntVar(&o.harmonics, "harmonics", 2, "frequency rows summed by the pendulum")
	fs.BoolVar(&o.verbose, "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Option constructors panic on nonsense; reject it here instead.
	switch {
	case !positive(o.size):
		return o, fmt.Errorf("-size must be > 0, got %v", o.size)
	case !positive(o.framerate):
		return o, fmt.Errorf("-framerate must be > 0, got %v", o.framerate)
	case !positive(o.duration):
		return o, fmt.Errorf("-duration must be > 0, got %v", o.duration)
	case o.packing < 0:
		return o, fmt.Errorf("-packing must be >= 0, got %d", o.packing)
	case o.harmonics < 1:
		return o, fmt.Errorf("-harmonics must be >= 1, got %d", o.harmonics)
	}
	return o, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func run(o options, stdout io.Writer, logger *log.Logger) error {
	if o.verbose {
		logger.Printf("composing: size=%v seed=%d framerate=%v duration=%v packing=%d harmonics=%d",
			o.size, o.seed, o.framerate, o.duration, o.packing, o.harmonics)
	}
	b, err := composition.Compose(
		composition.WithSize(o.size),
		composition.WithSeed(o.seed),
		composition.WithFramerate(o.framerate),
		composition.WithDuration(o.duration),
		composition.WithPacking(o.packing),
		composition.WithHarmonics(o.harmonics),
	)
	if err != nil {
		return err
	}
	if o.verbose {
		logger.Printf("composed %d elements", b.Len())
	}

	if o.out == "" {
		return b.Flush(stdout)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := b.Flush(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if o.verbose {
		logger.Printf("wrote %s", o.out)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("phasor: ")

	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("flags: %v", err)
	}
	if err := run(o, os.Stdout, log.Default()); err != nil {
		log.Fatalf("render: %v", err)
	}
}
