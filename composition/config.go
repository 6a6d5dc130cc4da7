// SPDX-License-Identifier: MIT
// Package: composition
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   - size      = 2048 px (square)
//   - framerate = 5e4 samples per time unit, duration = 1
//   - packing   = 5000 candidates
//   - harmonics = 2 rows
//   - rng       = rand.NewSource(DefaultSeed)
//   - palette   = DefaultPalette
//
// newConfig applies options in order; later options override earlier ones.

package composition

import "math/rand"

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

const (
	defaultSize      = 2048.0
	defaultFramerate = 5e4
	defaultDuration  = 1.0
	defaultPacking   = 5000
	defaultHarmonics = 2
)

// Palette names the three colors of a composition.
type Palette struct {
	Background string // inner frame
	Foreground string // outer frame and packed circles
	Accent     string // pendulum trace
}

// DefaultPalette is a warm grey ground with a teal trace.
var DefaultPalette = Palette{
	Background: "#ede3e4",
	Foreground: "#31393c",
	Accent:     "#2b879e",
}

type config struct {
	rng        *rand.Rand
	size       float64
	framerate  float64
	duration   float64
	packing    int
	harmonics  int
	palette    Palette
	exclusions []Box
}

func newConfig(opts ...Option) config {
	cfg := config{
		size:      defaultSize,
		framerate: defaultFramerate,
		duration:  defaultDuration,
		packing:   defaultPacking,
		harmonics: defaultHarmonics,
		palette:   DefaultPalette,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return cfg
}
