// SPDX-License-Identifier: MIT
// Package: composition
//
// options.go: functional options for Compose.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     Compose itself never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package composition

import (
	"fmt"
	"math"
	"math/rand"
)

// Option customizes a composition before drawing begins.
type Option func(*config)

// WithSeed draws every random choice from rand.NewSource(seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The RNG is consumed by Compose; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("composition: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSize sets the square document edge in pixels. Panics if size <= 0.
func WithSize(size float64) Option {
	if !(size > 0) || math.IsInf(size, 0) {
		panic(fmt.Sprintf("composition: WithSize(%v)", size))
	}
	return func(c *config) {
		c.size = size
	}
}

// WithFramerate sets the pendulum samples per time unit. Panics if f <= 0.
func WithFramerate(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("composition: WithFramerate(%v)", f))
	}
	return func(c *config) {
		c.framerate = f
	}
}

// WithDuration sets how long the pendulum is sampled. Panics if d <= 0.
func WithDuration(d float64) Option {
	if !(d > 0) || math.IsInf(d, 0) {
		panic(fmt.Sprintf("composition: WithDuration(%v)", d))
	}
	return func(c *config) {
		c.duration = d
	}
}

// WithPacking sets the number of circle-packing candidates.
// Zero disables the packing layer. Panics if tries < 0.
func WithPacking(tries int) Option {
	if tries < 0 {
		panic(fmt.Sprintf("composition: WithPacking(%d)", tries))
	}
	return func(c *config) {
		c.packing = tries
	}
}

// WithHarmonics sets the number of frequency rows summed by the pendulum.
// Panics if n < 1.
func WithHarmonics(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("composition: WithHarmonics(%d)", n))
	}
	return func(c *config) {
		c.harmonics = n
	}
}

// WithPalette overrides the colors. Empty fields keep their defaults.
func WithPalette(p Palette) Option {
	return func(c *config) {
		if p.Background != "" {
			c.palette.Background = p.Background
		}
		if p.Foreground != "" {
			c.palette.Foreground = p.Foreground
		}
		if p.Accent != "" {
			c.palette.Accent = p.Accent
		}
	}
}

// WithExclusion keeps packing candidates out of the given boxes.
// Boxes accumulate across calls.
func WithExclusion(boxes ...Box) Option {
	return func(c *config) {
		c.exclusions = append(c.exclusions, boxes...)
	}
}
