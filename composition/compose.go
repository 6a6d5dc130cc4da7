// SPDX-License-Identifier: MIT
// Package: composition
//
// compose.go: assembles the full drawing.
//
// Coordinates:
//   - The frame is drawn in pixels.
//   - Everything else is drawn in a unit space centered on the canvas and
//     scaled by size/2.5, so the trace (|p| <= 1) and the packing region
//     [-0.95, 0.95)² stay inside the inner frame.
//
// Draw order (later layers paint over earlier ones):
//   frame → trace → packing.

package composition

import (
	"math"

	"github.com/katalvlaran/phasor/scalar"
	"github.com/katalvlaran/phasor/svg"
	"github.com/katalvlaran/phasor/tensor"
)

const ctxCompose = "Compose"

const (
	frameInset  = 1.0 / 32 // inner frame margin, fraction of size
	viewScale   = 2.5      // size / viewScale pixels per unit
	traceDot    = 0.4      // trace dot radius, fraction of its collision size
	packExtent  = 0.95     // packing candidates lie in [-packExtent, packExtent)²
	outlineOdds = 0.8      // draws >= outlineOdds are outlined instead of filled
	strokeWidth = 0.01
	gridCell    = 1.0 / 32

	minFrequency    = 0.5
	frequencySpread = 5.0
)

// Collision sizes; repeated entries weight the uniform choice.
var (
	traceSizes = []float64{
		2.0 / 256, 2.0 / 256, 2.0 / 256, 2.0 / 256, 2.0 / 256,
		2.0 / 256, 2.0 / 256, 2.0 / 256, 2.0 / 256, 2.0 / 256,
		2.0 / 128, 2.0 / 128, 2.0 / 128, 2.0 / 128,
		2.0 / 128, 2.0 / 128, 2.0 / 128, 2.0 / 128,
	}
	packSizes = []float64{
		2.0 / 64, 2.0 / 64, 2.0 / 64, 2.0 / 64, 2.0 / 64, 2.0 / 64, 2.0 / 64,
		2.0 / 32, 2.0 / 32, 2.0 / 32, 2.0 / 32,
		2.0 / 16, 2.0 / 16,
		2.0 / 8,
	}
)

// Compose draws a complete composition and returns the filled builder.
// The caller flushes it to a writer.
//
// Errors: wrapped tensor and svg errors (not expected with valid options).
func Compose(opts ...Option) (*svg.Builder, error) {
	cfg := newConfig(opts...)

	b, err := svg.NewBuilder(cfg.size, cfg.size)
	if err != nil {
		return nil, compositionErrorf(ctxCompose, err)
	}
	drawFrame(b, cfg)

	b.Begin(svg.A("transform", svg.Transform{
		svg.Translate(cfg.size/2, cfg.size/2),
		svg.Scale(cfg.size/viewScale, cfg.size/viewScale),
	}))

	attr, err := frequencies(cfg)
	if err != nil {
		return nil, compositionErrorf(ctxCompose, err)
	}
	points, err := Pendulum(attr, cfg.framerate, cfg.duration)
	if err != nil {
		return nil, compositionErrorf(ctxCompose, err)
	}

	placed := newGrid(gridCell)
	drawTrace(b, cfg, placed, points)
	drawPacking(b, cfg, placed)

	b.End()
	return b, nil
}

func drawFrame(b *svg.Builder, cfg config) {
	w := cfg.size
	m := w * frameInset
	b.Rect(
		svg.A("x", 0), svg.A("y", 0),
		svg.A("width", w), svg.A("height", w),
		svg.A("stroke", "none"), svg.A("fill", cfg.palette.Foreground),
	)
	b.Rect(
		svg.A("x", m), svg.A("y", m),
		svg.A("width", w-2*m), svg.A("height", w-2*m),
		svg.A("stroke", "none"), svg.A("fill", cfg.palette.Background),
	)
}

// frequencies builds the 1×harmonics×2 frequency tensor, each entry a real
// scalar in [minFrequency, minFrequency+frequencySpread).
func frequencies(cfg config) (*tensor.Tensor, error) {
	attr, err := tensor.New(tensor.Shape{Depth: 1, Height: cfg.harmonics, Width: 2})
	if err != nil {
		return nil, err
	}
	err = attr.FillFunc(func(tensor.Key) scalar.Scalar {
		return scalar.Polar(frequencySpread*cfg.rng.Float64()+minFrequency, 0)
	})
	if err != nil {
		return nil, err
	}
	return attr, nil
}

// drawTrace places every mirrored pendulum sample. Trace dots never reject
// each other; they only reserve space for the packing.
func drawTrace(b *svg.Builder, cfg config, placed *grid, points []scalar.Scalar) {
	for _, p := range points {
		size := scalar.New(choice(cfg, traceSizes), 0)
		for _, m := range Mirror(p) {
			placed.insert(Circle{Center: m, Size: size})
			b.Circle(
				svg.A("cx", m.X()), svg.A("cy", m.Y()),
				svg.A("r", size.Length()*traceDot),
				svg.A("stroke", "none"), svg.A("fill", cfg.palette.Accent),
			)
		}
	}
}

// drawPacking tries cfg.packing random candidates and keeps those whose four
// mirror images are all free.
func drawPacking(b *svg.Builder, cfg config, placed *grid) {
	for i := 0; i < cfg.packing; i++ {
		p := scalar.New(
			2*packExtent*cfg.rng.Float64()-packExtent,
			2*packExtent*cfg.rng.Float64()-packExtent,
		)
		mirrors := Mirror(p)
		size := scalar.New(choice(cfg, packSizes), 0)
		if blocked(cfg, placed, mirrors, size) {
			continue
		}
		for _, m := range mirrors {
			placed.insert(Circle{Center: m, Size: size})
			if cfg.rng.Float64() >= outlineOdds {
				b.Circle(
					svg.A("cx", m.X()), svg.A("cy", m.Y()),
					svg.A("r", size.Length()),
					svg.A("stroke", cfg.palette.Foreground),
					svg.A("stroke-width", strokeWidth),
					svg.A("fill", "none"),
				)
				continue
			}
			b.Circle(
				svg.A("cx", m.X()), svg.A("cy", m.Y()),
				svg.A("r", size.Length()),
				svg.A("stroke", "none"), svg.A("fill", cfg.palette.Foreground),
			)
		}
	}
}

func blocked(cfg config, placed *grid, mirrors [4]scalar.Scalar, size scalar.Scalar) bool {
	for _, box := range cfg.exclusions {
		if box.Contains(mirrors[0]) {
			return true
		}
	}
	for _, m := range mirrors {
		if placed.collides(Circle{Center: m, Size: size}) {
			return true
		}
	}
	return false
}

// choice picks a uniformly random element of xs.
func choice(cfg config, xs []float64) float64 {
	return xs[int(math.Floor(float64(len(xs))*cfg.rng.Float64()))]
}
