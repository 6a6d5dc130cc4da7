// Package composition renders a generative "pendulum" drawing on top of the
// tensor and svg packages.
//
// The drawing has three layers:
//
//  1. A frame: a foreground square with a background square inset by 1/32.
//  2. A pendulum trace: Pendulum sums one cosine/sine pair per harmonic row
//     of a 1×H×2 frequency tensor and samples the curve at a fixed
//     framerate. Every sample is mirrored across both axes and drawn as a
//     small accent-colored dot.
//  3. A circle packing: random candidates in [-0.95, 0.95)² are accepted
//     only if none of their four mirror images collides with an existing
//     circle, then drawn filled (80%) or outlined (20%).
//
// Everything random flows from one *rand.Rand configured with WithSeed or
// WithRand, so a given option set always yields the same document.
//
// Usage:
//
//	b, err := composition.Compose(composition.WithSeed(7), composition.WithSize(1024))
//	if err != nil { ... }
//	err = b.Flush(w)
package composition
