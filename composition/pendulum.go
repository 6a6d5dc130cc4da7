// SPDX-License-Identifier: MIT
// Package: composition
//
// pendulum.go: harmonic pendulum sampler.
//
// Model:
//   - attr is a frequency tensor with at least two columns; slice 0 is read.
//   - Row r contributes cos(2π·|attr[0,r,0]|·t) to x and
//     sin(2π·|attr[0,r,1]|·t) to y, each weighted 1/H.
//   - Samples are taken at t = k/framerate for k = 0..⌈framerate·duration⌉-1.
//
// Complexity: O(H · framerate · duration) time, one slice of output.

package composition

import (
	"math"

	"github.com/katalvlaran/phasor/scalar"
	"github.com/katalvlaran/phasor/tensor"
	"gonum.org/v1/gonum/floats"
)

const ctxPendulum = "Pendulum"

// Pendulum samples the closed curve described by attr. The returned points
// lie in the unit disk because each coordinate is a mean of cosines or sines.
//
// Errors:
//   - tensor.ErrNilTensor if attr is nil.
//   - tensor.ErrShapeMismatch if attr has no slice, no row, or fewer than
//     two columns.
//   - ErrBadParameter if framerate or duration is not a positive finite number.
func Pendulum(attr *tensor.Tensor, framerate, duration float64) ([]scalar.Scalar, error) {
	if attr == nil {
		return nil, compositionErrorf(ctxPendulum, tensor.ErrNilTensor)
	}
	if attr.Depth() < 1 || attr.Height() < 1 || attr.Width() < 2 {
		return nil, compositionErrorf(ctxPendulum, tensor.ErrShapeMismatch)
	}
	if !finitePositive(framerate) || !finitePositive(duration) {
		return nil, compositionErrorf(ctxPendulum, ErrBadParameter)
	}

	h := attr.Height()
	xfrq := make([]float64, h)
	yfrq := make([]float64, h)
	for row := 0; row < h; row++ {
		fx, err := attr.At(0, row, 0)
		if err != nil {
			return nil, compositionErrorf(ctxPendulum, err)
		}
		fy, err := attr.At(0, row, 1)
		if err != nil {
			return nil, compositionErrorf(ctxPendulum, err)
		}
		xfrq[row], yfrq[row] = fx.Length(), fy.Length()
	}

	times := sampleTimes(int(math.Ceil(framerate*duration)), framerate)
	weight := 1 / float64(h)
	out := make([]scalar.Scalar, len(times))
	for i, t := range times {
		var x, y float64
		for row := 0; row < h; row++ {
			x += weight * scalar.UnitTurn(xfrq[row]*t).X()
			y += weight * scalar.UnitTurn(yfrq[row]*t).Y()
		}
		out[i] = scalar.New(x, y)
	}
	return out, nil
}

// sampleTimes returns n instants spaced 1/framerate apart starting at 0.
func sampleTimes(n int, framerate float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, float64(n-1)/framerate)
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
