// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Bridge depth slices to gonum's mat package so callers can hand a slice
//     to gonum routines (or cross-check results against them).
//   - SliceCDense / FromCDense copy complex data; RealParts / ImagParts split
//     a slice into two real *mat.Dense.
//
// Notes:
//   - gonum rejects zero-length matrices, so empty planes return ErrBadShape.
//   - All conversions copy; no buffer is shared with gonum.

package tensor

import (
	"github.com/katalvlaran/phasor/scalar"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxSliceCDense = "SliceCDense"
	ctxFromCDense  = "FromCDense"
	ctxParts       = "Parts"
)

// sliceBase validates z and a non-empty plane and returns the slice offset.
func (t *Tensor) sliceBase(method string, z int) (int, error) {
	if t.shape.Height == 0 || t.shape.Width == 0 {
		return 0, tensorErrorf(method, ErrBadShape, t.shape)
	}
	if z < 0 || z >= t.shape.Depth {
		return 0, keyErrorf(method, t.shape, Key{Z: z}, ErrIndexOutOfBounds)
	}
	return z * t.shape.Plane(), nil
}

// SliceCDense copies depth slice z into a Height×Width *mat.CDense.
//
// Errors: ErrIndexOutOfBounds (z), ErrBadShape (empty plane).
func (t *Tensor) SliceCDense(z int) (*mat.CDense, error) {
	base, err := t.sliceBase(ctxSliceCDense, z)
	if err != nil {
		return nil, err
	}
	buf := make([]complex128, t.shape.Plane())
	for i := range buf {
		v := t.data[base+i]
		buf[i] = complex(v.Real(), v.Imag())
	}
	return mat.NewCDense(t.shape.Height, t.shape.Width, buf), nil
}

// FromCDense builds a tensor whose slice z is a copy of slices[z].
// All slices must share the same dimensions.
//
// Errors:
//   - ErrBadShape if no slices are given or a slice is empty/nil.
//   - ErrShapeMismatch if slice dimensions differ.
func FromCDense(slices ...mat.CMatrix) (*Tensor, error) {
	if len(slices) == 0 || slices[0] == nil {
		return nil, tensorErrorf(ctxFromCDense, ErrBadShape)
	}
	h, w := slices[0].Dims()
	if h == 0 || w == 0 {
		return nil, tensorErrorf(ctxFromCDense, ErrBadShape)
	}
	t, err := New(Shape{Depth: len(slices), Height: h, Width: w})
	if err != nil {
		return nil, err
	}

	i := 0
	for _, m := range slices {
		if m == nil {
			return nil, tensorErrorf(ctxFromCDense, ErrBadShape, t.shape)
		}
		if r, c := m.Dims(); r != h || c != w {
			return nil, tensorErrorf(ctxFromCDense, ErrShapeMismatch, t.shape)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := m.At(y, x)
				t.data[i] = scalar.New(real(v), imag(v))
				i++
			}
		}
	}
	return t, nil
}

// RealParts returns the real components of depth slice z as a *mat.Dense.
func (t *Tensor) RealParts(z int) (*mat.Dense, error) {
	return t.parts(z, scalar.Scalar.Real)
}

// ImagParts returns the imaginary components of depth slice z as a *mat.Dense.
func (t *Tensor) ImagParts(z int) (*mat.Dense, error) {
	return t.parts(z, scalar.Scalar.Imag)
}

func (t *Tensor) parts(z int, pick func(scalar.Scalar) float64) (*mat.Dense, error) {
	base, err := t.sliceBase(ctxParts, z)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, t.shape.Plane())
	for i := range buf {
		buf[i] = pick(t.data[base+i])
	}
	return mat.NewDense(t.shape.Height, t.shape.Width, buf), nil
}
