// SPDX-License-Identifier: MIT

// Package tensor - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat buffer with the explicit index formula z*H*W + y*W + x.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed (z → y → x) so generator side effects are reproducible.
//
// Complexity quicksheet:
//   - New: O(D*H*W) zero-init; At/Set: O(1); Fill/CopyFrom/Clone/Equals: O(D*H*W).

package tensor

import (
	"fmt"

	"github.com/katalvlaran/phasor/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxNew      = "New"
	ctxCopyFrom = "CopyFrom"
	ctxFillFunc = "FillFunc"
)

// Tensor is a mutable, fixed-shape, dense 3-axis array of complex scalars.
//   - shape holds (depth, height, width); it never changes after construction.
//   - data is a flat buffer of length shape.Capacity() in row-major order.
//
// A Tensor owns its buffer exclusively.
type Tensor struct {
	shape Shape           // immutable extent
	data  []scalar.Scalar // contiguous row-major storage (len == capacity)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Tensor)(nil)

// New creates a zero-filled tensor of the given shape.
//
// Errors:
//   - ErrBadShape if any extent is negative.
//
// Complexity: Time O(D*H*W), Space O(D*H*W).
func New(shape Shape) (*Tensor, error) {
	if !shape.valid() {
		return nil, tensorErrorf(ctxNew, ErrBadShape, shape)
	}
	// make() zero-fills; the zero Scalar is 0+0i.
	return &Tensor{shape: shape, data: make([]scalar.Scalar, shape.Capacity())}, nil
}

// NewFromData creates a tensor of the given shape backed by a copy of data.
//
// Errors:
//   - ErrBadShape if any extent is negative or len(data) != shape.Capacity().
func NewFromData(shape Shape, data []scalar.Scalar) (*Tensor, error) {
	if !shape.valid() || len(data) != shape.Capacity() {
		return nil, tensorErrorf(ctxNew, ErrBadShape, shape)
	}
	buf := make([]scalar.Scalar, len(data))
	copy(buf, data)

	return &Tensor{shape: shape, data: buf}, nil
}

// Shape returns the tensor's extent.
func (t *Tensor) Shape() Shape { return t.shape }

// Depth returns the number of 2D slices.
func (t *Tensor) Depth() int { return t.shape.Depth }

// Height returns the number of rows per slice.
func (t *Tensor) Height() int { return t.shape.Height }

// Width returns the number of columns per slice.
func (t *Tensor) Width() int { return t.shape.Width }

// Capacity returns the number of stored elements.
func (t *Tensor) Capacity() int { return len(t.data) }

// Data returns a copy of the flat row-major buffer.
// Complexity: O(D*H*W).
func (t *Tensor) Data() []scalar.Scalar {
	out := make([]scalar.Scalar, len(t.data))
	copy(out, t.data)
	return out
}

// indexOf computes the flat offset for (z, y, x) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (t *Tensor) indexOf(method string, z, y, x int) (int, error) {
	if z < 0 || z >= t.shape.Depth ||
		y < 0 || y >= t.shape.Height ||
		x < 0 || x >= t.shape.Width {
		return 0, keyErrorf(method, t.shape, Key{Z: z, Y: y, X: x}, ErrIndexOutOfBounds)
	}
	return z*t.shape.Height*t.shape.Width + y*t.shape.Width + x, nil
}

// At returns the element at (z, y, x).
// Returns ErrIndexOutOfBounds on any component outside its axis.
func (t *Tensor) At(z, y, x int) (scalar.Scalar, error) {
	idx, err := t.indexOf(ctxAt, z, y, x)
	if err != nil {
		return scalar.Zero, err
	}
	return t.data[idx], nil
}

// Set stores v at (z, y, x).
// Returns ErrIndexOutOfBounds on any component outside its axis.
func (t *Tensor) Set(z, y, x int, v scalar.Scalar) error {
	idx, err := t.indexOf(ctxSet, z, y, x)
	if err != nil {
		return err
	}
	t.data[idx] = v
	return nil
}

// Get is At addressed by a Key.
func (t *Tensor) Get(k Key) (scalar.Scalar, error) {
	return t.At(k.Z, k.Y, k.X)
}

// Put is Set addressed by a Key.
func (t *Tensor) Put(k Key, v scalar.Scalar) error {
	return t.Set(k.Z, k.Y, k.X, v)
}

// Zero overwrites every element with scalar.Zero.
func (t *Tensor) Zero() {
	for i := range t.data {
		t.data[i] = scalar.Zero
	}
}

// Fill broadcasts v into every element.
func (t *Tensor) Fill(v scalar.Scalar) {
	for i := range t.data {
		t.data[i] = v
	}
}

// FillFunc stores gen(k) at every key k. gen is invoked exactly once per
// position in depth-major, then height, then width order.
//
// Errors:
//   - ErrNilGenerator if gen is nil (nothing is written).
func (t *Tensor) FillFunc(gen Generator) error {
	if gen == nil {
		return tensorErrorf(ctxFillFunc, ErrNilGenerator)
	}
	i := 0 // flat offset advances in lockstep with (z,y,x)
	for z := 0; z < t.shape.Depth; z++ {
		for y := 0; y < t.shape.Height; y++ {
			for x := 0; x < t.shape.Width; x++ {
				t.data[i] = gen(Key{Z: z, Y: y, X: x})
				i++
			}
		}
	}
	return nil
}

// CopyFrom copies src element-wise into t.
// Errors: ErrNilTensor, ErrShapeMismatch (shapes must be identical).
func (t *Tensor) CopyFrom(src *Tensor) error {
	if err := validateSameShape(t, src); err != nil {
		return tensorErrorf(ctxCopyFrom, err, t.shapeOrZero(), src.shapeOrZero())
	}
	copy(t.data, src.data)
	return nil
}

// Clone returns an independent deep copy of t.
// Complexity: O(D*H*W) time and memory.
func (t *Tensor) Clone() *Tensor {
	buf := make([]scalar.Scalar, len(t.data))
	copy(buf, t.data)
	return &Tensor{shape: t.shape, data: buf}
}

// Equals reports whether other has the same shape and every element pair
// satisfies scalar Equals. A shape mismatch or nil other returns false
// without comparing elements.
func (t *Tensor) Equals(other *Tensor) bool {
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if !t.data[i].Equals(other.data[i]) {
			return false
		}
	}
	return true
}

// String renders "Tensor(DxHxW)".
func (t *Tensor) String() string {
	return "Tensor(" + t.shape.String() + ")"
}

// shapeOrZero returns the shape, tolerating a nil receiver for diagnostics.
func (t *Tensor) shapeOrZero() Shape {
	if t == nil {
		return Shape{}
	}
	return t.shape
}
