// SPDX-License-Identifier: MIT

// Package tensor: domain-facing value types (Shape, Key, Generator).
// Only plain data lives here; behavior is in impl_*.go and ops_*.go.
package tensor

import (
	"strconv"

	"github.com/katalvlaran/phasor/scalar"
)

// Shape is the fixed (depth, height, width) extent of a Tensor.
type Shape struct {
	Depth  int // number of 2D slices
	Height int // rows per slice
	Width  int // columns per slice
}

// Capacity returns Depth*Height*Width, the required buffer length.
// Complexity: O(1).
func (s Shape) Capacity() int {
	return s.Depth * s.Height * s.Width
}

// Plane returns Height*Width, the length of one depth slice.
func (s Shape) Plane() int {
	return s.Height * s.Width
}

// Equal reports whether all three extents match.
func (s Shape) Equal(o Shape) bool {
	return s.Depth == o.Depth && s.Height == o.Height && s.Width == o.Width
}

// valid reports whether every extent is non-negative.
func (s Shape) valid() bool {
	return s.Depth >= 0 && s.Height >= 0 && s.Width >= 0
}

// String renders "DxHxW".
func (s Shape) String() string {
	return strconv.Itoa(s.Depth) + "x" + strconv.Itoa(s.Height) + "x" + strconv.Itoa(s.Width)
}

// Key addresses one element by (z, y, x).
type Key struct {
	Z, Y, X int
}

// String renders "(z,y,x)".
func (k Key) String() string {
	return "(" + strconv.Itoa(k.Z) + "," + strconv.Itoa(k.Y) + "," + strconv.Itoa(k.X) + ")"
}

// Generator produces the value stored at a position during FillFunc.
// It is invoked exactly once per key, depth-major then height then width.
type Generator func(k Key) scalar.Scalar
