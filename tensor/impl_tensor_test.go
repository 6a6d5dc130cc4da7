// Package tensor_test contains unit tests for construction and element access.
package tensor_test

import (
	"testing"

	"github.com/katalvlaran/phasor/scalar"
	"github.com/katalvlaran/phasor/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewZeroFilled verifies shape accessors and zero initialization.
func TestNewZeroFilled(t *testing.T) {
	a := mustNew(t, 2, 3, 4)

	require.Equal(t, shape(2, 3, 4), a.Shape())
	require.Equal(t, 2, a.Depth())
	require.Equal(t, 3, a.Height())
	require.Equal(t, 4, a.Width())
	require.Equal(t, 24, a.Capacity())
	require.Equal(t, 24, a.Shape().Capacity())
	require.Equal(t, 12, a.Shape().Plane())

	for _, v := range a.Data() {
		require.Equal(t, scalar.Zero, v)
	}
}

// TestNewBadShape ensures negative extents are rejected.
func TestNewBadShape(t *testing.T) {
	_, err := tensor.New(shape(-1, 2, 2))
	require.ErrorIs(t, err, tensor.ErrBadShape)

	_, err = tensor.New(shape(2, 2, -2))
	require.ErrorIs(t, err, tensor.ErrBadShape)

	// Zero extents are legal: capacity 0.
	e, err := tensor.New(shape(0, 2, 2))
	require.NoError(t, err)
	require.Equal(t, 0, e.Capacity())
}

// TestNewFromData checks buffer length validation and ownership.
func TestNewFromData(t *testing.T) {
	buf := []scalar.Scalar{
		scalar.New(0, 0), scalar.New(1, 0),
		scalar.New(2, 0), scalar.New(3, 0),
	}

	_, err := tensor.NewFromData(shape(2, 2, 2), buf)
	require.ErrorIs(t, err, tensor.ErrBadShape)

	a, err := tensor.NewFromData(shape(1, 2, 2), buf)
	require.NoError(t, err)
	require.Equal(t, scalar.New(3, 0), mustAt(t, a, 0, 1, 1))

	// The tensor owns a copy: later caller writes do not leak in.
	buf[3] = scalar.New(99, 99)
	require.Equal(t, scalar.New(3, 0), mustAt(t, a, 0, 1, 1))
}

// TestAtSetRowMajor verifies the row-major index formula via Data().
func TestAtSetRowMajor(t *testing.T) {
	a := mustNew(t, 2, 3, 4)
	forEach(a.Shape(), func(z, y, x int) {
		require.NoError(t, a.Set(z, y, x, scalar.New(float64(z), float64(y*10+x))))
	})

	data := a.Data()
	forEach(a.Shape(), func(z, y, x int) {
		want := scalar.New(float64(z), float64(y*10+x))
		require.Equal(t, want, data[z*3*4+y*4+x])
		require.Equal(t, want, mustAt(t, a, z, y, x))

		got, err := a.Get(tensor.Key{Z: z, Y: y, X: x})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	require.NoError(t, a.Put(tensor.Key{Z: 1, Y: 2, X: 3}, scalar.One))
	require.Equal(t, scalar.One, mustAt(t, a, 1, 2, 3))
}

// TestAtSetOutOfBounds ensures every axis is bounds-checked on both sides.
func TestAtSetOutOfBounds(t *testing.T) {
	a := mustNew(t, 2, 2, 2)

	keys := []tensor.Key{
		{Z: 2, Y: 0, X: 0},
		{Z: 0, Y: 2, X: 0},
		{Z: 0, Y: 0, X: 2},
		{Z: -1, Y: 0, X: 0},
		{Z: 0, Y: -1, X: 0},
		{Z: 0, Y: 0, X: -1},
	}
	for _, k := range keys {
		_, err := a.At(k.Z, k.Y, k.X)
		require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds, "At%s", k)

		err = a.Set(k.Z, k.Y, k.X, scalar.One)
		require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds, "Set%s", k)

		_, err = a.Get(k)
		require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)

		err = a.Put(k, scalar.One)
		require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
	}

	// Nothing was written by the failed Sets.
	for _, v := range a.Data() {
		require.Equal(t, scalar.Zero, v)
	}
}

// TestFillAndZero covers constant fill and reset.
func TestFillAndZero(t *testing.T) {
	a := mustNew(t, 2, 2, 2)
	c := scalar.New(1.5, -2)

	a.Fill(c)
	for _, v := range a.Data() {
		require.Equal(t, c, v)
	}

	a.Zero()
	for _, v := range a.Data() {
		require.Equal(t, scalar.Zero, v)
	}
}

// TestFillFunc stores f(z,y,x) = (x*z, y*z) at every position.
func TestFillFunc(t *testing.T) {
	a := mustNew(t, 2, 2, 2)
	require.NoError(t, a.FillFunc(func(k tensor.Key) scalar.Scalar {
		return scalar.New(float64(k.X*k.Z), float64(k.Y*k.Z))
	}))

	forEach(a.Shape(), func(z, y, x int) {
		want := scalar.New(float64(x*z), float64(y*z))
		require.True(t, mustAt(t, a, z, y, x).Equals(want))
	})
}

// TestFillFuncOrder pins the z → y → x invocation order.
func TestFillFuncOrder(t *testing.T) {
	a := mustNew(t, 2, 2, 3)
	var seen []tensor.Key
	require.NoError(t, a.FillFunc(func(k tensor.Key) scalar.Scalar {
		seen = append(seen, k)
		return scalar.New(float64(len(seen)), 0)
	}))

	var want []tensor.Key
	forEach(a.Shape(), func(z, y, x int) {
		want = append(want, tensor.Key{Z: z, Y: y, X: x})
	})
	require.Equal(t, want, seen)

	// The counter written by the generator follows the flat buffer order.
	for i, v := range a.Data() {
		require.Equal(t, float64(i+1), v.Real())
	}

	require.ErrorIs(t, a.FillFunc(nil), tensor.ErrNilGenerator)
}

// TestCopyFromAndClone checks shape-validated copy and deep-copy independence.
func TestCopyFromAndClone(t *testing.T) {
	src := shuffled(t, 1, 2, 2, 2)
	dst := mustNew(t, 2, 2, 2)

	require.NoError(t, dst.CopyFrom(src))
	require.True(t, dst.Equals(src))

	wrong := mustNew(t, 1, 2, 2)
	require.ErrorIs(t, wrong.CopyFrom(src), tensor.ErrShapeMismatch)
	require.ErrorIs(t, dst.CopyFrom(nil), tensor.ErrNilTensor)

	clone := src.Clone()
	require.True(t, clone.Equals(src))
	require.NoError(t, clone.Set(0, 0, 0, scalar.New(1e3, 1e3)))
	require.False(t, clone.Equals(src))
}

// TestEquals covers the shape short-circuit and the element tolerance.
func TestEquals(t *testing.T) {
	a := mustNew(t, 1, 2, 2)
	b := mustNew(t, 1, 2, 2)
	require.True(t, a.Equals(b))

	require.NoError(t, b.Set(0, 1, 1, scalar.New(0.005, 0.005)))
	require.True(t, a.Equals(b))

	require.NoError(t, b.Set(0, 1, 1, scalar.New(0.02, 0)))
	require.False(t, a.Equals(b))

	require.False(t, a.Equals(mustNew(t, 1, 4, 1)))
	require.False(t, a.Equals(nil))
}

// TestStrings verifies diagnostics rendering.
func TestStrings(t *testing.T) {
	a := mustNew(t, 2, 3, 4)
	assert.Equal(t, "Tensor(2x3x4)", a.String())
	assert.Equal(t, "2x3x4", a.Shape().String())
	assert.Equal(t, "(1,2,3)", tensor.Key{Z: 1, Y: 2, X: 3}.String())

	_, err := a.At(2, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(2,0,0)")
}
