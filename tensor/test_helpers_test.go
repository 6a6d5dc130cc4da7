// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures (seeded RNG) shared by the tensor tests.
//   - Reference computations written with At/Set only, independent of the
//     flat-buffer kernels under test.

package tensor_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/phasor/scalar"
	"github.com/katalvlaran/phasor/tensor"
	"github.com/stretchr/testify/require"
)

// shape is a terse Shape literal for table tests.
func shape(d, h, w int) tensor.Shape {
	return tensor.Shape{Depth: d, Height: h, Width: w}
}

// mustNew allocates a zero tensor or fails the test.
func mustNew(tb testing.TB, d, h, w int) *tensor.Tensor {
	tb.Helper()
	t, err := tensor.New(shape(d, h, w))
	require.NoError(tb, err)
	return t
}

// shuffled allocates a tensor filled with random scalars of length
// 10*sqrt(U) and uniform phase, drawn from a seeded source.
func shuffled(tb testing.TB, seed int64, d, h, w int) *tensor.Tensor {
	tb.Helper()
	t := mustNew(tb, d, h, w)
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, t.FillFunc(func(tensor.Key) scalar.Scalar {
		return scalar.Polar(10*math.Sqrt(rng.Float64()), 2*math.Pi*rng.Float64())
	}))
	return t
}

// mustAt reads one element or fails the test.
func mustAt(tb testing.TB, t *tensor.Tensor, z, y, x int) scalar.Scalar {
	tb.Helper()
	v, err := t.At(z, y, x)
	require.NoError(tb, err)
	return v
}

// replicate copies the single slice of a depth-1 tensor into every slice of
// a fresh tensor of the given depth.
func replicate(tb testing.TB, src *tensor.Tensor, depth int) *tensor.Tensor {
	tb.Helper()
	require.Equal(tb, 1, src.Depth())
	out := mustNew(tb, depth, src.Height(), src.Width())
	require.NoError(tb, out.FillFunc(func(k tensor.Key) scalar.Scalar {
		return mustAt(tb, src, 0, k.Y, k.X)
	}))
	return out
}

// forEach visits every key of s in z → y → x order.
func forEach(s tensor.Shape, fn func(z, y, x int)) {
	for z := 0; z < s.Depth; z++ {
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				fn(z, y, x)
			}
		}
	}
}

// sliceOf maps a destination slice index onto an operand, honoring depth-1
// broadcast.
func sliceOf(t *tensor.Tensor, z int) int {
	if t.Depth() == 1 {
		return 0
	}
	return z
}

// matmulRef computes Σ_k fst[z',y,k]*snd[z'',k,x] with At only.
func matmulRef(tb testing.TB, fst, snd *tensor.Tensor, z, y, x int) scalar.Scalar {
	tb.Helper()
	acc := scalar.Zero
	for k := 0; k < fst.Width(); k++ {
		lhs := mustAt(tb, fst, sliceOf(fst, z), y, k)
		rhs := mustAt(tb, snd, sliceOf(snd, z), k, x)
		acc = acc.Add(lhs.Mul(rhs))
	}
	return acc
}
