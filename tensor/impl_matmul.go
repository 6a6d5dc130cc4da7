// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Batched dense complex matrix product with one-sided batch broadcasting.
//
// Contract:
//   - t.Height == fst.Height, t.Width == snd.Width, fst.Width == snd.Height.
//   - Depths follow Classify (fst depth 1, snd depth 1, or all equal).
//   - All checks run before t is zeroed; on success
//     t[z,y,x] = Σ_k fst_z[y,k] * snd_z[k,x].
//
// Determinism & Performance:
//   - Fixed z → y → k → x order (i-k-j): the inner loop streams a row of snd
//     and a row of t, which keeps accesses contiguous in the row-major buffer.

package tensor

import "github.com/katalvlaran/phasor/scalar"

const ctxMatMul = "MatMul"

// MatMul overwrites t with the batched product fst · snd.
//
// Errors:
//   - ErrNilTensor on nil operands.
//   - ErrUnsupported if t aliases fst or snd (t is zeroed before reading).
//   - ErrShapeMismatch on any violated extent or depth relationship.
//
// Complexity: Time O(D*H*K*W) with K = fst.Width, Space O(1).
func (t *Tensor) MatMul(fst, snd *Tensor) error {
	if err := validateNotNil(t, fst, snd); err != nil {
		return tensorErrorf(ctxMatMul, err)
	}
	if err := validateDistinct(t, fst, snd); err != nil {
		return tensorErrorf(ctxMatMul, err, t.shape, fst.shape, snd.shape)
	}
	if t.shape.Height != fst.shape.Height ||
		t.shape.Width != snd.shape.Width ||
		fst.shape.Width != snd.shape.Height {
		return tensorErrorf(ctxMatMul, ErrShapeMismatch, t.shape, fst.shape, snd.shape)
	}
	mode := Classify(t.shape.Depth, fst.shape.Depth, snd.shape.Depth)
	if mode == BroadcastInvalid {
		return tensorErrorf(ctxMatMul, ErrShapeMismatch, t.shape, fst.shape, snd.shape)
	}

	t.Zero()

	var (
		h, w     = t.shape.Height, t.shape.Width
		inner    = fst.shape.Width
		dstPlane = h * w
		fstPlane = fst.shape.Plane()
		sndPlane = snd.shape.Plane()
		lhs      scalar.Scalar
	)
	for z := 0; z < t.shape.Depth; z++ {
		dstBase := z * dstPlane
		fstBase, sndBase := mode.bases(z, fstPlane, sndPlane)
		for y := 0; y < h; y++ {
			row := dstBase + y*w // start of t[z,y,:]
			for k := 0; k < inner; k++ {
				lhs = fst.data[fstBase+y*inner+k] // fst_z[y,k], reused across x
				col := sndBase + k*w              // start of snd_z[k,:]
				for x := 0; x < w; x++ {
					t.data[row+x] = t.data[row+x].Add(lhs.Mul(snd.data[col+x]))
				}
			}
		}
	}
	return nil
}
