// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Element-wise Add/Sub/Mul with one-sided depth broadcasting.
//   - One-operand forms (Add, Sub, Mul) combine the receiver with src in place.
//   - Two-operand forms (AddOf, SubOf) overwrite the receiver with fst ∘ snd.
//   - MulAccOf accumulates: t[i] = t[i] + fst[i]*snd[i]. Zero t first when a
//     plain product is wanted.
//
// Design:
//   - A single kernel (ewBinary) runs every form; the depth relationship is
//     resolved once by Classify.
//   - Loops: z → flat plane offset; the broadcast operand always reads slice 0.

package tensor

import "github.com/katalvlaran/phasor/scalar"

const (
	ctxAdd    = "Add"
	ctxAddOf  = "AddOf"
	ctxSub    = "Sub"
	ctxSubOf  = "SubOf"
	ctxMul    = "Mul"
	ctxMulAcc = "MulAccOf"
)

// binaryOp is a pure per-element combination.
type binaryOp func(lhs, rhs scalar.Scalar) scalar.Scalar

func addOp(lhs, rhs scalar.Scalar) scalar.Scalar { return lhs.Add(rhs) }
func subOp(lhs, rhs scalar.Scalar) scalar.Scalar { return lhs.Sub(rhs) }
func mulOp(lhs, rhs scalar.Scalar) scalar.Scalar { return lhs.Mul(rhs) }

// ewBinary validates (dst, fst, snd) and writes op(fst, snd) into dst,
// adding to the prior content of dst when accumulate is set.
//
// Stage 1 (Validate): nil → plane (height/width) → depth classification.
// Stage 2 (Execute): per slice, per flat plane offset.
//
// Complexity: Time O(D*H*W), Space O(1).
func ewBinary(method string, dst, fst, snd *Tensor, op binaryOp, accumulate bool) error {
	if err := validateSamePlane(dst, fst, snd); err != nil {
		return tensorErrorf(method, err, dst.shapeOrZero(), fst.shapeOrZero(), snd.shapeOrZero())
	}
	mode := Classify(dst.shape.Depth, fst.shape.Depth, snd.shape.Depth)
	if mode == BroadcastInvalid {
		return tensorErrorf(method, ErrShapeMismatch, dst.shape, fst.shape, snd.shape)
	}

	plane := dst.shape.Plane()
	for z := 0; z < dst.shape.Depth; z++ {
		dstBase := z * plane
		fstBase, sndBase := mode.bases(z, plane, plane)
		for i := 0; i < plane; i++ {
			v := op(fst.data[fstBase+i], snd.data[sndBase+i])
			if accumulate {
				v = dst.data[dstBase+i].Add(v)
			}
			dst.data[dstBase+i] = v
		}
	}
	return nil
}

// inPlace runs the one-operand form: t is both left operand and destination.
// src.Depth must be 1 (broadcast) or t.Depth (element-wise).
func (t *Tensor) inPlace(method string, src *Tensor, op binaryOp) error {
	if err := validateNotNil(t, src); err != nil {
		return tensorErrorf(method, err)
	}
	if src.shape.Depth != 1 && src.shape.Depth != t.shape.Depth {
		return tensorErrorf(method, ErrShapeMismatch, t.shape, src.shape)
	}
	return ewBinary(method, t, t, src, op, false)
}

// Add performs t[z] += src[z] (or src[0] when src.Depth == 1) in place.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) Add(src *Tensor) error {
	return t.inPlace(ctxAdd, src, addOp)
}

// AddOf overwrites t with fst + snd, broadcasting a depth-1 operand.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) AddOf(fst, snd *Tensor) error {
	return ewBinary(ctxAddOf, t, fst, snd, addOp, false)
}

// Sub performs t[z] -= src[z] (or src[0] when src.Depth == 1) in place.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) Sub(src *Tensor) error {
	return t.inPlace(ctxSub, src, subOp)
}

// SubOf overwrites t with fst - snd, broadcasting a depth-1 operand.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) SubOf(fst, snd *Tensor) error {
	return ewBinary(ctxSubOf, t, fst, snd, subOp, false)
}

// Mul performs t[z] *= src[z] (or src[0] when src.Depth == 1) in place.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) Mul(src *Tensor) error {
	return t.inPlace(ctxMul, src, mulOp)
}

// MulAccOf performs the fused multiply-accumulate t += fst * snd,
// broadcasting a depth-1 operand. Existing content of t is kept.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) MulAccOf(fst, snd *Tensor) error {
	return ewBinary(ctxMulAcc, t, fst, snd, mulOp, true)
}
