// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Element-wise unary transforms (Conj, Neg, Inv) in two explicit forms:
//     in place on the receiver, or written into the receiver from a source.
//   - One private kernel (ewUnary) so validation and loops are not duplicated.
//
// Determinism & Performance:
//   - Flat 0..n-1 loop over the row-major buffer; no allocations.

package tensor

import "github.com/katalvlaran/phasor/scalar"

const (
	ctxConj = "ConjOf"
	ctxNeg  = "NegOf"
	ctxInv  = "InvOf"
)

// unaryOp is a pure per-element transform.
type unaryOp func(scalar.Scalar) scalar.Scalar

// ewUnary writes op(src[i]) into dst[i]; src and dst must share a shape.
// src == dst is allowed (in place).
func ewUnary(method string, dst, src *Tensor, op unaryOp) error {
	if err := validateSameShape(dst, src); err != nil {
		return tensorErrorf(method, err, dst.shapeOrZero(), src.shapeOrZero())
	}
	for i := range dst.data {
		dst.data[i] = op(src.data[i])
	}
	return nil
}

// Conj conjugates every element in place.
func (t *Tensor) Conj() {
	_ = ewUnary(ctxConj, t, t, scalar.Scalar.Conj) // same tensor: cannot fail
}

// ConjOf writes conj(src) into t.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) ConjOf(src *Tensor) error {
	return ewUnary(ctxConj, t, src, scalar.Scalar.Conj)
}

// Neg negates every element in place.
func (t *Tensor) Neg() {
	_ = ewUnary(ctxNeg, t, t, scalar.Scalar.Neg)
}

// NegOf writes -src into t.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) NegOf(src *Tensor) error {
	return ewUnary(ctxNeg, t, src, scalar.Scalar.Neg)
}

// Inv replaces every element with its multiplicative inverse in place.
// Zero elements stay zero (see scalar.Scalar.Inv).
func (t *Tensor) Inv() {
	_ = ewUnary(ctxInv, t, t, scalar.Scalar.Inv)
}

// InvOf writes inv(src) into t.
// Errors: ErrNilTensor, ErrShapeMismatch.
func (t *Tensor) InvOf(src *Tensor) error {
	return ewUnary(ctxInv, t, src, scalar.Scalar.Inv)
}
