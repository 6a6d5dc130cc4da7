// Package tensor offers a dense, fixed-rank (3-axis) container of complex
// scalars with broadcasting arithmetic.
//
// The tensor package provides:
//
//   - Tensor: a depth×height×width buffer of scalar.Scalar addressed by the
//     row-major formula z*height*width + y*width + x.
//   - Element access (At/Set, Get/Put) with strict bounds checks.
//   - Element-wise arithmetic with one-sided broadcasting along the depth
//     axis (Add/AddOf, Sub/SubOf, Mul/MulAccOf) and unary transforms
//     (Conj/ConjOf, Neg/NegOf, Inv/InvOf).
//   - Batched matrix multiplication (MatMul), per-slice conjugate transpose
//     (Dual) and a norm-gated activation (SqReLU).
//   - Interop with gonum: export a depth slice as *mat.CDense, build a tensor
//     from complex matrices.
//
// Every method that writes into the receiver validates all operand shapes
// first and returns a sentinel error (ErrShapeMismatch, ErrIndexOutOfBounds,
// ErrUnsupported, ...) before touching a single element. Operands passed for
// reading are never mutated.
//
// A Tensor is not safe for concurrent mutation; it carries no locks.
//
//	a, _ := tensor.New(tensor.Shape{Depth: 4, Height: 2, Width: 2})
//	b, _ := tensor.New(tensor.Shape{Depth: 1, Height: 2, Width: 2})
//	b.Fill(scalar.One)
//	_ = a.Add(b) // b's single slice is added to each of a's four slices
package tensor
