// Package phasor is a small complex-number numerics and drawing toolkit.
//
// Subpackages:
//
//	scalar/        immutable complex Scalar with polar helpers and a
//	               tolerance-based Equals
//	tensor/        dense Depth×Height×Width complex tensors: element-wise
//	               arithmetic with depth-1 broadcasting, conjugate
//	               transpose (Dual), batched MatMul, the norm-gated SqReLU
//	               activation and gonum interop
//	svg/           append-only SVG document builder
//	composition/   harmonic pendulum sampler and a mirrored circle-packing
//	               drawing built on tensor and svg
//	cmd/phasor/    CLI that renders a composition to a file or stdout
//
// Quick example:
//
//	a, _ := tensor.New(tensor.Shape{Depth: 4, Height: 3, Width: 3})
//	bias, _ := tensor.New(tensor.Shape{Depth: 1, Height: 3, Width: 3})
//	bias.Fill(scalar.New(0, 1))
//	_ = a.Add(bias) // bias is broadcast over all four slices
//
// Shape and bounds violations are returned as errors wrapping the tensor
// sentinels (ErrShapeMismatch, ErrIndexOutOfBounds, ErrUnsupported); no
// exported function panics except the WithX option constructors.
package phasor
