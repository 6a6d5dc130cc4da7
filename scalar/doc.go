// Package scalar implements an immutable complex number value type.
//
// The scalar package provides:
//
//   - Scalar: a (real, imag) pair of float64 with field operations
//     (Add, Sub, Neg, Mul, Inv, Div), conjugation and polar helpers.
//   - Like: a small closed union of Float and Scalar so binary operations
//     accept either a plain real number or a complex one.
//   - SqReLU: a norm-gated, phase-rotating nonlinearity.
//   - Equals: a fixed-tolerance comparison (Epsilon = 1e-2 per component).
//
// Every operation returns a new value; a Scalar is never mutated after
// construction, so it is safe to copy, share and store by value.
//
//	z := scalar.New(3, 4)
//	z.Length()             // 5
//	z.Mul(scalar.Float(2)) // 6+8i
package scalar
