// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Centralize the shape contracts used by every writing method.
//   - Return plain sentinels; call sites attach method context uniformly.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package tensor

// validateNotNil ensures none of the given tensors is nil.
// Complexity: O(n) in the number of operands.
func validateNotNil(ts ...*Tensor) error {
	for _, t := range ts {
		if t == nil {
			return ErrNilTensor
		}
	}
	return nil
}

// validateSameShape requires identical (depth, height, width).
func validateSameShape(a, b *Tensor) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if !a.shape.Equal(b.shape) {
		return ErrShapeMismatch
	}
	return nil
}

// validateSamePlane requires equal height and width across all operands;
// depth is left to the broadcast classifier.
func validateSamePlane(dst *Tensor, ops ...*Tensor) error {
	if err := validateNotNil(dst); err != nil {
		return err
	}
	if err := validateNotNil(ops...); err != nil {
		return err
	}
	for _, o := range ops {
		if o.shape.Height != dst.shape.Height || o.shape.Width != dst.shape.Width {
			return ErrShapeMismatch
		}
	}
	return nil
}

// validateBias checks the attribute tensor of SqReLU: a single row of
// per-column biases, shared (depth 1) or per-slice (depth == dst depth).
func validateBias(dst, attr *Tensor) error {
	if err := validateNotNil(dst, attr); err != nil {
		return err
	}
	if attr.shape.Height != 1 || attr.shape.Width != dst.shape.Width {
		return ErrShapeMismatch
	}
	if attr.shape.Depth != 1 && attr.shape.Depth != dst.shape.Depth {
		return ErrShapeMismatch
	}
	return nil
}

// validateDistinct rejects a destination that aliases any operand.
// Used by methods that zero or overwrite the destination before reading.
func validateDistinct(dst *Tensor, ops ...*Tensor) error {
	for _, o := range ops {
		if o == dst {
			return ErrUnsupported
		}
	}
	return nil
}
