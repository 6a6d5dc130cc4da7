// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All public methods return these sentinels (possibly wrapped with method
// context via %w); callers match them with errors.Is. No method panics on
// user-triggered conditions.

package tensor

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil operand -> index/bad shape -> shape mismatch -> unsupported.

var (
	// ErrBadShape is returned when a requested dimension is negative or a
	// supplied buffer length differs from the shape's capacity.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrIndexOutOfBounds indicates that a key component is outside [0, axis).
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrShapeMismatch indicates operand shapes violate a required equality
	// or broadcast relationship.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrUnsupported marks an operand configuration that is validated but has
	// no defined numeric behavior (e.g. SqReLUOf), or an aliasing the method
	// cannot honor.
	ErrUnsupported = errors.New("tensor: operation not supported")

	// ErrNilTensor indicates a nil *Tensor receiver or operand.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNilGenerator indicates FillFunc was called with a nil generator.
	ErrNilGenerator = errors.New("tensor: nil generator")
)

// tensorErrorf wraps err with a "Tensor.<method>" tag and the shapes involved.
func tensorErrorf(method string, err error, shapes ...Shape) error {
	if len(shapes) == 0 {
		return fmt.Errorf("Tensor.%s: %w", method, err)
	}
	return fmt.Errorf("Tensor.%s%v: %w", method, shapes, err)
}

// keyErrorf wraps err with the method tag and the offending key.
func keyErrorf(method string, s Shape, k Key, err error) error {
	return fmt.Errorf("Tensor(%s).%s%s: %w", s, method, k, err)
}
