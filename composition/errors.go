// SPDX-License-Identifier: MIT
// Package: composition
//
// errors.go: sentinel errors for the composition package.
//
// Error policy:
//   - Runtime parameters that arrive as plain arguments (Pendulum) are
//     validated and reported with ErrBadParameter.
//   - Option constructors (WithX) panic on meaningless values instead.
//   - Errors from tensor and svg are wrapped with %w and keep their sentinels.

package composition

import (
	"errors"
	"fmt"
)

// ErrBadParameter indicates a non-positive or non-finite framerate or
// duration, or a similar out-of-domain numeric argument.
var ErrBadParameter = errors.New("composition: invalid parameter")

// compositionErrorf wraps err with the calling function's name.
func compositionErrorf(method string, err error) error {
	return fmt.Errorf("composition.%s: %w", method, err)
}
