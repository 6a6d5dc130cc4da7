// SPDX-License-Identifier: MIT
// Package: svg
//
// errors.go: sentinel errors for the svg package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached at the call site with %w, never in the sentinel.

package svg

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive or non-finite document width/height.
var ErrBadSize = errors.New("svg: invalid document size")

// ErrNilWriter indicates Flush was called with a nil io.Writer.
var ErrNilWriter = errors.New("svg: nil writer")

// svgErrorf prefixes err with the method name, keeping the sentinel for errors.Is.
func svgErrorf(method string, err error) error {
	return fmt.Errorf("svg.%s: %w", method, err)
}
