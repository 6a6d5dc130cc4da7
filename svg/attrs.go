// SPDX-License-Identifier: MIT
// Package: svg
//
// attrs.go: ordered attributes and value rendering.
//
// Rendering rules:
//   - string, Transform and PathData pieces are emitted verbatim.
//   - float64/float32 use strconv 'g' with the shortest round-trip precision.
//   - int/int64 use base 10.
//   - []string, Transform and PathData join their items with single spaces.
//   - fmt.Stringer values use String(); anything else falls back to fmt.Sprint.

package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is one key="value" pair.
type Attr struct {
	Key   string
	Value any
}

// A is shorthand for Attr{Key: key, Value: value}.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// String renders the list as space-separated key="value" pairs.
func (as Attrs) String() string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = a.Key + `="` + format(a.Value) + `"`
	}
	return strings.Join(parts, " ")
}

// Transform is a list of transform functions applied left to right,
// e.g. Transform{Translate(1, 2), Scale(3, 3)}.
type Transform []string

// PathData is a list of path commands, e.g. PathData{MoveTo(0, 0), CubeTo(...)}.
type PathData []string

// format renders a single attribute value.
func format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatFloat(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []string:
		return strings.Join(v, " ")
	case Transform:
		return strings.Join(v, " ")
	case PathData:
		return strings.Join(v, " ")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
