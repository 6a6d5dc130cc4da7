// SPDX-License-Identifier: MIT

package svg

import "strconv"

// Translate renders "translate(x, y)".
func Translate(x, y float64) string {
	return "translate(" + formatFloat(x) + ", " + formatFloat(y) + ")"
}

// Scale renders "scale(x, y)".
func Scale(x, y float64) string {
	return "scale(" + formatFloat(x) + ", " + formatFloat(y) + ")"
}

// Rotate renders "rotate(deg)".
func Rotate(deg float64) string {
	return "rotate(" + formatFloat(deg) + ")"
}

// RGB renders "rgb(r, g, b)".
func RGB(r, g, b int) string {
	return "rgb(" + strconv.Itoa(r) + ", " + strconv.Itoa(g) + ", " + strconv.Itoa(b) + ")"
}

// RGBA renders "rgba(r, g, b, a)".
func RGBA(r, g, b int, a float64) string {
	return "rgba(" + strconv.Itoa(r) + ", " + strconv.Itoa(g) + ", " + strconv.Itoa(b) + ", " + formatFloat(a) + ")"
}

// PathOption tweaks a path command.
type PathOption func(*pathConfig)

type pathConfig struct {
	relative bool
}

// Relative emits the lower-case (relative) form of a path command.
func Relative() PathOption {
	return func(c *pathConfig) { c.relative = true }
}

func command(abs, rel string, opts []PathOption) string {
	var c pathConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.relative {
		return rel
	}
	return abs
}

// MoveTo renders "M x y" (or "m x y" with Relative()).
func MoveTo(x, y float64, opts ...PathOption) string {
	return command("M", "m", opts) + " " + formatFloat(x) + " " + formatFloat(y)
}

// CubeTo renders a cubic Bézier "C cx1 cy1 cx2 cy2 x y"
// (or "c ..." with Relative()).
func CubeTo(cx1, cy1, cx2, cy2, x, y float64, opts ...PathOption) string {
	out := command("C", "c", opts)
	for _, v := range [...]float64{cx1, cy1, cx2, cy2, x, y} {
		out += " " + formatFloat(v)
	}
	return out
}
