// SPDX-License-Identifier: MIT
// Package: svg
//
// builder.go: the append-only document buffer.
//
// Contract:
//   - Elements are emitted in call order; Begin/End pairs are not checked.
//   - Flush writes header, elements and footer joined by single spaces,
//     then clears the element buffer (size is kept).
//
// Complexity:
//   - Each appender is O(len(attrs)); Flush is O(total document size).

package svg

import (
	"io"
	"math"
	"strings"
)

const (
	ctxNewBuilder = "NewBuilder"
	ctxFlush      = "Flush"

	xmlns = "http://www.w3.org/2000/svg"
)

// Builder accumulates SVG elements for a document of fixed pixel size.
// A Builder is not safe for concurrent use.
type Builder struct {
	width, height float64
	buf           []string
}

// NewBuilder returns an empty builder for a width×height document.
// Errors: ErrBadSize if either extent is non-positive, NaN or infinite.
func NewBuilder(width, height float64) (*Builder, error) {
	if !validExtent(width) || !validExtent(height) {
		return nil, svgErrorf(ctxNewBuilder, ErrBadSize)
	}
	return &Builder{width: width, height: height}, nil
}

func validExtent(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Width returns the document width.
func (b *Builder) Width() float64 { return b.width }

// Height returns the document height.
func (b *Builder) Height() float64 { return b.height }

// Len reports the number of buffered elements (group markers included).
func (b *Builder) Len() int { return len(b.buf) }

// Begin opens a <g> group carrying attrs (typically a transform).
func (b *Builder) Begin(attrs ...Attr) {
	b.open("g", attrs)
}

// End closes the most recent group.
func (b *Builder) End() {
	b.buf = append(b.buf, "</g>")
}

// Rect appends a <rect/>.
func (b *Builder) Rect(attrs ...Attr) { b.leaf("rect", attrs) }

// Circle appends a <circle/>.
func (b *Builder) Circle(attrs ...Attr) { b.leaf("circle", attrs) }

// Line appends a <line/>.
func (b *Builder) Line(attrs ...Attr) { b.leaf("line", attrs) }

// Path appends a <path/>.
func (b *Builder) Path(attrs ...Attr) { b.leaf("path", attrs) }

func (b *Builder) open(tag string, attrs Attrs) {
	b.buf = append(b.buf, "<"+tag+" "+attrs.String()+">")
}

func (b *Builder) leaf(tag string, attrs Attrs) {
	b.buf = append(b.buf, "<"+tag+" "+attrs.String()+"/>")
}

// Flush writes the complete document to w and resets the element buffer.
// The buffer is reset even if the write fails.
//
// Errors: ErrNilWriter; otherwise whatever w returns.
func (b *Builder) Flush(w io.Writer) error {
	if w == nil {
		return svgErrorf(ctxFlush, ErrNilWriter)
	}
	parts := make([]string, 0, len(b.buf)+6)
	parts = append(parts,
		"<svg",
		`xmlns="`+xmlns+`"`,
		`width="`+formatFloat(b.width)+`"`,
		`height="`+formatFloat(b.height)+`"`,
		">",
	)
	parts = append(parts, b.buf...)
	parts = append(parts, "</svg>")
	b.buf = b.buf[:0]

	if _, err := io.WriteString(w, strings.Join(parts, " ")); err != nil {
		return svgErrorf(ctxFlush, err)
	}
	return nil
}
