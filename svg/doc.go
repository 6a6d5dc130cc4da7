// Package svg is a minimal, append-only SVG document builder.
//
// A Builder collects primitive elements (rect, circle, line, path) and
// group markers in call order, then Flush writes the whole document to an
// io.Writer and resets the buffer so the same Builder can produce another
// document of the same size.
//
// Attributes are an ordered list built with A:
//
//	b.Circle(svg.A("cx", 0.5), svg.A("cy", -0.25), svg.A("r", 0.01), svg.A("fill", "#2b879e"))
//
// and render as key="value" pairs in insertion order, so output is
// byte-for-byte reproducible. Values may be strings (verbatim), floats
// (shortest round-trip form), integers, or space-joined lists ([]string,
// Transform, PathData).
//
// Helpers build the common string values: Translate, Scale, Rotate for
// transforms, RGB and RGBA for colors, MoveTo and CubeTo for path data.
//
// The package performs no escaping: attribute values are trusted input.
package svg
