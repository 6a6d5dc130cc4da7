// SPDX-License-Identifier: MIT

package composition

import "github.com/katalvlaran/phasor/scalar"

// Circle is a disk centered at Center whose radius is Size.Length().
type Circle struct {
	Center scalar.Scalar
	Size   scalar.Scalar
}

// Radius returns Size.Length().
func (c Circle) Radius() float64 { return c.Size.Length() }

// Collides reports whether the two disks overlap. Tangent disks do not collide.
func (c Circle) Collides(o Circle) bool {
	return c.Center.Sub(o.Center).Length() < c.Radius()+o.Radius()
}

// Box is an axis-aligned rectangle centered at Center with extents
// Width.Length() by Height.Length().
type Box struct {
	Center scalar.Scalar
	Width  scalar.Scalar
	Height scalar.Scalar
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p scalar.Scalar) bool {
	hw, hh := b.Width.Length()/2, b.Height.Length()/2
	return p.X() >= b.Center.X()-hw && p.X() <= b.Center.X()+hw &&
		p.Y() >= b.Center.Y()-hh && p.Y() <= b.Center.Y()+hh
}

// Mirror returns p and its reflections across the y axis, the x axis and
// the origin, in that order.
func Mirror(p scalar.Scalar) [4]scalar.Scalar {
	x, y := p.X(), p.Y()
	return [4]scalar.Scalar{
		p,
		scalar.New(-x, y),
		scalar.New(x, -y),
		scalar.New(-x, -y),
	}
}
