// SPDX-License-Identifier: MIT

// Package scalar - immutable complex value & field operations.
//
// Purpose:
//   - Provide the leaf value type stored inside tensor buffers.
//   - Normalize "real or complex" operands once, at the call boundary (Lift).
//   - Keep every operation pure: no receiver mutation, no hidden state.
//
// Numeric policy:
//   - Inv of the zero scalar returns the zero scalar (no division by zero).
//   - Equals uses a fixed absolute tolerance of Epsilon on each component.

package scalar

import (
	"math"
	"strconv"
)

// Epsilon is the absolute per-component tolerance used by Equals.
// It is a fixed constant of the numeric model and is not configurable.
const Epsilon = 1e-2

// Scalar is an immutable complex number (real + imag·i).
// The zero value is the complex zero.
type Scalar struct {
	re float64 // real component
	im float64 // imaginary component
}

// Like is the closed set of operands accepted by binary operations:
// Float (a real number lifted to (v, 0)) or Scalar itself.
type Like interface {
	lift() Scalar
}

// Float is a real number usable wherever a Like operand is expected.
type Float float64

// Compile-time assertions: both members of the union satisfy Like.
var (
	_ Like = Float(0)
	_ Like = Scalar{}
)

func (f Float) lift() Scalar { return Scalar{re: float64(f)} }

func (s Scalar) lift() Scalar { return s }

// Lift normalizes a Like operand into a Scalar.
// A nil operand lifts to Zero.
func Lift(v Like) Scalar {
	if v == nil {
		return Zero
	}
	return v.lift()
}

// Well-known constants.
var (
	Zero = Scalar{}        // 0+0i
	One  = Scalar{re: 1.0} // 1+0i
)

// New returns the scalar re + im·i.
func New(re, im float64) Scalar {
	return Scalar{re: re, im: im}
}

// Polar returns the scalar with the given length and phase (radians).
func Polar(length, phase float64) Scalar {
	return Scalar{
		re: length * math.Cos(phase),
		im: length * math.Sin(phase),
	}
}

// UnitTurn returns the point on the unit circle at t full turns
// (t=0.25 ⇒ i, t=0.5 ⇒ -1).
func UnitTurn(t float64) Scalar {
	return Polar(1, t*2*math.Pi)
}

// Real returns the real component.
func (s Scalar) Real() float64 { return s.re }

// Imag returns the imaginary component.
func (s Scalar) Imag() float64 { return s.im }

// X is the real component read as a plane coordinate.
func (s Scalar) X() float64 { return s.re }

// Y is the imaginary component read as a plane coordinate.
func (s Scalar) Y() float64 { return s.im }

// Norm returns real² + imag² (the squared length).
func (s Scalar) Norm() float64 {
	return s.re*s.re + s.im*s.im
}

// Length returns sqrt(Norm()).
func (s Scalar) Length() float64 {
	return math.Sqrt(s.Norm())
}

// Phase returns atan2(imag, real) in radians.
func (s Scalar) Phase() float64 {
	return math.Atan2(s.im, s.re)
}

// Conj negates the imaginary component.
func (s Scalar) Conj() Scalar {
	return Scalar{re: s.re, im: -s.im}
}

// Neg negates both components.
func (s Scalar) Neg() Scalar {
	return Scalar{re: -s.re, im: -s.im}
}

// Add returns s + rhs.
func (s Scalar) Add(rhs Like) Scalar {
	r := Lift(rhs)
	return Scalar{re: s.re + r.re, im: s.im + r.im}
}

// Sub returns s - rhs.
func (s Scalar) Sub(rhs Like) Scalar {
	return s.Add(Lift(rhs).Neg())
}

// Mul returns s · rhs.
func (s Scalar) Mul(rhs Like) Scalar {
	r := Lift(rhs)
	return Scalar{
		re: s.re*r.re - s.im*r.im,
		im: s.re*r.im + s.im*r.re,
	}
}

// Inv returns the multiplicative inverse conj(s)/norm(s).
// The zero scalar is its own "inverse": Inv returns s unchanged when norm == 0.
func (s Scalar) Inv() Scalar {
	norm := s.Norm()
	if norm == 0 {
		return s
	}
	return Scalar{re: s.re / norm, im: -s.im / norm}
}

// Div returns s · rhs⁻¹ (see Inv for the zero divisor policy).
func (s Scalar) Div(rhs Like) Scalar {
	return s.Mul(Lift(rhs).Inv())
}

// SqReLU is a norm-gated nonlinearity: when norm(s) > norm(bias) it returns
// Polar(length(s)², phase(s)+phase(bias)); otherwise it returns Zero.
func (s Scalar) SqReLU(bias Like) Scalar {
	b := Lift(bias)
	if s.Norm() > b.Norm() {
		l := s.Length()
		return Polar(l*l, s.Phase()+b.Phase())
	}
	return Zero
}

// Equals reports whether both components differ from rhs by strictly less
// than Epsilon.
func (s Scalar) Equals(rhs Like) bool {
	r := Lift(rhs)
	dre := math.Abs(s.re - r.re)
	dim := math.Abs(s.im - r.im)
	return dre < Epsilon && dim < Epsilon
}

// String renders "re", "re+imi" or "re-imi".
func (s Scalar) String() string {
	re := strconv.FormatFloat(s.re, 'g', -1, 64)
	if s.im == 0 {
		return re
	}
	if s.im > 0 {
		return re + "+" + strconv.FormatFloat(s.im, 'g', -1, 64) + "i"
	}
	return re + "-" + strconv.FormatFloat(-s.im, 'g', -1, 64) + "i"
}
