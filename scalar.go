package qsim

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for scalar equality and zero checks.
// Gate constants built from trig functions accumulate floating error,
// so exact comparison is never meaningful here.
const Epsilon = 1e-10

// Scalar is an immutable complex number. All arithmetic returns new values.
type Scalar struct {
	Re float64
	Im float64
}

var (
	Zero = Scalar{}
	One  = Scalar{Re: 1}
	I    = Scalar{Im: 1}
)

// NewScalar builds a scalar from real and imaginary parts.
func NewScalar(re, im float64) Scalar {
	return Scalar{Re: re, Im: im}
}

// Real builds a scalar with no imaginary part.
func Real(re float64) Scalar {
	return Scalar{Re: re}
}

func (s Scalar) Add(o Scalar) Scalar {
	return Scalar{Re: s.Re + o.Re, Im: s.Im + o.Im}
}

func (s Scalar) Sub(o Scalar) Scalar {
	return Scalar{Re: s.Re - o.Re, Im: s.Im - o.Im}
}

func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar{
		Re: s.Re*o.Re - s.Im*o.Im,
		Im: s.Re*o.Im + s.Im*o.Re,
	}
}

// MulFloat scales both parts by a real factor.
func (s Scalar) MulFloat(f float64) Scalar {
	return Scalar{Re: s.Re * f, Im: s.Im * f}
}

func (s Scalar) Neg() Scalar {
	return Scalar{Re: -s.Re, Im: -s.Im}
}

// Div returns s/o, or ErrDivisionByZero when o has zero magnitude.
func (s Scalar) Div(o Scalar) (Scalar, error) {
	denom := o.Re*o.Re + o.Im*o.Im
	if denom == 0 {
		return Zero, fmt.Errorf("%w: %v / %v", ErrDivisionByZero, s, o)
	}
	return Scalar{
		Re: (s.Re*o.Re + s.Im*o.Im) / denom,
		Im: (s.Im*o.Re - s.Re*o.Im) / denom,
	}, nil
}

func (s Scalar) Conj() Scalar {
	return Scalar{Re: s.Re, Im: -s.Im}
}

// Abs is the magnitude |s|.
func (s Scalar) Abs() float64 {
	return math.Hypot(s.Re, s.Im)
}

// AbsSquared avoids the square root on the hot paths.
func (s Scalar) AbsSquared() float64 {
	return s.Re*s.Re + s.Im*s.Im
}

// Normalized returns s scaled to unit magnitude, or Zero when s is zero.
func (s Scalar) Normalized() Scalar {
	mag := s.Abs()
	if mag == 0 {
		return Zero
	}
	return Scalar{Re: s.Re / mag, Im: s.Im / mag}
}

// Equals compares both parts within Epsilon.
func (s Scalar) Equals(o Scalar) bool {
	return math.Abs(s.Re-o.Re) < Epsilon && math.Abs(s.Im-o.Im) < Epsilon
}

// IsZero reports whether the magnitude rounds to zero within Epsilon.
func (s Scalar) IsZero() bool {
	return s.Abs() < Epsilon
}

func (s Scalar) String() string {
	return fmt.Sprintf("(%f%+fi)", s.Re, s.Im)
}

// Euler returns e^(i*theta), the phase factor used by the rotation and
// phase-shift gate constructors.
func Euler(theta float64) Scalar {
	return Scalar{Re: math.Cos(theta), Im: math.Sin(theta)}
}
