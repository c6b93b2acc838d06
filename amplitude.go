package qsim

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

/*
Amplitude is one coefficient of the state vector: a sparse mapping from
symbolic Component to complex Scalar. The invariant maintained by every
mutation is that no entry carries a zero-magnitude coefficient, so IsZero
is exactly "the map is empty".

The zero value is a valid zero amplitude.
*/
type Amplitude struct {
	terms map[Component]Scalar
}

// NewAmplitude returns an empty (zero) amplitude.
func NewAmplitude() Amplitude {
	return Amplitude{terms: make(map[Component]Scalar)}
}

// AmplitudeOf is shorthand for a single-term amplitude.
func AmplitudeOf(c Component, coeff Scalar) Amplitude {
	a := NewAmplitude()
	a.AddTerm(c, coeff)
	return a
}

// AddTerm accumulates coeff into the entry for c, pruning the entry when
// the sum rounds to zero.
func (a *Amplitude) AddTerm(c Component, coeff Scalar) {
	if a.terms == nil {
		a.terms = make(map[Component]Scalar)
	}
	sum := a.terms[c].Add(coeff)
	if sum.IsZero() {
		delete(a.terms, c)
		return
	}
	a.terms[c] = sum
}

// Coefficient returns the coefficient for c, or Zero when absent.
func (a Amplitude) Coefficient(c Component) Scalar {
	return a.terms[c]
}

// Has reports whether c carries a nonzero coefficient.
func (a Amplitude) Has(c Component) bool {
	_, ok := a.terms[c]
	return ok
}

// Len is the number of nonzero terms.
func (a Amplitude) Len() int {
	return len(a.terms)
}

// IsZero reports whether the amplitude is the zero vector.
func (a Amplitude) IsZero() bool {
	return len(a.terms) == 0
}

// Clone returns an independent copy.
func (a Amplitude) Clone() Amplitude {
	out := make(map[Component]Scalar, len(a.terms))
	for c, s := range a.terms {
		out[c] = s
	}
	return Amplitude{terms: out}
}

// Add returns the entrywise sum of a and b, zero-pruned.
func (a Amplitude) Add(b Amplitude) Amplitude {
	out := a.Clone()
	for c, s := range b.terms {
		out.AddTerm(c, s)
	}
	return out
}

// Scale returns a with every coefficient multiplied by s. A zero scalar
// yields the zero amplitude.
func (a Amplitude) Scale(s Scalar) Amplitude {
	if s.IsZero() {
		return NewAmplitude()
	}
	out := make(map[Component]Scalar, len(a.terms))
	for c, coeff := range a.terms {
		out[c] = coeff.Mul(s)
	}
	return Amplitude{terms: out}
}

// Mul returns the component-wise product of a and b: only matching labels
// combine. This realizes the numeric tensor product for the kernel's
// one-label-per-factor usage pattern; it is not a full symbolic product.
func (a Amplitude) Mul(b Amplitude) Amplitude {
	out := NewAmplitude()
	for c, ca := range a.terms {
		if cb, ok := b.terms[c]; ok {
			out.AddTerm(c, ca.Mul(cb))
		}
	}
	return out
}

// NormSquared is the sum of |coeff|^2 over all terms.
func (a Amplitude) NormSquared() float64 {
	var sum float64
	for _, s := range a.terms {
		sum += s.AbsSquared()
	}
	return sum
}

// Normalized returns a scaled to unit norm, or ErrZeroNorm when a is zero.
func (a Amplitude) Normalized() (Amplitude, error) {
	norm := a.NormSquared()
	if norm == 0 {
		return Amplitude{}, fmt.Errorf("%w: zero amplitude", ErrZeroNorm)
	}
	return a.Scale(Real(1 / math.Sqrt(norm))), nil
}

// TensorAmplitudes emits (Combine(l1,l2), c1*c2) for every term pair,
// summing coefficients when combined labels collide.
func TensorAmplitudes(a, b Amplitude) Amplitude {
	out := NewAmplitude()
	for c1, s1 := range a.terms {
		for c2, s2 := range b.terms {
			out.AddTerm(Combine(c1, c2), s1.Mul(s2))
		}
	}
	return out
}

// String renders "coeff*label + coeff*label + ...", terms ordered by label,
// or "0" for the zero amplitude.
func (a Amplitude) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	labels := make([]string, 0, len(a.terms))
	for c := range a.terms {
		labels = append(labels, c.label)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s*%s", a.terms[NewComponent(l)], l))
	}
	return strings.Join(parts, " + ")
}
