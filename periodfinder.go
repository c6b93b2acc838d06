package qsim

import "math"

/*
FindPeriod turns a measured integer into an estimated period via continued
fractions: it expands measured/2^nQubits into convergents and returns the
first denominator whose convergent sits within 1/(2*2^nQubits) of the
measured fraction. Classical, deterministic number theory — the quantum
part is over by the time this runs.

Returns -1 when measured is 0 (or out of range) or when no convergent with
denominator <= maxDenominator satisfies the bound.
*/
func FindPeriod(measured, nQubits, maxDenominator int) int {
	q := 1 << nQubits
	if measured <= 0 || measured >= q {
		return -1
	}

	x := float64(measured) / float64(q)
	bound := 1.0 / (2.0 * float64(q))

	// Convergent recurrence seeded with h(-2)/k(-2) = 0/1, h(-1)/k(-1) = 1/0.
	numPrev, num := 0, 1
	denPrev, den := 1, 0

	z := x
	for step := 0; step < maxDenominator; step++ {
		a := int(math.Floor(z))
		n := a*num + numPrev
		d := a*den + denPrev
		if d > maxDenominator {
			break
		}

		if d > 0 && math.Abs(float64(n)/float64(d)-x) < bound {
			return d
		}

		numPrev, num = num, n
		denPrev, den = den, d

		rem := z - float64(a)
		if rem == 0 {
			// Residual exhausted: the expansion terminated without a
			// convergent inside the bound.
			break
		}
		z = 1.0 / rem
	}
	return -1
}

// ApproximateFraction returns the best rational approximation num/den of x
// with den <= maxDenominator, via the same convergent recurrence.
func ApproximateFraction(x float64, maxDenominator int) (int, int) {
	numPrev, num := 0, 1
	denPrev, den := 1, 0

	z := x
	for {
		a := int(math.Floor(z))
		n := a*num + numPrev
		d := a*den + denPrev
		if d > maxDenominator {
			break
		}
		numPrev, num = num, n
		denPrev, den = den, d

		if math.Abs(x-float64(num)/float64(den)) < Epsilon {
			break
		}
		rem := z - float64(a)
		if rem == 0 {
			break
		}
		z = 1.0 / rem
	}
	return num, den
}
