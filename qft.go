package qsim

import (
	"fmt"
	"math"
)

/*
ApplyQFT runs the quantum Fourier transform over the whole register: for
each qubit t, a Hadamard on t followed by controlled-phase rotations of
angle π/2^(c-t) from every later qubit c, then a bit-reversal permutation
of the basis ordering. The transform is unitary, so the output norm equals
the input norm.
*/
func ApplyQFT(reg *Register) (*Register, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	n := reg.NumQubits()
	if n < 0 {
		return nil, fmt.Errorf("%w: register dimension %d is not a power of two", ErrDimensionMismatch, reg.Size())
	}
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	return ApplyQFTToQubits(reg, qubits)
}

/*
ApplyQFTToQubits runs the QFT over a subset of qubits, leaving the rest
alone. Shor-style workflows need this: after the output register has been
measured away, only the input sub-register is transformed. The listed
qubits form the transformed block, first entry most significant.

Everything runs on the O(2^n) register paths: Hadamards through
ApplySingleQubitGate and the controlled phases as an in-place diagonal
pass, so no 4^n matrix is ever built.
*/
func ApplyQFTToQubits(reg *Register, qubits []int) (*Register, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	n := reg.NumQubits()
	if n < 0 {
		return nil, fmt.Errorf("%w: register dimension %d is not a power of two", ErrDimensionMismatch, reg.Size())
	}
	for _, q := range qubits {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, q, n)
		}
	}

	state := reg
	hadamard := Hadamard()
	var err error
	for t := 0; t < len(qubits); t++ {
		if state, err = ApplySingleQubitGate(state, hadamard, qubits[t]); err != nil {
			return nil, err
		}
		for c := t + 1; c < len(qubits); c++ {
			angle := math.Pi / math.Pow(2, float64(c-t))
			state = applyControlledPhase(state, qubits[c], qubits[t], angle)
		}
	}
	return reverseQubitBlock(state, qubits), nil
}

// applyControlledPhase multiplies every amplitude whose control and target
// bits are both set by e^(i*theta). The gate is diagonal, so this is a
// single O(2^n) pass.
func applyControlledPhase(reg *Register, control, target int, theta float64) *Register {
	n := reg.numQubits
	phase := Euler(theta)
	out := RegisterOfDimension(reg.Size())
	out.numQubits = n
	for i, a := range reg.amps {
		if bitAt(i, control, n) == 1 && bitAt(i, target, n) == 1 {
			out.amps[i] = a.Scale(phase)
		} else {
			out.amps[i] = a.Clone()
		}
	}
	return out
}

// ReverseQubitOrder permutes the basis so qubit q swaps with qubit n-1-q,
// the bit-reversal step completing a full-register QFT.
func ReverseQubitOrder(reg *Register) (*Register, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	n := reg.NumQubits()
	if n < 0 {
		return nil, fmt.Errorf("%w: register dimension %d is not a power of two", ErrDimensionMismatch, reg.Size())
	}
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	return reverseQubitBlock(reg, qubits), nil
}

// reverseQubitBlock reverses the bit order inside the listed qubit block,
// leaving all other qubits in place.
func reverseQubitBlock(reg *Register, qubits []int) *Register {
	n := reg.numQubits
	k := len(qubits)
	out := RegisterOfDimension(reg.Size())
	out.numQubits = n

	for i, a := range reg.amps {
		j := i
		for b := 0; b < k; b++ {
			// Move qubits[b]'s bit to qubits[k-1-b]'s position.
			bit := bitAt(i, qubits[b], n)
			mask := bitMask(qubits[k-1-b], n)
			if bit == 1 {
				j |= mask
			} else {
				j &^= mask
			}
		}
		out.amps[j] = a.Clone()
	}
	return out
}
