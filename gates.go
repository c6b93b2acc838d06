package qsim

import "math"

// Standard gates, each defined by its literal matrix. These matrices are
// the normative fixtures for the gate tests.

// Identity returns the d x d identity gate.
func Identity(dim int) *Gate {
	return mustGate(identityMatrix(dim))
}

// IdentityOfQubits returns the identity on n qubits (dimension 2^n).
func IdentityOfQubits(numQubits int) *Gate {
	return Identity(1 << numQubits)
}

// Hadamard maps |0⟩ to (|0⟩+|1⟩)/√2 and |1⟩ to (|0⟩-|1⟩)/√2.
func Hadamard() *Gate {
	h := Real(1 / math.Sqrt2)
	return mustGate([][]Scalar{
		{h, h},
		{h, h.Neg()},
	})
}

func PauliX() *Gate {
	return mustGate([][]Scalar{
		{Zero, One},
		{One, Zero},
	})
}

func PauliY() *Gate {
	return mustGate([][]Scalar{
		{Zero, I.Neg()},
		{I, Zero},
	})
}

func PauliZ() *Gate {
	return mustGate([][]Scalar{
		{One, Zero},
		{Zero, One.Neg()},
	})
}

// PhaseS is the √Z gate: diag(1, i).
func PhaseS() *Gate {
	return mustGate([][]Scalar{
		{One, Zero},
		{Zero, I},
	})
}

// PhaseT is the π/8 gate: diag(1, e^(iπ/4)).
func PhaseT() *Gate {
	return mustGate([][]Scalar{
		{One, Zero},
		{Zero, Euler(math.Pi / 4)},
	})
}

// RotationX rotates around the X axis by theta.
func RotationX(theta float64) *Gate {
	cos := Real(math.Cos(theta / 2))
	iSin := NewScalar(0, -math.Sin(theta/2))
	return mustGate([][]Scalar{
		{cos, iSin},
		{iSin, cos},
	})
}

// RotationY rotates around the Y axis by theta.
func RotationY(theta float64) *Gate {
	cos := Real(math.Cos(theta / 2))
	sin := Real(math.Sin(theta / 2))
	return mustGate([][]Scalar{
		{cos, sin.Neg()},
		{sin, cos},
	})
}

// RotationZ rotates around the Z axis by theta: diag(e^(-iθ/2), e^(iθ/2)).
func RotationZ(theta float64) *Gate {
	return mustGate([][]Scalar{
		{Euler(-theta / 2), Zero},
		{Zero, Euler(theta / 2)},
	})
}

// PhaseShift is diag(1, e^(iθ)).
func PhaseShift(theta float64) *Gate {
	return mustGate([][]Scalar{
		{One, Zero},
		{Zero, Euler(theta)},
	})
}

// CNOT flips the second qubit when the first is set.
func CNOT() *Gate {
	return mustGate([][]Scalar{
		{One, Zero, Zero, Zero},
		{Zero, One, Zero, Zero},
		{Zero, Zero, Zero, One},
		{Zero, Zero, One, Zero},
	})
}

// ControlledZ negates the |11⟩ amplitude.
func ControlledZ() *Gate {
	return mustGate([][]Scalar{
		{One, Zero, Zero, Zero},
		{Zero, One, Zero, Zero},
		{Zero, Zero, One, Zero},
		{Zero, Zero, Zero, One.Neg()},
	})
}

// Swap exchanges two qubits.
func Swap() *Gate {
	return mustGate([][]Scalar{
		{One, Zero, Zero, Zero},
		{Zero, Zero, One, Zero},
		{Zero, One, Zero, Zero},
		{Zero, Zero, Zero, One},
	})
}

// ControlledPhase is the 4x4 diag(1, 1, 1, e^(iθ)).
func ControlledPhase(theta float64) *Gate {
	return mustGate([][]Scalar{
		{One, Zero, Zero, Zero},
		{Zero, One, Zero, Zero},
		{Zero, Zero, One, Zero},
		{Zero, Zero, Zero, Euler(theta)},
	})
}

// Toffoli (CCNOT) flips the third qubit when the first two are set:
// identity except |110⟩ <-> |111⟩.
func Toffoli() *Gate {
	m := identityMatrix(8)
	m[6][6], m[7][7] = Zero, Zero
	m[6][7], m[7][6] = One, One
	return mustGate(m)
}

// Fredkin (controlled swap) exchanges the last two qubits when the first
// is set: identity except |101⟩ <-> |110⟩.
func Fredkin() *Gate {
	m := identityMatrix(8)
	m[5][5], m[6][6] = Zero, Zero
	m[5][6], m[6][5] = One, One
	return mustGate(m)
}

func identityMatrix(dim int) [][]Scalar {
	m := zeroMatrix(dim)
	for i := 0; i < dim; i++ {
		m[i][i] = One
	}
	return m
}
