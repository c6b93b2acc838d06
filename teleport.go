package qsim

import (
	"fmt"
	"math"

	"github.com/theapemachine/errnie"
)

// TeleportResult carries the classical bits sent alongside the protocol
// and the receiver's final state.
type TeleportResult struct {
	// MeasuredBits packs the two classical bits: bit 1 is the Bell-half
	// measurement (X correction), bit 0 the source qubit's (Z correction).
	MeasuredBits int

	// State is the corrected 3-qubit register after the protocol.
	State *Register

	// Qubit is the receiver qubit reduced to a single-qubit register;
	// index 0 holds the |0⟩ amplitude, index 1 the |1⟩ amplitude.
	Qubit *Register
}

/*
Teleport runs the standard teleportation protocol for the state
alpha|0⟩ + beta|1⟩: Bell pair on qubits 1 and 2, entangling CNOT and
Hadamard on the source side, measurement of qubits 0 and 1, then the
conditional Pauli corrections on qubit 2. The receiver's amplitudes equal
(alpha, beta) up to floating error.

The amplitudes are normalized defensively before the run; a zero input is
an error.
*/
func Teleport(alpha, beta Scalar, m *Measurer) (*TeleportResult, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: measurer", ErrNilArgument)
	}
	norm := alpha.AbsSquared() + beta.AbsSquared()
	if norm == 0 {
		return nil, fmt.Errorf("%w: zero input state", ErrZeroNorm)
	}
	if math.Abs(norm-1) > Epsilon {
		scale := 1 / math.Sqrt(norm)
		alpha = alpha.MulFloat(scale)
		beta = beta.MulFloat(scale)
	}

	// |ψ⟩ ⊗ |00⟩: qubit 0 carries the state to teleport.
	reg := NewRegister(3)
	reg.amps[0] = AmplitudeOf(CompA, alpha) // |000⟩
	reg.amps[4] = AmplitudeOf(CompA, beta)  // |100⟩

	// Bell pair on qubits 1 and 2.
	var err error
	if reg, err = ApplySingleQubitGate(reg, Hadamard(), 1); err != nil {
		return nil, err
	}
	cnot12, err := ControlledXOnNQubits(3, 1, 2)
	if err != nil {
		return nil, err
	}
	if reg, err = cnot12.Apply(reg); err != nil {
		return nil, err
	}

	// Entangle the source qubit with the Bell half.
	cnot01, err := ControlledXOnNQubits(3, 0, 1)
	if err != nil {
		return nil, err
	}
	if reg, err = cnot01.Apply(reg); err != nil {
		return nil, err
	}
	if reg, err = ApplySingleQubitGate(reg, Hadamard(), 0); err != nil {
		return nil, err
	}

	// Measure the sender's qubits; outcome bit 1 is qubit 0, bit 0 is
	// qubit 1.
	outcome, collapsed, err := m.MeasureQubits(reg, []int{0, 1})
	if err != nil {
		return nil, err
	}
	m0 := (outcome >> 1) & 1
	m1 := outcome & 1
	errnie.Info("teleport: measured m0=%d m1=%d", m0, m1)

	// ApplyCorrections wants the Bell-half bit at position 1.
	corrBits := m1<<1 | m0
	corrected, err := ApplyCorrections(collapsed, corrBits, 2)
	if err != nil {
		return nil, err
	}

	qubit, err := ReduceToSingleQubit(corrected, 2)
	if err != nil {
		return nil, err
	}

	return &TeleportResult{
		MeasuredBits: corrBits,
		State:        corrected,
		Qubit:        qubit,
	}, nil
}
