package qsim

import (
	"fmt"
	"math/big"
)

/*
ModExp simulates the modular-exponentiation stage of Shor's algorithm on a
two-part register |x, y⟩: assuming y was initialized to |1⟩, it relocates
every input amplitude to |x, Base^x mod Modulus⟩. The input register
occupies the high-order qubits, so basis index = x*2^OutputQubits + y.
*/
type ModExp struct {
	Base         int
	Modulus      int
	InputQubits  int
	OutputQubits int
}

// NewModExp validates the arithmetic parameters: the output register must
// be wide enough to hold every residue mod Modulus.
func NewModExp(base, modulus, inputQubits, outputQubits int) (*ModExp, error) {
	if base < 2 || modulus < 2 {
		return nil, fmt.Errorf("%w: base and modulus must exceed 1", ErrIndexOutOfRange)
	}
	if inputQubits < 1 || outputQubits < 1 {
		return nil, fmt.Errorf("%w: register parts need at least one qubit", ErrIndexOutOfRange)
	}
	if 1<<outputQubits <= modulus-1 {
		return nil, fmt.Errorf("%w: %d output qubits cannot hold residues mod %d", ErrDimensionMismatch, outputQubits, modulus)
	}
	return &ModExp{
		Base:         base,
		Modulus:      modulus,
		InputQubits:  inputQubits,
		OutputQubits: outputQubits,
	}, nil
}

// Apply relocates amplitudes from |x, 1⟩ to |x, Base^x mod Modulus⟩ and
// normalizes the result. The input register is untouched.
func (m *ModExp) Apply(reg *Register) (*Register, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	inputSize := 1 << m.InputQubits
	outputSize := 1 << m.OutputQubits
	if reg.Size() != inputSize*outputSize {
		return nil, fmt.Errorf("%w: register %d, modexp %d", ErrDimensionMismatch, reg.Size(), inputSize*outputSize)
	}

	out := RegisterOfDimension(reg.Size())
	out.numQubits = reg.numQubits
	for x := 0; x < inputSize; x++ {
		amp := reg.amps[x*outputSize+1]
		if amp.IsZero() {
			continue
		}
		residue := PowMod(m.Base, x, m.Modulus)
		out.amps[x*outputSize+residue] = amp.Clone()
	}
	if err := out.Normalize(); err != nil {
		return nil, fmt.Errorf("modexp left no amplitude mass, was the output register |1⟩? %w", err)
	}
	return out, nil
}

// PowMod computes base^exp mod modulus.
func PowMod(base, exp, modulus int) int {
	r := new(big.Int).Exp(
		big.NewInt(int64(base)),
		big.NewInt(int64(exp)),
		big.NewInt(int64(modulus)),
	)
	return int(r.Int64())
}

/*
InitializeRegisters prepares the Shor working state: an input register of
nInput qubits in uniform superposition (Hadamard on each) tensored with an
output register holding |1⟩.
*/
func InitializeRegisters(nInput, nOutput int) (*Register, error) {
	if nInput < 1 || nOutput < 1 {
		return nil, fmt.Errorf("%w: register parts need at least one qubit", ErrIndexOutOfRange)
	}
	total := nInput + nOutput
	reg := NewRegister(total)
	reg.amps[1] = AmplitudeOf(CompA, One) // |0...0⟩|1⟩

	hadamard := Hadamard()
	var err error
	for q := 0; q < nInput; q++ {
		if reg, err = ApplySingleQubitGate(reg, hadamard, q); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
