package qsim

import (
	"fmt"
	"math"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

/*
Register is the state vector of an n-qubit system: 2^n Amplitude entries
indexed by classical bit pattern. A register may also be built with an
arbitrary positive dimension for gate unit tests, in which case NumQubits
reports -1.

Bit convention, fixed for the whole kernel: qubit 0 is the MOST significant
bit of the basis index, so bit(i, q, n) = (i >> (n-1-q)) & 1. This matches
the tensor-embedding order, where the left Kronecker factor occupies the
higher-order qubit positions. Every function that touches basis indices
goes through bitAt/bitMask below.
*/
type Register struct {
	amps      []Amplitude
	numQubits int
}

// bitAt extracts qubit q's value from basis index i of an n-qubit register.
func bitAt(i, q, n int) int {
	return (i >> (n - 1 - q)) & 1
}

// bitMask is the basis-index mask selecting qubit q of an n-qubit register.
func bitMask(q, n int) int {
	return 1 << (n - 1 - q)
}

// NewRegister returns an n-qubit register with every amplitude zero.
func NewRegister(numQubits int) *Register {
	dim := 1 << numQubits
	r := &Register{
		amps:      make([]Amplitude, dim),
		numQubits: numQubits,
	}
	return r
}

// ZeroState returns |0...0⟩: coefficient 1 on component a at index 0.
func ZeroState(numQubits int) *Register {
	r := NewRegister(numQubits)
	r.amps[0] = AmplitudeOf(CompA, One)
	return r
}

// RegisterOfDimension returns a register with dim amplitude slots. The
// dimension does not have to be a power of two; gate unit tests use odd
// sizes to probe shape handling.
func RegisterOfDimension(dim int) *Register {
	return &Register{
		amps:      make([]Amplitude, dim),
		numQubits: log2OrMinusOne(dim),
	}
}

// Size is the number of amplitude slots.
func (r *Register) Size() int {
	return len(r.amps)
}

// NumQubits is log2(size), or -1 when the dimension is not a power of two.
func (r *Register) NumQubits() int {
	return r.numQubits
}

// Amplitude returns the amplitude at basis index i.
func (r *Register) Amplitude(i int) (Amplitude, error) {
	if i < 0 || i >= len(r.amps) {
		return Amplitude{}, fmt.Errorf("%w: amplitude %d of %d", ErrIndexOutOfRange, i, len(r.amps))
	}
	return r.amps[i], nil
}

// SetAmplitude replaces the amplitude at basis index i.
func (r *Register) SetAmplitude(i int, a Amplitude) error {
	if i < 0 || i >= len(r.amps) {
		return fmt.Errorf("%w: amplitude %d of %d", ErrIndexOutOfRange, i, len(r.amps))
	}
	r.amps[i] = a
	return nil
}

// Clone returns a deep copy of the register.
func (r *Register) Clone() *Register {
	out := &Register{
		amps:      make([]Amplitude, len(r.amps)),
		numQubits: r.numQubits,
	}
	for i, a := range r.amps {
		out.amps[i] = a.Clone()
	}
	return out
}

// NormSquared is the total probability mass of the register.
func (r *Register) NormSquared() float64 {
	var sum float64
	for _, a := range r.amps {
		sum += a.NormSquared()
	}
	return sum
}

// Normalize scales the register to unit norm in place. This is one of the
// two explicitly mutating operations (the other is SetAmplitude); it fails
// before touching anything when the register is the zero vector.
func (r *Register) Normalize() error {
	sum := r.NormSquared()
	if sum == 0 {
		return fmt.Errorf("%w: zero register", ErrZeroNorm)
	}
	factor := Real(1 / math.Sqrt(sum))
	for i, a := range r.amps {
		r.amps[i] = a.Scale(factor)
	}
	return nil
}

// Probabilities returns |amplitude|^2 per basis index, unnormalized.
func (r *Register) Probabilities() []float64 {
	probs := make([]float64, len(r.amps))
	for i, a := range r.amps {
		probs[i] = a.NormSquared()
	}
	return probs
}

// TensorRegisters composes two registers: out[i*s2+j] = r1[i] ⊗ r2[j].
// The qubit count of the result is the sum of the operands' counts.
func TensorRegisters(r1, r2 *Register) (*Register, error) {
	if r1 == nil || r2 == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	s1, s2 := r1.Size(), r2.Size()
	out := RegisterOfDimension(s1 * s2)
	if r1.numQubits >= 0 && r2.numQubits >= 0 {
		out.numQubits = r1.numQubits + r2.numQubits
	}
	for i := 0; i < s1; i++ {
		for j := 0; j < s2; j++ {
			out.amps[i*s2+j] = TensorAmplitudes(r1.amps[i], r2.amps[j])
		}
	}
	return out, nil
}

/*
CollapseState projects the register onto the subspace consistent with a
measurement outcome: every basis amplitude whose bits at the given qubit
positions differ from measuredBits is zeroed, and the survivors are scaled
by the retained probability mass. Bit len(qubits)-1-b of measuredBits holds
qubit qubits[b]'s value, matching Measurer.MeasureQubits.

Fails with ErrCollapseNormZero when nothing survives, which signals an
invalid measurement path such as an inconsistent manual amplitude setup.
*/
func CollapseState(state *Register, qubits []int, measuredBits int) (*Register, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	n := state.numQubits
	if n < 0 {
		return nil, fmt.Errorf("%w: collapse needs a power-of-two register", ErrDimensionMismatch)
	}
	for _, q := range qubits {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, q, n)
		}
	}

	out := RegisterOfDimension(state.Size())
	out.numQubits = n
	var retained float64
	for i, a := range state.amps {
		if outcomeBits(i, qubits, n) != measuredBits {
			continue
		}
		retained += a.NormSquared()
		out.amps[i] = a.Clone()
	}
	if retained == 0 {
		return nil, fmt.Errorf("%w: outcome %b on qubits %v", ErrCollapseNormZero, measuredBits, qubits)
	}

	factor := Real(1 / math.Sqrt(retained))
	for i, a := range out.amps {
		if !a.IsZero() {
			out.amps[i] = a.Scale(factor)
		}
	}
	return out, nil
}

// outcomeBits packs the values of the listed qubits at basis index i into
// an integer, first listed qubit in the most significant position.
func outcomeBits(i int, qubits []int, n int) int {
	out := 0
	for b, q := range qubits {
		out |= bitAt(i, q, n) << (len(qubits) - 1 - b)
	}
	return out
}

/*
ApplySingleQubitGate applies a 2x2 gate to one qubit of an n-qubit register
without materializing the 2^n x 2^n embedding. For every basis index and
each of the gate's two rows it accumulates gate[row][bit] * amp[i] into
either i itself (bit == row) or i with the target bit flipped. This O(2^n)
path is the kernel's default; the matrix embeddings in gate.go exist for
parity with the tensor algebra and for cross-checking.
*/
func ApplySingleQubitGate(state *Register, gate *Gate, target int) (*Register, error) {
	if state == nil || gate == nil {
		return nil, fmt.Errorf("%w: register or gate", ErrNilArgument)
	}
	if gate.dim != 2 {
		return nil, fmt.Errorf("%w: single-qubit path needs a 2x2 gate, got %dx%d", ErrDimensionMismatch, gate.dim, gate.dim)
	}
	n := state.numQubits
	if n < 0 {
		return nil, fmt.Errorf("%w: register dimension %d is not a power of two", ErrDimensionMismatch, state.Size())
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, target, n)
	}

	mask := bitMask(target, n)
	out := RegisterOfDimension(state.Size())
	out.numQubits = n
	for i, amp := range state.amps {
		if amp.IsZero() {
			continue
		}
		bit := bitAt(i, target, n)
		for row := 0; row < 2; row++ {
			coeff := gate.matrix[row][bit]
			if coeff.IsZero() {
				continue
			}
			dst := i
			if bit != row {
				dst = i ^ mask
			}
			acc := out.amps[dst]
			for c, s := range amp.terms {
				acc.AddTerm(c, s.Mul(coeff))
			}
			out.amps[dst] = acc
		}
	}
	return out, nil
}

/*
ReduceToSingleQubit sums, for each value of the target bit, the amplitudes
of all basis states sharing that bit into a 2-entry register. This is a
partial-trace approximation, not a reduced density matrix: the result is a
faithful single-qubit state only when the discarded qubits are unentangled
with the target, and no check enforces that here. Callers such as the
teleportation verification use it after a full measurement of the other
qubits, where the condition holds.
*/
func ReduceToSingleQubit(state *Register, qubit int) (*Register, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	n := state.numQubits
	if n < 0 {
		return nil, fmt.Errorf("%w: register dimension %d is not a power of two", ErrDimensionMismatch, state.Size())
	}
	if qubit < 0 || qubit >= n {
		return nil, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, qubit, n)
	}

	out := RegisterOfDimension(2)
	out.numQubits = 1
	for i, amp := range state.amps {
		bit := bitAt(i, qubit, n)
		out.amps[bit] = out.amps[bit].Add(amp)
	}
	return out, nil
}

// ApplyCorrections applies the teleportation correction step to target:
// Pauli-X when bit 1 of measuredBits is set, then Pauli-Z when bit 0 is
// set. Bit 1 carries the Bell-half measurement, bit 0 the source qubit's.
func ApplyCorrections(state *Register, measuredBits, target int) (*Register, error) {
	out := state
	var err error
	if (measuredBits>>1)&1 == 1 {
		if out, err = ApplySingleQubitGate(out, PauliX(), target); err != nil {
			return nil, err
		}
	}
	if measuredBits&1 == 1 {
		if out, err = ApplySingleQubitGate(out, PauliZ(), target); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// String renders one line per basis index in the symbolic sum format.
func (r *Register) String() string {
	var b strings.Builder
	b.WriteString("Register:\n")
	for i, a := range r.amps {
		fmt.Fprintf(&b, "Amplitude %d: %s\n", i, a)
	}
	return b.String()
}

// DumpState is a verbose structural dump for debugging sessions.
func DumpState(r *Register) string {
	return spew.Sdump(r)
}
