package qsim

import (
	"fmt"
	"math/rand/v2"
	"time"
)

/*
Measurer performs Born-rule sampling: the probability of observing basis
index i is |amplitude_i|^2 after normalization. Sampling is the only
nondeterministic operation in the kernel, and the random source is owned
explicitly by the Measurer so runs can be reproduced by seeding.
*/
type Measurer struct {
	rng   *rand.Rand
	stats *Stats
}

// NewMeasurer wraps an explicit random source. A nil rng falls back to a
// time-seeded PCG.
func NewMeasurer(rng *rand.Rand) *Measurer {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15))
	}
	return &Measurer{rng: rng}
}

// NewSeededMeasurer is the reproducible constructor used by tests.
func NewSeededMeasurer(seed uint64) *Measurer {
	return &Measurer{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// WithStats attaches a stats sink and returns the measurer for chaining.
func (m *Measurer) WithStats(s *Stats) *Measurer {
	m.stats = s
	return m
}

/*
Measure samples a full-register outcome: it computes |amplitude_i|^2 for
every basis index, renormalizes the distribution against floating drift,
draws one uniform number and returns the first index whose cumulative
probability exceeds it. The register is not collapsed.
*/
func (m *Measurer) Measure(reg *Register) (int, error) {
	if reg == nil {
		return 0, fmt.Errorf("%w: register", ErrNilArgument)
	}
	probs := reg.Probabilities()
	var total float64
	for _, p := range probs {
		total += p
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: cannot measure zero register", ErrZeroNorm)
	}

	m.stats.recordMeasurement(false)
	r := m.rng.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p / total
		if r <= cum {
			return i, nil
		}
	}
	// Floating drift can leave cum fractionally below 1.
	return len(probs) - 1, nil
}

/*
MeasureQubits measures a subset of qubits: it marginalizes probability over
all basis states sharing the same bits at the listed positions, samples an
outcome from that marginal, then collapses the register to the consistent
subspace and renormalizes. Bit len(qubits)-1-b of the outcome holds qubit
qubits[b]'s value. Returns the outcome and the collapsed register; the
input register is untouched.
*/
func (m *Measurer) MeasureQubits(reg *Register, qubits []int) (int, *Register, error) {
	if reg == nil {
		return 0, nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	n := reg.NumQubits()
	if n < 0 {
		return 0, nil, fmt.Errorf("%w: register dimension %d is not a power of two", ErrDimensionMismatch, reg.Size())
	}
	if len(qubits) == 0 {
		return 0, nil, fmt.Errorf("%w: no qubits to measure", ErrIndexOutOfRange)
	}
	for _, q := range qubits {
		if q < 0 || q >= n {
			return 0, nil, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, q, n)
		}
	}

	marginal := make([]float64, 1<<len(qubits))
	var total float64
	for i := 0; i < reg.Size(); i++ {
		p := reg.amps[i].NormSquared()
		marginal[outcomeBits(i, qubits, n)] += p
		total += p
	}
	if total == 0 {
		return 0, nil, fmt.Errorf("%w: cannot measure zero register", ErrZeroNorm)
	}

	r := m.rng.Float64()
	outcome := len(marginal) - 1
	cum := 0.0
	for i, p := range marginal {
		cum += p / total
		if r <= cum {
			outcome = i
			break
		}
	}

	collapsed, err := CollapseState(reg, qubits, outcome)
	if err != nil {
		return 0, nil, err
	}
	m.stats.recordMeasurement(true)
	return outcome, collapsed, nil
}

// MeasureFirstN measures qubits 0..n-1.
func (m *Measurer) MeasureFirstN(reg *Register, n int) (int, *Register, error) {
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	return m.MeasureQubits(reg, qubits)
}
