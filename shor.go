package qsim

import (
	"fmt"
	"math/bits"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// FactoringResult records one successful order-finding run.
type FactoringResult struct {
	RunID    string
	N        int
	Base     int
	Period   int
	Factors  [2]int
	Attempts int
}

/*
FindFactors runs the Shor workflow against a composite n: pick a base,
build the superposed two-part register, apply modular exponentiation,
measure the output register away, Fourier-transform the input register,
measure it, and feed the outcome through the continued-fraction period
finder. Degenerate outcomes (period not found, odd period, trivial roots)
burn an attempt and retry with a fresh base.

The quantum register needs 3*ceil(log2 n) qubits, so n beyond a few bits
is out of reach for a dense simulator; the capacity guard fails fast
instead of thrashing.
*/
func FindFactors(n int, cfg *Config, m *Measurer, maxAttempts int) (*FactoringResult, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: measurer", ErrNilArgument)
	}
	if n < 4 {
		return nil, fmt.Errorf("%w: nothing to factor below 4", ErrIndexOutOfRange)
	}
	runID := uuid.NewString()

	if n%2 == 0 {
		return &FactoringResult{RunID: runID, N: n, Factors: [2]int{2, n / 2}, Attempts: 0}, nil
	}

	nOutput := bits.Len(uint(n)) // wide enough for residues mod n
	nInput := 2 * nOutput
	if err := CheckCapacity(cfg, nInput+nOutput); err != nil {
		return nil, err
	}

	inputQubits := make([]int, nInput)
	outputQubits := make([]int, nOutput)
	for i := range inputQubits {
		inputQubits[i] = i
	}
	for i := range outputQubits {
		outputQubits[i] = nInput + i
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		base := 2 + m.rng.IntN(n-3) // [2, n-2]
		if g := gcd(base, n); g > 1 {
			// The base shares a factor with n; no quantum work needed.
			errnie.Info("factoring run %s: lucky base %d shares factor %d with %d", runID, base, g, n)
			return &FactoringResult{RunID: runID, N: n, Base: base, Factors: [2]int{g, n / g}, Attempts: attempt}, nil
		}

		period, err := findOrder(base, n, nInput, nOutput, inputQubits, outputQubits, m)
		if err != nil {
			return nil, err
		}
		errnie.Info("factoring run %s: attempt %d, base %d, period %d", runID, attempt, base, period)

		if period <= 0 || period%2 != 0 {
			continue
		}
		root := PowMod(base, period/2, n)
		if root == n-1 || root == 1 {
			continue
		}
		f1 := gcd(root-1, n)
		f2 := gcd(root+1, n)
		if f1 > 1 && f1 < n {
			return &FactoringResult{RunID: runID, N: n, Base: base, Period: period, Factors: [2]int{f1, n / f1}, Attempts: attempt}, nil
		}
		if f2 > 1 && f2 < n {
			return &FactoringResult{RunID: runID, N: n, Base: base, Period: period, Factors: [2]int{f2, n / f2}, Attempts: attempt}, nil
		}
	}
	return nil, fmt.Errorf("no factors of %d found in %d attempts", n, maxAttempts)
}

// findOrder runs one quantum order-finding pass and returns the estimated
// period of base^x mod n, or -1 when the measurement was degenerate.
func findOrder(base, n, nInput, nOutput int, inputQubits, outputQubits []int, m *Measurer) (int, error) {
	reg, err := InitializeRegisters(nInput, nOutput)
	if err != nil {
		return 0, err
	}

	modexp, err := NewModExp(base, n, nInput, nOutput)
	if err != nil {
		return 0, err
	}
	if reg, err = modexp.Apply(reg); err != nil {
		return 0, err
	}

	// Measuring the output register collapses the input register onto the
	// periodic subset of x values sharing one residue.
	if _, reg, err = m.MeasureQubits(reg, outputQubits); err != nil {
		return 0, err
	}

	if reg, err = ApplyQFTToQubits(reg, inputQubits); err != nil {
		return 0, err
	}

	measured, _, err := m.MeasureQubits(reg, inputQubits)
	if err != nil {
		return 0, err
	}

	return FindPeriod(measured, nInput, n), nil
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
