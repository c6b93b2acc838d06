package qsim

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// Rough footprint of one symbolic amplitude: map header, one bucket, and
// the component/scalar pair. Deliberately pessimistic.
const bytesPerAmplitude = 192

/*
CheckCapacity verifies that a register of numQubits qubits fits inside the
configured bounds and the host's available memory before anything is
allocated. Library callers are never forced through this check; the Shor
driver and the demo TUI use it because they size registers from user
input.
*/
func CheckCapacity(cfg *Config, numQubits int) error {
	if cfg == nil {
		cfg = NewConfig()
	}
	if numQubits < 1 {
		return fmt.Errorf("%w: need at least one qubit", ErrCapacity)
	}
	if numQubits > cfg.MaxQubits {
		return fmt.Errorf("%w: %d qubits exceeds configured maximum %d", ErrCapacity, numQubits, cfg.MaxQubits)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		// No memory telemetry on this platform; the configured ceiling
		// already passed, so let the allocation proceed.
		return nil
	}

	need := (uint64(1) << numQubits) * bytesPerAmplitude
	budget := uint64(float64(vm.Available) * cfg.MemoryHeadroom)
	if need > budget {
		return fmt.Errorf("%w: %d qubits needs ~%d bytes, budget %d", ErrCapacity, numQubits, need, budget)
	}
	return nil
}
