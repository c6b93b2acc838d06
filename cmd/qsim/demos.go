package main

import (
	"github.com/theapemachine/qsim"
)

// step is one named operation applied to the register as the user walks
// through a demo.
type step struct {
	name  string
	apply func(*qsim.Register) (*qsim.Register, error)
}

// demo is a prepared circuit walkthrough: a fresh register plus the steps
// that build up the target state.
type demo struct {
	name      string
	numQubits int
	steps     []step
}

func singleGateStep(name string, gate *qsim.Gate, target int) step {
	return step{
		name: name,
		apply: func(r *qsim.Register) (*qsim.Register, error) {
			return qsim.ApplySingleQubitGate(r, gate, target)
		},
	}
}

func controlledXStep(name string, numQubits, control, target int) step {
	return step{
		name: name,
		apply: func(r *qsim.Register) (*qsim.Register, error) {
			g, err := qsim.ControlledXOnNQubits(numQubits, control, target)
			if err != nil {
				return nil, err
			}
			return g.Apply(r)
		},
	}
}

func demos() []demo {
	return []demo{
		{
			name:      "Bell pair",
			numQubits: 2,
			steps: []step{
				singleGateStep("H on q0", qsim.Hadamard(), 0),
				controlledXStep("CNOT q0→q1", 2, 0, 1),
			},
		},
		{
			name:      "GHZ state",
			numQubits: 3,
			steps: []step{
				singleGateStep("H on q0", qsim.Hadamard(), 0),
				controlledXStep("CNOT q0→q1", 3, 0, 1),
				controlledXStep("CNOT q1→q2", 3, 1, 2),
			},
		},
		{
			name:      "QFT on 3 qubits",
			numQubits: 3,
			steps: []step{
				singleGateStep("X on q2", qsim.PauliX(), 2),
				{
					name:  "QFT q0..q2",
					apply: qsim.ApplyQFT,
				},
			},
		},
		{
			name:      "Superposition sweep",
			numQubits: 4,
			steps: []step{
				singleGateStep("H on q0", qsim.Hadamard(), 0),
				singleGateStep("H on q1", qsim.Hadamard(), 1),
				singleGateStep("H on q2", qsim.Hadamard(), 2),
				singleGateStep("H on q3", qsim.Hadamard(), 3),
			},
		},
	}
}
