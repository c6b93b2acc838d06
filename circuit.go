package qsim

import (
	"fmt"
	"strings"
	"time"
)

/*
Circuit is an ordered sequence of gates applied in turn to a register.
Run threads a register through every gate and returns the final state;
the input register is never mutated. An optional Stats sink records gate
applications and their cost.
*/
type Circuit struct {
	gates []*Gate
	stats *Stats
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// WithStats attaches a stats sink and returns the circuit for chaining.
func (c *Circuit) WithStats(s *Stats) *Circuit {
	c.stats = s
	return c
}

// Add appends a gate to the circuit.
func (c *Circuit) Add(g *Gate) error {
	if g == nil {
		return fmt.Errorf("%w: gate", ErrNilArgument)
	}
	c.gates = append(c.gates, g)
	return nil
}

// Insert places a gate at the given position, shifting later gates right.
func (c *Circuit) Insert(index int, g *Gate) error {
	if g == nil {
		return fmt.Errorf("%w: gate", ErrNilArgument)
	}
	if index < 0 || index > len(c.gates) {
		return fmt.Errorf("%w: gate index %d of %d", ErrIndexOutOfRange, index, len(c.gates))
	}
	c.gates = append(c.gates, nil)
	copy(c.gates[index+1:], c.gates[index:])
	c.gates[index] = g
	return nil
}

// Remove deletes and returns the gate at the given position.
func (c *Circuit) Remove(index int) (*Gate, error) {
	if index < 0 || index >= len(c.gates) {
		return nil, fmt.Errorf("%w: gate index %d of %d", ErrIndexOutOfRange, index, len(c.gates))
	}
	g := c.gates[index]
	c.gates = append(c.gates[:index], c.gates[index+1:]...)
	return g, nil
}

// GateAt returns the gate at the given position.
func (c *Circuit) GateAt(index int) (*Gate, error) {
	if index < 0 || index >= len(c.gates) {
		return nil, fmt.Errorf("%w: gate index %d of %d", ErrIndexOutOfRange, index, len(c.gates))
	}
	return c.gates[index], nil
}

// Len is the number of gates.
func (c *Circuit) Len() int {
	return len(c.gates)
}

// Clear removes every gate.
func (c *Circuit) Clear() {
	c.gates = nil
}

// Run applies all gates in order and returns the final register.
func (c *Circuit) Run(input *Register) (*Register, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	current := input
	for i, g := range c.gates {
		start := time.Now()
		next, err := g.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		c.stats.recordGate(time.Since(start))
		current = next
	}
	return current, nil
}

// RunStepwise applies all gates in order, returning every intermediate
// register for inspection.
func (c *Circuit) RunStepwise(input *Register) ([]*Register, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	states := make([]*Register, 0, len(c.gates))
	current := input
	for i, g := range c.gates {
		start := time.Now()
		next, err := g.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		c.stats.recordGate(time.Since(start))
		current = next
		states = append(states, current)
	}
	return states, nil
}

func (c *Circuit) String() string {
	var b strings.Builder
	b.WriteString("Circuit:\n")
	for i, g := range c.gates {
		fmt.Fprintf(&b, "Gate %d: %s\n", i, g)
	}
	return b.String()
}
