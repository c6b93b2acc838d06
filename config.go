package qsim

// Config bounds the resource appetite of a simulation run. The state
// vector doubles with every qubit, so the caps below are the only thing
// standing between a typo'd qubit count and an allocation the host cannot
// satisfy.
type Config struct {
	// MaxQubits is a hard ceiling on register width regardless of
	// available memory.
	MaxQubits int

	// MemoryHeadroom is the fraction of currently available memory a
	// register is allowed to claim.
	MemoryHeadroom float64
}

// NewConfig returns the default bounds.
func NewConfig() *Config {
	return &Config{
		MaxQubits:      24,
		MemoryHeadroom: 0.5,
	}
}
