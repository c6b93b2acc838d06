package qsim

import "errors"

// Error kinds surfaced by the kernel. Every failure is synchronous and
// deterministic; operations that can fail do so before mutating anything,
// so callers never observe a half-applied gate or register.
var (
	// ErrInvalidMatrixShape reports a gate matrix that is empty or not square.
	ErrInvalidMatrixShape = errors.New("gate matrix must be square and non-empty")

	// ErrDimensionMismatch reports a gate applied to a register of the wrong size.
	ErrDimensionMismatch = errors.New("gate and register dimensions do not match")

	// ErrIndexOutOfRange reports an amplitude or circuit index outside bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilArgument reports a nil gate or register where one is required.
	ErrNilArgument = errors.New("nil argument")

	// ErrZeroNorm reports a normalize call on an all-zero amplitude or register.
	ErrZeroNorm = errors.New("cannot normalize zero vector")

	// ErrCollapseNormZero reports a collapse onto a subspace with no retained
	// probability mass, which signals an inconsistent measurement path.
	ErrCollapseNormZero = errors.New("collapse retained zero probability mass")

	// ErrDivisionByZero reports complex division by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrCapacity reports a register allocation that would exceed the
	// configured or physical memory bounds.
	ErrCapacity = errors.New("register exceeds capacity bounds")

	// ErrUnboundSymbol reports an expression symbol with no binding.
	ErrUnboundSymbol = errors.New("unbound symbol in expression")
)
