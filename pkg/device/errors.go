package device

import "errors"

// Domain errors for device construction and Hamiltonian assembly.
var (
	// ErrMissingParam indicates a required energy-scale parameter was not
	// supplied at construction.
	ErrMissingParam = errors.New("device: missing required parameter")

	// ErrNonPositiveParam indicates an energy scale that must be positive
	// was zero or negative.
	ErrNonPositiveParam = errors.New("device: energy scale must be positive")

	// ErrTruncation indicates the requested level count does not fit in the
	// working basis.
	ErrTruncation = errors.New("device: truncation exceeds basis dimension")

	// ErrNoLinearBasis indicates the device has no linear oscillator basis.
	ErrNoLinearBasis = errors.New("device: no linear oscillator basis, set use_linear=false")

	// ErrHamiltonianType indicates an unrecognized Hamiltonian-type selector.
	ErrHamiltonianType = errors.New("device: unknown hamiltonian type")
)
