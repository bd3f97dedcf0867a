// Package device models superconducting circuit devices. Each device builds
// its quantum operators in a working basis, assembles linear and full
// Hamiltonians from its energy-scale parameters, and projects operators into
// the truncated Hamiltonian eigenbasis.
package device

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/aurobinda824/qcsys/pkg/qmat"
)

// HamiltonianType selects which Hamiltonian a device-derived quantity
// (such as the classical potential) refers to.
type HamiltonianType int

const (
	HamiltonianLinear HamiltonianType = iota
	HamiltonianFull
)

func (t HamiltonianType) String() string {
	switch t {
	case HamiltonianLinear:
		return "linear"
	case HamiltonianFull:
		return "full"
	default:
		return fmt.Sprintf("HamiltonianType(%d)", int(t))
	}
}

// Params maps energy-scale names (Ec, El, Ej, ng, phi_ext) to values.
// Energies are in GHz (h=1), phi_ext in flux quanta, ng in Cooper pairs.
// Devices copy the map at construction and never mutate it; a parameter
// change means constructing a new device.
type Params map[string]float64

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	q := make(Params, len(p))
	for k, v := range p {
		q[k] = v
	}
	return q
}

func (p Params) require(keys ...string) error {
	for _, k := range keys {
		if _, ok := p[k]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingParam, k)
		}
	}
	return nil
}

func (p Params) requirePositive(keys ...string) error {
	for _, k := range keys {
		if p[k] <= 0 {
			return fmt.Errorf("%w: %s=%g", ErrNonPositiveParam, k, p[k])
		}
	}
	return nil
}

// EigenSystem holds the result of diagonalizing a device Hamiltonian.
// Vals are in ascending order and Vecs columns are the matching
// eigenvectors in the device's working basis.
type EigenSystem struct {
	Vals []float64
	Vecs *mat.CDense
}

// Device is the contract every circuit device variant implements.
type Device interface {
	// Label identifies the device instance.
	Label() string
	// Dim is the working basis dimension operators are built in.
	Dim() int
	// Levels is the number of levels kept after diagonalization.
	Levels() int
	// UseLinear selects the linear Hamiltonian for diagonalization.
	UseLinear() bool
	// Params returns a copy of the construction parameters.
	Params() Params
	// Ops returns the device operators in the working basis, keyed by
	// name ("id", "a", "phi", "n", "cos(φ/2)", ...). Built once and
	// memoized for the life of the instance.
	Ops() map[string]*mat.CDense
	// HLinear returns the linear-basis Hamiltonian.
	HLinear() (*mat.CDense, error)
	// HFull returns the full Hamiltonian in the working basis.
	HFull() (*mat.CDense, error)
	// OpInEigenbasis expresses op in the eigenbasis of the device
	// Hamiltonian, truncated to the device's level count where the
	// variant calls for it.
	OpInEigenbasis(op *mat.CDense, eig *EigenSystem) *mat.CDense
}

// LinearMode is implemented by devices with a harmonic-approximation
// frequency and zero-point fluctuation scales.
type LinearMode interface {
	LinearFreq() float64
	PhiZPF() float64
	NZPF() float64
}

// PotentialEnergy is implemented by devices exposing a classical potential
// energy curve over the flux variable.
type PotentialEnergy interface {
	Potential(phi float64) (float64, error)
}

// BaseDevice carries the fields common to every device variant.
type BaseDevice struct {
	Name      string
	N         int // levels kept after diagonalization
	Prm       Params
	useLinear bool

	ops map[string]*mat.CDense // memoized by the variant's Ops
}

func (d *BaseDevice) Label() string   { return d.Name }
func (d *BaseDevice) Levels() int     { return d.N }
func (d *BaseDevice) UseLinear() bool { return d.useLinear }

// Param returns the named parameter value.
func (d *BaseDevice) Param(name string) float64 { return d.Prm[name] }

// Params returns a copy of the construction parameters.
func (d *BaseDevice) Params() Params { return d.Prm.Clone() }

// OpInEigenbasis projects op with the full eigenvector matrix. Variants
// that truncate to a low-energy subspace override this.
func (d *BaseDevice) OpInEigenbasis(op *mat.CDense, eig *EigenSystem) *mat.CDense {
	return qmat.Project(op, eig.Vecs, len(eig.Vals))
}
