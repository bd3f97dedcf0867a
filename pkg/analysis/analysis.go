// Package analysis drives the device models: diagonalization, spectrum
// extraction, classical potential sweeps and ground-state refinement.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/aurobinda824/qcsys/pkg/device"
	"github.com/aurobinda824/qcsys/pkg/qmat"
)

// deviceHamiltonian selects the Hamiltonian to diagonalize per the
// device's use_linear flag and checks it is Hermitian.
func deviceHamiltonian(dev device.Device) (*mat.CDense, error) {
	var (
		h   *mat.CDense
		err error
	)
	if dev.UseLinear() {
		h, err = dev.HLinear()
	} else {
		h, err = dev.HFull()
	}
	if err != nil {
		return nil, fmt.Errorf("analysis: device %s: %w", dev.Label(), err)
	}
	if !qmat.IsHermitian(h, qmat.HermTol) {
		return nil, fmt.Errorf("analysis: device %s: Hamiltonian is not Hermitian", dev.Label())
	}
	return h, nil
}

// Diagonalize computes the eigensystem of the device Hamiltonian.
// Eigenvalues come back in ascending order with matching eigenvector
// columns.
func Diagonalize(dev device.Device) (*device.EigenSystem, error) {
	h, err := deviceHamiltonian(dev)
	if err != nil {
		return nil, err
	}
	vals, vecs, err := qmat.HermEigen(h)
	if err != nil {
		return nil, fmt.Errorf("analysis: device %s: %w", dev.Label(), err)
	}
	return &device.EigenSystem{Vals: vals, Vecs: vecs}, nil
}
