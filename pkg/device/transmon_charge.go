package device

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aurobinda824/qcsys/pkg/qmat"
)

// SingleChargeTransmon models an offset-charge-sensitive transmon directly
// in the single-charge basis, with no oscillator approximation. The basis
// counts electrons, not Cooper pairs, spanning -NMaxCharge..NMaxCharge, so
// the working dimension is 2*NMaxCharge+1.
//
// Required params: Ec, Ej, ng.
type SingleChargeTransmon struct {
	BaseDevice
	NMaxCharge int
}

var _ Device = (*SingleChargeTransmon)(nil)
var _ LinearMode = (*SingleChargeTransmon)(nil)

// NewSingleChargeTransmon builds a charge-basis transmon keeping n levels
// out of the 2*nMaxCharge+1 charge states.
func NewSingleChargeTransmon(name string, n, nMaxCharge int, params Params, useLinear bool) (*SingleChargeTransmon, error) {
	if err := params.require("Ec", "Ej", "ng"); err != nil {
		return nil, fmt.Errorf("transmon %s: %w", name, err)
	}
	if err := params.requirePositive("Ec", "Ej"); err != nil {
		return nil, fmt.Errorf("transmon %s: %w", name, err)
	}
	if n > 2*nMaxCharge+1 {
		return nil, fmt.Errorf("transmon %s: %w: N=%d, 2*N_max_charge+1=%d",
			name, ErrTruncation, n, 2*nMaxCharge+1)
	}
	return &SingleChargeTransmon{
		BaseDevice: BaseDevice{
			Name:      name,
			N:         n,
			Prm:       params.Clone(),
			useLinear: useLinear,
		},
		NMaxCharge: nMaxCharge,
	}, nil
}

func (t *SingleChargeTransmon) Dim() int { return 2*t.NMaxCharge + 1 }

// Ops builds the transmon operators in the single-charge basis:
//
//	n        = ∑ₙ n |n⟩⟨n|
//	cos(φ)   = ½ ∑ₙ |n⟩⟨n+2| + h.c.
//	cos(φ/2) = ½ ∑ₙ |n⟩⟨n+1| + h.c.
//	sin(φ/2) = i/2 ∑ₙ |n⟩⟨n+1| + h.c.
func (t *SingleChargeTransmon) Ops() map[string]*mat.CDense {
	if t.ops != nil {
		return t.ops
	}
	dim := t.Dim()
	t.ops = map[string]*mat.CDense{
		"id":       qmat.Identity(dim),
		"n":        t.buildNOp(),
		"cos(φ)":   qmat.Add(qmat.Shift(dim, 2, 0.5), qmat.Shift(dim, -2, 0.5)),
		"cos(φ/2)": qmat.Add(qmat.Shift(dim, 1, 0.5), qmat.Shift(dim, -1, 0.5)),
		"sin(φ/2)": qmat.Sub(qmat.Shift(dim, 1, 0.5i), qmat.Shift(dim, -1, 0.5i)),
	}
	return t.ops
}

func (t *SingleChargeTransmon) buildNOp() *mat.CDense {
	vals := make([]complex128, t.Dim())
	for k := range vals {
		vals[k] = complex(float64(k-t.NMaxCharge), 0)
	}
	return qmat.Diag(vals)
}

// PhiZPF returns the phase zero-point fluctuation scale (2Ec/Ej)^¼.
func (t *SingleChargeTransmon) PhiZPF() float64 {
	return math.Pow(2.0*t.Prm["Ec"]/t.Prm["Ej"], 0.25)
}

// NZPF returns the charge zero-point fluctuation scale (Ej/32Ec)^¼.
func (t *SingleChargeTransmon) NZPF() float64 {
	return math.Pow(t.Prm["Ej"]/(32.0*t.Prm["Ec"]), 0.25)
}

// LinearFreq returns sqrt(8 Ec Ej), the plasma frequency of the harmonic
// approximation. It is a derived scale only; the charge basis has no
// linear Hamiltonian.
func (t *SingleChargeTransmon) LinearFreq() float64 {
	return math.Sqrt(8.0 * t.Prm["Ec"] * t.Prm["Ej"])
}

// HLinear always fails: there is no linear oscillator basis for the
// single-charge transmon.
func (t *SingleChargeTransmon) HLinear() (*mat.CDense, error) {
	return nil, fmt.Errorf("transmon %s: %w", t.Name, ErrNoLinearBasis)
}

// HFull returns H = Ec (n - 2ng)² - Ej cos(φ) in the single-charge basis.
// The factor 2 on ng reflects n counting electrons while ng counts Cooper
// pairs.
func (t *SingleChargeTransmon) HFull() (*mat.CDense, error) {
	dim := t.Dim()
	ng := t.Prm["ng"]
	diag := make([]complex128, dim)
	for k := 0; k < dim; k++ {
		q := float64(k-t.NMaxCharge) - 2.0*ng
		diag[k] = complex(t.Prm["Ec"]*q*q, 0)
	}
	return qmat.Sub(
		qmat.Diag(diag),
		qmat.Scale(complex(t.Prm["Ej"], 0), t.Ops()["cos(φ)"]),
	), nil
}

// OpInEigenbasis truncates to the first N eigenvectors out of the full
// charge-basis eigensystem before projecting, reducing the problem to the
// low-energy subspace.
func (t *SingleChargeTransmon) OpInEigenbasis(op *mat.CDense, eig *EigenSystem) *mat.CDense {
	return qmat.Project(op, eig.Vecs, t.N)
}
