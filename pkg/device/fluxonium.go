package device

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aurobinda824/qcsys/pkg/qmat"
)

// Fluxonium models a fluxonium qubit in the linear (oscillator) basis.
//
// Required params: Ec, El, Ej, phi_ext. Operators are built in a basis of
// dimension NPreDiag; the lowest N levels are kept after diagonalization.
type Fluxonium struct {
	BaseDevice
	NPreDiag    int
	Hamiltonian HamiltonianType
}

var _ Device = (*Fluxonium)(nil)
var _ LinearMode = (*Fluxonium)(nil)
var _ PotentialEnergy = (*Fluxonium)(nil)

// NewFluxonium builds a fluxonium device. n is the post-diagonalization
// level count, nPreDiag the working basis dimension.
func NewFluxonium(name string, n, nPreDiag int, params Params, htype HamiltonianType, useLinear bool) (*Fluxonium, error) {
	if err := params.require("Ec", "El", "Ej", "phi_ext"); err != nil {
		return nil, fmt.Errorf("fluxonium %s: %w", name, err)
	}
	if err := params.requirePositive("Ec", "El"); err != nil {
		return nil, fmt.Errorf("fluxonium %s: %w", name, err)
	}
	if n > nPreDiag {
		return nil, fmt.Errorf("fluxonium %s: %w: N=%d, N_pre_diag=%d", name, ErrTruncation, n, nPreDiag)
	}
	return &Fluxonium{
		BaseDevice: BaseDevice{
			Name:      name,
			N:         n,
			Prm:       params.Clone(),
			useLinear: useLinear,
		},
		NPreDiag:    nPreDiag,
		Hamiltonian: htype,
	}, nil
}

// WithFluxBias returns a new fluxonium identical to f but biased at the
// given external flux (in flux quanta).
func (f *Fluxonium) WithFluxBias(phiExt float64) (*Fluxonium, error) {
	p := f.Prm.Clone()
	p["phi_ext"] = phiExt
	return NewFluxonium(f.Name, f.N, f.NPreDiag, p, f.Hamiltonian, f.useLinear)
}

func (f *Fluxonium) Dim() int { return f.NPreDiag }

// Ops builds the fluxonium operators in the linear basis.
func (f *Fluxonium) Ops() map[string]*mat.CDense {
	if f.ops != nil {
		return f.ops
	}
	n := f.NPreDiag
	a := qmat.Destroy(n)
	aDag := qmat.Create(n)
	phi := qmat.Scale(complex(f.PhiZPF(), 0), qmat.Add(a, aDag))

	ops := map[string]*mat.CDense{
		"id":    qmat.Identity(n),
		"a":     a,
		"a_dag": aDag,
		"phi":   phi,
		"n":     qmat.Scale(complex(0, f.NZPF()), qmat.Sub(aDag, a)),
	}
	half := qmat.Scale(0.5, phi)
	ops["cos(φ/2)"] = qmat.Cosm(half)
	ops["sin(φ/2)"] = qmat.Sinm(half)

	f.ops = ops
	return f.ops
}

// NZPF returns the charge zero-point fluctuation scale (El/32Ec)^¼.
func (f *Fluxonium) NZPF() float64 {
	return math.Pow(f.Prm["El"]/(32.0*f.Prm["Ec"]), 0.25)
}

// PhiZPF returns the phase zero-point fluctuation scale (2Ec/El)^¼.
func (f *Fluxonium) PhiZPF() float64 {
	return math.Pow(2.0*f.Prm["Ec"]/f.Prm["El"], 0.25)
}

// LinearFreq returns the linear-mode frequency sqrt(8 Ec El).
func (f *Fluxonium) LinearFreq() float64 {
	return math.Sqrt(8.0 * f.Prm["Ec"] * f.Prm["El"])
}

// HLinear returns the bare oscillator Hamiltonian ω (a†a + ½).
func (f *Fluxonium) HLinear() (*mat.CDense, error) {
	ops := f.Ops()
	w := complex(f.LinearFreq(), 0)
	h := qmat.Add(qmat.Mul(ops["a_dag"], ops["a"]), qmat.Scale(0.5, ops["id"]))
	return qmat.Scale(w, h), nil
}

// HFull returns the full Hamiltonian: the linear term minus the Josephson
// cosine phase-shifted by the external flux. The shift is applied through
// the angle-addition identity so only matrix functions of phi itself are
// needed.
func (f *Fluxonium) HFull() (*mat.CDense, error) {
	hl, err := f.HLinear()
	if err != nil {
		return nil, err
	}
	phi := f.Ops()["phi"]
	cosPhi := qmat.Cosm(phi)
	sinPhi := qmat.Sinm(phi)

	pe := 2.0 * math.Pi * f.Prm["phi_ext"]
	hcos := qmat.Add(
		qmat.Scale(complex(math.Cos(pe), 0), cosPhi),
		qmat.Scale(complex(math.Sin(pe), 0), sinPhi),
	)
	return qmat.Sub(hl, qmat.Scale(complex(f.Prm["Ej"], 0), hcos)), nil
}

// Potential returns the classical potential energy at flux point phi
// (in flux quanta) for the device's Hamiltonian type.
func (f *Fluxonium) Potential(phi float64) (float64, error) {
	vLinear := 0.5 * f.Prm["El"] * math.Pow(2.0*math.Pi*phi, 2)
	switch f.Hamiltonian {
	case HamiltonianLinear:
		return vLinear, nil
	case HamiltonianFull:
		vNonlinear := -f.Prm["Ej"] * math.Cos(2.0*math.Pi*(phi-f.Prm["phi_ext"]))
		return vLinear + vNonlinear, nil
	default:
		return 0, fmt.Errorf("fluxonium %s: %w: %v", f.Name, ErrHamiltonianType, f.Hamiltonian)
	}
}
