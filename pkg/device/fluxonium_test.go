package device

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurobinda824/qcsys/pkg/qmat"
)

const tol = 1e-10

func testFluxonium(t *testing.T, htype HamiltonianType) *Fluxonium {
	t.Helper()
	f, err := NewFluxonium("q0", 4, 30, Params{
		"Ec": 1.0, "El": 0.5, "Ej": 4.0, "phi_ext": 0.5,
	}, htype, false)
	require.NoError(t, err)
	return f
}

func TestFluxoniumZPFLiterals(t *testing.T) {
	f, err := NewFluxonium("q0", 3, 10, Params{
		"Ec": 1.0, "El": 4.0, "Ej": 1.0, "phi_ext": 0.0,
	}, HamiltonianFull, false)
	require.NoError(t, err)

	assert.InDelta(t, math.Pow(2.0*1.0/4.0, 0.25), f.PhiZPF(), tol)
	assert.InDelta(t, math.Pow(4.0/32.0, 0.25), f.NZPF(), tol)
	assert.InDelta(t, math.Sqrt(8.0*1.0*4.0), f.LinearFreq(), tol)
}

func TestFluxoniumConstructionErrors(t *testing.T) {
	_, err := NewFluxonium("q0", 3, 10, Params{"Ec": 1, "El": 1}, HamiltonianFull, false)
	assert.ErrorIs(t, err, ErrMissingParam)

	_, err = NewFluxonium("q0", 3, 10, Params{"Ec": 1, "El": -1, "Ej": 1, "phi_ext": 0}, HamiltonianFull, false)
	assert.ErrorIs(t, err, ErrNonPositiveParam)

	_, err = NewFluxonium("q0", 11, 10, Params{"Ec": 1, "El": 1, "Ej": 1, "phi_ext": 0}, HamiltonianFull, false)
	assert.ErrorIs(t, err, ErrTruncation)
}

func TestFluxoniumOps(t *testing.T) {
	f := testFluxonium(t, HamiltonianFull)
	ops := f.Ops()

	for _, name := range []string{"id", "a", "a_dag", "phi", "n", "cos(φ/2)", "sin(φ/2)"} {
		op, ok := ops[name]
		require.Truef(t, ok, "missing operator %q", name)
		r, c := op.Dims()
		assert.Equal(t, f.NPreDiag, r)
		assert.Equal(t, f.NPreDiag, c)
	}

	// phi = phi_zpf (a + a+), so its first off-diagonal entry is phi_zpf.
	assert.InDelta(t, f.PhiZPF(), real(ops["phi"].At(0, 1)), tol)

	// phi and n are observables.
	assert.True(t, qmat.IsHermitian(ops["phi"], tol))
	assert.True(t, qmat.IsHermitian(ops["n"], tol))
	assert.True(t, qmat.IsHermitian(ops["cos(φ/2)"], tol))
	assert.True(t, qmat.IsHermitian(ops["sin(φ/2)"], tol))

	// Memoized: the same operators are handed back.
	assert.True(t, ops["id"] == f.Ops()["id"])
}

func TestFluxoniumHLinear(t *testing.T) {
	f := testFluxonium(t, HamiltonianFull)
	h, err := f.HLinear()
	require.NoError(t, err)
	require.True(t, qmat.IsHermitian(h, tol))

	// Diagonal in the number basis with spectrum w (k + 1/2).
	w := f.LinearFreq()
	for k := 0; k < f.NPreDiag; k++ {
		assert.InDelta(t, w*(float64(k)+0.5), real(h.At(k, k)), 1e-9)
	}
	assert.InDelta(t, 0, cmplx.Abs(h.At(0, 1)), tol)
}

func TestFluxoniumHFullHermitian(t *testing.T) {
	f := testFluxonium(t, HamiltonianFull)
	h, err := f.HFull()
	require.NoError(t, err)
	assert.True(t, qmat.IsHermitian(h, 1e-9))
}

func TestFluxoniumHFullReducesToLinearAtZeroEj(t *testing.T) {
	f, err := NewFluxonium("q0", 3, 20, Params{
		"Ec": 1.0, "El": 0.5, "Ej": 0.0, "phi_ext": 0.25,
	}, HamiltonianFull, false)
	require.NoError(t, err)

	hl, err := f.HLinear()
	require.NoError(t, err)
	hf, err := f.HFull()
	require.NoError(t, err)

	for i := 0; i < f.NPreDiag; i++ {
		for j := 0; j < f.NPreDiag; j++ {
			assert.InDelta(t, 0, cmplx.Abs(hf.At(i, j)-hl.At(i, j)), tol)
		}
	}
}

func TestFluxoniumLinearSpectrum(t *testing.T) {
	f := testFluxonium(t, HamiltonianFull)
	h, err := f.HLinear()
	require.NoError(t, err)
	vals, _, err := qmat.HermEigen(h)
	require.NoError(t, err)

	w := f.LinearFreq()
	for k := 0; k < 5; k++ {
		assert.InDelta(t, w*(float64(k)+0.5), vals[k], 1e-8)
	}
}

func TestFluxoniumPotential(t *testing.T) {
	lin := testFluxonium(t, HamiltonianLinear)
	v, err := lin.Potential(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, tol)

	full := testFluxonium(t, HamiltonianFull)
	v, err = full.Potential(0)
	require.NoError(t, err)
	want := -full.Param("Ej") * math.Cos(2.0*math.Pi*(0-full.Param("phi_ext")))
	assert.InDelta(t, want, v, tol)

	// Away from the origin the quadratic term contributes.
	v, err = full.Potential(0.5)
	require.NoError(t, err)
	want = 0.5*full.Param("El")*math.Pow(2.0*math.Pi*0.5, 2) -
		full.Param("Ej")*math.Cos(2.0*math.Pi*(0.5-full.Param("phi_ext")))
	assert.InDelta(t, want, v, tol)
}

func TestFluxoniumPotentialUnknownType(t *testing.T) {
	f := testFluxonium(t, HamiltonianFull)
	f.Hamiltonian = HamiltonianType(42)
	_, err := f.Potential(0.1)
	assert.ErrorIs(t, err, ErrHamiltonianType)
}

func TestFluxoniumWithFluxBias(t *testing.T) {
	f := testFluxonium(t, HamiltonianFull)
	g, err := f.WithFluxBias(0.125)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, f.Param("phi_ext"), tol) // original untouched
	assert.InDelta(t, 0.125, g.Param("phi_ext"), tol)
	assert.Equal(t, f.N, g.N)
	assert.Equal(t, f.NPreDiag, g.NPreDiag)
}
