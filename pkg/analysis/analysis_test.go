package analysis

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurobinda824/qcsys/pkg/device"
)

func testFluxonium(t *testing.T, useLinear bool) *device.Fluxonium {
	t.Helper()
	f, err := device.NewFluxonium("q0", 4, 40, device.Params{
		"Ec": 1.0, "El": 0.5, "Ej": 4.0, "phi_ext": 0.5,
	}, device.HamiltonianFull, useLinear)
	require.NoError(t, err)
	return f
}

func testTransmon(t *testing.T) *device.SingleChargeTransmon {
	t.Helper()
	tr, err := device.NewSingleChargeTransmon("q1", 4, 20, device.Params{
		"Ec": 0.2, "Ej": 10.0, "ng": 0.25,
	}, false)
	require.NoError(t, err)
	return tr
}

func TestDiagonalizeLinearFluxonium(t *testing.T) {
	f := testFluxonium(t, true)
	eig, err := Diagonalize(f)
	require.NoError(t, err)
	require.Len(t, eig.Vals, f.Dim())

	assert.True(t, sort.Float64sAreSorted(eig.Vals))
	w := f.LinearFreq()
	for k := 0; k < 5; k++ {
		assert.InDelta(t, w*(float64(k)+0.5), eig.Vals[k], 1e-8)
	}
}

func TestDiagonalizeTransmonLinearFails(t *testing.T) {
	tr, err := device.NewSingleChargeTransmon("q1", 3, 10, device.Params{
		"Ec": 0.2, "Ej": 10.0, "ng": 0.0,
	}, true)
	require.NoError(t, err)

	_, err = Diagonalize(tr)
	assert.ErrorIs(t, err, device.ErrNoLinearBasis)
}

func TestSpectrumFluxonium(t *testing.T) {
	spec, err := Spectrum(testFluxonium(t, false), zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, spec.Levels, 4)
	assert.Equal(t, 0.0, spec.Levels[0])
	assert.Greater(t, spec.F01, 0.0)
	assert.InDelta(t, spec.Levels[1], spec.F01, 1e-12)
	assert.InDelta(t, spec.Levels[2]-spec.Levels[1], spec.F12, 1e-12)
	assert.InDelta(t, spec.F12-spec.F01, spec.Anharmonicity, 1e-12)
}

func TestSpectrumTransmonParityStructure(t *testing.T) {
	tr := testTransmon(t)
	spec, err := Spectrum(tr, zerolog.Nop())
	require.NoError(t, err)
	assert.Greater(t, spec.F01, 0.0)

	// cos(φ) couples charge states two apart, so the Hamiltonian
	// conserves charge parity and every low-lying eigenstate lives in a
	// single parity sector.
	parity := make([]int, len(spec.Levels))
	for k := range parity {
		var even, odd float64
		for i := 0; i < tr.Dim(); i++ {
			w := cmplx.Abs(spec.Eig.Vecs.At(i, k))
			w *= w
			if (i-tr.NMaxCharge)%2 == 0 {
				even += w
			} else {
				odd += w
			}
		}
		require.Lessf(t, math.Min(even, odd), 1e-6, "level %d mixes parity sectors", k)
		if odd > even {
			parity[k] = 1
		}
	}

	// The globally sorted levels interleave the two sectors: the two
	// sector ground states form a near-degenerate pair, and the charge
	// operator is parity-diagonal, so its matrix element between them
	// vanishes.
	assert.NotEqual(t, parity[0], parity[1])
	assert.InDelta(t, 0, spec.N01, 1e-6)

	// Within the ground-state sector the first transition approaches
	// sqrt(8 Ec Ej) - Ec in the transmon limit Ej/Ec >> 1.
	next := 0
	for k := 1; k < len(parity); k++ {
		if parity[k] == parity[0] {
			next = k
			break
		}
	}
	require.NotZero(t, next)
	gap := spec.Levels[next] - spec.Levels[0]
	want := math.Sqrt(8.0*0.2*10.0) - 0.2
	assert.InEpsilon(t, want, gap, 0.05)
}

func TestGroundStateMatchesDense(t *testing.T) {
	for _, dev := range []device.Device{testFluxonium(t, false), testTransmon(t)} {
		eig, err := Diagonalize(dev)
		require.NoError(t, err)

		shift := eig.Vals[0] - 0.25*(eig.Vals[1]-eig.Vals[0])
		e0, vec, err := GroundState(dev, shift)
		require.NoError(t, err, "device %s", dev.Label())

		assert.InDelta(t, eig.Vals[0], e0, 1e-8, "device %s", dev.Label())

		var nrm float64
		for _, v := range vec {
			nrm += v * v
		}
		assert.InDelta(t, 1.0, nrm, 1e-10)
	}
}

func TestPotentialSweep(t *testing.T) {
	f := testFluxonium(t, false)
	phis, vs, err := PotentialSweep(f, -1, 1, 21)
	require.NoError(t, err)
	require.Len(t, phis, 21)
	require.Len(t, vs, 21)
	assert.InDelta(t, -1, phis[0], 1e-12)
	assert.InDelta(t, 1, phis[20], 1e-12)

	want, err := f.Potential(phis[10])
	require.NoError(t, err)
	assert.InDelta(t, want, vs[10], 1e-12)
}

func TestPotentialSweepUnsupportedDevice(t *testing.T) {
	_, _, err := PotentialSweep(testTransmon(t), -1, 1, 11)
	assert.Error(t, err)
}

func TestFluxSweepPeriodicity(t *testing.T) {
	f := testFluxonium(t, false)
	levels, err := FluxSweep(f, []float64{0, 0.5, 1}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, levels, 3)

	// The spectrum is periodic in one flux quantum.
	for k := range levels[0] {
		assert.InDelta(t, levels[0][k], levels[2][k], 1e-6)
	}
	// Half flux is the fluxonium sweet spot with the smallest f01.
	assert.Less(t, levels[1][1], levels[0][1])
}
