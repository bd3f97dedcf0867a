package analysis

import (
	"fmt"
	"math/cmplx"

	"github.com/rs/zerolog"

	"github.com/aurobinda824/qcsys/pkg/device"
)

// SpectrumResult holds the low-energy spectrum of a device.
type SpectrumResult struct {
	Device string
	// Levels are the lowest Levels() eigenvalues, ground-referenced (GHz).
	Levels []float64
	// F01 and F12 are the first two transition frequencies (GHz).
	F01 float64
	F12 float64
	// Anharmonicity = F12 - F01 (GHz).
	Anharmonicity float64
	// N01 is the charge matrix element |<0|n|1>| in the truncated
	// eigenbasis.
	N01 float64
	// Eig is the full eigensystem the above were derived from.
	Eig *device.EigenSystem
}

// Spectrum diagonalizes the device and extracts its level structure and
// the 0-1 charge matrix element.
func Spectrum(dev device.Device, log zerolog.Logger) (*SpectrumResult, error) {
	log = log.With().Str("component", "spectrum").Str("device", dev.Label()).Logger()

	eig, err := Diagonalize(dev)
	if err != nil {
		return nil, err
	}
	n := dev.Levels()
	if n > len(eig.Vals) {
		n = len(eig.Vals)
	}
	if n < 1 {
		return nil, fmt.Errorf("analysis: device %s: no levels requested", dev.Label())
	}

	levels := make([]float64, n)
	for k := 0; k < n; k++ {
		levels[k] = eig.Vals[k] - eig.Vals[0]
	}

	res := &SpectrumResult{
		Device: dev.Label(),
		Levels: levels,
		Eig:    eig,
	}
	if n > 1 {
		res.F01 = levels[1]
	}
	if n > 2 {
		res.F12 = levels[2] - levels[1]
		res.Anharmonicity = res.F12 - res.F01
	}

	if nOp, ok := dev.Ops()["n"]; ok && n > 1 {
		nEig := dev.OpInEigenbasis(nOp, eig)
		res.N01 = cmplx.Abs(nEig.At(0, 1))
	}

	log.Debug().
		Float64("f01_ghz", res.F01).
		Float64("anharmonicity_ghz", res.Anharmonicity).
		Float64("n01", res.N01).
		Msg("spectrum computed")
	return res, nil
}

// FluxSweep diagonalizes a fluxonium at each external flux bias and
// returns the ground-referenced levels per bias point, outer index
// matching phiExts.
func FluxSweep(f *device.Fluxonium, phiExts []float64, log zerolog.Logger) ([][]float64, error) {
	log = log.With().Str("component", "flux_sweep").Str("device", f.Label()).Logger()

	out := make([][]float64, len(phiExts))
	for i, pe := range phiExts {
		biased, err := f.WithFluxBias(pe)
		if err != nil {
			return nil, err
		}
		spec, err := Spectrum(biased, log)
		if err != nil {
			return nil, fmt.Errorf("analysis: flux sweep at phi_ext=%g: %w", pe, err)
		}
		out[i] = spec.Levels
	}
	log.Debug().Int("points", len(phiExts)).Msg("flux sweep complete")
	return out, nil
}
