package util

import (
	"math"

	"github.com/aurobinda824/qcsys/internal/consts"
)

// Effective lumped-element values from the device energy scales. Energies
// are in GHz (h=1); results are SI.

// CapacitanceFromEc returns the capacitance (F) for a charging energy
// Ec = e²/2C.
func CapacitanceFromEc(ecGHz float64) float64 {
	ecJ := consts.PLANCK * ecGHz * consts.GHZ
	return consts.CHARGE * consts.CHARGE / (2.0 * ecJ)
}

// InductanceFromEl returns the inductance (H) for an inductive energy
// El = (Φ0/2π)²/L.
func InductanceFromEl(elGHz float64) float64 {
	elJ := consts.PLANCK * elGHz * consts.GHZ
	return consts.PHI0RED * consts.PHI0RED / elJ
}

// CriticalCurrentFromEj returns the junction critical current (A) for a
// Josephson energy Ej = Φ0 Ic / 2π.
func CriticalCurrentFromEj(ejGHz float64) float64 {
	ejJ := consts.PLANCK * ejGHz * consts.GHZ
	return 2.0 * math.Pi * ejJ / consts.PHI0
}
