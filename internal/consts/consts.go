package consts

import "math"

const (
	CHARGE    = 1.6021918e-19      // Elementary charge (C)
	BOLTZMANN = 1.3806226e-23      // Boltzmann constant (J/K)
	PLANCK    = 6.62607015e-34     // Planck constant (J*s)
	HBAR      = 1.054571817e-34    // Reduced Planck constant (J*s)
	PHI0      = 2.067833848e-15    // Magnetic flux quantum h/2e (Wb)
	PHI0RED   = PHI0 / (2 * math.Pi) // Reduced flux quantum (Wb)
	GHZ       = 1e9                // Device energy scales are in GHz (h=1 units)
)
