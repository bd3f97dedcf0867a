package util

import (
	"fmt"
	"math"
)

// FormatFreq formats a frequency given in GHz with an appropriate scale.
func FormatFreq(ghz float64) string {
	abs := math.Abs(ghz)
	switch {
	case abs >= 1:
		return fmt.Sprintf("%8.4f GHz", ghz)
	case abs >= 1e-3:
		return fmt.Sprintf("%8.4f MHz", ghz*1e3)
	case abs >= 1e-6:
		return fmt.Sprintf("%8.4f kHz", ghz*1e6)
	case abs == 0:
		return fmt.Sprintf("%8.4f GHz", 0.0)
	default:
		return fmt.Sprintf("%8.3e GHz", ghz)
	}
}

// FormatValueFactor formats a value with an SI prefix.
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue >= 1e-15:
		return fmt.Sprintf("%.3f f%s", value*1e15, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}
