package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFreq(t *testing.T) {
	assert.True(t, strings.HasSuffix(FormatFreq(5.1), "GHz"))
	assert.True(t, strings.HasSuffix(FormatFreq(0.25), "MHz"))
	assert.Contains(t, FormatFreq(0.25), "250.0000")
	assert.True(t, strings.HasSuffix(FormatFreq(2e-5), "kHz"))
	assert.True(t, strings.HasSuffix(FormatFreq(0), "GHz"))
}

func TestFormatValueFactor(t *testing.T) {
	assert.Equal(t, "96.800 fF", FormatValueFactor(9.68e-14, "F"))
	assert.Equal(t, "1.500 H", FormatValueFactor(1.5, "H"))
	assert.Equal(t, "20.000 nA", FormatValueFactor(2e-8, "A"))
}

func TestCircuitElementConversions(t *testing.T) {
	// Ec = 0.2 GHz corresponds to roughly 97 fF.
	assert.InEpsilon(t, 9.68e-14, CapacitanceFromEc(0.2), 0.01)
	// El = 0.5 GHz corresponds to roughly 327 nH.
	assert.InEpsilon(t, 3.27e-7, InductanceFromEl(0.5), 0.01)
	// Ej = 10 GHz corresponds to roughly 20 nA of critical current.
	assert.InEpsilon(t, 2.01e-8, CriticalCurrentFromEj(10), 0.01)
}
