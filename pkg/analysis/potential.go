package analysis

import (
	"fmt"

	"github.com/aurobinda824/qcsys/pkg/device"
)

// PotentialSweep evaluates the classical potential of a device over a flux
// range (in flux quanta). It fails for devices that do not expose a
// potential energy curve.
func PotentialSweep(dev device.Device, start, stop float64, points int) (phis, vs []float64, err error) {
	pe, ok := dev.(device.PotentialEnergy)
	if !ok {
		return nil, nil, fmt.Errorf("analysis: device %s has no classical potential", dev.Label())
	}
	if points < 2 {
		return nil, nil, fmt.Errorf("analysis: potential sweep needs at least 2 points, got %d", points)
	}

	phis = make([]float64, points)
	vs = make([]float64, points)
	step := (stop - start) / float64(points-1)
	for i := 0; i < points; i++ {
		phis[i] = start + float64(i)*step
		vs[i], err = pe.Potential(phis[i])
		if err != nil {
			return nil, nil, fmt.Errorf("analysis: potential at phi=%g: %w", phis[i], err)
		}
	}
	return phis, vs, nil
}
