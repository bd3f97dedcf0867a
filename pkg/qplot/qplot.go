// Package qplot renders analysis results (potential curves, flux sweeps)
// to image files.
package qplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func line(xs, ys []float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return plotter.NewLine(pts)
}

// Potential draws the classical potential V(φ) with the given energy
// levels as horizontal lines, and saves it as PNG.
func Potential(path, title string, phis, vs, levels []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "φ (flux quanta)"
	p.Y.Label.Text = "energy (GHz)"

	curve, err := line(phis, vs)
	if err != nil {
		return fmt.Errorf("qplot: %w", err)
	}
	curve.Color = color.RGBA{B: 255, A: 255}
	p.Add(curve)
	p.Legend.Add("V(φ)", curve)

	for k, e := range levels {
		lvl, err := line([]float64{phis[0], phis[len(phis)-1]}, []float64{e, e})
		if err != nil {
			return fmt.Errorf("qplot: %w", err)
		}
		lvl.Color = color.RGBA{R: 200, A: 255}
		lvl.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(lvl)
		if k == 0 {
			p.Legend.Add("levels", lvl)
		}
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("qplot: save %s: %w", path, err)
	}
	return nil
}

// FluxSweep draws energy levels against external flux bias. levels is
// indexed [point][level], matching phiExts.
func FluxSweep(path, title string, phiExts []float64, levels [][]float64) error {
	if len(phiExts) == 0 || len(levels) != len(phiExts) {
		return fmt.Errorf("qplot: flux sweep has %d bias points and %d level rows", len(phiExts), len(levels))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "φ_ext (flux quanta)"
	p.Y.Label.Text = "E - E₀ (GHz)"

	nLevels := len(levels[0])
	for k := 0; k < nLevels; k++ {
		ys := make([]float64, len(phiExts))
		for i := range phiExts {
			ys[i] = levels[i][k]
		}
		l, err := line(phiExts, ys)
		if err != nil {
			return fmt.Errorf("qplot: %w", err)
		}
		l.Color = color.RGBA{
			R: uint8(40 * (k % 6)),
			G: uint8(90 + 25*(k%6)),
			B: uint8(255 - 35*(k%6)),
			A: 255,
		}
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("E%d", k), l)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("qplot: save %s: %w", path, err)
	}
	return nil
}
