package main // import "qcsys"

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aurobinda824/qcsys/pkg/analysis"
	"github.com/aurobinda824/qcsys/pkg/device"
	"github.com/aurobinda824/qcsys/pkg/netlist"
	"github.com/aurobinda824/qcsys/pkg/qplot"
	"github.com/aurobinda824/qcsys/pkg/util"
)

func main() {
	inputFile := flag.String("i", "", "device card file (.qkt)")
	writePlots := flag.Bool("plot", false, "write PNG plots next to the input file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	deck, err := netlist.ParseFile(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *inputFile).Msg("deck parse failed")
	}
	devs, err := deck.BuildDevices()
	if err != nil {
		log.Fatal().Err(err).Msg("device construction failed")
	}
	log.Info().Str("title", deck.Title).Int("devices", len(devs)).Msg("deck loaded")

	fmt.Printf("\n%s\n", deck.Title)
	fmt.Println(strings.Repeat("=", len(deck.Title)))

	base := strings.TrimSuffix(*inputFile, filepath.Ext(*inputFile))
	for _, dev := range devs {
		printSummary(dev)

		var spec *analysis.SpectrumResult
		if deck.Spectrum {
			spec, err = analysis.Spectrum(dev, log)
			if err != nil {
				log.Fatal().Err(err).Str("device", dev.Label()).Msg("spectrum failed")
			}
			printSpectrum(spec)
			refineGround(dev, spec, log)
		}

		f, isFluxonium := dev.(*device.Fluxonium)
		if deck.Potential != nil && isFluxonium {
			runPotential(f, spec, deck.Potential, base, *writePlots, log)
		}
		if deck.FluxSweep != nil && isFluxonium {
			runFluxSweep(f, deck.FluxSweep, base, *writePlots, log)
		}
	}
}

func printSummary(dev device.Device) {
	fmt.Printf("\nDevice %s\n", dev.Label())
	fmt.Println("----------------")
	fmt.Printf("  basis dimension: %d, levels kept: %d\n", dev.Dim(), dev.Levels())

	params := dev.Params()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-8s = %g\n", k, params[k])
	}

	if lm, ok := dev.(device.LinearMode); ok {
		fmt.Printf("  linear mode: %s  phi_zpf=%.4f  n_zpf=%.4f\n",
			strings.TrimSpace(util.FormatFreq(lm.LinearFreq())), lm.PhiZPF(), lm.NZPF())
	}
	if ec, ok := params["Ec"]; ok {
		fmt.Printf("  C  = %s\n", util.FormatValueFactor(util.CapacitanceFromEc(ec), "F"))
	}
	if el, ok := params["El"]; ok {
		fmt.Printf("  L  = %s\n", util.FormatValueFactor(util.InductanceFromEl(el), "H"))
	}
	if ej, ok := params["Ej"]; ok {
		fmt.Printf("  Ic = %s\n", util.FormatValueFactor(util.CriticalCurrentFromEj(ej), "A"))
	}
}

func printSpectrum(spec *analysis.SpectrumResult) {
	fmt.Println("\n  Level   E - E0")
	for k, e := range spec.Levels {
		fmt.Printf("  %5d   %s\n", k, util.FormatFreq(e))
	}
	fmt.Printf("  f01 = %s   f12 = %s   anharmonicity = %s   |<0|n|1>| = %.4f\n",
		strings.TrimSpace(util.FormatFreq(spec.F01)),
		strings.TrimSpace(util.FormatFreq(spec.F12)),
		strings.TrimSpace(util.FormatFreq(spec.Anharmonicity)),
		spec.N01)
}

// refineGround cross-checks the dense ground energy against the sparse
// inverse-iteration solver.
func refineGround(dev device.Device, spec *analysis.SpectrumResult, log zerolog.Logger) {
	if len(spec.Eig.Vals) < 2 {
		return
	}
	shift := spec.Eig.Vals[0] - 0.25*(spec.Eig.Vals[1]-spec.Eig.Vals[0])
	e0, _, err := analysis.GroundState(dev, shift)
	if err != nil {
		log.Warn().Err(err).Str("device", dev.Label()).Msg("ground-state refinement failed")
		return
	}
	log.Info().
		Str("device", dev.Label()).
		Float64("e0_dense_ghz", spec.Eig.Vals[0]).
		Float64("e0_refined_ghz", e0).
		Msg("ground state refined")
}

func runPotential(f *device.Fluxonium, spec *analysis.SpectrumResult, sw *netlist.SweepDirective, base string, writePlots bool, log zerolog.Logger) {
	phis, vs, err := analysis.PotentialSweep(f, sw.Start, sw.Stop, sw.Points)
	if err != nil {
		log.Fatal().Err(err).Str("device", f.Label()).Msg("potential sweep failed")
	}
	if !writePlots {
		return
	}
	var levels []float64
	if spec != nil {
		levels = spec.Eig.Vals[:len(spec.Levels)]
	}
	out := fmt.Sprintf("%s_%s_potential.png", base, f.Label())
	if err := qplot.Potential(out, fmt.Sprintf("%s potential", f.Label()), phis, vs, levels); err != nil {
		log.Fatal().Err(err).Msg("potential plot failed")
	}
	log.Info().Str("file", out).Msg("potential plot written")
}

func runFluxSweep(f *device.Fluxonium, sw *netlist.SweepDirective, base string, writePlots bool, log zerolog.Logger) {
	phiExts := make([]float64, sw.Points)
	step := (sw.Stop - sw.Start) / float64(sw.Points-1)
	for i := range phiExts {
		phiExts[i] = sw.Start + float64(i)*step
	}
	levels, err := analysis.FluxSweep(f, phiExts, log)
	if err != nil {
		log.Fatal().Err(err).Str("device", f.Label()).Msg("flux sweep failed")
	}

	if len(levels) > 0 && len(levels[0]) > 1 {
		fmt.Printf("\n  Flux sweep %g..%g (%d points): f01 %s -> %s\n",
			sw.Start, sw.Stop, sw.Points,
			strings.TrimSpace(util.FormatFreq(levels[0][1])),
			strings.TrimSpace(util.FormatFreq(levels[len(levels)-1][1])))
	}

	if !writePlots {
		return
	}
	out := fmt.Sprintf("%s_%s_fluxsweep.png", base, f.Label())
	if err := qplot.FluxSweep(out, fmt.Sprintf("%s spectrum vs flux", f.Label()), phiExts, levels); err != nil {
		log.Fatal().Err(err).Msg("flux sweep plot failed")
	}
	log.Info().Str("file", out).Msg("flux sweep plot written")
}
