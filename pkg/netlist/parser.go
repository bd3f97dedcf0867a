// Package netlist parses device card decks. A deck names devices with
// their energy-scale parameters and truncation sizes, followed by
// analysis directives:
//
//	* two qubit chip
//	FLUXONIUM q0 Ec=1.0 El=0.5 Ej=4.0 phi_ext=0.5 N=6 Npre=60
//	TRANSMON  q1 Ec=0.2 Ej=10 ng=0.25 N=5 Nmax=30
//	.SPECTRUM
//	.POTENTIAL -1 1 201
//	.FLUXSWEEP 0 1 41
package netlist

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/aurobinda824/qcsys/pkg/device"
)

// Card is one parsed device line, not yet turned into a device instance.
type Card struct {
	Type        string // FLUXONIUM or TRANSMON
	Name        string
	Params      device.Params
	N           int // levels kept after diagonalization
	NPre        int // fluxonium working dimension
	NMax        int // transmon maximum charge number
	Hamiltonian device.HamiltonianType
	UseLinear   bool
}

// SweepDirective is a start/stop/points range for .POTENTIAL and
// .FLUXSWEEP directives.
type SweepDirective struct {
	Start  float64
	Stop   float64
	Points int
}

// Deck is a parsed card file.
type Deck struct {
	Title     string
	Cards     []Card
	Spectrum  bool
	Potential *SweepDirective
	FluxSweep *SweepDirective
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var (
	keyValueRe = regexp.MustCompile(`^(\w+)=(\S+)$`)
	valueRe    = regexp.MustCompile(`^([-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)(T|G|meg|K|k|m|u|n|p|f)?$`)
)

func parseValue(s string) (float64, error) {
	m := valueRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("netlist: invalid value %q", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("netlist: invalid value %q: %v", s, err)
	}
	if m[2] != "" {
		v *= unitMap[m[2]]
	}
	return v, nil
}

// ParseFile reads and parses a card file.
func ParseFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}
	return Parse(string(data))
}

// Parse parses a card deck. The first line is the title; '*' starts a
// comment line and '+' continues the previous line.
func Parse(input string) (*Deck, error) {
	deck := &Deck{}
	scanner := bufio.NewScanner(strings.NewReader(input))

	if scanner.Scan() {
		deck.Title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "*"))
	}

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "*"):
			continue
		case strings.HasPrefix(line, "+"):
			if len(lines) == 0 {
				return nil, fmt.Errorf("netlist: continuation line with nothing to continue")
			}
			lines[len(lines)-1] += " " + strings.TrimSpace(strings.TrimPrefix(line, "+"))
		default:
			lines = append(lines, line)
		}
	}

	for _, line := range lines {
		if err := parseLine(deck, line); err != nil {
			return nil, err
		}
	}
	return deck, nil
}

func parseLine(deck *Deck, line string) error {
	fields := strings.Fields(line)
	kind := strings.ToUpper(fields[0])

	switch kind {
	case "FLUXONIUM", "TRANSMON":
		card, err := parseDeviceCard(kind, fields)
		if err != nil {
			return err
		}
		deck.Cards = append(deck.Cards, *card)
	case ".SPECTRUM":
		deck.Spectrum = true
	case ".POTENTIAL":
		sw, err := parseSweep(kind, fields)
		if err != nil {
			return err
		}
		deck.Potential = sw
	case ".FLUXSWEEP":
		sw, err := parseSweep(kind, fields)
		if err != nil {
			return err
		}
		deck.FluxSweep = sw
	default:
		return fmt.Errorf("netlist: unknown card %q", fields[0])
	}
	return nil
}

func parseDeviceCard(kind string, fields []string) (*Card, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("netlist: %s card has no name", kind)
	}
	card := &Card{
		Type:        kind,
		Name:        fields[1],
		Params:      device.Params{},
		Hamiltonian: device.HamiltonianFull,
	}

	for _, tok := range fields[2:] {
		m := keyValueRe.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("netlist: %s %s: expected key=value, got %q", kind, card.Name, tok)
		}
		key, raw := m[1], m[2]
		switch key {
		case "N", "Npre", "Nmax":
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("netlist: %s %s: %s must be an integer: %v", kind, card.Name, key, err)
			}
			switch key {
			case "N":
				card.N = n
			case "Npre":
				card.NPre = n
			case "Nmax":
				card.NMax = n
			}
		case "hamiltonian":
			switch raw {
			case "linear":
				card.Hamiltonian = device.HamiltonianLinear
			case "full":
				card.Hamiltonian = device.HamiltonianFull
			default:
				return nil, fmt.Errorf("netlist: %s %s: unknown hamiltonian %q", kind, card.Name, raw)
			}
		case "linear":
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("netlist: %s %s: linear must be a boolean: %v", kind, card.Name, err)
			}
			card.UseLinear = b
		default:
			v, err := parseValue(raw)
			if err != nil {
				return nil, fmt.Errorf("netlist: %s %s: %s: %v", kind, card.Name, key, err)
			}
			card.Params[key] = v
		}
	}

	if card.N == 0 {
		return nil, fmt.Errorf("netlist: %s %s: missing N", kind, card.Name)
	}
	if kind == "FLUXONIUM" && card.NPre == 0 {
		return nil, fmt.Errorf("netlist: FLUXONIUM %s: missing Npre", card.Name)
	}
	if kind == "TRANSMON" && card.NMax == 0 {
		return nil, fmt.Errorf("netlist: TRANSMON %s: missing Nmax", card.Name)
	}
	return card, nil
}

func parseSweep(kind string, fields []string) (*SweepDirective, error) {
	if len(fields) != 4 {
		return nil, fmt.Errorf("netlist: %s wants start stop points, got %d fields", kind, len(fields)-1)
	}
	start, err := parseValue(fields[1])
	if err != nil {
		return nil, fmt.Errorf("netlist: %s start: %v", kind, err)
	}
	stop, err := parseValue(fields[2])
	if err != nil {
		return nil, fmt.Errorf("netlist: %s stop: %v", kind, err)
	}
	points, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("netlist: %s points must be an integer: %v", kind, err)
	}
	if points < 2 {
		return nil, fmt.Errorf("netlist: %s wants at least 2 points, got %d", kind, points)
	}
	return &SweepDirective{Start: start, Stop: stop, Points: points}, nil
}

// Build turns the card into a device instance.
func (c *Card) Build() (device.Device, error) {
	switch c.Type {
	case "FLUXONIUM":
		return device.NewFluxonium(c.Name, c.N, c.NPre, c.Params, c.Hamiltonian, c.UseLinear)
	case "TRANSMON":
		return device.NewSingleChargeTransmon(c.Name, c.N, c.NMax, c.Params, c.UseLinear)
	default:
		return nil, fmt.Errorf("netlist: unknown device type %q", c.Type)
	}
}

// BuildDevices builds every device card in the deck.
func (d *Deck) BuildDevices() ([]device.Device, error) {
	devs := make([]device.Device, 0, len(d.Cards))
	for i := range d.Cards {
		dev, err := d.Cards[i].Build()
		if err != nil {
			return nil, err
		}
		devs = append(devs, dev)
	}
	return devs, nil
}
