package encplot

import (
	"fmt"
	"strings"
)

// Level is the processing stage of an event sample.
type Level int

const (
	LevelUnset Level = iota - 1
	LevelData
	LevelReco
	LevelTruth
)

var levelNames = [...]string{"data", "reco", "true"}
var levelLegends = [...]string{"Data", "Sim. (reco)", "Sim. (truth)"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return ""
	}
	return levelNames[l]
}

func (l Level) Legend() string {
	if l < 0 || int(l) >= len(levelLegends) {
		return ""
	}
	return levelLegends[l]
}

// Species is the colliding-system type.
type Species int

const (
	SpeciesUnset Species = iota - 1
	SpeciesPP
	SpeciesPAu
)

var speciesNames = [...]string{"pp", "pau"}
var speciesLegends = [...]string{"p+p", "p+Au"}

func (s Species) String() string {
	if s < 0 || int(s) >= len(speciesNames) {
		return ""
	}
	return speciesNames[s]
}

func (s Species) Legend() string {
	if s < 0 || int(s) >= len(speciesLegends) {
		return ""
	}
	return speciesLegends[s]
}

// PtJetEdges are the jet transverse-momentum bin edges in GeV/c.
var PtJetEdges = [...]float64{5, 10, 15, 20, 30}

// PtBin indexes an interval of PtJetEdges.
type PtBin int

const PtUnset PtBin = -1

// NPtBins is the number of jet-momentum bins.
const NPtBins = len(PtJetEdges) - 1

func (b PtBin) String() string {
	if b < 0 || int(b) >= NPtBins {
		return ""
	}
	return fmt.Sprintf("pt%g_%g", PtJetEdges[b], PtJetEdges[b+1])
}

func (b PtBin) Legend() string {
	if b < 0 || int(b) >= NPtBins {
		return ""
	}
	return fmt.Sprintf("%g < p_T,jet < %g GeV/c", PtJetEdges[b], PtJetEdges[b+1])
}

// Edges returns the bin's momentum interval.
func (b PtBin) Edges() Interval {
	if b < 0 || int(b) >= NPtBins {
		return Interval{}
	}
	return Interval{Min: PtJetEdges[b], Max: PtJetEdges[b+1]}
}

// Charge selects the track-pair charge combination.
type Charge int

const (
	ChargeUnset Charge = iota - 1
	ChargeAll
	ChargeNeg
	ChargePos
)

var chargeNames = [...]string{"chAll", "chNeg", "chPos"}
var chargeLegends = [...]string{"all pairs", "neg. pairs", "pos. pairs"}

func (c Charge) String() string {
	if c < 0 || int(c) >= len(chargeNames) {
		return ""
	}
	return chargeNames[c]
}

func (c Charge) Legend() string {
	if c < 0 || int(c) >= len(chargeLegends) {
		return ""
	}
	return chargeLegends[c]
}

// Spin is the beam polarization combination, blue crossed with yellow.
type Spin int

const (
	SpinUnset Spin = iota - 1
	SpinInt
	SpinBUYU
	SpinBUYD
	SpinBDYU
	SpinBDYD
)

var spinNames = [...]string{"spInt", "spBUYU", "spBUYD", "spBDYU", "spBDYD"}
var spinLegends = [...]string{
	"spin integrated",
	"blue up, yellow up",
	"blue up, yellow down",
	"blue down, yellow up",
	"blue down, yellow down",
}

func (s Spin) String() string {
	if s < 0 || int(s) >= len(spinNames) {
		return ""
	}
	return spinNames[s]
}

func (s Spin) Legend() string {
	if s < 0 || int(s) >= len(spinLegends) {
		return ""
	}
	return spinLegends[s]
}

// PlotIndex locates one histogram in the categorical space of the
// analysis output. Unset fields are skipped during name construction.
type PlotIndex struct {
	Level   Level
	Species Species
	Pt      PtBin
	Charge  Charge
	Spin    Spin
}

// NewPlotIndex returns an index with every field unset.
func NewPlotIndex() PlotIndex {
	return PlotIndex{
		Level:   LevelUnset,
		Species: SpeciesUnset,
		Pt:      PtUnset,
		Charge:  ChargeUnset,
		Spin:    SpinUnset,
	}
}

// Valid reports whether every set field lies in its category's range.
func (idx PlotIndex) Valid() error {
	if idx.Level != LevelUnset && idx.Level.String() == "" {
		return fmt.Errorf("level index %d out of range", idx.Level)
	}
	if idx.Species != SpeciesUnset && idx.Species.String() == "" {
		return fmt.Errorf("species index %d out of range", idx.Species)
	}
	if idx.Pt != PtUnset && idx.Pt.String() == "" {
		return fmt.Errorf("pt bin index %d out of range", idx.Pt)
	}
	if idx.Charge != ChargeUnset && idx.Charge.String() == "" {
		return fmt.Errorf("charge index %d out of range", idx.Charge)
	}
	if idx.Spin != SpinUnset && idx.Spin.String() == "" {
		return fmt.Errorf("spin index %d out of range", idx.Spin)
	}
	return nil
}

// HistName joins the base observable name with the set categories,
// e.g. "hEEC_data_pp_pt5_10_chPos_spBUYU".
func (idx PlotIndex) HistName(base string) string {
	parts := []string{base}
	for _, frag := range []string{
		idx.Level.String(),
		idx.Species.String(),
		idx.Pt.String(),
		idx.Charge.String(),
		idx.Spin.String(),
	} {
		if frag != "" {
			parts = append(parts, frag)
		}
	}
	return strings.Join(parts, "_")
}

// Legend joins the set categories into a legend entry.
func (idx PlotIndex) Legend() string {
	var parts []string
	for _, frag := range []string{
		idx.Level.Legend(),
		idx.Species.Legend(),
		idx.Pt.Legend(),
		idx.Charge.Legend(),
		idx.Spin.Legend(),
	} {
		if frag != "" {
			parts = append(parts, frag)
		}
	}
	return strings.Join(parts, ", ")
}

// Input builds the plot input that reads this index's histogram from file.
func (idx PlotIndex) Input(file, base string) Input {
	return Input{
		File:   file,
		Name:   idx.HistName(base),
		Legend: idx.Legend(),
	}
}
