package encplot

import (
	"fmt"

	"go-hep.org/x/hep/hplot"
)

// CorrectionPlot applies the bin-by-bin correction factor reco/truth to
// each data spectrum, drawing data, corrected and truth on the upper pad
// and the factor on the lower pad.
type CorrectionPlot struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"xlabel"`
	YLabel string  `yaml:"ylabel"`
	LogY   bool    `yaml:"logy"`
	Frac   float64 `yaml:"frac"`
	Range  Range   `yaml:"range"`
	Norm   Norm    `yaml:"norm"`
	Data   []Input `yaml:"data"`
	Reco   []Input `yaml:"reco"`
	Truth  []Input `yaml:"truth"`
	Output string  `yaml:"output"`
}

// Run corrects each (data, reco, truth) triple, draws the canvas, and
// writes the corrected spectra and factors to the book.
func (cp CorrectionPlot) Run(book *Book) error {
	if len(cp.Data) == 0 {
		return fmt.Errorf("correction %q: no inputs", cp.Name)
	}
	if len(cp.Data) != len(cp.Reco) || len(cp.Data) != len(cp.Truth) {
		return fmt.Errorf("correction %q: %d data vs %d reco vs %d truth inputs",
			cp.Name, len(cp.Data), len(cp.Reco), len(cp.Truth))
	}

	geom := SplitPads(cp.Name, cp.Title, cp.Frac)
	geom.Pads[0].YLabel = cp.YLabel
	geom.Pads[0].LogY = cp.LogY
	geom.Pads[0].Range = cp.Range
	geom.Pads[1].XLabel = cp.XLabel
	geom.Pads[1].YLabel = "reco/truth"
	canvas := NewCanvas(geom)
	top, bottom := canvas.Pad(0), canvas.Pad(1)

	addUnitLine(bottom)

	for i := range cp.Data {
		data, err := ReadInput(cp.Data[i])
		if err != nil {
			return fmt.Errorf("correction %q: %w", cp.Name, err)
		}
		reco, err := ReadInput(cp.Reco[i])
		if err != nil {
			return fmt.Errorf("correction %q: %w", cp.Name, err)
		}
		truth, err := ReadInput(cp.Truth[i])
		if err != nil {
			return fmt.Errorf("correction %q: %w", cp.Name, err)
		}

		corrected, factor, err := Correct(data, reco, truth, cp.Norm)
		if err != nil {
			return fmt.Errorf("correction %q: %w", cp.Name, err)
		}

		hd := hplot.NewH1D(data)
		cp.Data[i].ResolveStyle(3 * i).ApplyH1D(hd)
		top.Add(hd)
		top.Legend.Add(cp.Data[i].LegendText(), hd)

		hc := hplot.NewH1D(corrected)
		StyleN(3*i + 1).ApplyH1D(hc)
		top.Add(hc)
		top.Legend.Add(cp.Data[i].LegendText()+" (corrected)", hc)

		ht := hplot.NewH1D(truth)
		cp.Truth[i].ResolveStyle(3*i + 2).ApplyH1D(ht)
		top.Add(ht)
		top.Legend.Add(cp.Truth[i].LegendText(), ht)

		hf := hplot.NewH1D(factor)
		cp.Data[i].ResolveStyle(3 * i).ApplyH1D(hf)
		bottom.Add(hf)

		if book != nil {
			if err := book.PutH1D(cp.Data[i].BookName()+"_corrected", corrected); err != nil {
				return fmt.Errorf("correction %q: %w", cp.Name, err)
			}
			if err := book.PutH1D(cp.Data[i].BookName()+"_factor", factor); err != nil {
				return fmt.Errorf("correction %q: %w", cp.Name, err)
			}
		}
	}

	return canvas.Save(outputPath(cp.Output, cp.Name))
}
