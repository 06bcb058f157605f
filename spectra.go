package encplot

import (
	"fmt"

	"go-hep.org/x/hep/hplot"
)

// SpectraPlot overlays styled spectra on a single pad.
type SpectraPlot struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"xlabel"`
	YLabel string  `yaml:"ylabel"`
	LogY   bool    `yaml:"logy"`
	Range  Range   `yaml:"range"`
	Norm   Norm    `yaml:"norm"`
	Inputs []Input `yaml:"inputs"`

	// Output is the image path; empty means Name + ".png".
	Output string `yaml:"output"`
}

// Run reads, normalizes, styles and overlays the inputs, saves the
// canvas, and writes the styled histograms to the book.
func (sp SpectraPlot) Run(book *Book) error {
	if len(sp.Inputs) == 0 {
		return fmt.Errorf("spectra %q: no inputs", sp.Name)
	}

	geom := SinglePad(sp.Name, sp.Title, sp.XLabel, sp.YLabel)
	geom.Pads[0].LogY = sp.LogY
	geom.Pads[0].Range = sp.Range
	canvas := NewCanvas(geom)
	p := canvas.Pad(0)

	for i, in := range sp.Inputs {
		h, err := ReadInput(in)
		if err != nil {
			return fmt.Errorf("spectra %q: %w", sp.Name, err)
		}

		norm := in.Norm
		if !norm.IsSet() {
			norm = sp.Norm
		}
		if err := NormalizeTo(h, norm); err != nil {
			return fmt.Errorf("spectra %q: %w", sp.Name, err)
		}

		hp := hplot.NewH1D(h)
		in.ResolveStyle(i).ApplyH1D(hp)
		p.Add(hp)
		p.Legend.Add(in.LegendText(), hp)

		if book != nil {
			if err := book.PutH1D(in.BookName(), h); err != nil {
				return fmt.Errorf("spectra %q: %w", sp.Name, err)
			}
		}
	}

	return canvas.Save(outputPath(sp.Output, sp.Name))
}

func outputPath(output, name string) string {
	if output != "" {
		return output
	}
	return name + ".png"
}
