package encplot

import (
	"fmt"
	"image/color"
	"log"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PairRatioPlot overlays numerator and denominator spectra on the upper
// pad and draws the i-th num/den ratio on the lower pad.
type PairRatioPlot struct {
	Name       string  `yaml:"name"`
	Title      string  `yaml:"title"`
	XLabel     string  `yaml:"xlabel"`
	YLabel     string  `yaml:"ylabel"`
	RatioLabel string  `yaml:"ratio_label"`
	LogY       bool    `yaml:"logy"`
	Frac       float64 `yaml:"frac"`
	Range      Range   `yaml:"range"`
	RatioRange Range   `yaml:"ratio_range"`
	Num        []Input `yaml:"num"`
	Den        []Input `yaml:"den"`
	Output     string  `yaml:"output"`
}

// Run draws the pairwise ratios and writes them to the book.
func (rp PairRatioPlot) Run(book *Book) error {
	if len(rp.Num) == 0 {
		return fmt.Errorf("ratio %q: no inputs", rp.Name)
	}
	if len(rp.Num) != len(rp.Den) {
		return fmt.Errorf("ratio %q: %d numerators vs %d denominators", rp.Name, len(rp.Num), len(rp.Den))
	}

	geom := SplitPads(rp.Name, rp.Title, rp.Frac)
	geom.Pads[0].YLabel = rp.YLabel
	geom.Pads[0].LogY = rp.LogY
	geom.Pads[0].Range = rp.Range
	geom.Pads[1].XLabel = rp.XLabel
	geom.Pads[1].YLabel = rp.RatioLabel
	if geom.Pads[1].YLabel == "" {
		geom.Pads[1].YLabel = "ratio"
	}
	geom.Pads[1].Range = rp.RatioRange
	canvas := NewCanvas(geom)
	top, bottom := canvas.Pad(0), canvas.Pad(1)

	addUnitLine(bottom)

	for i := range rp.Num {
		num, err := ReadInput(rp.Num[i])
		if err != nil {
			return fmt.Errorf("ratio %q: %w", rp.Name, err)
		}
		den, err := ReadInput(rp.Den[i])
		if err != nil {
			return fmt.Errorf("ratio %q: %w", rp.Name, err)
		}
		if err := NormalizeTo(num, rp.Num[i].Norm); err != nil {
			return fmt.Errorf("ratio %q: %w", rp.Name, err)
		}
		if err := NormalizeTo(den, rp.Den[i].Norm); err != nil {
			return fmt.Errorf("ratio %q: %w", rp.Name, err)
		}

		hn := hplot.NewH1D(num)
		rp.Num[i].ResolveStyle(2 * i).ApplyH1D(hn)
		top.Add(hn)
		top.Legend.Add(rp.Num[i].LegendText(), hn)

		hd := hplot.NewH1D(den)
		rp.Den[i].ResolveStyle(2*i + 1).ApplyH1D(hd)
		top.Add(hd)
		top.Legend.Add(rp.Den[i].LegendText(), hd)

		pts, err := Ratio(num, den)
		if err != nil {
			return fmt.Errorf("ratio %q: %w", rp.Name, err)
		}
		sp := hplot.NewS2D(pts, hplot.WithYErrBars(true))
		rp.Num[i].ResolveStyle(2 * i).ApplyS2D(sp)
		bottom.Add(sp)

		rh, err := RatioH1D(num, den)
		if err != nil {
			return fmt.Errorf("ratio %q: %w", rp.Name, err)
		}
		rname := rp.Num[i].BookName() + "_over_" + rp.Den[i].BookName()
		logFlatness(rp.Name, rname, rh)
		if book != nil {
			if err := book.PutH1D(rname, rh); err != nil {
				return fmt.Errorf("ratio %q: %w", rp.Name, err)
			}
		}
	}

	return canvas.Save(outputPath(rp.Output, rp.Name))
}

// BaselinePlot draws each input's ratio to a common baseline against a
// unit line on a single pad.
type BaselinePlot struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"xlabel"`
	YLabel string  `yaml:"ylabel"`
	Range  Range   `yaml:"range"`
	Base   Input   `yaml:"base"`
	Inputs []Input `yaml:"inputs"`
	Output string  `yaml:"output"`
}

// Run draws the vs.-baseline ratios and writes them to the book.
func (bp BaselinePlot) Run(book *Book) error {
	if len(bp.Inputs) == 0 {
		return fmt.Errorf("baseline %q: no inputs", bp.Name)
	}

	base, err := ReadInput(bp.Base)
	if err != nil {
		return fmt.Errorf("baseline %q: %w", bp.Name, err)
	}
	if err := NormalizeTo(base, bp.Base.Norm); err != nil {
		return fmt.Errorf("baseline %q: %w", bp.Name, err)
	}

	geom := SinglePad(bp.Name, bp.Title, bp.XLabel, bp.YLabel)
	if geom.Pads[0].YLabel == "" {
		geom.Pads[0].YLabel = "ratio to " + bp.Base.LegendText()
	}
	geom.Pads[0].Range = bp.Range
	canvas := NewCanvas(geom)
	p := canvas.Pad(0)

	addUnitLine(p)

	for i, in := range bp.Inputs {
		h, err := ReadInput(in)
		if err != nil {
			return fmt.Errorf("baseline %q: %w", bp.Name, err)
		}
		if err := NormalizeTo(h, in.Norm); err != nil {
			return fmt.Errorf("baseline %q: %w", bp.Name, err)
		}

		pts, err := Ratio(h, base)
		if err != nil {
			return fmt.Errorf("baseline %q: %w", bp.Name, err)
		}
		sp := hplot.NewS2D(pts, hplot.WithYErrBars(true))
		in.ResolveStyle(i).ApplyS2D(sp)
		p.Add(sp)
		p.Legend.Add(in.LegendText(), sp)

		rh, err := RatioH1D(h, base)
		if err != nil {
			return fmt.Errorf("baseline %q: %w", bp.Name, err)
		}
		rname := in.BookName() + "_over_" + bp.Base.BookName()
		logFlatness(bp.Name, rname, rh)
		if book != nil {
			if err := book.PutH1D(rname, rh); err != nil {
				return fmt.Errorf("baseline %q: %w", bp.Name, err)
			}
		}
	}

	return canvas.Save(outputPath(bp.Output, bp.Name))
}

func addUnitLine(p *hplot.Plot) {
	unit := plotter.NewFunction(func(float64) float64 { return 1 })
	unit.LineStyle.Color = color.Gray{Y: 128}
	unit.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(unit)
}

// logFlatness prints the mean and spread of the non-empty ratio bins,
// the quick consistency check read off these plots by eye.
func logFlatness(plotName, ratioName string, rh *hbook.H1D) {
	var vals []float64
	for _, b := range rh.Binning.Bins {
		if b.SumW() != 0 {
			vals = append(vals, b.SumW())
		}
	}
	if len(vals) < 2 {
		return
	}
	log.Printf("%s: %s mean %.4g rms %.4g", plotName, ratioName,
		stat.Mean(vals, nil), stat.StdDev(vals, nil))
}
