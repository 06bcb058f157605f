package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sphenix-eec/encplot"
)

var (
	datas  encplot.InputFlags
	recos  encplot.InputFlags
	truths encplot.InputFlags

	title   = flag.String("title", "", "plot title")
	xlabel  = flag.String("xlabel", "", "x axis label")
	ylabel  = flag.String("ylabel", "", "y axis label")
	logY    = flag.Bool("logy", false, "log scale on the spectra pad")
	rebin   = flag.Int("rebin", 0, "rebin group size applied to every input")
	normTo  = flag.Float64("normto", 1, "normalize reco/truth integrals to this value before the ratio")
	normMin = flag.Float64("normmin", 0, "lower edge of the normalization window")
	normMax = flag.Float64("normmax", 0, "upper edge of the normalization window")
	output  = flag.String("o", "out.png", "output image file")
	book    = flag.String("book", "corrected.root", "output file for corrected spectra and factors")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] -data file.root:hist -reco file.root:hist -truth file.root:hist ...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("correct: ")
	log.SetFlags(0)

	flag.Var(&datas, "data", "data input (repeatable): file.root:hist[:legend]")
	flag.Var(&recos, "reco", "simulated-reconstructed input (repeatable): file.root:hist[:legend]")
	flag.Var(&truths, "truth", "simulated-truth input (repeatable): file.root:hist[:legend]")
	flag.Usage = printUsage
	flag.Parse()
	if len(datas.Inputs) == 0 ||
		len(datas.Inputs) != len(recos.Inputs) ||
		len(datas.Inputs) != len(truths.Inputs) {
		printUsage()
		log.Fatal("Invalid arguments: need matching -data, -reco and -truth inputs")
	}

	cp := encplot.CorrectionPlot{
		Name:   "correct",
		Title:  *title,
		XLabel: *xlabel,
		YLabel: *ylabel,
		LogY:   *logY,
		Norm: encplot.Norm{
			To:    *normTo,
			Range: encplot.Interval{Min: *normMin, Max: *normMax},
		},
		Data:   datas.Inputs,
		Reco:   recos.Inputs,
		Truth:  truths.Inputs,
		Output: *output,
	}
	for i := range cp.Data {
		cp.Data[i].Rebin = *rebin
		cp.Reco[i].Rebin = *rebin
		cp.Truth[i].Rebin = *rebin
	}

	b, err := encplot.CreateBook(*book)
	if err != nil {
		log.Fatal(err)
	}

	if err := cp.Run(b); err != nil {
		log.Fatal(err)
	}
	if err := b.Close(); err != nil {
		log.Fatal(err)
	}
}
