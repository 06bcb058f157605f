package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sphenix-eec/encplot"
)

var (
	nums encplot.InputFlags
	dens encplot.InputFlags

	title      = flag.String("title", "", "plot title")
	xlabel     = flag.String("xlabel", "", "x axis label")
	ylabel     = flag.String("ylabel", "", "y axis label")
	ratioLabel = flag.String("ratiolabel", "ratio", "ratio pad y axis label")
	logY       = flag.Bool("logy", false, "log scale on the spectra pad")
	rebin      = flag.Int("rebin", 0, "rebin group size applied to every input")
	frac       = flag.Float64("frac", 0.35, "height fraction of the ratio pad")
	output     = flag.String("o", "out.png", "output image file")
	book       = flag.String("book", "", "optional output file for the ratio histograms")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] -num file.root:hist[:legend] -den file.root:hist[:legend] ...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("pairratio: ")
	log.SetFlags(0)

	flag.Var(&nums, "num", "numerator input (repeatable): file.root:hist[:legend]")
	flag.Var(&dens, "den", "denominator input (repeatable): file.root:hist[:legend]")
	flag.Usage = printUsage
	flag.Parse()
	if len(nums.Inputs) == 0 || len(nums.Inputs) != len(dens.Inputs) {
		printUsage()
		log.Fatal("Invalid arguments: need matching -num and -den inputs")
	}

	rp := encplot.PairRatioPlot{
		Name:       "pairratio",
		Title:      *title,
		XLabel:     *xlabel,
		YLabel:     *ylabel,
		RatioLabel: *ratioLabel,
		LogY:       *logY,
		Frac:       *frac,
		Num:        nums.Inputs,
		Den:        dens.Inputs,
		Output:     *output,
	}
	for i := range rp.Num {
		rp.Num[i].Rebin = *rebin
		rp.Den[i].Rebin = *rebin
	}

	var b *encplot.Book
	if *book != "" {
		var err error
		b, err = encplot.CreateBook(*book)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := rp.Run(b); err != nil {
		log.Fatal(err)
	}
	if b != nil {
		if err := b.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
