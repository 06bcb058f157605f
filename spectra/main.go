package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sphenix-eec/encplot"
)

var (
	title   = flag.String("title", "", "plot title")
	xlabel  = flag.String("xlabel", "", "x axis label")
	ylabel  = flag.String("ylabel", "", "y axis label")
	logY    = flag.Bool("logy", false, "log scale on the y axis")
	rebin   = flag.Int("rebin", 0, "rebin group size applied to every input")
	normTo  = flag.Float64("normto", 0, "normalize each input's integral to this value")
	normMin = flag.Float64("normmin", 0, "lower edge of the normalization window")
	normMax = flag.Float64("normmax", 0, "upper edge of the normalization window")
	output  = flag.String("o", "out.png", "output image file")
	book    = flag.String("book", "", "optional output file for the styled histograms")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <file.root:hist[:legend]>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("spectra: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	sp := encplot.SpectraPlot{
		Name:   "spectra",
		Title:  *title,
		XLabel: *xlabel,
		YLabel: *ylabel,
		LogY:   *logY,
		Norm: encplot.Norm{
			To:    *normTo,
			Range: encplot.Interval{Min: *normMin, Max: *normMax},
		},
		Output: *output,
	}
	for _, arg := range flag.Args() {
		in, err := encplot.ParseInput(arg)
		if err != nil {
			log.Fatal(err)
		}
		in.Rebin = *rebin
		sp.Inputs = append(sp.Inputs, in)
	}

	var b *encplot.Book
	if *book != "" {
		var err error
		b, err = encplot.CreateBook(*book)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := sp.Run(b); err != nil {
		log.Fatal(err)
	}
	if b != nil {
		if err := b.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
