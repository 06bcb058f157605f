package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sphenix-eec/encplot"
)

var (
	base   = flag.String("base", "", "baseline input: file.root:hist[:legend]")
	title  = flag.String("title", "", "plot title")
	xlabel = flag.String("xlabel", "", "x axis label")
	ylabel = flag.String("ylabel", "", "y axis label")
	rebin  = flag.Int("rebin", 0, "rebin group size applied to every input")
	output = flag.String("o", "out.png", "output image file")
	book   = flag.String("book", "", "optional output file for the ratio histograms")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] -base file.root:hist <file.root:hist[:legend]>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("baseline: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if *base == "" || flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	baseIn, err := encplot.ParseInput(*base)
	if err != nil {
		log.Fatal(err)
	}
	baseIn.Rebin = *rebin

	bp := encplot.BaselinePlot{
		Name:   "baseline",
		Title:  *title,
		XLabel: *xlabel,
		YLabel: *ylabel,
		Base:   baseIn,
		Output: *output,
	}
	for _, arg := range flag.Args() {
		in, err := encplot.ParseInput(arg)
		if err != nil {
			log.Fatal(err)
		}
		in.Rebin = *rebin
		bp.Inputs = append(bp.Inputs, in)
	}

	var b *encplot.Book
	if *book != "" {
		b, err = encplot.CreateBook(*book)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := bp.Run(b); err != nil {
		log.Fatal(err)
	}
	if b != nil {
		if err := b.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
