package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/sphenix-eec/encplot"
)

var (
	configPath = flag.String("config", "plots.yaml", "job file")
	doProfile  = flag.Bool("profile", false, "write a CPU profile")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("plotmaker: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *doProfile {
		defer profile.Start().Stop()
	}

	cfg, err := encplot.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := encplot.NewPlotMaker(cfg).Run(); err != nil {
		log.Fatal(err)
	}
}
