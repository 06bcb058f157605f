package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sphenix-eec/encplot"
)

var (
	title  = flag.String("title", "", "plot title")
	xlabel = flag.String("xlabel", "", "x axis label")
	ylabel = flag.String("ylabel", "", "y axis label")
	zMin   = flag.Float64("zmin", 0, "lower edge of the color map")
	zMax   = flag.Float64("zmax", 0, "upper edge of the color map (0 means the histogram maximum)")
	output = flag.String("o", "out.png", "output image file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <file.root:hist>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("heatmap: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	in, err := encplot.ParseInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	hist, err := encplot.ReadH2D(in.File, in.Name)
	if err != nil {
		log.Fatal(err)
	}

	max := *zMax
	if max == 0 {
		g := hist.GridXYZ()
		nx, ny := g.Dims()
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				if z := g.Z(i, j); z > max {
					max = z
				}
			}
		}
	}
	if max <= *zMin {
		log.Fatalf("empty color range [%g, %g]", *zMin, max)
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = *xlabel
	p.Y.Label.Text = *ylabel
	p.X.Tick.Marker = encplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = encplot.PreciseTicks{NSuggestedTicks: 5}

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(*zMin)
	colorMap.SetMax(max)
	p.Add(hplot.NewH2D(hist, colorMap.Palette(1000)))

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	p.Draw(dc0)

	p = hplot.New()
	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	p.Add(colorBar)
	p.HideX()
	p.Y.Padding = 0

	p.Draw(dc1)

	w, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		log.Fatal(err)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
}
