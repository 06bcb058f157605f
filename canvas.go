package encplot

import (
	"fmt"
	"os"
	"strings"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PadGeom places one pad on a canvas by its normalized vertices
// (fractions of the canvas, origin at the lower left).
type PadGeom struct {
	Name           string
	X1, Y1, X2, Y2 float64
	LogX, LogY     bool
	XLabel, YLabel string
	Range          Range
}

// CanvasGeom describes a named multi-pad canvas.
type CanvasGeom struct {
	Name   string
	Title  string
	Width  vg.Length
	Height vg.Length
	Pads   []PadGeom
}

// SinglePad is the default one-pad canvas.
func SinglePad(name, title, xlabel, ylabel string) CanvasGeom {
	return CanvasGeom{
		Name:  name,
		Title: title,
		Pads: []PadGeom{
			{Name: "main", X1: 0, Y1: 0, X2: 1, Y2: 1, XLabel: xlabel, YLabel: ylabel},
		},
	}
}

// SplitPads is the stacked two-pad layout used by the ratio routines:
// spectra on top, the ratio pad below at the given height fraction.
func SplitPads(name, title string, frac float64) CanvasGeom {
	if frac <= 0 || frac >= 1 {
		frac = 0.35
	}
	return CanvasGeom{
		Name:  name,
		Title: title,
		Pads: []PadGeom{
			{Name: "spectra", X1: 0, Y1: frac, X2: 1, Y2: 1},
			{Name: "ratio", X1: 0, Y1: 0, X2: 1, Y2: frac},
		},
	}
}

// Canvas renders pads into their normalized rectangles.
type Canvas struct {
	Geom  CanvasGeom
	plots []*hplot.Plot
}

// NewCanvas builds the pad plots with the toolkit axis style applied.
func NewCanvas(geom CanvasGeom) *Canvas {
	if geom.Width == 0 {
		geom.Width = 6 * vg.Inch
	}
	if geom.Height == 0 {
		geom.Height = 4 * vg.Inch
	}
	if len(geom.Pads) == 0 {
		geom.Pads = SinglePad(geom.Name, geom.Title, "", "").Pads
	}

	c := &Canvas{Geom: geom}
	for i, pad := range geom.Pads {
		p := hplot.New()
		if i == 0 {
			p.Title.Text = geom.Title
		}
		applyPadStyle(p, pad)
		c.plots = append(c.plots, p)
	}
	return c
}

func applyPadStyle(p *hplot.Plot, pad PadGeom) {
	p.X.Label.Text = pad.XLabel
	p.Y.Label.Text = pad.YLabel

	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	if pad.LogX {
		p.X.Scale = LogScale{}
		p.X.Tick.Marker = LogTicks{}
	}
	if pad.LogY {
		p.Y.Scale = LogScale{}
		p.Y.Tick.Marker = LogTicks{}
	}
	pad.Range.Apply(p)

	p.Legend.Top = true
}

// NPads returns the number of pads.
func (c *Canvas) NPads() int { return len(c.plots) }

// Pad returns the i-th pad's plot.
func (c *Canvas) Pad(i int) *hplot.Plot { return c.plots[i] }

// Save renders the canvas to a PNG file.
func (c *Canvas) Save(path string) error {
	if !strings.HasSuffix(path, ".png") {
		return fmt.Errorf("canvas %q: output %q is not a .png file", c.Geom.Name, path)
	}

	img := vgimg.New(c.Geom.Width, c.Geom.Height)
	dc := draw.New(img)
	width := dc.Rectangle.Max.X - dc.Rectangle.Min.X
	height := dc.Rectangle.Max.Y - dc.Rectangle.Min.Y

	for i, pad := range c.Geom.Pads {
		sub := dc
		sub.Rectangle = vg.Rectangle{
			Min: vg.Point{
				X: dc.Rectangle.Min.X + vg.Length(pad.X1)*width,
				Y: dc.Rectangle.Min.Y + vg.Length(pad.Y1)*height,
			},
			Max: vg.Point{
				X: dc.Rectangle.Min.X + vg.Length(pad.X2)*width,
				Y: dc.Rectangle.Min.Y + vg.Length(pad.Y2)*height,
			},
		}
		c.plots[i].Draw(sub)
	}

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create canvas file %q: %w", path, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("could not write canvas file %q: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not close canvas file %q: %w", path, err)
	}
	return nil
}

// NewGrid lays uniform pads out as an n-column tiling with the toolkit
// axis style, for the momentum-bin grids.
func NewGrid(cols, rows int) *hplot.TiledPlot {
	tp := hplot.NewTiledPlot(draw.Tiles{
		Cols: cols,
		Rows: rows,
		PadX: vg.Points(2),
		PadY: vg.Points(2),
	})
	for _, p := range tp.Plots {
		p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 4}
		p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 4}
	}
	return tp
}
