package encplot

import (
	"image/color"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Interval is a closed numeric interval. The zero value means unset and
// leaves the corresponding axis to autoscale.
type Interval struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (iv Interval) IsSet() bool {
	return iv.Min != 0 || iv.Max != 0
}

// Contains reports whether x lies in the interval, treating an unset
// interval as all-inclusive.
func (iv Interval) Contains(x float64) bool {
	if !iv.IsSet() {
		return true
	}
	return x >= iv.Min && x <= iv.Max
}

// Range bundles the axis intervals of a pad.
type Range struct {
	X Interval `yaml:"x"`
	Y Interval `yaml:"y"`
	Z Interval `yaml:"z"`
}

// Apply pushes the set intervals onto the plot's axes.
func (r Range) Apply(p *hplot.Plot) {
	if r.X.IsSet() {
		p.X.Min = r.X.Min
		p.X.Max = r.X.Max
	}
	if r.Y.IsSet() {
		p.Y.Min = r.Y.Min
		p.Y.Max = r.Y.Max
	}
}

// Norm is an integral-normalization request: scale the histogram so that
// its integral over Range (the whole axis when unset) equals To. A zero
// To disables normalization.
type Norm struct {
	To    float64  `yaml:"to"`
	Range Interval `yaml:"range"`
}

func (n Norm) IsSet() bool { return n.To != 0 }

// Style carries the cosmetic codes of one plotted series. Marker and
// Line are small numeric codes in the manner of the analysis framework;
// they index the toolkit's glyph and dash tables.
type Style struct {
	Color      color.Color
	FillColor  color.Color
	Marker     int
	MarkerSize vg.Length
	Line       int
	LineWidth  vg.Length
}

var glyphShapes = [...]draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
	draw.CrossGlyph{},
	draw.RingGlyph{},
	draw.PyramidGlyph{},
	draw.PlusGlyph{},
	draw.BoxGlyph{},
}

// cycleIndex wraps a style code into [0, n), negative codes included.
func cycleIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// GlyphStyle resolves the marker code into a drawable glyph style.
func (s Style) GlyphStyle() draw.GlyphStyle {
	size := s.MarkerSize
	if size == 0 {
		size = 2.5
	}
	return draw.GlyphStyle{
		Color:  s.Color,
		Radius: size,
		Shape:  glyphShapes[cycleIndex(s.Marker, len(glyphShapes))],
	}
}

// LineStyle resolves the line code into a drawable line style.
func (s Style) LineStyle() draw.LineStyle {
	width := s.LineWidth
	if width == 0 {
		width = vg.Points(1)
	}
	return draw.LineStyle{
		Color:  s.Color,
		Width:  width,
		Dashes: plotutil.Dashes(cycleIndex(s.Line, len(plotutil.DefaultDashes))),
	}
}

// ApplyH1D styles a histogram drawer.
func (s Style) ApplyH1D(h *hplot.H1D) {
	h.LineStyle = s.LineStyle()
	h.FillColor = s.FillColor
	h.GlyphStyle = s.GlyphStyle()
	h.Infos.Style = hplot.HInfoNone
}

// ApplyS2D styles a point-set drawer.
func (s Style) ApplyS2D(pts *hplot.S2D) {
	pts.GlyphStyle = s.GlyphStyle()
}

// StyleN returns the n-th entry of the default style cycle, matching the
// per-input color rotation used across the toolkit's commands.
func StyleN(n int) Style {
	return Style{
		Color:  plotutil.Color(n),
		Marker: n,
		Line:   n,
	}
}

// StyleSpec is the configurable form of a per-input style override:
// small numeric codes into the toolkit's color, glyph and dash tables.
// A Fill of 0 means no fill; positive values index the color table.
type StyleSpec struct {
	Color  int `yaml:"color"`
	Marker int `yaml:"marker"`
	Line   int `yaml:"line"`
	Fill   int `yaml:"fill"`
}

// Resolve turns the codes into a concrete style.
func (sp StyleSpec) Resolve() Style {
	s := Style{
		Color:  plotutil.Color(cycleIndex(sp.Color, len(plotutil.DefaultColors))),
		Marker: sp.Marker,
		Line:   sp.Line,
	}
	if sp.Fill > 0 {
		s.FillColor = plotutil.Color(cycleIndex(sp.Fill-1, len(plotutil.DefaultColors)))
	}
	return s
}

// Input names one histogram to be read, restyled and replotted.
type Input struct {
	File   string     `yaml:"file"`
	Name   string     `yaml:"hist"`
	Rename string     `yaml:"rename"`
	Legend string     `yaml:"legend"`
	Rebin  int        `yaml:"rebin"`
	Norm   Norm       `yaml:"norm"`
	Style  *StyleSpec `yaml:"style"`
}

// ResolveStyle returns the input's own style when set, falling back to
// the n-th entry of the default cycle.
func (in Input) ResolveStyle(n int) Style {
	if in.Style != nil {
		return in.Style.Resolve()
	}
	return StyleN(n)
}

// BookName is the object name used when writing the styled or derived
// histogram back out.
func (in Input) BookName() string {
	if in.Rename != "" {
		return in.Rename
	}
	return in.Name
}

// LegendText falls back to the object name when no legend was given.
func (in Input) LegendText() string {
	if in.Legend != "" {
		return in.Legend
	}
	return in.Name
}
