package encplot

import (
	"testing"

	"gonum.org/v1/plot/plotutil"
)

func TestIntervalContains(t *testing.T) {
	iv := Interval{}
	if !iv.Contains(42) {
		t.Fatalf("unset interval should contain everything")
	}

	iv = Interval{Min: 0.01, Max: 1}
	if !iv.Contains(0.5) || iv.Contains(2) {
		t.Fatalf("interval membership wrong")
	}
}

func TestStyleDefaults(t *testing.T) {
	s := StyleN(0)
	gs := s.GlyphStyle()
	if gs.Radius == 0 || gs.Shape == nil {
		t.Fatalf("glyph style not resolved: %+v", gs)
	}
	ls := s.LineStyle()
	if ls.Width == 0 {
		t.Fatalf("line style not resolved: %+v", ls)
	}
}

func TestStyleCycleDistinct(t *testing.T) {
	a, b := StyleN(0), StyleN(1)
	if a.Color == b.Color {
		t.Fatalf("adjacent cycle entries share a color")
	}
	if a.GlyphStyle().Shape == b.GlyphStyle().Shape {
		t.Fatalf("adjacent cycle entries share a glyph")
	}
}

func TestStyleNegativeCodes(t *testing.T) {
	s := Style{Marker: -3, Line: -1}
	if gs := s.GlyphStyle(); gs.Shape == nil {
		t.Fatalf("negative marker code not resolved")
	}
	if ls := s.LineStyle(); ls.Width == 0 {
		t.Fatalf("negative line code not resolved")
	}
}

func TestResolveStyle(t *testing.T) {
	in := Input{File: "f.root", Name: "h"}
	if got, want := in.ResolveStyle(1).Color, StyleN(1).Color; got != want {
		t.Fatalf("fallback style color = %v, want cycle entry %v", got, want)
	}

	in.Style = &StyleSpec{Color: 2, Marker: 3, Line: 1, Fill: 1}
	s := in.ResolveStyle(0)
	if got, want := s.Color, plotutil.Color(2); got != want {
		t.Fatalf("override color = %v, want %v", got, want)
	}
	if got, want := s.FillColor, plotutil.Color(0); got != want {
		t.Fatalf("override fill = %v, want %v", got, want)
	}
	if s.Marker != 3 || s.Line != 1 {
		t.Fatalf("override codes = %d/%d, want 3/1", s.Marker, s.Line)
	}

	in.Style = &StyleSpec{Color: -2, Marker: -5, Line: -1}
	s = in.ResolveStyle(0)
	if s.Color == nil {
		t.Fatalf("negative color code not resolved")
	}
	if s.GlyphStyle().Shape == nil {
		t.Fatalf("negative marker code not resolved")
	}
}

func TestRangeApply(t *testing.T) {
	p := NewCanvas(SinglePad("c", "", "", "")).Pad(0)
	Range{X: Interval{Min: -1, Max: 2}}.Apply(p)
	if p.X.Min != -1 || p.X.Max != 2 {
		t.Fatalf("x range = [%g, %g]", p.X.Min, p.X.Max)
	}
}
