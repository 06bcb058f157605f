package encplot

import "testing"

func TestPlotIndexHistName(t *testing.T) {
	idx := PlotIndex{
		Level:   LevelData,
		Species: SpeciesPP,
		Pt:      0,
		Charge:  ChargePos,
		Spin:    SpinBUYU,
	}
	if got, want := idx.HistName("hEEC"), "hEEC_data_pp_pt5_10_chPos_spBUYU"; got != want {
		t.Fatalf("HistName = %q, want %q", got, want)
	}
}

func TestPlotIndexHistNameSkipsUnset(t *testing.T) {
	idx := NewPlotIndex()
	if got, want := idx.HistName("hEEC"), "hEEC"; got != want {
		t.Fatalf("HistName = %q, want %q", got, want)
	}

	idx.Level = LevelTruth
	idx.Pt = 2
	if got, want := idx.HistName("hEEC"), "hEEC_true_pt15_20"; got != want {
		t.Fatalf("HistName = %q, want %q", got, want)
	}
}

func TestPlotIndexLegend(t *testing.T) {
	idx := NewPlotIndex()
	idx.Level = LevelData
	idx.Species = SpeciesPAu
	idx.Pt = 0
	if got, want := idx.Legend(), "Data, p+Au, 5 < p_T,jet < 10 GeV/c"; got != want {
		t.Fatalf("Legend = %q, want %q", got, want)
	}
}

func TestPlotIndexValid(t *testing.T) {
	if err := NewPlotIndex().Valid(); err != nil {
		t.Fatalf("unexpected error for all-unset index: %v", err)
	}

	idx := NewPlotIndex()
	idx.Pt = PtBin(99)
	if err := idx.Valid(); err == nil {
		t.Fatalf("expected error for out-of-range pt bin")
	}

	idx = NewPlotIndex()
	idx.Spin = Spin(-2)
	if err := idx.Valid(); err == nil {
		t.Fatalf("expected error for negative spin index")
	}
}

func TestPtBinEdges(t *testing.T) {
	iv := PtBin(1).Edges()
	if iv.Min != 10 || iv.Max != 15 {
		t.Fatalf("edges = [%g, %g], want [10, 15]", iv.Min, iv.Max)
	}
	if PtUnset.Edges().IsSet() {
		t.Fatalf("unset pt bin has edges")
	}
}

func TestPlotIndexInput(t *testing.T) {
	idx := NewPlotIndex()
	idx.Level = LevelReco
	idx.Species = SpeciesPP
	in := idx.Input("results.root", "hEEC")
	if in.File != "results.root" {
		t.Fatalf("file = %q", in.File)
	}
	if got, want := in.Name, "hEEC_reco_pp"; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
	if got, want := in.Legend, "Sim. (reco), p+p"; got != want {
		t.Fatalf("legend = %q, want %q", got, want)
	}
}
