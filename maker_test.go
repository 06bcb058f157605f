package encplot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlotMakerRun(t *testing.T) {
	dir := t.TempDir()
	results := filepath.Join(dir, "results.root")
	writeBook(t, results, map[string][]float64{
		"hEEC_data_pp_pt5_10":  {4, 8, 6, 2},
		"hEEC_reco_pp_pt5_10":  {3, 7, 5, 2},
		"hEEC_true_pp_pt5_10":  {4, 8, 5, 3},
		"hEEC_data_pau_pt5_10": {5, 9, 6, 1},
	})

	in := func(hist, legend string) Input {
		return Input{File: results, Name: hist, Legend: legend}
	}

	cfg := &Config{
		OutputDir: filepath.Join(dir, "plots"),
		Book:      "derived.root",
		Spectra: []SpectraPlot{{
			Name:   "spectra",
			XLabel: "R_L",
			Norm:   Norm{To: 1},
			Inputs: []Input{
				in("hEEC_data_pp_pt5_10", "Data p+p"),
				in("hEEC_reco_pp_pt5_10", "Sim. (reco)"),
			},
		}},
		Ratios: []PairRatioPlot{{
			Name: "ratio",
			Num:  []Input{in("hEEC_data_pp_pt5_10", "data")},
			Den:  []Input{in("hEEC_reco_pp_pt5_10", "reco")},
		}},
		Baselines: []BaselinePlot{{
			Name:   "baseline",
			Base:   in("hEEC_data_pp_pt5_10", "p+p"),
			Inputs: []Input{in("hEEC_data_pau_pt5_10", "p+Au")},
		}},
		Corrections: []CorrectionPlot{{
			Name:  "corrected",
			Norm:  Norm{To: 1},
			Data:  []Input{in("hEEC_data_pp_pt5_10", "data")},
			Reco:  []Input{in("hEEC_reco_pp_pt5_10", "reco")},
			Truth: []Input{in("hEEC_true_pp_pt5_10", "truth")},
		}},
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewPlotMaker(cfg).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"spectra.png", "ratio.png", "baseline.png", "corrected.png"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
			t.Fatalf("missing canvas: %v", err)
		}
	}

	book := filepath.Join(cfg.OutputDir, "derived.root")
	for _, name := range []string{
		"hEEC_data_pp_pt5_10",
		"hEEC_data_pp_pt5_10_over_hEEC_reco_pp_pt5_10",
		"hEEC_data_pau_pt5_10_over_hEEC_data_pp_pt5_10",
		"hEEC_data_pp_pt5_10_corrected",
		"hEEC_data_pp_pt5_10_factor",
	} {
		if _, err := ReadH1D(book, name); err != nil {
			t.Fatalf("missing book entry: %v", err)
		}
	}
}

func TestPlotMakerAbortsOnFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		OutputDir: filepath.Join(dir, "plots"),
		Spectra: []SpectraPlot{{
			Name:   "spectra",
			Inputs: []Input{{File: filepath.Join(dir, "nope.root"), Name: "h"}},
		}},
	}
	if err := NewPlotMaker(cfg).Run(); err == nil {
		t.Fatalf("expected error for missing input file")
	}
}
