package encplot

import (
	"math"
	"testing"

	"go-hep.org/x/hep/hbook"
)

// fillH1D builds a unit-width histogram with the given bin contents.
func fillH1D(vals []float64) *hbook.H1D {
	h := hbook.NewH1D(len(vals), 0, float64(len(vals)))
	for i, v := range vals {
		if v != 0 {
			h.Fill(float64(i)+0.5, v)
		}
	}
	return h
}

func binVals(h *hbook.H1D) []float64 {
	vals := make([]float64, len(h.Binning.Bins))
	for i, b := range h.Binning.Bins {
		vals[i] = b.SumW()
	}
	return vals
}

func approxEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestRebin(t *testing.T) {
	h := fillH1D([]float64{1, 2, 3, 4, 5, 6})
	out, err := Rebin(h, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := binVals(out), []float64{3, 7, 11}; !approxEqual(got, want) {
		t.Fatalf("rebinned contents = %v, want %v", got, want)
	}
	if out.XMin() != h.XMin() || out.XMax() != h.XMax() {
		t.Fatalf("rebinned axis = [%g, %g], want [%g, %g]", out.XMin(), out.XMax(), h.XMin(), h.XMax())
	}
}

func TestRebinQuadrature(t *testing.T) {
	h := fillH1D([]float64{3, 4})
	out, err := Rebin(h, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := out.Binning.Bins[0]
	if got, want := b.SumW(), 7.0; got != want {
		t.Fatalf("merged sumw = %g, want %g", got, want)
	}
	// Weights 3 and 4 merge with errors in quadrature: 3^2 + 4^2.
	if got, want := b.Dist.Dist.SumW2, 25.0; got != want {
		t.Fatalf("merged sumw2 = %g, want %g", got, want)
	}
}

func TestRebinErrors(t *testing.T) {
	h := fillH1D([]float64{1, 2, 3, 4, 5, 6})
	if _, err := Rebin(h, 0); err == nil {
		t.Fatalf("expected error for group size 0")
	}
	if _, err := Rebin(h, 4); err == nil {
		t.Fatalf("expected error for group size not dividing the bin count")
	}
}

func TestNormalizeTo(t *testing.T) {
	h := fillH1D([]float64{1, 2, 3, 4})
	if err := NormalizeTo(h, Norm{To: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := binVals(h), []float64{0.2, 0.4, 0.6, 0.8}; !approxEqual(got, want) {
		t.Fatalf("normalized contents = %v, want %v", got, want)
	}
}

func TestNormalizeToWindow(t *testing.T) {
	h := fillH1D([]float64{1, 2, 3, 4})
	if err := NormalizeTo(h, Norm{To: 1, Range: Interval{Min: 0, Max: 3}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Window covers the first three bins, which summed to 6.
	if got, want := binVals(h), []float64{1. / 6, 2. / 6, 3. / 6, 4. / 6}; !approxEqual(got, want) {
		t.Fatalf("normalized contents = %v, want %v", got, want)
	}
}

func TestNormalizeToEmpty(t *testing.T) {
	h := fillH1D([]float64{0, 0})
	if err := NormalizeTo(h, Norm{To: 1}); err == nil {
		t.Fatalf("expected error for zero integral")
	}
}

func TestNormalizeToUnset(t *testing.T) {
	h := fillH1D([]float64{1, 2})
	if err := NormalizeTo(h, Norm{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := binVals(h), []float64{1, 2}; !approxEqual(got, want) {
		t.Fatalf("unset norm changed contents: %v, want %v", got, want)
	}
}

func TestRatioH1D(t *testing.T) {
	num := fillH1D([]float64{2, 4, 3})
	den := fillH1D([]float64{1, 0, 2})
	out, err := RatioH1D(num, den)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := binVals(out), []float64{2, 0, 1.5}; !approxEqual(got, want) {
		t.Fatalf("ratio contents = %v, want %v", got, want)
	}
}

func TestRatioBinningMismatch(t *testing.T) {
	num := fillH1D([]float64{1, 2})
	den := fillH1D([]float64{1, 2, 3})
	if _, err := Ratio(num, den); err == nil {
		t.Fatalf("expected binning mismatch error")
	}
	if _, err := RatioH1D(num, den); err == nil {
		t.Fatalf("expected binning mismatch error")
	}
}

func TestRatioEdgeMismatch(t *testing.T) {
	num := hbook.NewH1DFromEdges([]float64{0, 1, 3, 4})
	den := hbook.NewH1DFromEdges([]float64{0, 2, 3, 4})
	num.Fill(0.5, 1)
	den.Fill(0.5, 1)
	if err := SameBinning(num, den); err == nil {
		t.Fatalf("expected edge mismatch error for equal bin counts")
	}
	if _, err := RatioH1D(num, den); err == nil {
		t.Fatalf("expected edge mismatch error for equal bin counts")
	}
}

func TestCorrect(t *testing.T) {
	data := fillH1D([]float64{8, 4})
	reco := fillH1D([]float64{4, 2})
	truth := fillH1D([]float64{2, 2})

	corrected, factor, err := Correct(data, reco, truth, Norm{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := binVals(factor), []float64{2, 1}; !approxEqual(got, want) {
		t.Fatalf("factor contents = %v, want %v", got, want)
	}
	if got, want := binVals(corrected), []float64{4, 4}; !approxEqual(got, want) {
		t.Fatalf("corrected contents = %v, want %v", got, want)
	}
}

func TestCorrectNormalized(t *testing.T) {
	data := fillH1D([]float64{8, 4})
	reco := fillH1D([]float64{4, 2})
	truth := fillH1D([]float64{2, 2})

	// reco scales to {2/3, 1/3}, truth to {1/2, 1/2}, so the factor is
	// {4/3, 2/3}; the raw corrected spectrum {6, 6} renormalizes to
	// {1/2, 1/2}.
	corrected, factor, err := Correct(data, reco, truth, Norm{To: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := binVals(factor), []float64{4. / 3, 2. / 3}; !approxEqual(got, want) {
		t.Fatalf("factor contents = %v, want %v", got, want)
	}
	if got, want := binVals(corrected), []float64{0.5, 0.5}; !approxEqual(got, want) {
		t.Fatalf("corrected contents = %v, want %v", got, want)
	}
}

func TestCorrectInputsNotMutated(t *testing.T) {
	reco := fillH1D([]float64{4, 2})
	truth := fillH1D([]float64{2, 2})
	if _, _, err := Correct(fillH1D([]float64{8, 4}), reco, truth, Norm{To: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := binVals(reco), []float64{4, 2}; !approxEqual(got, want) {
		t.Fatalf("reco mutated: %v, want %v", got, want)
	}
	if got, want := binVals(truth), []float64{2, 2}; !approxEqual(got, want) {
		t.Fatalf("truth mutated: %v, want %v", got, want)
	}
}

func TestCorrectMismatch(t *testing.T) {
	data := fillH1D([]float64{1, 2, 3})
	reco := fillH1D([]float64{1, 2})
	truth := fillH1D([]float64{1, 2, 3})
	if _, _, err := Correct(data, reco, truth, Norm{}); err == nil {
		t.Fatalf("expected binning mismatch error")
	}
}
