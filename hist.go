package encplot

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

// SameBinning checks that two histograms share an axis, the precondition
// for every bin-by-bin operation below.
func SameBinning(a, b *hbook.H1D) error {
	if len(a.Binning.Bins) != len(b.Binning.Bins) {
		return fmt.Errorf("binning mismatch: %d bins vs %d bins", len(a.Binning.Bins), len(b.Binning.Bins))
	}
	for i := range a.Binning.Bins {
		ab, bb := a.Binning.Bins[i], b.Binning.Bins[i]
		if ab.XMin() != bb.XMin() || ab.XMax() != bb.XMax() {
			return fmt.Errorf("bin %d edge mismatch: [%g, %g] vs [%g, %g]",
				i, ab.XMin(), ab.XMax(), bb.XMin(), bb.XMax())
		}
	}
	return nil
}

// Rebin merges groups of n adjacent bins into a new histogram. The group
// size must divide the bin count exactly. The source bins' moments are
// accumulated directly, so merged errors add in quadrature.
func Rebin(h *hbook.H1D, n int) (*hbook.H1D, error) {
	nb := len(h.Binning.Bins)
	switch {
	case n <= 0:
		return nil, fmt.Errorf("invalid rebin group size %d", n)
	case nb%n != 0:
		return nil, fmt.Errorf("rebin group size %d does not divide %d bins", n, nb)
	}

	out := hbook.NewH1D(nb/n, h.XMin(), h.XMax())
	out.Annotation()["name"] = h.Name()
	for i, b := range h.Binning.Bins {
		addDist(&out.Binning.Bins[i/n].Dist, b.Dist)
		addDist(&out.Binning.Dist, b.Dist)
	}
	return out, nil
}

func addDist(dst *hbook.Dist1D, src hbook.Dist1D) {
	dst.Dist.N += src.Dist.N
	dst.Dist.SumW += src.Dist.SumW
	dst.Dist.SumW2 += src.Dist.SumW2
	dst.Stats.SumWX += src.Stats.SumWX
	dst.Stats.SumWX2 += src.Stats.SumWX2
}

// NormalizeTo scales h in place so that its integral over the norm window
// equals norm.To. A zero norm is a no-op.
func NormalizeTo(h *hbook.H1D, norm Norm) error {
	if !norm.IsSet() {
		return nil
	}
	integral := windowIntegral(h, norm.Range)
	if integral == 0 {
		return fmt.Errorf("cannot normalize %q: zero integral over window", h.Name())
	}
	h.Scale(norm.To / integral)
	return nil
}

func windowIntegral(h *hbook.H1D, iv Interval) float64 {
	if iv.IsSet() {
		return h.Integral(iv.Min, iv.Max)
	}
	return h.Integral()
}

// Ratio divides two histograms bin by bin into a scatter suitable for
// plotting with error bars.
func Ratio(num, den *hbook.H1D) (*hbook.S2D, error) {
	if err := SameBinning(num, den); err != nil {
		return nil, fmt.Errorf("ratio: %w", err)
	}
	s, err := hbook.DivideH1D(num, den)
	if err != nil {
		return nil, fmt.Errorf("ratio: %w", err)
	}
	return s, nil
}

// RatioH1D divides two histograms bin by bin into a plain histogram, the
// form written to the book. Empty denominator bins yield zero.
func RatioH1D(num, den *hbook.H1D) (*hbook.H1D, error) {
	if err := SameBinning(num, den); err != nil {
		return nil, fmt.Errorf("ratio: %w", err)
	}
	out := hbook.NewH1D(len(num.Binning.Bins), num.XMin(), num.XMax())
	for i, b := range num.Binning.Bins {
		d := den.Binning.Bins[i].SumW()
		if d == 0 {
			continue
		}
		out.Fill(b.XMid(), b.SumW()/d)
	}
	return out, nil
}

// Correct applies the bin-by-bin correction factor reco/truth to the data
// spectrum: reco and truth are each normalized per norm before the factor
// is taken, and the corrected spectrum is renormalized the same way.
// Inputs are not mutated. It returns the corrected spectrum and the factor.
func Correct(data, reco, truth *hbook.H1D, norm Norm) (corrected, factor *hbook.H1D, err error) {
	if err := SameBinning(data, reco); err != nil {
		return nil, nil, fmt.Errorf("correct: data/reco %w", err)
	}
	if err := SameBinning(data, truth); err != nil {
		return nil, nil, fmt.Errorf("correct: data/truth %w", err)
	}

	recoScale, truthScale := 1.0, 1.0
	if norm.IsSet() {
		ir := windowIntegral(reco, norm.Range)
		it := windowIntegral(truth, norm.Range)
		if ir == 0 || it == 0 {
			return nil, nil, fmt.Errorf("correct: zero reco or truth integral over norm window")
		}
		recoScale = norm.To / ir
		truthScale = norm.To / it
	}

	nb := len(data.Binning.Bins)
	factor = hbook.NewH1D(nb, data.XMin(), data.XMax())
	corrected = hbook.NewH1D(nb, data.XMin(), data.XMax())
	for i, b := range data.Binning.Bins {
		r := reco.Binning.Bins[i].SumW() * recoScale
		t := truth.Binning.Bins[i].SumW() * truthScale
		if t == 0 {
			continue
		}
		f := r / t
		factor.Fill(b.XMid(), f)
		if f == 0 {
			continue
		}
		corrected.Fill(b.XMid(), b.SumW()/f)
	}

	if norm.IsSet() {
		if err := NormalizeTo(corrected, norm); err != nil {
			return nil, nil, fmt.Errorf("correct: %w", err)
		}
	}
	return corrected, factor, nil
}
