package encplot

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

// ReadH1D fetches the named 1-d histogram from a result file.
func ReadH1D(fname, hname string) (*hbook.H1D, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", fname, err)
	}
	defer f.Close()

	obj, err := f.Get(hname)
	if err != nil {
		return nil, fmt.Errorf("could not get %q from %q: %w", hname, fname, err)
	}
	h, ok := obj.(rhist.H1)
	if !ok {
		return nil, fmt.Errorf("object %q in %q is not a 1-d histogram (%T)", hname, fname, obj)
	}
	return rootcnv.H1D(h), nil
}

// ReadH2D fetches the named 2-d histogram from a result file.
func ReadH2D(fname, hname string) (*hbook.H2D, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", fname, err)
	}
	defer f.Close()

	obj, err := f.Get(hname)
	if err != nil {
		return nil, fmt.Errorf("could not get %q from %q: %w", hname, fname, err)
	}
	h, ok := obj.(rhist.H2)
	if !ok {
		return nil, fmt.Errorf("object %q in %q is not a 2-d histogram (%T)", hname, fname, obj)
	}
	return rootcnv.H2D(h), nil
}

// ReadInput fetches an input's histogram and applies its rebin request.
func ReadInput(in Input) (*hbook.H1D, error) {
	h, err := ReadH1D(in.File, in.Name)
	if err != nil {
		return nil, err
	}
	if in.Rebin > 1 {
		h, err = Rebin(h, in.Rebin)
		if err != nil {
			return nil, fmt.Errorf("%q from %q: %w", in.Name, in.File, err)
		}
	}
	return h, nil
}

// Book is the output store derived histograms are written to.
type Book struct {
	f    *riofs.File
	path string
}

// CreateBook creates (or truncates) the output store at path.
func CreateBook(path string) (*Book, error) {
	f, err := groot.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create book %q: %w", path, err)
	}
	return &Book{f: f, path: path}, nil
}

func (b *Book) Path() string { return b.path }

// PutH1D writes a histogram into the book under the given name.
func (b *Book) PutH1D(name string, h *hbook.H1D) error {
	if err := b.f.Put(name, rhist.NewH1DFrom(h)); err != nil {
		return fmt.Errorf("could not write %q to book %q: %w", name, b.path, err)
	}
	return nil
}

// Close finalizes the book file.
func (b *Book) Close() error {
	if err := b.f.Close(); err != nil {
		return fmt.Errorf("could not close book %q: %w", b.path, err)
	}
	return nil
}
