package encplot

import (
	"fmt"
	"os"
	"path/filepath"
)

// PlotMaker dispatches the routines of a job config in sequence against
// a single book.
type PlotMaker struct {
	cfg *Config
}

func NewPlotMaker(cfg *Config) *PlotMaker {
	return &PlotMaker{cfg: cfg}
}

// Run executes every configured plot. The first failing routine aborts
// the run.
func (pm *PlotMaker) Run() (err error) {
	cfg := pm.cfg
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}

	var book *Book
	if cfg.Book != "" {
		book, err = CreateBook(pm.path(cfg.Book))
		if err != nil {
			return err
		}
		defer func() {
			cerr := book.Close()
			if err == nil {
				err = cerr
			}
		}()
	}

	for i := range cfg.Spectra {
		sp := cfg.Spectra[i]
		sp.Output = pm.path(outputPath(sp.Output, sp.Name))
		if err := sp.Run(book); err != nil {
			return err
		}
	}
	for i := range cfg.Ratios {
		rp := cfg.Ratios[i]
		rp.Output = pm.path(outputPath(rp.Output, rp.Name))
		if err := rp.Run(book); err != nil {
			return err
		}
	}
	for i := range cfg.Baselines {
		bp := cfg.Baselines[i]
		bp.Output = pm.path(outputPath(bp.Output, bp.Name))
		if err := bp.Run(book); err != nil {
			return err
		}
	}
	for i := range cfg.Corrections {
		cp := cfg.Corrections[i]
		cp.Output = pm.path(outputPath(cp.Output, cp.Name))
		if err := cp.Run(book); err != nil {
			return err
		}
	}
	return nil
}

func (pm *PlotMaker) path(name string) string {
	if pm.cfg.OutputDir == "" {
		return name
	}
	return filepath.Join(pm.cfg.OutputDir, name)
}
