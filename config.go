package encplot

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a plot-maker job file: an optional output directory and
// book, then one list per comparison pattern.
type Config struct {
	OutputDir   string           `yaml:"output_dir"`
	Book        string           `yaml:"book"`
	Spectra     []SpectraPlot    `yaml:"spectra"`
	Ratios      []PairRatioPlot  `yaml:"ratios"`
	Baselines   []BaselinePlot   `yaml:"baselines"`
	Corrections []CorrectionPlot `yaml:"corrections"`
}

// LoadConfig reads and validates a YAML job file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	for i, sp := range cfg.Spectra {
		if sp.Name == "" {
			return fmt.Errorf("spectra[%d]: missing name", i)
		}
		if err := checkInputs(fmt.Sprintf("spectra[%d].inputs", i), sp.Inputs); err != nil {
			return err
		}
	}
	for i, rp := range cfg.Ratios {
		if rp.Name == "" {
			return fmt.Errorf("ratios[%d]: missing name", i)
		}
		if len(rp.Num) != len(rp.Den) {
			return fmt.Errorf("ratios[%d]: %d num vs %d den entries", i, len(rp.Num), len(rp.Den))
		}
		if err := checkInputs(fmt.Sprintf("ratios[%d].num", i), rp.Num); err != nil {
			return err
		}
		if err := checkInputs(fmt.Sprintf("ratios[%d].den", i), rp.Den); err != nil {
			return err
		}
	}
	for i, bp := range cfg.Baselines {
		if bp.Name == "" {
			return fmt.Errorf("baselines[%d]: missing name", i)
		}
		if err := checkInput(fmt.Sprintf("baselines[%d].base", i), bp.Base); err != nil {
			return err
		}
		if err := checkInputs(fmt.Sprintf("baselines[%d].inputs", i), bp.Inputs); err != nil {
			return err
		}
	}
	for i, cp := range cfg.Corrections {
		if cp.Name == "" {
			return fmt.Errorf("corrections[%d]: missing name", i)
		}
		if len(cp.Data) != len(cp.Reco) || len(cp.Data) != len(cp.Truth) {
			return fmt.Errorf("corrections[%d]: %d data vs %d reco vs %d truth entries",
				i, len(cp.Data), len(cp.Reco), len(cp.Truth))
		}
		for _, set := range []struct {
			field  string
			inputs []Input
		}{
			{"data", cp.Data},
			{"reco", cp.Reco},
			{"truth", cp.Truth},
		} {
			if err := checkInputs(fmt.Sprintf("corrections[%d].%s", i, set.field), set.inputs); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkInputs(path string, inputs []Input) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%s: empty", path)
	}
	for j, in := range inputs {
		if err := checkInput(fmt.Sprintf("%s[%d]", path, j), in); err != nil {
			return err
		}
	}
	return nil
}

func checkInput(path string, in Input) error {
	if in.File == "" {
		return fmt.Errorf("%s: missing file", path)
	}
	if in.Name == "" {
		return fmt.Errorf("%s: missing hist", path)
	}
	if in.Rebin < 0 {
		return fmt.Errorf("%s: negative rebin %d", path, in.Rebin)
	}
	return nil
}
