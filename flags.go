package encplot

import (
	"fmt"
	"strconv"
	"strings"
)

type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

type StringArrayFlags struct {
	Array   []string
	beenSet bool
}

func (f *StringArrayFlags) Set(value string) error {
	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *StringArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

// InputFlags collects repeated "file.root:histname[:legend]" arguments.
type InputFlags struct {
	Inputs  []Input
	beenSet bool
}

func (f *InputFlags) Set(value string) error {
	in, err := ParseInput(value)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Inputs = nil
	}

	f.Inputs = append(f.Inputs, in)
	return nil
}

func (f *InputFlags) String() string {
	var specs []string
	for _, in := range f.Inputs {
		specs = append(specs, in.File+":"+in.Name)
	}
	return fmt.Sprint(specs)
}

// ParseInput splits a "file.root:histname[:legend]" spec into an Input.
func ParseInput(spec string) (Input, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Input{}, fmt.Errorf("invalid input spec %q: want file.root:histname[:legend]", spec)
	}

	in := Input{File: parts[0], Name: parts[1]}
	if len(parts) == 3 {
		in.Legend = parts[2]
	}
	return in, nil
}
