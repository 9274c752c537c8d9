package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seedable/pseudorandom/random"
	"github.com/seedable/pseudorandom/seed"
)

// seedFlags are shared by the commands that construct a generator.
type seedFlags struct {
	Seed     string `kong:"help='Seed value as a YAML/JSON literal'"`
	SeedFile string `kong:"type='existingfile',help='Read the seed value from a YAML file'"`
	Encoder  string `kong:"default='accelerated',enum='accelerated,reference',help='Seed derivation implementation'"`
}

// seedValue parses the flags into a value tree. YAML parsing keeps scalar
// types intact: 42 stays an integer, "42" stays text, so each derives its
// own seed.
func (f *seedFlags) seedValue() (any, error) {
	if f.Seed != "" && f.SeedFile != "" {
		return nil, fmt.Errorf("--seed and --seed-file are mutually exclusive")
	}
	var src []byte
	switch {
	case f.SeedFile != "":
		data, err := os.ReadFile(f.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		src = data
	case f.Seed != "":
		src = []byte(f.Seed)
	default:
		return nil, nil
	}
	var v any
	if err := yaml.Unmarshal(src, &v); err != nil {
		return nil, fmt.Errorf("parse seed value: %w", err)
	}
	return v, nil
}

func (f *seedFlags) options() []random.Option {
	if f.Encoder == "reference" {
		return []random.Option{random.WithEncoder(seed.Reference)}
	}
	return nil
}

func (f *seedFlags) generator() (*random.Generator, error) {
	v, err := f.seedValue()
	if err != nil {
		return nil, err
	}
	return random.New(v, f.options()...), nil
}
