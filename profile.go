package cst

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is a named fit configuration, typically loaded from a YAML file.
// It exists so that default weight seeds, exponents, and budgets live in
// explicit configuration handed to Fit rather than in process-wide state.
type Profile struct {
	Seed          []float64 `yaml:"seed"`
	N1            float64   `yaml:"n1"`
	N2            float64   `yaml:"n2"`
	DZ            *float64  `yaml:"dz"`
	MaxIterations int       `yaml:"max_iterations"`
	MaxRuntime    string    `yaml:"max_runtime"` // time.ParseDuration format, e.g. "30s"
	Method        string    `yaml:"method"`      // "cma-es" or "nelder-mead"
	Bounds        string    `yaml:"bounds"`      // "seed-sign" or "symmetric"
	Points        int       `yaml:"points"`
	Output        string    `yaml:"output"`
}

// LoadProfile reads a YAML fit profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cst: profile %s: %w", path, err)
	}
	return &p, nil
}

// Options converts the profile into fit options. Unset fields keep the
// package defaults.
func (p *Profile) Options() (Options, error) {
	method, err := ParseMethod(p.Method)
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		Seed:          p.Seed,
		N1:            p.N1,
		N2:            p.N2,
		DZ:            p.DZ,
		MaxIterations: p.MaxIterations,
		Method:        method,
		OutputPath:    p.Output,
	}
	if p.MaxRuntime != "" {
		d, err := time.ParseDuration(p.MaxRuntime)
		if err != nil {
			return Options{}, fmt.Errorf("cst: profile max_runtime: %w", err)
		}
		opts.MaxRuntime = d
	}
	if p.Bounds != "" {
		mode, err := ParseBoundsMode(p.Bounds)
		if err != nil {
			return Options{}, err
		}
		opts.BoundsMode = &mode
	}
	return opts, nil
}
