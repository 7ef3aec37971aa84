// Package config loads and saves YAML case files describing a single
// performance estimation: the chamber gas, the nozzle ratios, and an
// optional sweep block.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGamma   = 1.2
	DefaultRs      = 350.0
	DefaultT0      = 3500.0
	DefaultPeP0    = 0.0125
	DefaultPaP0    = 0.02
	DefaultAeAstar = 10.0
	DefaultPoints  = 60
)

type Case struct {
	Gas    GasConfig    `yaml:"gas"`
	Nozzle NozzleConfig `yaml:"nozzle"`
	Sweep  SweepConfig  `yaml:"sweep"`
}

type GasConfig struct {
	// Preset names an entry in the gas preset table; explicit values
	// below override it.
	Preset string  `yaml:"preset,omitempty"`
	Gamma  float64 `yaml:"gamma"`
	Rs     float64 `yaml:"rs"`
	T0     float64 `yaml:"t0"`
}

type NozzleConfig struct {
	RatioPeP0    float64 `yaml:"pe_p0"`
	RatioPaP0    float64 `yaml:"pa_p0"`
	RatioAeAstar float64 `yaml:"ae_astar"`
}

type SweepConfig struct {
	Quantity string  `yaml:"quantity"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Points   int     `yaml:"points"`
}

func DefaultCase() *Case {
	return &Case{
		Gas: GasConfig{
			Gamma: DefaultGamma,
			Rs:    DefaultRs,
			T0:    DefaultT0,
		},
		Nozzle: NozzleConfig{
			RatioPeP0:    DefaultPeP0,
			RatioPaP0:    DefaultPaP0,
			RatioAeAstar: DefaultAeAstar,
		},
		Sweep: SweepConfig{
			Quantity: "pe_p0",
			From:     0.002,
			To:       0.2,
			Points:   DefaultPoints,
		},
	}
}

func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultCase()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Case) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the case against the evaluator domains before any
// computation runs.
func (c *Case) Validate() error {
	if c.Gas.Gamma <= 1 {
		return fmt.Errorf("gas.gamma must be > 1, got %g", c.Gas.Gamma)
	}
	if c.Gas.Rs <= 0 {
		return fmt.Errorf("gas.rs must be > 0, got %g", c.Gas.Rs)
	}
	if c.Gas.T0 <= 0 {
		return fmt.Errorf("gas.t0 must be > 0, got %g", c.Gas.T0)
	}
	if c.Nozzle.RatioPeP0 <= 0 || c.Nozzle.RatioPeP0 >= 1 {
		return fmt.Errorf("nozzle.pe_p0 must be in (0, 1), got %g", c.Nozzle.RatioPeP0)
	}
	if c.Nozzle.RatioPaP0 < 0 {
		return fmt.Errorf("nozzle.pa_p0 must be >= 0, got %g", c.Nozzle.RatioPaP0)
	}
	if c.Nozzle.RatioAeAstar < 1 {
		return fmt.Errorf("nozzle.ae_astar must be >= 1, got %g", c.Nozzle.RatioAeAstar)
	}
	return nil
}
