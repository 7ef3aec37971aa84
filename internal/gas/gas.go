// Package gas provides combustion-gas property presets for common
// propellant combinations, plus loading of user-supplied gas tables.
package gas

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Properties holds the chamber-gas quantities the evaluators consume.
type Properties struct {
	Gamma float64 `yaml:"gamma"` // ratio of specific heats
	Rs    float64 `yaml:"rs"`    // specific gas constant [J/(kg·K)]
	T0    float64 `yaml:"t0"`    // chamber stagnation temperature [K]
}

// Presets are representative chamber conditions for preliminary estimation,
// not a substitute for a combustion equilibrium run.
var Presets = map[string]Properties{
	"lox-lh2": {
		Gamma: 1.26, Rs: 616, T0: 3560,
	},
	"lox-rp1": {
		Gamma: 1.22, Rs: 357, T0: 3670,
	},
	"lox-ch4": {
		Gamma: 1.23, Rs: 394, T0: 3550,
	},
	"n2o4-mmh": {
		Gamma: 1.23, Rs: 368, T0: 3400,
	},
	"apcp": {
		Gamma: 1.18, Rs: 295, T0: 3200,
	},
	"cold-air": {
		Gamma: 1.4, Rs: 287, T0: 300,
	},
}

func Get(name string) (Properties, bool) {
	p, ok := Presets[name]
	return p, ok
}

func List() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTable reads a YAML file mapping gas names to properties.
func LoadTable(path string) (map[string]Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	table := make(map[string]Properties)
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, err
	}
	for name, p := range table {
		if p.Gamma <= 1 {
			return nil, fmt.Errorf("gas %s: gamma must be > 1, got %g", name, p.Gamma)
		}
		if p.Rs <= 0 {
			return nil, fmt.Errorf("gas %s: rs must be > 0, got %g", name, p.Rs)
		}
		if p.T0 <= 0 {
			return nil, fmt.Errorf("gas %s: t0 must be > 0, got %g", name, p.T0)
		}
	}
	return table, nil
}
