// Package sweep evaluates the performance relations across a grid of one
// varying input quantity with the others held fixed.
package sweep

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/raheelusc/rocket-relations/ideal"
)

// Inputs fixes all six evaluator arguments; a sweep varies exactly one.
type Inputs struct {
	Gamma        float64
	Rs           float64
	T0           float64
	RatioPeP0    float64
	RatioPaP0    float64
	RatioAeAstar float64
}

const (
	QuantityGamma   = "gamma"
	QuantityRs      = "rs"
	QuantityT0      = "t0"
	QuantityPeP0    = "pe_p0"
	QuantityPaP0    = "pa_p0"
	QuantityAeAstar = "ae_astar"
)

// Quantities lists the sweepable input names in CLI order.
var Quantities = []string{
	QuantityGamma,
	QuantityRs,
	QuantityT0,
	QuantityPeP0,
	QuantityPaP0,
	QuantityAeAstar,
}

// Series holds both performance parameters evaluated over the grid.
type Series struct {
	Quantity string
	Grid     []float64
	Cstar    []float64
	CF       []float64
}

// Run evaluates c* and CF at points evenly spaced values of quantity in
// [from, to]. A domain violation anywhere on the grid aborts the sweep.
func Run(base Inputs, quantity string, from, to float64, points int) (*Series, error) {
	if points < 2 {
		return nil, fmt.Errorf("points must be >= 2, got %d", points)
	}
	if to <= from {
		return nil, fmt.Errorf("sweep range must satisfy from < to, got [%g, %g]", from, to)
	}
	apply, err := setter(quantity)
	if err != nil {
		return nil, err
	}

	s := &Series{
		Quantity: quantity,
		Grid:     floats.Span(make([]float64, points), from, to),
		Cstar:    make([]float64, points),
		CF:       make([]float64, points),
	}

	for i, v := range s.Grid {
		in := base
		apply(&in, v)

		cstar, err := ideal.SolveCstar(in.Gamma, in.Rs, in.T0)
		if err != nil {
			return nil, fmt.Errorf("%s = %g: %w", quantity, v, err)
		}
		cf, err := ideal.SolveCF(in.Gamma, in.RatioPeP0, in.RatioPaP0, in.RatioAeAstar)
		if err != nil {
			return nil, fmt.Errorf("%s = %g: %w", quantity, v, err)
		}

		s.Cstar[i] = cstar
		s.CF[i] = cf
	}

	return s, nil
}

func setter(quantity string) (func(*Inputs, float64), error) {
	switch quantity {
	case QuantityGamma:
		return func(in *Inputs, v float64) { in.Gamma = v }, nil
	case QuantityRs:
		return func(in *Inputs, v float64) { in.Rs = v }, nil
	case QuantityT0:
		return func(in *Inputs, v float64) { in.T0 = v }, nil
	case QuantityPeP0:
		return func(in *Inputs, v float64) { in.RatioPeP0 = v }, nil
	case QuantityPaP0:
		return func(in *Inputs, v float64) { in.RatioPaP0 = v }, nil
	case QuantityAeAstar:
		return func(in *Inputs, v float64) { in.RatioAeAstar = v }, nil
	default:
		return nil, fmt.Errorf("unknown sweep quantity: %s (available: %v)", quantity, Quantities)
	}
}
