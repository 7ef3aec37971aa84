// Package ideal computes closed-form performance parameters for an ideal
// rocket engine, assuming ideal gas behavior and isentropic, adiabatic flow
// through a converging-diverging nozzle.
//
// All quantities are in standard SI units:
//
//   - gamma (ratio of specific heats) must be > 1
//   - the exit pressure ratio pe/p0 must be in (0, 1)
//   - the ambient pressure ratio pa/p0 must be >= 0
//   - the nozzle area ratio Ae/A* must be >= 1
//   - stagnation temperature [K] must be > 0
//   - specific gas constant [J/(kg·K)] must be > 0
//
// Both evaluators are pure: a violated precondition returns a [DomainError],
// never a clamped or partial result.
package ideal

import "math"

// vandenkerckhove evaluates the gas property function
//
//	Γ(γ) = √γ · (2/(γ+1))^((γ+1)/(2(γ−1)))
//
// Callers must have validated gamma > 1; the exponent denominator vanishes
// at gamma = 1.
func vandenkerckhove(gamma float64) float64 {
	return math.Sqrt(gamma) * math.Pow(2/(gamma+1), (gamma+1)/(2*(gamma-1)))
}

// SolveCstar computes the characteristic velocity c* [m/s] for a gas with
// ratio of specific heats gamma, specific gas constant rs [J/(kg·K)] and
// stagnation temperature t0 [K]:
//
//	c* = √(Rs·T0) / Γ(γ)
func SolveCstar(gamma, rs, t0 float64) (float64, error) {
	if gamma <= 1 {
		return 0, &DomainError{Quantity: "gamma", Reason: "must be > 1", Value: gamma}
	}
	if rs <= 0 {
		return 0, &DomainError{Quantity: "Rs", Reason: "must be > 0", Value: rs}
	}
	if t0 <= 0 {
		return 0, &DomainError{Quantity: "T0", Reason: "must be > 0", Value: t0}
	}
	return math.Sqrt(rs*t0) / vandenkerckhove(gamma), nil
}

// SolveCF computes the thrust coefficient for a choked nozzle with exit
// pressure ratio pe/p0, ambient pressure ratio pa/p0 and area expansion
// ratio Ae/A*:
//
//	CF = Γ(γ) · √[(2γ/(γ−1)) · (1 − (pe/p0)^((γ−1)/γ))] + (pe/p0 − pa/p0) · Ae/A*
//
// The result is dimensionless. Physically realistic inputs land in roughly
// 0.5–2.2, but out-of-range results are returned as-is: they can be
// legitimate off-nominal analysis.
func SolveCF(gamma, ratioPeP0, ratioPaP0, ratioAeAstar float64) (float64, error) {
	if gamma <= 1 {
		return 0, &DomainError{Quantity: "gamma", Reason: "must be > 1", Value: gamma}
	}
	if ratioPeP0 <= 0 || ratioPeP0 >= 1 {
		return 0, &DomainError{Quantity: "pe/p0", Reason: "must be in (0, 1)", Value: ratioPeP0}
	}
	if ratioPaP0 < 0 {
		return 0, &DomainError{Quantity: "pa/p0", Reason: "must be >= 0", Value: ratioPaP0}
	}
	if ratioAeAstar < 1 {
		return 0, &DomainError{Quantity: "Ae/A*", Reason: "must be >= 1", Value: ratioAeAstar}
	}

	radicand := 2 * gamma / (gamma - 1) * (1 - math.Pow(ratioPeP0, (gamma-1)/gamma))
	if radicand < 0 {
		return 0, &DomainError{Quantity: "momentum term radicand", Reason: "must be >= 0", Value: radicand}
	}

	return vandenkerckhove(gamma)*math.Sqrt(radicand) + (ratioPeP0-ratioPaP0)*ratioAeAstar, nil
}
