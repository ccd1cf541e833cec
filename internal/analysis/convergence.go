package analysis

import (
	"math"

	"github.com/san-kum/growthsim/internal/solow"
)

// FixedPoint solves k = NextCapital(k) for k > 0:
//
//	k = (s·z / (delta-n))^(1/(1-alpha))
//
// It differs from Model.SteadyState, which normalizes by n+delta, whenever
// n is non-zero.
func FixedPoint(m *solow.Model) float64 {
	base := m.SavingsRate * m.Productivity / (m.DepreciationRate - m.PopulationGrowth)
	return math.Pow(base, 1/(1-m.LaborShare))
}

// LocalSlope is dk'/dk evaluated at the fixed point.
func LocalSlope(m *solow.Model) float64 {
	k := FixedPoint(m)
	return (m.SavingsRate*m.Productivity*m.LaborShare*math.Pow(k, m.LaborShare-1) +
		1 - m.DepreciationRate) / (1 - m.PopulationGrowth)
}

// ConvergenceHalfLife returns the number of periods for a small gap to the
// fixed point to halve, or +Inf when the recurrence does not contract.
func ConvergenceHalfLife(m *solow.Model) float64 {
	slope := math.Abs(LocalSlope(m))
	if slope >= 1 || math.IsNaN(slope) {
		return math.Inf(1)
	}
	if slope == 0 {
		return 0
	}
	return math.Log(0.5) / math.Log(slope)
}

// SeparationRate estimates the mean per-period log growth of the distance
// between m and a copy perturbed by perturbation, over steps periods.
// Negative values mean nearby trajectories converge. m itself is not
// advanced.
func SeparationRate(m *solow.Model, steps int, perturbation float64) float64 {
	if steps <= 0 || perturbation == 0 {
		return 0
	}

	a := m.Clone()
	b := m.Clone()
	b.Capital += perturbation
	d0 := math.Abs(perturbation)

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		a.Advance()
		b.Advance()

		sep := math.Abs(b.Capital - a.Capital)
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}
		sumLog += math.Log(sep / d0)
		count++

		// Renormalize so the pair stays in the linear regime.
		b.Capital = a.Capital + (b.Capital-a.Capital)*d0/sep
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}
