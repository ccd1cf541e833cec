package solow

import (
	"errors"
	"fmt"
	"math"
)

var ErrDegenerate = errors.New("solow: degenerate parameters")

// Validate reports parameter combinations for which NextCapital or
// SteadyState are undefined. The model never calls it itself.
func (m *Model) Validate() error {
	var errs []error
	switch {
	case m.PopulationGrowth == 1:
		errs = append(errs, fmt.Errorf("%w: n=1 divides next capital by zero", ErrDegenerate))
	case m.PopulationGrowth > 1:
		errs = append(errs, fmt.Errorf("%w: n>1 makes next capital negative", ErrDegenerate))
	}
	if m.LaborShare == 1 {
		errs = append(errs, fmt.Errorf("%w: alpha=1 has no steady state", ErrDegenerate))
	}
	if nd := m.PopulationGrowth + m.DepreciationRate; nd == 0 {
		errs = append(errs, fmt.Errorf("%w: n+delta=0 has no steady state", ErrDegenerate))
	} else if m.SavingsRate*m.Productivity/nd < 0 {
		errs = append(errs, fmt.Errorf("%w: s*z/(n+delta) < 0 has no real steady state", ErrDegenerate))
	}
	if m.Capital < 0 && m.LaborShare != math.Trunc(m.LaborShare) {
		errs = append(errs, fmt.Errorf("%w: negative capital with fractional alpha", ErrDegenerate))
	}
	return errors.Join(errs...)
}
