package metrics

import "github.com/san-kum/growthsim/internal/dynamo"

// Default returns the standard metric set for sys, keyed to its steady state.
func Default(sys dynamo.System) []dynamo.Metric {
	kStar := sys.SteadyState()
	return []dynamo.Metric{
		NewGap(kStar),
		NewHalfLife(kStar),
		NewMonotone(kStar),
		NewGrowthRate(),
		NewFinite(),
	}
}
