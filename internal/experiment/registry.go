package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/growthsim/internal/dynamo"
	"github.com/san-kum/growthsim/internal/metrics"
)

// Registry maps metric names to constructors keyed on a system's steady state.
type Registry struct {
	metrics map[string]func(kStar float64) dynamo.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics: make(map[string]func(float64) dynamo.Metric),
	}

	r.metrics["gap"] = func(kStar float64) dynamo.Metric { return metrics.NewGap(kStar) }
	r.metrics["half_life"] = func(kStar float64) dynamo.Metric { return metrics.NewHalfLife(kStar) }
	r.metrics["monotone"] = func(kStar float64) dynamo.Metric { return metrics.NewMonotone(kStar) }
	r.metrics["growth_rate"] = func(float64) dynamo.Metric { return metrics.NewGrowthRate() }
	r.metrics["finite"] = func(float64) dynamo.Metric { return metrics.NewFinite() }

	return r
}

func (r *Registry) GetMetric(name string, kStar float64) (dynamo.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s (available: %v)", name, r.ListMetrics())
	}
	return fn(kStar), nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Factory returns a dynamo.MetricFactory building the named metrics for
// each system. An empty list selects metrics.Default.
func (r *Registry) Factory(names []string) (dynamo.MetricFactory, error) {
	if len(names) == 0 {
		return metrics.Default, nil
	}
	for _, name := range names {
		if _, ok := r.metrics[name]; !ok {
			return nil, fmt.Errorf("unknown metric: %s (available: %v)", name, r.ListMetrics())
		}
	}
	return func(sys dynamo.System) []dynamo.Metric {
		kStar := sys.SteadyState()
		out := make([]dynamo.Metric, len(names))
		for i, name := range names {
			out[i] = r.metrics[name](kStar)
		}
		return out
	}, nil
}
