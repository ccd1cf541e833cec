package dynamo

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"golang.org/x/sync/errgroup"
)

// MetricFactory builds fresh metrics for one system. Metrics hold state,
// so every run in an ensemble gets its own set.
type MetricFactory func(sys System) []Metric

type Ensemble struct {
	metrics MetricFactory
	logger  *slog.Logger
}

func NewEnsemble(logger *slog.Logger, metrics MetricFactory) *Ensemble {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ensemble{metrics: metrics, logger: logger}
}

// Run simulates every system on its own goroutine. Results are returned in
// input order. The first failing run cancels the others.
func (e *Ensemble) Run(ctx context.Context, systems []Labeled, cfg Config) ([]*Result, error) {
	if len(systems) == 0 {
		return nil, ErrNoSystems
	}

	seen := make(map[System]int, len(systems))
	for i, ls := range systems {
		if ls.System == nil {
			return nil, fmt.Errorf("%w: %q has no system", ErrNoSystems, ls.Label)
		}
		// Sharing is detected by identity, which needs a comparable type.
		if !reflect.TypeOf(ls.System).Comparable() {
			continue
		}
		if j, ok := seen[ls.System]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrSharedSystem, systems[j].Label, ls.Label)
		}
		seen[ls.System] = i
	}

	results := make([]*Result, len(systems))
	g, gctx := errgroup.WithContext(ctx)

	for i, ls := range systems {
		g.Go(func() error {
			s := New(e.logger.With("series", ls.Label))
			if e.metrics != nil {
				for _, m := range e.metrics(ls.System) {
					s.AddMetric(m)
				}
			}

			res, err := s.Run(gctx, ls.System, cfg)
			if err != nil {
				return fmt.Errorf("run %q: %w", ls.Label, err)
			}
			res.Label = ls.Label
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
