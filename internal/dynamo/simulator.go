package dynamo

import (
	"context"
	"fmt"
	"log/slog"
)

type Simulator struct {
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run observes sys for cfg.Steps periods. Each step records the current
// value before advancing, so Series[0] is the value sys held on entry.
// On cancellation the partial result is returned with the error.
func (s *Simulator) Run(ctx context.Context, sys System, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Series:      make([]float64, 0, cfg.Steps),
		SteadyState: sys.SteadyState(),
		Metrics:     make(map[string]float64),
		Errors:      make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Debug("run started", "steps", cfg.Steps, "k0", sys.Current(), "steady_state", result.SteadyState)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		default:
		}

		k := sys.Current()
		if cfg.ValidateState && !IsFinite(k) {
			err := &SimError{Step: i, Value: k, Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			s.logger.Warn("run stopped", "step", i, "k", k)
			break
		}

		result.Series = append(result.Series, k)
		for _, m := range s.metrics {
			m.Observe(k, i)
		}
		for _, obs := range s.observers {
			obs.OnStep(k, i)
		}

		sys.Advance()
		result.StepsTaken++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Debug("run finished", "steps", result.StepsTaken, "k", sys.Current())

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, cfg.Steps)
	}
	return nil
}
