package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/growthsim/internal/config"
	"github.com/san-kum/growthsim/internal/dynamo"
	"github.com/san-kum/growthsim/internal/solow"
	"github.com/san-kum/growthsim/internal/storage"
	"github.com/san-kum/growthsim/internal/viz"
)

type Experiment struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *Registry
	metrics  []string
	validate bool
	strict   bool
}

type Option func(*Experiment)

func WithLogger(l *slog.Logger) Option { return func(e *Experiment) { e.logger = l } }

// WithMetrics selects metrics by registry name instead of the defaults.
func WithMetrics(names ...string) Option { return func(e *Experiment) { e.metrics = names } }

// WithValidation stops each series at its first non-finite value.
func WithValidation(on bool) Option { return func(e *Experiment) { e.validate = on } }

// WithStrict rejects degenerate parameters before running.
func WithStrict(on bool) Option { return func(e *Experiment) { e.strict = on } }

func New(cfg *config.Config, opts ...Option) *Experiment {
	e := &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	return e
}

// Report is the outcome of one experiment, ready for rendering or storage.
type Report struct {
	Title       string
	Horizon     int
	SteadyState float64
	Params      []map[string]float64
	Results     []*dynamo.Result
	Figure      *viz.Figure
}

// Run builds one model per configured entry and simulates them
// concurrently. The reported steady state is that of the first model.
func (e *Experiment) Run(ctx context.Context) (*Report, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	factory, err := e.registry.Factory(e.metrics)
	if err != nil {
		return nil, err
	}

	models := e.cfg.Build()
	if e.strict {
		for i, m := range models {
			if err := m.Validate(); err != nil {
				return nil, fmt.Errorf("model %d: %w", i, err)
			}
		}
	}

	labels := e.labels(models)
	systems := make([]dynamo.Labeled, len(models))
	params := make([]map[string]float64, len(models))
	for i, m := range models {
		systems[i] = dynamo.Labeled{Label: labels[i], System: m}
		params[i] = m.GetParams()
	}

	kStar := models[0].SteadyState()
	e.logger.Info("experiment started", "title", e.cfg.Title, "models", len(models), "horizon", e.cfg.Horizon, "steady_state", kStar)

	simCfg := dynamo.Config{Steps: e.cfg.Horizon, ValidateState: e.validate}
	results, err := dynamo.NewEnsemble(e.logger, factory).Run(ctx, systems, simCfg)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		for _, err := range r.Errors {
			e.logger.Warn("series stopped early", "series", r.Label, "error", err)
		}
	}

	return &Report{
		Title:       e.cfg.Title,
		Horizon:     e.cfg.Horizon,
		SteadyState: kStar,
		Params:      params,
		Results:     results,
		Figure:      viz.BuildFigure(e.cfg.Title, kStar, e.cfg.Horizon, results),
	}, nil
}

// labels uses configured labels, falling back to the initial capital, and
// suffixes duplicates so every series stays addressable.
func (e *Experiment) labels(models []*solow.Model) []string {
	labels := make([]string, len(models))
	seen := make(map[string]int)
	for i, m := range models {
		label := e.cfg.Models[i].Label
		if label == "" {
			label = viz.InitialStateLabel(m.Capital)
		}
		seen[label]++
		if n := seen[label]; n > 1 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		labels[i] = label
	}
	return labels
}

// StorageRun converts the report for storage.Store.Save.
func (r *Report) StorageRun(cfg *config.Config) storage.Run {
	return storage.Run{
		Title:       r.Title,
		Horizon:     r.Horizon,
		SteadyState: r.SteadyState,
		Params:      r.Params,
		Results:     r.Results,
		Config:      cfg,
	}
}
