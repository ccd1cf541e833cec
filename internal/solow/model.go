package solow

import "math"

const (
	DefaultPopulationGrowth = 0.001
	DefaultSavingsRate      = 0.25
	DefaultDepreciationRate = 0.2
	DefaultLaborShare       = 0.2
	DefaultProductivity     = 2.0
	DefaultCapital          = 1.0
)

// Model is one parameterization of the Solow recurrence. Only Capital
// changes after construction; Advance is the sole writer.
type Model struct {
	PopulationGrowth float64
	SavingsRate      float64
	DepreciationRate float64
	LaborShare       float64
	Productivity     float64
	Capital          float64
}

type Option func(*Model)

func WithPopulationGrowth(n float64) Option { return func(m *Model) { m.PopulationGrowth = n } }
func WithSavingsRate(s float64) Option      { return func(m *Model) { m.SavingsRate = s } }
func WithDepreciationRate(d float64) Option { return func(m *Model) { m.DepreciationRate = d } }
func WithLaborShare(a float64) Option       { return func(m *Model) { m.LaborShare = a } }
func WithProductivity(z float64) Option     { return func(m *Model) { m.Productivity = z } }
func WithCapital(k float64) Option          { return func(m *Model) { m.Capital = k } }

// New returns a model with the default parameters, overridden by opts.
func New(opts ...Option) *Model {
	m := &Model{
		PopulationGrowth: DefaultPopulationGrowth,
		SavingsRate:      DefaultSavingsRate,
		DepreciationRate: DefaultDepreciationRate,
		LaborShare:       DefaultLaborShare,
		Productivity:     DefaultProductivity,
		Capital:          DefaultCapital,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NextCapital returns next period's capital without changing the model.
func (m *Model) NextCapital() float64 {
	k := m.Capital
	saved := m.SavingsRate * m.Productivity * math.Pow(k, m.LaborShare)
	return (saved + (1-m.DepreciationRate)*k) / (1 - m.PopulationGrowth)
}

// Advance moves the model forward one period.
func (m *Model) Advance() {
	m.Capital = m.NextCapital()
}

// SteadyState returns the fixed point k* of the recurrence. It depends on
// the parameters only.
func (m *Model) SteadyState() float64 {
	base := m.SavingsRate * m.Productivity / (m.PopulationGrowth + m.DepreciationRate)
	return math.Pow(base, 1/(1-m.LaborShare))
}

// Current returns the capital stock.
func (m *Model) Current() float64 { return m.Capital }

// Clone returns an independent copy, current capital included.
func (m *Model) Clone() *Model {
	c := *m
	return &c
}

func (m *Model) GetParams() map[string]float64 {
	return map[string]float64{
		"n":     m.PopulationGrowth,
		"s":     m.SavingsRate,
		"delta": m.DepreciationRate,
		"alpha": m.LaborShare,
		"z":     m.Productivity,
		"k":     m.Capital,
	}
}
