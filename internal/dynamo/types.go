package dynamo

import "math"

// System is a scalar recurrence advanced one period at a time. Ensembles
// detect a system shared between runs only when its type is comparable,
// such as a pointer.
type System interface {
	Current() float64
	Advance()
	SteadyState() float64
}

type Metric interface {
	Name() string
	Observe(k float64, step int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(k float64, step int)
}

// Labeled pairs a system with the name it is reported under.
type Labeled struct {
	Label  string
	System System
}

type Config struct {
	Steps int
	// ValidateState stops a run at the first non-finite value. Off by
	// default: degenerate parameters normally propagate as NaN/Inf.
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Steps:         50,
		ValidateState: false,
	}
}

type Result struct {
	Label       string
	Series      []float64
	SteadyState float64
	Metrics     map[string]float64
	StepsTaken  int
	Errors      []error
}

// Final returns the last recorded value, observed before that step's
// Advance, or NaN for an empty series. The system itself is one step
// further along.
func (r *Result) Final() float64 {
	if len(r.Series) == 0 {
		return math.NaN()
	}
	return r.Series[len(r.Series)-1]
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
