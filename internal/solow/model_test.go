package solow

import (
	"errors"
	"math"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	m := New()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"n", m.PopulationGrowth, 0.001},
		{"s", m.SavingsRate, 0.25},
		{"delta", m.DepreciationRate, 0.2},
		{"alpha", m.LaborShare, 0.2},
		{"z", m.Productivity, 2.0},
		{"k", m.Capital, 1.0},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestNewOptions(t *testing.T) {
	m := New(WithCapital(8.0), WithSavingsRate(0.4), WithProductivity(1.5))

	if m.Capital != 8.0 {
		t.Errorf("expected capital 8.0, got %v", m.Capital)
	}
	if m.SavingsRate != 0.4 {
		t.Errorf("expected savings rate 0.4, got %v", m.SavingsRate)
	}
	if m.Productivity != 1.5 {
		t.Errorf("expected productivity 1.5, got %v", m.Productivity)
	}
	if m.LaborShare != DefaultLaborShare {
		t.Errorf("untouched labor share changed: %v", m.LaborShare)
	}
}

func TestSteadyStateDefault(t *testing.T) {
	m := New()
	expected := math.Pow((0.25*2.0)/(0.001+0.2), 1/(1-0.2))

	if got := m.SteadyState(); math.Abs(got-expected) > 1e-12 {
		t.Errorf("SteadyState() = %v, want %v", got, expected)
	}
}

func TestSteadyStateIndependentOfCapital(t *testing.T) {
	m := New()
	first := m.SteadyState()

	for i := 0; i < 3; i++ {
		if got := m.SteadyState(); got != first {
			t.Fatalf("SteadyState changed between calls: %v vs %v", got, first)
		}
	}

	m.Advance()
	if got := m.SteadyState(); got != first {
		t.Errorf("SteadyState depends on capital: %v vs %v", got, first)
	}
}

func TestNextCapitalIsPure(t *testing.T) {
	m := New()
	k := m.Capital

	next := m.NextCapital()
	expected := (0.25*2.0*math.Pow(1.0, 0.2) + (1-0.2)*1.0) / (1 - 0.001)

	if math.Abs(next-expected) > 1e-12 {
		t.Errorf("NextCapital() = %v, want %v", next, expected)
	}
	if m.Capital != k {
		t.Errorf("NextCapital mutated capital: %v", m.Capital)
	}
}

func TestAdvanceOnlyTouchesCapital(t *testing.T) {
	m := New(WithCapital(8.0))
	before := *m
	next := m.NextCapital()

	m.Advance()

	if m.Capital != next {
		t.Errorf("expected capital %v, got %v", next, m.Capital)
	}
	before.Capital = m.Capital
	if *m != before {
		t.Errorf("Advance changed parameters: %+v vs %+v", *m, before)
	}
}

// The closed form normalizes by n+delta while the recurrence divides by
// 1-n, so from k* capital still moves by a factor (1+n)/(1-n).
func TestSteadyStateDrift(t *testing.T) {
	m := New()
	m.Capital = m.SteadyState()

	ratio := m.NextCapital() / m.Capital
	expected := (1 + m.PopulationGrowth) / (1 - m.PopulationGrowth)
	if math.Abs(ratio-expected) > 1e-9 {
		t.Errorf("next/k* = %v, want %v", ratio, expected)
	}

	m = New(WithPopulationGrowth(0))
	m.Capital = m.SteadyState()
	if math.Abs(m.NextCapital()-m.Capital) > 1e-9 {
		t.Errorf("with n=0 k* should be fixed: k=%v next=%v", m.Capital, m.NextCapital())
	}
}

func TestConvergence(t *testing.T) {
	m := New()
	kStar := m.SteadyState()
	initialGap := math.Abs(1.0 - kStar)

	for i := 0; i < 200; i++ {
		m.Advance()
	}

	if gap := math.Abs(m.Capital - kStar); gap >= initialGap {
		t.Errorf("expected convergence: gap %v >= initial %v", gap, initialGap)
	}
}

func TestDegenerateParameters(t *testing.T) {
	tests := []struct {
		name string
		m    *Model
		fn   func(*Model) float64
	}{
		{"n=1 next capital", New(WithPopulationGrowth(1)), (*Model).NextCapital},
		{"alpha=1 steady state", New(WithLaborShare(1)), (*Model).SteadyState},
		{"n+delta=0 steady state", New(WithPopulationGrowth(0), WithDepreciationRate(0)), (*Model).SteadyState},
		{"negative capital", New(WithCapital(-1)), (*Model).NextCapital},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.m)
			if !math.IsNaN(got) && !math.IsInf(got, 0) {
				t.Errorf("expected non-finite result, got %v", got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("default model should validate, got %v", err)
	}

	bad := []*Model{
		New(WithPopulationGrowth(1)),
		New(WithLaborShare(1)),
		New(WithPopulationGrowth(-0.2)),
		New(WithCapital(-2)),
		New(WithPopulationGrowth(1.5)),
		New(WithPopulationGrowth(-0.5)),
		New(WithProductivity(-2)),
		New(WithSavingsRate(-0.1)),
	}
	for _, m := range bad {
		err := m.Validate()
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("expected ErrDegenerate for %+v, got %v", *m, err)
		}
	}
}

func TestValidateCatchesNonFiniteRegions(t *testing.T) {
	tests := []struct {
		name string
		m    *Model
	}{
		{"n+delta<0", New(WithPopulationGrowth(-0.5))},
		{"negative productivity", New(WithProductivity(-2))},
		{"n>1", New(WithPopulationGrowth(1.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kStar := tt.m.SteadyState()
			series := Generate(tt.m.Clone(), 3)
			finite := !math.IsNaN(kStar) && !math.IsInf(kStar, 0)
			for _, k := range series {
				if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
					finite = false
				}
			}
			if finite {
				t.Fatalf("expected a degenerate run, got k*=%v series=%v", kStar, series)
			}
			if err := tt.m.Validate(); !errors.Is(err, ErrDegenerate) {
				t.Errorf("Validate() = %v, want ErrDegenerate", err)
			}
		})
	}

	ok := New(WithPopulationGrowth(-0.1))
	if err := ok.Validate(); err != nil {
		t.Errorf("n=-0.1 with delta=0.2 should validate, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := New(WithCapital(3))
	c := m.Clone()
	c.Advance()

	if m.Capital != 3 {
		t.Errorf("clone shares state with original: %v", m.Capital)
	}
}
