package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/growthsim/internal/dynamo"
	"github.com/san-kum/growthsim/internal/solow"
)

func feed(m dynamo.Metric, values ...float64) {
	for i, v := range values {
		m.Observe(v, i)
	}
}

func TestGap(t *testing.T) {
	g := NewGap(3)
	if g.Value() != 0 {
		t.Errorf("expected 0 before observations, got %v", g.Value())
	}

	feed(g, 1, 2, 3.5)
	if g.Value() != 0.5 {
		t.Errorf("expected gap 0.5, got %v", g.Value())
	}

	g.Reset()
	if g.Value() != 0 {
		t.Errorf("expected 0 after reset, got %v", g.Value())
	}
}

func TestHalfLife(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"halves at step 2", []float64{0, 1, 2.5, 3}, 2},
		{"never halves", []float64{0, 0.5, 1}, -1},
		{"starts at k*", []float64{4, 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHalfLife(4)
			feed(h, tt.values...)
			if got := h.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonotone(t *testing.T) {
	m := NewMonotone(0)
	if m.Value() != 1 {
		t.Errorf("expected 1 with no samples, got %v", m.Value())
	}

	feed(m, 4, 3, 5, 1, 1)
	if got := m.Value(); got != 0.75 {
		t.Errorf("expected 0.75, got %v", got)
	}
}

func TestGrowthRate(t *testing.T) {
	g := NewGrowthRate()
	feed(g, 1, math.E, math.E*math.E)

	if got := g.Value(); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected log growth 1, got %v", got)
	}

	g.Reset()
	feed(g, -1, 2)
	if g.Value() != 0 {
		t.Errorf("expected non-positive steps to be skipped, got %v", g.Value())
	}
}

func TestFinite(t *testing.T) {
	f := NewFinite()
	if f.Value() != 1 {
		t.Errorf("expected 1 with no samples, got %v", f.Value())
	}

	feed(f, 1, math.Inf(1), math.NaN(), 2)
	if f.Value() != 0.5 {
		t.Errorf("expected 0.5, got %v", f.Value())
	}
}

func TestDefaultOnSolow(t *testing.T) {
	// With n=0 the closed-form k* is the exact fixed point.
	m := solow.New(solow.WithPopulationGrowth(0))
	ms := Default(m)

	if len(ms) != 5 {
		t.Fatalf("expected 5 metrics, got %d", len(ms))
	}

	for i, k := range solow.Generate(m, 50) {
		for _, metric := range ms {
			metric.Observe(k, i)
		}
	}

	values := make(map[string]float64)
	for _, metric := range ms {
		values[metric.Name()] = metric.Value()
	}

	if values["half_life"] <= 0 {
		t.Errorf("expected positive half life, got %v", values["half_life"])
	}
	if values["monotone"] != 1 {
		t.Errorf("expected monotone approach from k=1, got %v", values["monotone"])
	}
	if values["growth_rate"] <= 0 {
		t.Errorf("expected positive growth from below k*, got %v", values["growth_rate"])
	}
	if values["finite"] != 1 {
		t.Errorf("expected all finite, got %v", values["finite"])
	}
}
