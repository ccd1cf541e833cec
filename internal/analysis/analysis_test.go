package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/growthsim/internal/solow"
)

func TestFixedPointIsFixed(t *testing.T) {
	m := solow.New()
	m.Capital = FixedPoint(m)

	if math.Abs(m.NextCapital()-m.Capital) > 1e-9 {
		t.Errorf("k=%v maps to %v", m.Capital, m.NextCapital())
	}
}

func TestFixedPointMatchesSteadyStateWithoutGrowth(t *testing.T) {
	m := solow.New(solow.WithPopulationGrowth(0))
	if math.Abs(FixedPoint(m)-m.SteadyState()) > 1e-12 {
		t.Errorf("FixedPoint %v != SteadyState %v", FixedPoint(m), m.SteadyState())
	}
}

func TestLocalSlope(t *testing.T) {
	m := solow.New()
	slope := LocalSlope(m)

	if slope <= 0 || slope >= 1 {
		t.Fatalf("expected contraction slope in (0,1), got %v", slope)
	}

	k := FixedPoint(m)
	h := 1e-6
	up := m.Clone()
	up.Capital = k + h
	down := m.Clone()
	down.Capital = k - h
	numeric := (up.NextCapital() - down.NextCapital()) / (2 * h)

	if math.Abs(numeric-slope) > 1e-6 {
		t.Errorf("analytic slope %v, numeric %v", slope, numeric)
	}
}

func TestConvergenceHalfLife(t *testing.T) {
	m := solow.New()
	hl := ConvergenceHalfLife(m)
	expected := math.Log(0.5) / math.Log(LocalSlope(m))

	if math.Abs(hl-expected) > 1e-12 {
		t.Errorf("expected %v, got %v", expected, hl)
	}

	// delta < n leaves no positive fixed point.
	explosive := solow.New(solow.WithDepreciationRate(0), solow.WithPopulationGrowth(0.05))
	if !math.IsInf(ConvergenceHalfLife(explosive), 1) {
		t.Errorf("expected +Inf half life, got %v", ConvergenceHalfLife(explosive))
	}
}

func TestSeparationRate(t *testing.T) {
	m := solow.New()
	m.Capital = FixedPoint(m)

	rate := SeparationRate(m, 100, 1e-7)
	if expected := math.Log(LocalSlope(m)); math.Abs(rate-expected) > 1e-3 {
		t.Errorf("empirical rate %v, log of analytic slope %v", rate, expected)
	}
	if rate >= 0 {
		t.Errorf("expected converging trajectories to give a negative rate, got %v", rate)
	}
	if r := SeparationRate(solow.New(), 100, 1e-6); r >= 0 {
		t.Errorf("default model should converge, got rate %v", r)
	}
	if m.Capital != FixedPoint(m) {
		t.Error("SeparationRate advanced the model")
	}
	if SeparationRate(m, 0, 1e-7) != 0 {
		t.Error("expected 0 for zero steps")
	}
}

func TestSweep(t *testing.T) {
	base := solow.New()
	points, err := Sweep(base, "s", 0.1, 0.5, 5, 300)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	if points[0].Param != 0.1 || math.Abs(points[4].Param-0.5) > 1e-12 {
		t.Errorf("unexpected param range %v..%v", points[0].Param, points[4].Param)
	}
	for i := 1; i < len(points); i++ {
		if points[i].SteadyState <= points[i-1].SteadyState {
			t.Errorf("steady state should rise with savings: %v", points)
		}
		if points[i].Terminal <= points[i-1].Terminal {
			t.Errorf("terminal capital should rise with savings: %v", points)
		}
	}
	if base.SavingsRate != solow.DefaultSavingsRate || base.Capital != solow.DefaultCapital {
		t.Error("sweep modified the base model")
	}
}

func TestSweepUnknownParam(t *testing.T) {
	for _, n := range []int{1, 0, -4} {
		if _, err := Sweep(solow.New(), "s", 0.1, 0.5, n, 10); err == nil {
			t.Errorf("expected error for %d sweep values", n)
		}
	}
	if _, err := Sweep(solow.New(), "beta", 0, 1, 3, 10); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestSweepToASCII(t *testing.T) {
	points := []SweepPoint{
		{Param: 0, SteadyState: 1, Terminal: 0.5},
		{Param: 1, SteadyState: 2, Terminal: math.NaN()},
	}
	out := SweepToASCII(points, 10, 5)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	if strings.Count(out, "*") != 2 || strings.Count(out, "o") != 1 {
		t.Errorf("unexpected plot:\n%s", out)
	}
	if SweepToASCII(nil, 10, 5) != "" {
		t.Error("expected empty output for no points")
	}
}

func TestPhaseDiagram(t *testing.T) {
	m := solow.New()
	pd := GeneratePhaseDiagram(m, 10)

	if len(pd.Points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(pd.Points))
	}
	if pd.Points[0].X != 1.0 || pd.Points[1].X != pd.Points[0].Y {
		t.Errorf("points not chained: %v", pd.Points[:2])
	}
	if m.Capital != 1.0 {
		t.Error("phase diagram advanced the model")
	}

	out := PhaseDiagramToASCII(pd, 40, 12)
	if !strings.Contains(out, "•") || !strings.Contains(out, "·") {
		t.Errorf("expected points and diagonal:\n%s", out)
	}
}
