package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/growthsim/internal/dynamo"
	"github.com/san-kum/growthsim/internal/viz"
)

func TestFigureToSVG(t *testing.T) {
	results := []*dynamo.Result{
		{Label: "Capital from initial state 1.0", Series: []float64{1, 1.3, 1.6}},
		{Label: "Capital from initial state 8.0", Series: []float64{8, 7, 6.2}},
	}
	fig := viz.BuildFigure("Solow <Growth>", 3.1, 3, results)

	svg := FigureToSVG(fig, 900, 600)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if strings.Count(svg, `stroke-dasharray="6,4"`) != 1 {
		t.Error("expected exactly one dashed line")
	}
	if got := strings.Count(svg, "<circle"); got != 6 {
		t.Errorf("expected 6 markers, got %d", got)
	}
	for _, want := range []string{"Solow &lt;Growth&gt;", ">Time<", ">Capital<", "steady state", "initial state 8.0"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestFigureToSVGNonFinite(t *testing.T) {
	fig := &viz.Figure{Lines: []viz.Line{{Label: "x", Values: []float64{1, math.Inf(1), 2, 3}}}}
	svg := FigureToSVG(fig, 400, 300)

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("expected 3 markers, got %d", got)
	}
	if !strings.Contains(svg, " M") {
		t.Error("expected the path to restart after Inf")
	}

	empty := &viz.Figure{Lines: []viz.Line{{Values: []float64{math.NaN()}}}}
	if FigureToSVG(empty, 400, 300) != "" {
		t.Error("expected empty output with nothing finite")
	}
}

func TestPathData(t *testing.T) {
	px := func(i int) float64 { return float64(i) }
	py := func(v float64) float64 { return v }

	got := pathData([]float64{1, 2, math.NaN(), 4}, px, py)
	want := "M0.0,1.0 L1.0,2.0 M3.0,4.0"
	if got != want {
		t.Errorf("pathData = %q, want %q", got, want)
	}
}
