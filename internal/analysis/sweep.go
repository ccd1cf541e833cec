package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/growthsim/internal/solow"
)

// SweepPoint records the outcome for one parameter value.
type SweepPoint struct {
	Param       float64
	SteadyState float64
	Terminal    float64
}

var sweepOptions = map[string]func(float64) solow.Option{
	"n":     solow.WithPopulationGrowth,
	"s":     solow.WithSavingsRate,
	"delta": solow.WithDepreciationRate,
	"alpha": solow.WithLaborShare,
	"z":     solow.WithProductivity,
	"k":     solow.WithCapital,
}

// SweepParams lists the parameter names accepted by Sweep.
func SweepParams() []string {
	return []string{"n", "s", "delta", "alpha", "z", "k"}
}

// Sweep varies one parameter of base over [from, to] and, for each value,
// records the closed-form steady state and the capital reached after
// horizon periods. Every value gets a fresh model; base is not modified.
func Sweep(base *solow.Model, param string, from, to float64, steps, horizon int) ([]SweepPoint, error) {
	opt, ok := sweepOptions[param]
	if !ok {
		return nil, fmt.Errorf("unknown parameter: %s (available: %v)", param, SweepParams())
	}
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 values, got %d", steps)
	}

	step := (to - from) / float64(steps-1)
	points := make([]SweepPoint, 0, steps)

	for i := 0; i < steps; i++ {
		value := from + float64(i)*step

		m := base.Clone()
		opt(value)(m)

		kStar := m.SteadyState()
		for j := 0; j < horizon; j++ {
			m.Advance()
		}

		points = append(points, SweepPoint{
			Param:       value,
			SteadyState: kStar,
			Terminal:    m.Capital,
		})
	}

	return points, nil
}

// SweepToASCII draws steady states as '*' and terminal capital as 'o'
// against the swept parameter. Non-finite values are left out.
func SweepToASCII(points []SweepPoint, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	found := false
	for _, p := range points {
		for _, v := range []float64{p.SteadyState, p.Terminal} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !found {
				minVal, maxVal = v, v
				found = true
				continue
			}
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	if !found {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	plot := func(col int, v float64, r rune) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
		if row >= 0 && row < height {
			canvas[row][col] = r
		}
	}

	for i, p := range points {
		col := i * width / len(points)
		if col >= width {
			col = width - 1
		}
		plot(col, p.Terminal, 'o')
		plot(col, p.SteadyState, '*')
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
