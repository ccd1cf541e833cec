package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/growthsim/internal/solow"
)

type Point struct{ X, Y float64 }

// PhaseDiagram pairs each observed capital with its successor.
type PhaseDiagram struct {
	Points []Point
}

// GeneratePhaseDiagram advances a copy of m for steps periods and records
// (k(t), k(t+1)).
func GeneratePhaseDiagram(m *solow.Model, steps int) *PhaseDiagram {
	pd := &PhaseDiagram{Points: make([]Point, 0, max(steps, 0))}

	c := m.Clone()
	for i := 0; i < steps; i++ {
		k := c.Capital
		c.Advance()
		pd.Points = append(pd.Points, Point{X: k, Y: c.Capital})
	}

	return pd
}

// PhaseDiagramToASCII plots the points as '•' over the 45-degree line.
// Points on the line are fixed points of the recurrence.
func PhaseDiagramToASCII(pd *PhaseDiagram, width, height int) string {
	if pd == nil || len(pd.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pd.Points {
		for _, v := range []float64{p.X, p.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return ""
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	hi += span * 0.1
	span = hi - lo

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	toCell := func(x, y float64) (int, int, bool) {
		col := int((x - lo) / span * float64(width-1))
		row := height - 1 - int((y-lo)/span*float64(height-1))
		return col, row, col >= 0 && col < width && row >= 0 && row < height
	}

	for col := 0; col < width; col++ {
		v := lo + float64(col)/float64(width-1)*span
		if c, r, ok := toCell(v, v); ok {
			canvas[r][c] = '·'
		}
	}

	for _, p := range pd.Points {
		if c, r, ok := toCell(p.X, p.Y); ok {
			canvas[r][c] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
