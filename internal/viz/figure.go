package viz

import (
	"strconv"
	"strings"

	"github.com/san-kum/growthsim/internal/dynamo"
)

const (
	DefaultXLabel = "Time"
	DefaultYLabel = "Capital"
	SteadyLabel   = "steady state"
)

type Line struct {
	Label  string
	Values []float64
	Dashed bool
}

type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
}

// BuildFigure lays out a run: k* repeated horizon times as a dashed line,
// then one line per result in order.
func BuildFigure(title string, steadyState float64, horizon int, results []*dynamo.Result) *Figure {
	fig := &Figure{
		Title:  title,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Lines:  make([]Line, 0, len(results)+1),
	}

	steady := make([]float64, max(horizon, 0))
	for i := range steady {
		steady[i] = steadyState
	}
	fig.Lines = append(fig.Lines, Line{Label: SteadyLabel, Values: steady, Dashed: true})

	for _, r := range results {
		fig.Lines = append(fig.Lines, Line{Label: r.Label, Values: r.Series})
	}

	return fig
}

// InitialStateLabel names a series by its starting capital, e.g.
// "Capital from initial state 8.0".
func InitialStateLabel(k float64) string {
	return "Capital from initial state " + FormatCapital(k)
}

// FormatCapital prints k in shortest form, keeping a trailing ".0" on
// whole numbers.
func FormatCapital(k float64) string {
	s := strconv.FormatFloat(k, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}
