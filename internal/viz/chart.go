package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

type RenderOptions struct {
	Width  int
	Height int
	Theme  Theme
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 80, Height: 15, Theme: ThemeClassic}
}

// RenderASCII draws fig as a terminal chart with a legend. Non-finite
// values are not plotted; a figure with nothing finite renders a notice.
func RenderASCII(fig *Figure, opts RenderOptions) string {
	if fig == nil || len(fig.Lines) == 0 {
		return ""
	}
	theme := opts.Theme
	if len(theme.Palette) == 0 {
		theme = ThemeClassic
	}

	data := make([][]float64, 0, len(fig.Lines))
	lines := make([]Line, 0, len(fig.Lines))
	legends := make([]string, 0, len(fig.Lines))
	for _, l := range fig.Lines {
		clean, ok := finiteOnly(l.Values)
		if !ok {
			continue
		}
		data = append(data, clean)
		lines = append(lines, l)
		legend := l.Label
		if l.Dashed {
			legend += " (- -)"
		}
		legends = append(legends, legend)
	}

	var sb strings.Builder
	if fig.Title != "" {
		sb.WriteString(theme.titleStyle().Render(fig.Title))
		sb.WriteString("\n\n")
	}

	if len(data) == 0 {
		sb.WriteString(theme.mutedStyle().Render("no finite values to plot"))
		sb.WriteString("\n")
		return sb.String()
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(theme.colors(lines)...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", fig.YLabel, fig.XLabel)),
	)

	sb.WriteString(theme.labelStyle().Render(fig.YLabel))
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	sb.WriteString(theme.labelStyle().Render(fig.XLabel))
	sb.WriteString("\n")
	return sb.String()
}

// finiteOnly replaces Inf with NaN, which asciigraph skips. It reports
// false when nothing finite is left.
func finiteOnly(values []float64) ([]float64, bool) {
	out := make([]float64, len(values))
	found := false
	for i, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
		found = true
	}
	return out, found
}
