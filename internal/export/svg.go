package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/growthsim/internal/viz"
)

var seriesColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b"}

const (
	marginLeft   = 70.0
	marginRight  = 20.0
	marginTop    = 50.0
	marginBottom = 60.0
)

// FigureToSVG renders fig as a standalone SVG document: a dashed black
// line for dashed lines, a marked colored line for every other one, the
// title, both axis labels and a legend. Non-finite points break the line
// and get no marker.
func FigureToSVG(fig *viz.Figure, width, height int) string {
	if fig == nil || len(fig.Lines) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minY, maxY, maxLen, ok := bounds(fig)
	if !ok {
		return ""
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom
	spanX := float64(maxLen - 1)
	if spanX <= 0 {
		spanX = 1
	}

	px := func(i int) float64 { return marginLeft + float64(i)/spanX*plotW }
	py := func(v float64) float64 { return marginTop + plotH - (v-minY)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="16" text-anchor="middle">%s</text>
`, float64(width)/2, marginTop/2, html.EscapeString(fig.Title)))

	// Axes
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#333333" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`, marginLeft, marginTop, marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH))

	for i := 0; i <= 4; i++ {
		v := minY + float64(i)/4*rangeY
		y := py(v)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" text-anchor="end">%.2f</text>
`, marginLeft-6, y+4, v))
	}
	for i := 0; i <= 4; i++ {
		step := int(math.Round(float64(i) / 4 * spanX))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" text-anchor="middle">%d</text>
`, px(step), marginTop+plotH+16, step))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="13" text-anchor="middle">%s</text>
`, marginLeft+plotW/2, float64(height)-15, html.EscapeString(fig.XLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="13" text-anchor="middle" transform="rotate(-90 %.1f %.1f)">%s</text>
`, 18.0, marginTop+plotH/2, 18.0, marginTop+plotH/2, html.EscapeString(fig.YLabel)))

	next := 0
	for li, line := range fig.Lines {
		color := "#000000"
		if !line.Dashed {
			color = seriesColors[next%len(seriesColors)]
			next++
		}

		d := pathData(line.Values, px, py)
		if d != "" {
			dash := ""
			if line.Dashed {
				dash = ` stroke-dasharray="6,4"`
			}
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5"%s d="%s"/>
`, color, dash, d))
		}

		if !line.Dashed {
			sb.WriteString(fmt.Sprintf(`<g fill="%s" fill-opacity="0.8">
`, color))
			for i, v := range line.Values {
				if !finite(v) {
					continue
				}
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3"/>
`, px(i), py(v)))
			}
			sb.WriteString("</g>\n")
		}

		ly := marginTop + 10 + float64(li)*16
		lx := marginLeft + plotW - 220
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>
<text x="%.1f" y="%.1f" font-size="11">%s</text>
`, lx, ly, lx+20, ly, color, lx+26, ly+4, html.EscapeString(line.Label)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func pathData(values []float64, px func(int) float64, py func(float64) float64) string {
	var sb strings.Builder
	pen := false
	for i, v := range values {
		if !finite(v) {
			pen = false
			continue
		}
		if pen {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(i), py(v)))
		} else {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", px(i), py(v)))
			pen = true
		}
	}
	return sb.String()
}

func bounds(fig *viz.Figure) (minY, maxY float64, maxLen int, ok bool) {
	for _, l := range fig.Lines {
		maxLen = max(maxLen, len(l.Values))
		for _, v := range l.Values {
			if !finite(v) {
				continue
			}
			if !ok {
				minY, maxY, ok = v, v, true
				continue
			}
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	return minY, maxY, maxLen, ok
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
