package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

type Theme struct {
	Name    string
	Title   lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Muted   lipgloss.Color
	Steady  asciigraph.AnsiColor
	Palette []asciigraph.AnsiColor
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Title:   lipgloss.Color("86"),
		Label:   lipgloss.Color("245"),
		Value:   lipgloss.Color("252"),
		Muted:   lipgloss.Color("240"),
		Steady:  asciigraph.Gray,
		Palette: []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Orange, asciigraph.Green, asciigraph.Red, asciigraph.Purple},
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Title:   lipgloss.Color("#00ff00"),
		Label:   lipgloss.Color("#00cc00"),
		Value:   lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#005500"),
		Steady:  asciigraph.DarkGreen,
		Palette: []asciigraph.AnsiColor{asciigraph.Lime, asciigraph.Yellow, asciigraph.Aqua, asciigraph.White},
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		Label:   lipgloss.Color("#888888"),
		Value:   lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#555555"),
		Steady:  asciigraph.DarkGray,
		Palette: []asciigraph.AnsiColor{asciigraph.Default},
	}

	Themes = []Theme{ThemeClassic, ThemeRetroGreen, ThemeMinimal}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Label).Width(14)
}

func (t Theme) valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Value)
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// colors assigns the steady color to dashed lines and cycles the palette
// over the rest.
func (t Theme) colors(lines []Line) []asciigraph.AnsiColor {
	out := make([]asciigraph.AnsiColor, len(lines))
	next := 0
	for i, l := range lines {
		if l.Dashed {
			out[i] = t.Steady
			continue
		}
		out[i] = t.Palette[next%len(t.Palette)]
		next++
	}
	return out
}
