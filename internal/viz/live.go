package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/growthsim/internal/config"
	"github.com/san-kum/growthsim/internal/dynamo"
	"github.com/san-kum/growthsim/internal/solow"
)

const savingsStep = 0.05

type TickMsg time.Time

// LiveModel advances every configured economy one period per tick.
type LiveModel struct {
	cfg      *config.Config
	models   []*solow.Model
	labels   []string
	history  [][]float64
	step     int
	running  bool
	savings  *float64
	theme    int
	interval time.Duration
}

func NewLiveModel(cfg *config.Config, interval time.Duration) LiveModel {
	if interval <= 0 {
		interval = time.Second / 20
	}
	m := LiveModel{cfg: cfg, running: true, interval: interval}
	m.reset()
	return m
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key presses and steps the economies.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.setSavings(m.currentSavings() + savingsStep)
		case "-":
			m.setSavings(m.currentSavings() - savingsStep)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
	case TickMsg:
		if m.running && m.step < m.cfg.Horizon {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) advance() {
	for i, mdl := range m.models {
		m.history[i] = append(m.history[i], mdl.Capital)
		mdl.Advance()
	}
	m.step++
}

func (m *LiveModel) reset() {
	m.models = make([]*solow.Model, len(m.cfg.Models))
	m.labels = make([]string, len(m.cfg.Models))
	m.history = make([][]float64, len(m.cfg.Models))

	for i, mc := range m.cfg.Models {
		opts := mc.Options()
		if m.savings != nil {
			opts = append(opts, solow.WithSavingsRate(*m.savings))
		}
		m.models[i] = solow.New(opts...)

		m.labels[i] = mc.Label
		if m.labels[i] == "" {
			m.labels[i] = InitialStateLabel(m.models[i].Capital)
		}
		m.history[i] = make([]float64, 0, max(m.cfg.Horizon, 0))
	}
	m.step = 0
}

func (m LiveModel) currentSavings() float64 {
	if m.savings != nil {
		return *m.savings
	}
	if len(m.models) > 0 {
		return m.models[0].SavingsRate
	}
	return solow.DefaultSavingsRate
}

// setSavings clamps s to [0, 1] and restarts every economy with it.
func (m *LiveModel) setSavings(s float64) {
	s = min(max(s, 0), 1)
	m.savings = &s
	m.reset()
}

func (m LiveModel) steadyState() float64 {
	if len(m.models) == 0 {
		return 0
	}
	return m.models[0].SteadyState()
}

func (m LiveModel) figure() *Figure {
	results := make([]*dynamo.Result, len(m.models))
	for i := range m.models {
		results[i] = &dynamo.Result{Label: m.labels[i], Series: m.history[i]}
	}
	return BuildFigure(m.cfg.Title, m.steadyState(), m.cfg.Horizon, results)
}

func (m LiveModel) View() string {
	theme := Themes[m.theme]

	status := "RUNNING"
	switch {
	case m.step >= m.cfg.Horizon:
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}

	chart := RenderASCII(m.figure(), RenderOptions{Height: 12, Theme: theme})

	label, value := theme.labelStyle(), theme.valueStyle()
	var s strings.Builder
	s.WriteString(theme.titleStyle().Render(status) + "\n\n")
	s.WriteString(label.Render("Period") + value.Render(fmt.Sprintf("%d/%d", m.step, m.cfg.Horizon)) + "\n")
	s.WriteString(label.Render("Savings") + value.Render(fmt.Sprintf("%.2f", m.currentSavings())) + "\n")
	s.WriteString(label.Render("Steady state") + value.Render(fmt.Sprintf("%.4f", m.steadyState())) + "\n")
	s.WriteString("\nCAPITAL\n")
	for i, mdl := range m.models {
		s.WriteString(label.Render(truncate(m.labels[i], 13)) + value.Render(fmt.Sprintf("%.4f", mdl.Capital)) + "\n")
	}
	s.WriteString(theme.mutedStyle().Render("\nSP:Pause R:Reset Q:Quit\n+/-:Savings T:Theme"))

	stats := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted).
		Padding(1, 2).
		Render(s.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Padding(1, 2).Render(chart), stats)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
