package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/growthsim/internal/analysis"
	"github.com/san-kum/growthsim/internal/config"
	"github.com/san-kum/growthsim/internal/experiment"
	"github.com/san-kum/growthsim/internal/export"
	"github.com/san-kum/growthsim/internal/logs"
	"github.com/san-kum/growthsim/internal/solow"
	"github.com/san-kum/growthsim/internal/storage"
	"github.com/san-kum/growthsim/internal/viz"
)

var (
	dataDir  string
	logLevel string
	logFile  string
	logger   *slog.Logger
	closeLog func() error

	configFile string
	preset     string
	steps      int
	popGrowth  float64
	savings    float64
	deprec     float64
	alpha      float64
	prod       float64
	capitals   []float64
	capitals0  float64 // single-model commands
	strict     bool
	validate   bool
	save       bool
	svgFile    string
	metricList []string
	theme      string
	width      int
	height     int

	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	frameRate   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "growthsim",
		Short: "solow growth model lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, closer, err := logs.New(logs.Options{Level: logLevel, File: logFile})
			if err != nil {
				return err
			}
			logger, closeLog = l, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(config.DefaultConfig())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".growthsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "classic", "chart theme")
	rootCmd.PersistentFlags().IntVar(&width, "width", 80, "chart width")
	rootCmd.PersistentFlags().IntVar(&height, "height", 15, "chart height")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one or more economies",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultHorizon, "number of periods")
	runCmd.Flags().Float64SliceVar(&capitals, "k", nil, "initial capital, one series per value")
	runCmd.Flags().BoolVar(&strict, "strict", false, "reject degenerate parameters")
	runCmd.Flags().BoolVar(&validate, "validate", false, "stop a series at its first non-finite value")
	runCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "also write the chart as SVG")
	runCmd.Flags().StringSliceVar(&metricList, "metrics", nil, "metrics to compute (default: all)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "write the chart as SVG instead")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-18s %s\n", name, config.GetPreset(name).Title)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one parameter and compare steady state with simulated capital",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.05, "first parameter value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.5, "last parameter value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 20, "number of parameter values")
	sweepCmd.Flags().IntVar(&steps, "steps", config.DefaultHorizon, "periods simulated per value")
	sweepCmd.Flags().Float64Var(&capitals0, "k", solow.DefaultCapital, "initial capital")

	steadyCmd := &cobra.Command{
		Use:   "steady",
		Short: "print steady state and convergence speed",
		Args:  cobra.NoArgs,
		RunE:  printSteady,
	}
	addModelFlags(steadyCmd)

	phaseCmd := &cobra.Command{
		Use:   "phase",
		Short: "plot k(t+1) against k(t)",
		Args:  cobra.NoArgs,
		RunE:  phasePlot,
	}
	addModelFlags(phaseCmd)
	phaseCmd.Flags().IntVar(&steps, "steps", config.DefaultHorizon, "number of periods")
	phaseCmd.Flags().Float64Var(&capitals0, "k", solow.DefaultCapital, "initial capital")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step economies live in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "periods per second")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, sweepCmd, steadyCmd, phaseCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&popGrowth, "n", solow.DefaultPopulationGrowth, "population growth rate")
	cmd.Flags().Float64Var(&savings, "s", solow.DefaultSavingsRate, "savings rate")
	cmd.Flags().Float64Var(&deprec, "delta", solow.DefaultDepreciationRate, "depreciation rate")
	cmd.Flags().Float64Var(&alpha, "alpha", solow.DefaultLaborShare, "capital exponent")
	cmd.Flags().Float64Var(&prod, "z", solow.DefaultProductivity, "total factor productivity")
}

// modelOverrides collects the model flags set on the command line.
func modelOverrides(cmd *cobra.Command) config.ModelConfig {
	var mc config.ModelConfig
	set := func(name string, dst **float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = config.Float(v)
		}
	}
	set("n", &mc.N, popGrowth)
	set("s", &mc.S, savings)
	set("delta", &mc.Delta, deprec)
	set("alpha", &mc.Alpha, alpha)
	set("z", &mc.Z, prod)
	return mc
}

func singleModel(cmd *cobra.Command) *solow.Model {
	mc := modelOverrides(cmd)
	if cmd.Flags().Lookup("k") != nil {
		mc.K = config.Float(capitals0)
	}
	return mc.Build()
}

func merge(dst *config.ModelConfig, src config.ModelConfig) {
	for _, f := range []struct{ dst, src **float64 }{
		{&dst.N, &src.N}, {&dst.S, &src.S}, {&dst.Delta, &src.Delta},
		{&dst.Alpha, &src.Alpha}, {&dst.Z, &src.Z},
	} {
		if *f.src != nil {
			*f.dst = *f.src
		}
	}
}

// loadConfig resolves preset, then config file, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Lookup("steps") != nil && cmd.Flags().Changed("steps") {
		cfg.Horizon = steps
	}

	if cmd.Flags().Lookup("k") != nil && cmd.Flags().Changed("k") {
		models := make([]config.ModelConfig, len(capitals))
		for i, k := range capitals {
			models[i] = config.ModelConfig{K: config.Float(k)}
			if len(cfg.Models) > 0 {
				models[i] = cfg.Models[0]
				models[i].Label = ""
				models[i].K = config.Float(k)
			}
		}
		cfg.Models = models
	}

	if cmd.Flags().Lookup("s") != nil {
		overrides := modelOverrides(cmd)
		for i := range cfg.Models {
			merge(&cfg.Models[i], overrides)
		}
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runConfig(cfg)
}

func runConfig(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exp := experiment.New(cfg,
		experiment.WithLogger(logger),
		experiment.WithMetrics(metricList...),
		experiment.WithValidation(validate),
		experiment.WithStrict(strict),
	)

	start := time.Now()
	report, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("run finished", "elapsed", time.Since(start))

	fmt.Println(viz.RenderASCII(report.Figure, renderOptions()))
	fmt.Printf("\nsteady state: %.6f\n", report.SteadyState)
	for _, r := range report.Results {
		fmt.Printf("\n%s\n", r.Label)
		fmt.Printf("  last observed capital: %.6f\n", r.Final())
		for _, name := range sortedKeys(r.Metrics) {
			fmt.Printf("  %s: %.6f\n", name, r.Metrics[name])
		}
		for _, e := range r.Errors {
			fmt.Printf("  stopped: %v\n", e)
		}
	}

	if svgFile != "" {
		svg := export.FigureToSVG(report.Figure, 800, 500)
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nsvg written to %s\n", svgFile)
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(report.StorageRun(cfg))
		if err != nil {
			return err
		}
		logger.Info("run saved", "id", runID, "dir", dataDir)
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func renderOptions() viz.RenderOptions {
	opts := viz.DefaultRenderOptions()
	opts.Width = width
	opts.Height = height
	opts.Theme = viz.GetTheme(theme)
	return opts
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTIME\tHORIZON\tSERIES\tSTEADY")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4f\n",
			run.ID,
			run.Title,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Horizon,
			len(run.Series),
			float64(run.SteadyState),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	data, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(data.Steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fig := &viz.Figure{
		Title:  meta.Title,
		XLabel: viz.DefaultXLabel,
		YLabel: viz.DefaultYLabel,
		Lines:  []viz.Line{{Label: viz.SteadyLabel, Values: data.SteadyState, Dashed: true}},
	}
	for i, label := range data.Labels {
		fig.Lines = append(fig.Lines, viz.Line{Label: label, Values: data.Series[i]})
	}

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.FigureToSVG(fig, 800, 500)), 0644); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgFile)
		return nil
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("periods: %d\n\n", len(data.Steps))
	fmt.Println(viz.RenderASCII(fig, renderOptions()))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	data, err := storage.New(dataDir).LoadSeries(args[0])
	if err != nil {
		return err
	}

	if len(data.Steps) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)

	header := append([]string{"step", "steady_state"}, data.Labels...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, step := range data.Steps {
		row := []string{strconv.Itoa(step), strconv.FormatFloat(data.SteadyState[i], 'f', 6, 64)}
		for _, series := range data.Series {
			if i < len(series) {
				row = append(row, strconv.FormatFloat(series[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func runSweep(cmd *cobra.Command, args []string) error {
	param := args[0]
	base := singleModel(cmd)

	points, err := analysis.Sweep(base, param, sweepFrom, sweepTo, sweepPoints, steps)
	if err != nil {
		return err
	}

	steady := make([]float64, 0, len(points))
	terminal := make([]float64, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.SteadyState) || math.IsInf(p.SteadyState, 0) ||
			math.IsNaN(p.Terminal) || math.IsInf(p.Terminal, 0) {
			logger.Warn("non-finite sweep point", "param", param, "value", p.Param)
			continue
		}
		steady = append(steady, p.SteadyState)
		terminal = append(terminal, p.Terminal)
	}

	fmt.Printf("sweep %s from %g to %g (%d values, %d periods)\n\n", param, sweepFrom, sweepTo, len(points), steps)
	if len(steady) > 0 {
		graph := asciigraph.PlotMany([][]float64{steady, terminal},
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange),
			asciigraph.SeriesLegends("steady state", fmt.Sprintf("capital after %d periods", steps)),
			asciigraph.Caption(fmt.Sprintf("capital vs %s", param)),
		)
		fmt.Println(graph)
	} else {
		fmt.Println(analysis.SweepToASCII(points, width, height))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\n%s\tSTEADY\tTERMINAL\n", param)
	for _, p := range points {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.6f\n", p.Param, p.SteadyState, p.Terminal)
	}
	return w.Flush()
}

func printSteady(cmd *cobra.Command, args []string) error {
	m := singleModel(cmd)

	kStar := m.SteadyState()
	fmt.Printf("steady state k*:     %.6f\n", kStar)
	fmt.Printf("fixed point:         %.6f\n", analysis.FixedPoint(m))
	fmt.Printf("local slope:         %.6f\n", analysis.LocalSlope(m))
	fmt.Printf("half-life (periods): %.3f\n", analysis.ConvergenceHalfLife(m))

	if err := m.Validate(); err != nil {
		fmt.Printf("\nwarning: %v\n", err)
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	m := singleModel(cmd)
	pd := analysis.GeneratePhaseDiagram(m, steps)

	fmt.Printf("phase diagram: k(t+1) vs k(t), %d periods from k=%g\n\n", steps, m.Capital)
	fmt.Println(analysis.PhaseDiagramToASCII(pd, 70, 20))
	fmt.Printf("\nseparation rate: %.6f\n", analysis.SeparationRate(m, steps, 1e-6))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interval := time.Second / 10
	if frameRate > 0 {
		interval = time.Second / time.Duration(frameRate)
	}

	p := tea.NewProgram(viz.NewLiveModel(cfg, interval))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
