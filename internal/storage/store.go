package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/growthsim/internal/config"
	"github.com/san-kum/growthsim/internal/dynamo"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
	configFile   = "config.yaml"
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SeriesMetadata struct {
	Label   string            `json:"label"`
	Params  map[string]Number `json:"params"`
	Metrics map[string]Number `json:"metrics"`
	Steps   int               `json:"steps"`
	Errors  []string          `json:"errors,omitempty"`
}

type RunMetadata struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Timestamp   time.Time        `json:"timestamp"`
	Horizon     int              `json:"horizon"`
	SteadyState Number           `json:"steady_state"`
	Series      []SeriesMetadata `json:"series"`
}

// Run is everything Save persists. Params[i] holds the initial parameters
// of Results[i]. Config is optional.
type Run struct {
	Title       string
	Horizon     int
	SteadyState float64
	Params      []map[string]float64
	Results     []*dynamo.Result
	Config      *config.Config
}

// Save writes a run directory holding metadata.json, series.csv and, when
// the run carries one, config.yaml.
func (s *Store) Save(run Run) (string, error) {
	now := nowFunc()
	runID := fmt.Sprintf("solow_%d", now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Title:       run.Title,
		Timestamp:   now,
		Horizon:     run.Horizon,
		SteadyState: Number(run.SteadyState),
		Series:      make([]SeriesMetadata, len(run.Results)),
	}
	for i, r := range run.Results {
		sm := SeriesMetadata{
			Label:   r.Label,
			Metrics: numberMap(r.Metrics),
			Steps:   r.StepsTaken,
		}
		if i < len(run.Params) {
			sm.Params = numberMap(run.Params[i])
		}
		for _, err := range r.Errors {
			sm.Errors = append(sm.Errors, err.Error())
		}
		meta.Series[i] = sm
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), run); err != nil {
		return "", err
	}
	if run.Config != nil {
		if err := config.Save(filepath.Join(runDir, configFile), run.Config); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeries(path string, run Run) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"step", "steady_state"}
	rows := 0
	for _, r := range run.Results {
		header = append(header, r.Label)
		rows = max(rows, len(r.Series))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	steady := formatFloat(run.SteadyState)
	for i := 0; i < rows; i++ {
		row := []string{strconv.Itoa(i), steady}
		for _, r := range run.Results {
			if i < len(r.Series) {
				row = append(row, formatFloat(r.Series[i]))
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

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadConfig(runID string) (*config.Config, error) {
	return config.Load(filepath.Join(s.baseDir, runID, configFile))
}

// SeriesData is the content of series.csv. Series shorter than the
// longest one are truncated at their last recorded step.
type SeriesData struct {
	Labels      []string
	Steps       []int
	SteadyState []float64
	Series      [][]float64
}

func (s *Store) LoadSeries(runID string) (*SeriesData, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("series file has no header")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("malformed series header: %v", header)
	}

	data := &SeriesData{
		Labels:      header[2:],
		Steps:       make([]int, 0, len(records)-1),
		SteadyState: make([]float64, 0, len(records)-1),
		Series:      make([][]float64, len(header)-2),
	}

	for line, record := range records[1:] {
		step, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		ks, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		data.Steps = append(data.Steps, step)
		data.SteadyState = append(data.SteadyState, ks)

		for j, field := range record[2:] {
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line+2, err)
			}
			data.Series[j] = append(data.Series[j], v)
		}
	}

	return data, nil
}

type ExportData struct {
	RunMetadata
	Steps  []int               `json:"steps"`
	Values map[string][]Number `json:"values"`
}

// ExportJSON writes the metadata and every series of a run to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Steps:       series.Steps,
		Values:      make(map[string][]Number, len(series.Labels)),
	}
	for i, label := range series.Labels {
		data.Values[label] = numbers(series.Series[i])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
