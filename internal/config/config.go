package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/growthsim/internal/solow"
)

const (
	DefaultHorizon = 50
	DefaultTitle   = "Solow Growth Model - Steady State Capital"
)

type Config struct {
	Title   string        `yaml:"title"`
	Horizon int           `yaml:"horizon"`
	Models  []ModelConfig `yaml:"models"`
}

// ModelConfig overrides model defaults; unset fields keep them.
type ModelConfig struct {
	Label string   `yaml:"label,omitempty"`
	N     *float64 `yaml:"n,omitempty"`
	S     *float64 `yaml:"s,omitempty"`
	Delta *float64 `yaml:"delta,omitempty"`
	Alpha *float64 `yaml:"alpha,omitempty"`
	Z     *float64 `yaml:"z,omitempty"`
	K     *float64 `yaml:"k,omitempty"`
}

func Float(v float64) *float64 { return &v }

// DefaultConfig reproduces the reference run: default parameters starting
// from k=1 and from k=8, over 50 periods.
func DefaultConfig() *Config {
	return &Config{
		Title:   DefaultTitle,
		Horizon: DefaultHorizon,
		Models: []ModelConfig{
			{K: Float(1.0)},
			{K: Float(8.0)},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the run layout only. Model parameters are never checked
// here; see solow.Model.Validate.
func (c *Config) Validate() error {
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must not be negative, got %d", c.Horizon)
	}
	if len(c.Models) == 0 {
		return errors.New("at least one model is required")
	}
	return nil
}

// Options converts the overrides into model options.
func (mc ModelConfig) Options() []solow.Option {
	var opts []solow.Option
	add := func(v *float64, opt func(float64) solow.Option) {
		if v != nil {
			opts = append(opts, opt(*v))
		}
	}
	add(mc.N, solow.WithPopulationGrowth)
	add(mc.S, solow.WithSavingsRate)
	add(mc.Delta, solow.WithDepreciationRate)
	add(mc.Alpha, solow.WithLaborShare)
	add(mc.Z, solow.WithProductivity)
	add(mc.K, solow.WithCapital)
	return opts
}

func (mc ModelConfig) Build() *solow.Model {
	return solow.New(mc.Options()...)
}

// Build returns one fresh model per entry, in order.
func (c *Config) Build() []*solow.Model {
	models := make([]*solow.Model, len(c.Models))
	for i, mc := range c.Models {
		models[i] = mc.Build()
	}
	return models
}

// Clone returns a copy that can be modified without touching c. Override
// pointers are shared; they are never written through.
func (c *Config) Clone() *Config {
	out := *c
	out.Models = append([]ModelConfig(nil), c.Models...)
	return &out
}
