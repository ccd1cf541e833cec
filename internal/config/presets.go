package config

import "sort"

var Presets = map[string]*Config{
	"baseline": DefaultConfig(),
	"high-savings": {
		Title: "Higher Savings Rate", Horizon: 80,
		Models: []ModelConfig{
			{Label: "s=0.25", K: Float(1.0)},
			{Label: "s=0.40", S: Float(0.4), K: Float(1.0)},
		},
	},
	"low-productivity": {
		Title: "Productivity Shock", Horizon: 60,
		Models: []ModelConfig{
			{Label: "z=2.0", K: Float(3.0)},
			{Label: "z=1.5", Z: Float(1.5), K: Float(3.0)},
		},
	},
	"population-boom": {
		Title: "Faster Population Growth", Horizon: 80,
		Models: []ModelConfig{
			{Label: "n=0.001", K: Float(1.0)},
			{Label: "n=0.05", N: Float(0.05), K: Float(1.0)},
		},
	},
	"poor-vs-rich": {
		Title: "Convergence From Both Sides", Horizon: 50,
		Models: []ModelConfig{
			{K: Float(0.5)},
			{K: Float(2.0)},
			{K: Float(6.0)},
			{K: Float(12.0)},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
