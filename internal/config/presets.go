package config

import "sort"

// Presets are named tunings. Display settings always come from the defaults.
var Presets = map[string]TuningConfig{
	"classic": {
		GrowthIncrement: 2, ParticleDecay: 0.05, PulseStep: 0.05, BloomStep: 0.05,
	},
	"quick": {
		GrowthIncrement: 10, ParticleDecay: 0.1, PulseStep: 0.08, BloomStep: 0.1,
	},
	"slow": {
		GrowthIncrement: 1, ParticleDecay: 0.025, PulseStep: 0.03, BloomStep: 0.025,
	},
}

// GetPreset returns a fresh config using the named tuning, or nil.
func GetPreset(name string) *Config {
	t, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Tuning = t
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
