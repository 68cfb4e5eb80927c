package config

import "sort"

// presets are complete starting configurations. Flags and config files are
// applied on top of a copy handed out by GetPreset.
var presets = map[string]Config{
	"default": *DefaultConfig(),
	"tight-bore": {
		Trials: DefaultTrials, Bins: DefaultBins, Sigma: DefaultSigma,
		Piston:   ComponentConfig{Nominal: 22.45, Tolerance: 0.03},
		ORing:    ComponentConfig{Nominal: 3, Tolerance: 0.09},
		Cylinder: ComponentConfig{Nominal: 25, Tolerance: 0.05},
		Band:     BandConfig{Lower: DefaultLower, Upper: DefaultUpper},
	},
	"loose-oring": {
		Trials: DefaultTrials, Bins: DefaultBins, Sigma: DefaultSigma,
		Piston:   ComponentConfig{Nominal: 22.45, Tolerance: 0.03},
		ORing:    ComponentConfig{Nominal: 3, Tolerance: 0.15},
		Cylinder: ComponentConfig{Nominal: 25, Tolerance: 0.1},
		Band:     BandConfig{Lower: DefaultLower, Upper: DefaultUpper},
	},
	"two-sigma": {
		Trials: DefaultTrials, Bins: DefaultBins, Sigma: 2,
		Piston:   ComponentConfig{Nominal: 22.45, Tolerance: 0.03},
		ORing:    ComponentConfig{Nominal: 3, Tolerance: 0.09},
		Cylinder: ComponentConfig{Nominal: 25, Tolerance: 0.1},
		Band:     BandConfig{Lower: DefaultLower, Upper: DefaultUpper},
	},
	"quick": {
		Trials: 10000, Bins: 100, Sigma: DefaultSigma,
		Piston:   ComponentConfig{Nominal: 22.45, Tolerance: 0.03},
		ORing:    ComponentConfig{Nominal: 3, Tolerance: 0.09},
		Cylinder: ComponentConfig{Nominal: 25, Tolerance: 0.1},
		Band:     BandConfig{Lower: DefaultLower, Upper: DefaultUpper},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := presets[name]
	if !ok {
		return nil
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
