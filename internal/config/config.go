package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/oringsim/internal/assembly"
	"github.com/san-kum/oringsim/internal/sim"
)

const (
	DefaultTrials = sim.DefaultTrials
	DefaultBins   = sim.DefaultBins
	DefaultSigma  = sim.DefaultSigma
	DefaultLower  = 0.3
	DefaultUpper  = 0.6
)

type Config struct {
	Trials   int             `yaml:"trials"`
	Bins     int             `yaml:"bins"`
	Seed     int64           `yaml:"seed"`
	Sigma    float64         `yaml:"sigma"`
	Piston   ComponentConfig `yaml:"piston"`
	ORing    ComponentConfig `yaml:"oring"`
	Cylinder ComponentConfig `yaml:"cylinder"`
	Band     BandConfig      `yaml:"band"`
}

// ComponentConfig leaves Sigma at zero to inherit Config.Sigma.
type ComponentConfig struct {
	Nominal   float64 `yaml:"nominal"`
	Tolerance float64 `yaml:"tolerance"`
	Sigma     float64 `yaml:"sigma,omitempty"`
}

type BandConfig struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

func DefaultConfig() *Config {
	return &Config{
		Trials:   DefaultTrials,
		Bins:     DefaultBins,
		Sigma:    DefaultSigma,
		Piston:   ComponentConfig{Nominal: 22.45, Tolerance: 0.03},
		ORing:    ComponentConfig{Nominal: 3, Tolerance: 0.09},
		Cylinder: ComponentConfig{Nominal: 25, Tolerance: 0.1},
		Band:     BandConfig{Lower: DefaultLower, Upper: DefaultUpper},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base; keys missing from the file
// keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Simulation converts the file layout into the immutable run configuration.
// Values are not validated here; sim.Config.Validate does that.
func (c *Config) Simulation() sim.Config {
	return sim.Config{
		Piston:   c.Piston.spec("piston", c.Sigma),
		ORing:    c.ORing.spec("oring", c.Sigma),
		Cylinder: c.Cylinder.spec("cylinder", c.Sigma),
		Band:     assembly.ToleranceBand{Lower: c.Band.Lower, Upper: c.Band.Upper},
		Trials:   c.Trials,
		Bins:     c.Bins,
		Seed:     c.Seed,
	}
}

func (cc ComponentConfig) spec(name string, sigma float64) assembly.ComponentSpec {
	if cc.Sigma != 0 {
		sigma = cc.Sigma
	}
	return assembly.ComponentSpec{
		Name:      name,
		Nominal:   cc.Nominal,
		Tolerance: cc.Tolerance,
		Sigma:     sigma,
	}
}
