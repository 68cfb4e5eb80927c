package sim

import (
	"fmt"

	"github.com/san-kum/oringsim/internal/assembly"
)

const (
	DefaultTrials = 1_000_000
	DefaultBins   = 500
	DefaultSigma  = 3.0
)

// Metric aggregates a scalar over every trial of a run.
type Metric interface {
	Name() string
	Observe(r assembly.TrialResult)
	Value() float64
	Reset()
}

// Observer is notified after each trial is classified.
type Observer interface {
	OnTrial(trial int, r assembly.TrialResult)
}

type Config struct {
	Piston   assembly.ComponentSpec
	ORing    assembly.ComponentSpec
	Cylinder assembly.ComponentSpec
	Band     assembly.ToleranceBand
	Trials   int
	Bins     int
	Seed     int64
}

// DefaultConfig is the reference design: a 22.45 mm piston in a 25 mm bore
// with a 3 mm o-ring, all tolerances at 3 sigma, accepting 0.3 to 0.6 mm.
func DefaultConfig() Config {
	return Config{
		Piston:   assembly.ComponentSpec{Name: "piston", Nominal: 22.5 - 0.05, Tolerance: 0.03, Sigma: DefaultSigma},
		ORing:    assembly.ComponentSpec{Name: "oring", Nominal: 3, Tolerance: 0.09, Sigma: DefaultSigma},
		Cylinder: assembly.ComponentSpec{Name: "cylinder", Nominal: 25, Tolerance: 0.1, Sigma: DefaultSigma},
		Band:     assembly.ToleranceBand{Lower: 0.3, Upper: 0.6},
		Trials:   DefaultTrials,
		Bins:     DefaultBins,
	}
}

func (c Config) Validate() error {
	if c.Trials <= 0 {
		return &assembly.ConfigError{Field: "trials", Value: float64(c.Trials), Reason: "must be positive"}
	}
	if c.Bins <= 0 {
		return &assembly.ConfigError{Field: "bins", Value: float64(c.Bins), Reason: "must be positive"}
	}
	for _, spec := range []assembly.ComponentSpec{c.Piston, c.ORing, c.Cylinder} {
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	return c.Band.Validate()
}

// Nominal is the interference of an assembly built exactly to drawing.
func (c Config) Nominal() float64 {
	return assembly.Interference(c.Piston.Nominal, c.ORing.Nominal, c.Cylinder.Nominal)
}

type Summary struct {
	Trials         int
	Passed         int
	Failed         int
	LeftTail       int
	RightTail      int
	FailPercentage float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d failed (%v%%)", s.Failed, s.Trials, s.FailPercentage)
}

type Result struct {
	Config  Config
	Summary Summary
	// Values holds every trial's interference in draw order. Treat as read-only.
	Values  []float64
	Metrics map[string]float64
}

// Trial reconstructs the outcome of trial i from the retained value.
func (r *Result) Trial(i int) assembly.TrialResult {
	v := r.Values[i]
	return assembly.TrialResult{Interference: v, Passed: r.Config.Band.Contains(v)}
}
