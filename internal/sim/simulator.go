package sim

import (
	"github.com/san-kum/oringsim/internal/assembly"
	"github.com/san-kum/oringsim/internal/histogram"
	"github.com/san-kum/oringsim/internal/sampler"
)

type Simulator struct {
	cfg       Config
	metrics   []Metric
	observers []Observer
}

func New(cfg Config) *Simulator {
	return &Simulator{
		cfg:       cfg,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Config() Config { return s.cfg }

// Run performs exactly cfg.Trials draws. An invalid configuration is reported
// before the first draw and no partial result is returned.
func (s *Simulator) Run() (*Result, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	cfg := s.cfg
	src := sampler.New(cfg.Seed)

	for _, m := range s.metrics {
		m.Reset()
	}

	values := make([]float64, 0, cfg.Trials)
	sum := Summary{Trials: cfg.Trials}

	for i := 0; i < cfg.Trials; i++ {
		piston := src.Sample(cfg.Piston)
		oring := src.Sample(cfg.ORing)
		cylinder := src.Sample(cfg.Cylinder)

		r := assembly.Evaluate(piston, oring, cylinder, cfg.Band)
		switch {
		case r.Passed:
			sum.Passed++
		case r.Interference < cfg.Band.Lower:
			sum.LeftTail++
		default:
			sum.RightTail++
		}

		for _, m := range s.metrics {
			m.Observe(r)
		}
		for _, obs := range s.observers {
			obs.OnTrial(i, r)
		}

		values = append(values, r.Interference)
	}

	sum.Failed = cfg.Trials - sum.Passed
	sum.FailPercentage = 100 * float64(cfg.Trials-sum.Passed) / float64(cfg.Trials)

	metrics := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		metrics[m.Name()] = m.Value()
	}

	return &Result{Config: cfg, Summary: sum, Values: values, Metrics: metrics}, nil
}

// Histogram bins the run's values with the configured bin count.
func (r *Result) Histogram() (*histogram.Binning, error) {
	return histogram.Build(r.Values, r.Config.Bins)
}
