package metrics

import (
	"math"

	"github.com/san-kum/oringsim/internal/assembly"
)

type Mean struct {
	name    string
	sum     float64
	samples int
}

func NewMean() *Mean {
	return &Mean{name: "interference_mean"}
}

func (m *Mean) Name() string {
	return m.name
}

func (m *Mean) Observe(r assembly.TrialResult) {
	m.sum += r.Interference
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// StdDev is the population standard deviation of the interference,
// accumulated with Welford's update.
type StdDev struct {
	name    string
	mean    float64
	m2      float64
	samples int
}

func NewStdDev() *StdDev {
	return &StdDev{name: "interference_stddev"}
}

func (s *StdDev) Name() string {
	return s.name
}

func (s *StdDev) Observe(r assembly.TrialResult) {
	s.samples++
	delta := r.Interference - s.mean
	s.mean += delta / float64(s.samples)
	s.m2 += delta * (r.Interference - s.mean)
}

func (s *StdDev) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.samples))
}

func (s *StdDev) Reset() {
	s.mean = 0
	s.m2 = 0
	s.samples = 0
}
