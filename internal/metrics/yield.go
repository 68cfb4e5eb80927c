package metrics

import "github.com/san-kum/oringsim/internal/assembly"

// Yield is the fraction of trials that passed.
type Yield struct {
	name    string
	passed  int
	samples int
}

func NewYield() *Yield {
	return &Yield{name: "yield"}
}

func (y *Yield) Name() string {
	return y.name
}

func (y *Yield) Observe(r assembly.TrialResult) {
	y.samples++
	if r.Passed {
		y.passed++
	}
}

func (y *Yield) Value() float64 {
	if y.samples == 0 {
		return 1.0
	}
	return float64(y.passed) / float64(y.samples)
}

func (y *Yield) Reset() {
	y.passed = 0
	y.samples = 0
}
