package metrics

import (
	"math"

	"github.com/san-kum/oringsim/internal/assembly"
)

// Extreme tracks the smallest or largest interference seen.
type Extreme struct {
	name  string
	max   bool
	value float64
	seen  bool
}

func NewMin() *Extreme {
	return &Extreme{name: "interference_min"}
}

func NewMax() *Extreme {
	return &Extreme{name: "interference_max", max: true}
}

func (e *Extreme) Name() string {
	return e.name
}

func (e *Extreme) Observe(r assembly.TrialResult) {
	v := r.Interference
	switch {
	case !e.seen:
		e.value, e.seen = v, true
	case e.max:
		e.value = math.Max(e.value, v)
	default:
		e.value = math.Min(e.value, v)
	}
}

func (e *Extreme) Value() float64 {
	if !e.seen {
		return math.NaN()
	}
	return e.value
}

func (e *Extreme) Reset() {
	e.value = 0
	e.seen = false
}
