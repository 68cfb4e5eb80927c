package histogram

import (
	"errors"
	"math"
)

var (
	ErrNoData      = errors.New("histogram: no values to bin")
	ErrInvalidBins = errors.New("histogram: bin count must be positive")
)

// Binning is an equal-width histogram over [Edges[0], Edges[len-1]].
type Binning struct {
	Edges   []float64
	Counts  []int
	Centers []float64
	Width   float64
}

// Build bins values into n equal-width bins spanning their observed range.
// Bins are half-open except the last, which also takes the maximum. A zero
// width range is widened to [v-0.5, v+0.5], as is one too narrow to divide
// into n representable bins.
func Build(values []float64, n int) (*Binning, error) {
	if n <= 0 {
		return nil, ErrInvalidBins
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi || math.IsInf(float64(n)/(hi-lo), 1) {
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, n+1)
	span := hi - lo
	for i := range edges {
		edges[i] = lo + span*float64(i)/float64(n)
	}
	edges[n] = hi

	counts := make([]int, n)
	scale := float64(n) / span
	for _, v := range values {
		idx := int((v - lo) * scale)
		// floating point can put a value one bin off its edge
		switch {
		case idx < 0:
			idx = 0
		case idx >= n:
			idx = n - 1
		case idx > 0 && v < edges[idx]:
			idx--
		case idx < n-1 && v >= edges[idx+1]:
			idx++
		}
		counts[idx]++
	}

	width := edges[1] - edges[0]
	centers := make([]float64, n)
	for i := range centers {
		centers[i] = edges[i] + width/2
	}

	return &Binning{Edges: edges, Counts: counts, Centers: centers, Width: width}, nil
}

func (b *Binning) Total() int {
	total := 0
	for _, c := range b.Counts {
		total += c
	}
	return total
}

func (b *Binning) Len() int { return len(b.Counts) }
