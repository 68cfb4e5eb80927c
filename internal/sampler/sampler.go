// Package sampler draws component dimensions from their manufacturing
// distributions.
package sampler

import (
	"math/rand"

	"github.com/san-kum/oringsim/internal/assembly"
)

// Normal samples N(nominal, tolerance/sigma) from a stream it owns. It is not
// safe for concurrent use; give every goroutine its own Normal.
type Normal struct {
	rng  *rand.Rand
	seed int64
}

func New(seed int64) *Normal {
	return &Normal{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

func (n *Normal) Seed() int64 { return n.seed }

// Sample draws one dimension. The spec is assumed to have passed Validate.
func (n *Normal) Sample(spec assembly.ComponentSpec) float64 {
	return n.rng.NormFloat64()*spec.StdDev() + spec.Nominal
}
