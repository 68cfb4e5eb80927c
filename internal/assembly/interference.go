package assembly

// Interference returns how far the o-ring is squeezed: the piston plus o-ring
// cross-section minus the cylinder bore. Defined for every real input; sampled
// diameters are not checked for physical plausibility.
func Interference(piston, oring, cylinder float64) float64 {
	return piston + oring - cylinder
}

// WithinTolerance reports whether v lies in [lower, upper]. Values on either
// bound pass.
func WithinTolerance(v, lower, upper float64) bool {
	return lower <= v && v <= upper
}

// TrialResult is the outcome of one Monte Carlo draw.
type TrialResult struct {
	Interference float64
	Passed       bool
}

// Evaluate computes the interference of one drawn assembly and classifies it.
func Evaluate(piston, oring, cylinder float64, band ToleranceBand) TrialResult {
	v := Interference(piston, oring, cylinder)
	return TrialResult{Interference: v, Passed: band.Contains(v)}
}
