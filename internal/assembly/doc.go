// Package assembly models the piston / o-ring / cylinder stack whose fit is
// being estimated.
//
// The package holds the pure pieces of the estimate:
//
//   - [ComponentSpec]: nominal diameter, tolerance and sigma level of one part
//   - [ToleranceBand]: inclusive range of acceptable interference
//   - [Interference]: piston + o-ring - cylinder
//   - [WithinTolerance]: the single pass/fail decision
//
// # Example
//
//	band := assembly.ToleranceBand{Lower: 0.3, Upper: 0.6}
//	v := assembly.Interference(22.45, 3, 25)
//	ok := band.Contains(v) // true
package assembly
