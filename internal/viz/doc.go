// Package viz provides an interactive terminal view of a finished run.
//
// The viewer never re-runs the simulation; it re-bins the retained trial
// values when the bin count changes.
//
// # Key Bindings
//
//	Plus  double the bin count
//	Minus halve the bin count
//	R     reset to the configured bin count
//	Q     quit
package viz
