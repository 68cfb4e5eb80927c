// Package histogram prepares trial values for display.
//
// [Build] partitions the observed range into equal-width bins and
// [Binning.Classify] splits those bins into the three bar series handed to a
// renderer: good assemblies, left tail failures and right tail failures.
//
// Bins are classified by their centre, not by the values inside them: a bin
// centred exactly on a bound is drawn as a failure even though a trial with
// that exact value passes. Per-trial pass/fail is decided elsewhere and never
// derived from bins.
package histogram
