// Package sim runs the Monte Carlo tolerance stack-up.
//
// A [Simulator] owns one immutable [Config]. Each call to Run validates the
// configuration, seeds a fresh sampler from Config.Seed, and performs exactly
// Config.Trials draws:
//
//	cfg := sim.DefaultConfig()
//	cfg.Seed = 42
//	res, err := sim.New(cfg).Run()
//	fmt.Println(res.Summary.FailPercentage)
//
// Pass/fail is aggregated with running counters. Only the raw interference
// values are retained, in trial order, for the histogram stage.
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Run draws from a single stream.
package sim
