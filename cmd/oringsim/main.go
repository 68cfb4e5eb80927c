package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/oringsim/internal/config"
	"github.com/san-kum/oringsim/internal/logging"
	"github.com/san-kum/oringsim/internal/metrics"
	"github.com/san-kum/oringsim/internal/report"
	"github.com/san-kum/oringsim/internal/sim"
	"github.com/san-kum/oringsim/internal/viz"
)

var (
	logger     *zap.Logger
	verbose    bool
	configFile string
	preset     string

	trials int
	bins   int
	seed   int64
	sigma  float64

	piston, pistonTol     float64
	oring, oringTol       float64
	cylinder, cylinderTol float64
	lower, upper          float64

	svgPath  string
	jsonPath string
	noPlot   bool
)

const (
	chartWidth  = 100
	chartHeight = 15
	svgWidth    = 1400
	svgHeight   = 400
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oringsim",
		Short: "monte carlo tolerance stack-up for a piston o-ring seal",
		Long: `oringsim samples piston, o-ring and cylinder diameters from their
manufacturing tolerances and estimates how many assemblies end up with an
o-ring interference outside the acceptable band.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runSimulation,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	addSimFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and print the failure rate",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write histogram chart to svg file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write histogram payload to json file")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal summary and chart")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "run simulation and explore the histogram interactively",
		Args:  cobra.NoArgs,
		RunE:  viewSimulation,
	}
	addSimFlags(viewCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	addSimFlags(initCmd)

	rootCmd.AddCommand(runCmd, viewCmd, presetsCmd, initCmd)
	return rootCmd
}

func addSimFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.IntVarP(&trials, "trials", "n", def.Trials, "number of trials")
	f.IntVar(&bins, "bins", def.Bins, "histogram bins")
	f.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.Float64Var(&sigma, "sigma", def.Sigma, "standard deviations spanned by each tolerance")
	f.Float64Var(&piston, "piston", def.Piston.Nominal, "nominal piston diameter")
	f.Float64Var(&pistonTol, "piston-tol", def.Piston.Tolerance, "piston diameter tolerance")
	f.Float64Var(&oring, "oring", def.ORing.Nominal, "nominal o-ring cross-section")
	f.Float64Var(&oringTol, "oring-tol", def.ORing.Tolerance, "o-ring cross-section tolerance")
	f.Float64Var(&cylinder, "cylinder", def.Cylinder.Nominal, "nominal cylinder bore")
	f.Float64Var(&cylinderTol, "cylinder-tol", def.Cylinder.Tolerance, "cylinder bore tolerance")
	f.Float64Var(&lower, "lower", def.Band.Lower, "smallest acceptable interference")
	f.Float64Var(&upper, "upper", def.Band.Upper, "largest acceptable interference")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = trials
	}
	if flags.Changed("bins") {
		cfg.Bins = bins
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("sigma") {
		cfg.Sigma = sigma
	}
	if flags.Changed("piston") {
		cfg.Piston.Nominal = piston
	}
	if flags.Changed("piston-tol") {
		cfg.Piston.Tolerance = pistonTol
	}
	if flags.Changed("oring") {
		cfg.ORing.Nominal = oring
	}
	if flags.Changed("oring-tol") {
		cfg.ORing.Tolerance = oringTol
	}
	if flags.Changed("cylinder") {
		cfg.Cylinder.Nominal = cylinder
	}
	if flags.Changed("cylinder-tol") {
		cfg.Cylinder.Tolerance = cylinderTol
	}
	if flags.Changed("lower") {
		cfg.Band.Lower = lower
	}
	if flags.Changed("upper") {
		cfg.Band.Upper = upper
	}

	return cfg, nil
}

func simulate(cmd *cobra.Command) (*sim.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	simCfg := cfg.Simulation()
	if simCfg.Seed == 0 {
		simCfg.Seed = time.Now().UnixNano()
	}
	if err := simCfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return nil, err
	}

	s := sim.New(simCfg)
	s.AddMetric(metrics.NewYield())
	s.AddMetric(metrics.NewMean())
	s.AddMetric(metrics.NewStdDev())
	s.AddMetric(metrics.NewMin())
	s.AddMetric(metrics.NewMax())
	s.AddObserver(logging.NewProgress(logger, simCfg.Trials))

	logger.Info("running simulation",
		zap.Int("trials", simCfg.Trials),
		zap.Int64("seed", simCfg.Seed),
		zap.Float64("nominal_interference", simCfg.Nominal()),
		zap.Float64("lower", simCfg.Band.Lower),
		zap.Float64("upper", simCfg.Band.Upper))

	start := time.Now()
	res, err := s.Run()
	if err != nil {
		return nil, err
	}

	logger.Info("simulation complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("failed", res.Summary.Failed),
		zap.Float64("fail_percentage", res.Summary.FailPercentage))

	return res, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	res, err := simulate(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.FailureLine(res.Summary.FailPercentage))

	b, err := res.Histogram()
	if err != nil {
		return err
	}
	payload := report.NewPayload(b, res.Config.Band)

	if !noPlot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.Summary(res.Summary, res.Metrics))
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.Chart(payload, chartWidth, chartHeight))
	}

	if svgPath != "" {
		if err := report.ExportSVG(svgPath, payload, svgWidth, svgHeight); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		logger.Info("wrote chart", zap.String("path", svgPath))
	}
	if jsonPath != "" {
		if err := report.ExportJSON(jsonPath, payload); err != nil {
			return fmt.Errorf("failed to write json: %w", err)
		}
		logger.Info("wrote payload", zap.String("path", jsonPath))
	}

	return nil
}

func viewSimulation(cmd *cobra.Command, args []string) error {
	res, err := simulate(cmd)
	if err != nil {
		return err
	}
	return viz.Run(res)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTRIALS\tSIGMA\tPISTON\tORING\tCYLINDER\tBAND")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%g\t%g±%g\t%g±%g\t%g±%g\t[%g, %g]\n",
			name,
			p.Trials,
			p.Sigma,
			p.Piston.Nominal, p.Piston.Tolerance,
			p.ORing.Nominal, p.ORing.Tolerance,
			p.Cylinder.Nominal, p.Cylinder.Tolerance,
			p.Band.Lower, p.Band.Upper,
		)
	}

	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	logger.Info("wrote config", zap.String("path", args[0]))
	return nil
}
