// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/ecb"
	"github.com/katalvlaran/negcycle/internal/config"
	"github.com/katalvlaran/negcycle/internal/logging"
	"github.com/katalvlaran/negcycle/internal/metrics"
	"github.com/katalvlaran/negcycle/market"
	"github.com/katalvlaran/negcycle/scan"
)

// cliFlags holds the persistent flag values; see resolveConfig for how they
// combine with the config file.
type cliFlags struct {
	configPath      string
	numCurrencies   int
	numTransactions int
	insertCycle     bool
	noInsertCycle   bool
	maxIterations   int
	useRealData     bool
	useHistorical   bool
	source          int
	virtualSource   bool
	seed            int64
	sampleSize      int
	startAmount     float64
	timeout         time.Duration
	logLevel        string
	cacheDir        string
	jsonOutput      bool
	sweep           int
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&cliFlags{})
}

// newRootCmdWith binds the flags to f.
func newRootCmdWith(f *cliFlags) *cobra.Command {
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "negcycle",
		Short: "Detect currency arbitrage with Bellman-Ford",
		Long: `negcycle builds a market of exchange rates (synthetic, or ECB reference
rates with --use-real-data), turns every rate r into an edge of weight -ln(r)
and reports a negative cycle, which is a loop of trades ending with more
money than it started with.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML or TOML config file")
	pf.IntVar(&f.numCurrencies, "num-currencies", def.Synthetic.NumCurrencies, "number of currencies (real data: upper bound)")
	pf.IntVar(&f.numTransactions, "num-transactions", def.Synthetic.NumTransactions, "number of synthetic exchange rates")
	pf.BoolVar(&f.insertCycle, "insert-cycle", def.Synthetic.InsertCycle, "plant a profitable loop in the synthetic market")
	pf.BoolVar(&f.noInsertCycle, "no-insert-cycle", false, "generate the synthetic market without a planted loop")
	_ = pf.MarkHidden("no-insert-cycle")
	pf.IntVar(&f.maxIterations, "max-iterations", def.Detect.MaxIterations, "relaxation pass cap, -1 for min(V, 1000)")
	pf.BoolVar(&f.useRealData, "use-real-data", def.ECB.UseRealData, "use ECB reference rates")
	pf.BoolVar(&f.useHistorical, "use-historical", def.ECB.UseHistorical, "with --use-real-data, use the 90-day history")
	pf.IntVar(&f.source, "source", def.Detect.Source, "start vertex; implies --virtual-source=false unless set")
	pf.BoolVar(&f.virtualSource, "virtual-source", def.Detect.VirtualSource, "relax from a virtual source joined to every vertex")
	pf.Int64Var(&f.seed, "seed", 0, "seed for market generation and edge sampling, 0 for random")
	pf.IntVar(&f.sampleSize, "sample-size", def.Detect.SampleSize, "edges examined for the cycle witness on large graphs")
	pf.Float64Var(&f.startAmount, "start-amount", def.Detect.StartAmount, "amount projected around a detected cycle")
	pf.DurationVar(&f.timeout, "timeout", 0, "stop relaxation after this long, 0 for no limit")
	pf.StringVar(&f.logLevel, "log-level", def.Logging.Level, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&f.cacheDir, "cache-dir", def.ECB.CacheDir, "directory for the ECB rate cache")
	pf.BoolVar(&f.jsonOutput, "json", false, "output as JSON")
	cmd.Flags().IntVar(&f.sweep, "sweep", 0, "run single-source detections from the first N vertices and report the best")

	cmd.AddCommand(newWatchCmd(f))

	return cmd
}

// resolveConfig layers flags the user set explicitly over the config file
// and environment.
func resolveConfig(cmd *cobra.Command, f *cliFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	if fl.Changed("num-currencies") {
		cfg.Synthetic.NumCurrencies = f.numCurrencies
	}
	if fl.Changed("num-transactions") {
		cfg.Synthetic.NumTransactions = f.numTransactions
	}
	if fl.Changed("insert-cycle") && fl.Changed("no-insert-cycle") {
		return cfg, fmt.Errorf("%w: --insert-cycle and --no-insert-cycle cannot be combined", config.ErrInvalid)
	}
	if fl.Changed("insert-cycle") {
		cfg.Synthetic.InsertCycle = f.insertCycle
	}
	if fl.Changed("no-insert-cycle") {
		cfg.Synthetic.InsertCycle = !f.noInsertCycle
	}
	if fl.Changed("max-iterations") {
		cfg.Detect.MaxIterations = f.maxIterations
	}
	if fl.Changed("use-real-data") {
		cfg.ECB.UseRealData = f.useRealData
	}
	if fl.Changed("use-historical") {
		cfg.ECB.UseHistorical = f.useHistorical
	}
	if fl.Changed("source") {
		cfg.Detect.Source = f.source
		if !fl.Changed("virtual-source") {
			cfg.Detect.VirtualSource = false
		}
	}
	if fl.Changed("virtual-source") {
		cfg.Detect.VirtualSource = f.virtualSource
	}
	if fl.Changed("seed") {
		cfg.Detect.Seed = f.seed
		cfg.Synthetic.Seed = f.seed
	}
	if fl.Changed("sample-size") {
		cfg.Detect.SampleSize = f.sampleSize
	}
	if fl.Changed("start-amount") {
		cfg.Detect.StartAmount = f.startAmount
	}
	if fl.Changed("timeout") {
		cfg.Detect.Timeout = f.timeout.String()
	}
	if fl.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fl.Changed("cache-dir") {
		cfg.ECB.CacheDir = f.cacheDir
	}

	return cfg, cfg.Validate()
}

// newLogger writes to the command's error stream, detecting a terminal only
// when that stream is the real stderr.
func newLogger(cmd *cobra.Command, cfg config.Config) zerolog.Logger {
	if w := cmd.ErrOrStderr(); w != os.Stderr {
		return logging.NewWithWriter(w, cfg.Logging.Pretty, cfg.Logging.Level)
	}

	return logging.New(logging.Options{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
}

// newProvider picks the market source described by cfg. rec may be nil.
func newProvider(cfg config.Config, logger zerolog.Logger, rec metrics.Recorder) market.Provider {
	if !cfg.ECB.UseRealData {
		return &market.Synthetic{
			NumCurrencies:   cfg.Synthetic.NumCurrencies,
			NumTransactions: cfg.Synthetic.NumTransactions,
			InsertCycle:     cfg.Synthetic.InsertCycle,
			Seed:            cfg.Synthetic.Seed,
			Logger:          logger,
		}
	}

	client := ecb.NewClient()
	if cfg.ECB.DailyURL != "" {
		client.DailyURL = cfg.ECB.DailyURL
	}
	if cfg.ECB.HistoricalURL != "" {
		client.HistoricalURL = cfg.ECB.HistoricalURL
	}
	src := ecb.NewSource(client, ecb.NewCache(cfg.ECB.CacheDir), logger)
	if rec != nil {
		src.OnError = func(origin string, _ error) { rec.ObserveFetchError(origin) }
	}

	return &market.Real{
		Source:        src,
		Historical:    cfg.ECB.UseHistorical,
		NumCurrencies: cfg.Synthetic.NumCurrencies,
		Logger:        logger,
	}
}

func newScanner(cfg config.Config, logger zerolog.Logger, rec metrics.Recorder) *scan.Scanner {
	s := scan.New(logger, rec)
	s.Options = scan.Options{
		Source:        cfg.Detect.Source,
		MaxIterations: cfg.Detect.MaxIterations,
		VirtualSource: cfg.Detect.VirtualSource,
		SampleSize:    cfg.Detect.SampleSize,
		Seed:          cfg.Detect.Seed,
	}

	return s
}

func runScan(cmd *cobra.Command, f *cliFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := newProvider(cfg, logger, nil).FetchRates(ctx)
	if err != nil {
		return err
	}

	timeout, err := cfg.DetectTimeout()
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	sc := newScanner(cfg, logger, nil)
	var out *scan.Outcome
	if f.sweep > 0 {
		out, err = sweepBest(ctx, sc, m, f.sweep)
	} else {
		out, err = sc.Scan(ctx, m)
	}
	if err != nil {
		return err
	}

	sum := out.Summarize(cfg.Detect.StartAmount)
	if f.jsonOutput {
		return printJSON(cmd.OutOrStdout(), sum)
	}
	printSummary(cmd.OutOrStdout(), sum)

	return nil
}

// sweepBest runs single-source detections from vertices 0..n-1 (capped at
// V) and returns the most profitable outcome, or the first when none found a
// cycle.
func sweepBest(ctx context.Context, sc *scan.Scanner, m *market.Market, n int) (*scan.Outcome, error) {
	n = min(n, m.Graph.VertexCount())
	sources := make([]int, n)
	for i := range sources {
		sources[i] = i
	}

	outs, err := sc.Sweep(ctx, m, sources, runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if best := scan.Best(outs); best != nil {
		return best, nil
	}

	return outs[0], nil
}
