// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/internal/config"
	"github.com/katalvlaran/negcycle/internal/metrics"
	"github.com/katalvlaran/negcycle/market"
	"github.com/katalvlaran/negcycle/scan"
)

func newWatchCmd(f *cliFlags) *cobra.Command {
	var (
		interval    time.Duration
		metricsAddr string
		count       int
	)
	def := config.Default()
	defInterval, _ := def.WatchInterval() // the built-in default always parses

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rescan exchange rates periodically and serve Prometheus metrics",
		Long: `watch fetches ECB reference rates on every tick, runs detection and prints
the result. Metrics are served on /metrics at --metrics-addr (empty disables
the endpoint). Pass --use-real-data=false to watch synthetic markets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if !fl.Changed("use-real-data") {
				cfg.ECB.UseRealData = true
			}
			if fl.Changed("interval") {
				cfg.Watch.Interval = interval.String()
			}
			if fl.Changed("metrics-addr") {
				cfg.Watch.MetricsAddr = metricsAddr
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			timeout, err := cfg.DetectTimeout()
			if err != nil {
				return err
			}
			every, err := cfg.WatchInterval()
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m, reg := metrics.Init(logger)
			if srv := serveMetrics(cfg.Watch.MetricsAddr, reg, logger); srv != nil {
				defer shutdownServer(srv, logger)
			}

			w := &watcher{
				provider:    newProvider(cfg, logger, m),
				scanner:     newScanner(cfg, logger, m),
				out:         cmd.OutOrStdout(),
				jsonOutput:  f.jsonOutput,
				startAmount: cfg.Detect.StartAmount,
				timeout:     timeout,
				logger:      logger,
			}

			return w.run(ctx, every, count)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", defInterval, "time between scans")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", def.Watch.MetricsAddr, "address for the /metrics endpoint")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many scans, 0 to run until interrupted")

	return cmd
}

// watcher runs one fetch-and-scan per tick. Failures are logged and the
// loop carries on.
type watcher struct {
	provider    market.Provider
	scanner     *scan.Scanner
	out         io.Writer
	jsonOutput  bool
	startAmount float64
	timeout     time.Duration
	logger      zerolog.Logger
}

func (w *watcher) run(ctx context.Context, every time.Duration, count int) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for n := 1; ; n++ {
		w.tick(ctx)
		if count > 0 && n >= count {
			return nil
		}
		select {
		case <-ctx.Done():
			w.logger.Info().Int("scans", n).Msg("watch stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (w *watcher) tick(ctx context.Context) {
	m, err := w.provider.FetchRates(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Error().Err(err).Msg("fetching rates failed")
		}
		return
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	out, err := w.scanner.Scan(ctx, m)
	if err != nil {
		w.logger.Error().Err(err).Msg("scan failed")
		return
	}

	sum := out.Summarize(w.startAmount)
	if w.jsonOutput {
		if err = printJSON(w.out, sum); err != nil {
			w.logger.Error().Err(err).Msg("writing result failed")
		}
		return
	}
	printSummary(w.out, sum)
	fmt.Fprintln(w.out)
}

func metricsMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

// serveMetrics starts the metrics endpoint in the background; it returns
// nil when addr is empty.
func serveMetrics(addr string, reg *prometheus.Registry, logger zerolog.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           metricsMux(reg),
		ReadHeaderTimeout: 2 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server error")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving metrics")

	return srv
}

func shutdownServer(srv *http.Server, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("metrics server shutdown failed")
	}
}
