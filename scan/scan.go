// SPDX-License-Identifier: MIT

// Package scan runs arbitrage detection over a market on behalf of a caller:
// it threads cancellation into the relaxation loop, labels the result with
// currency codes, logs, and records metrics.
package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/negcycle/bellmanford"
	"github.com/katalvlaran/negcycle/bfs"
	"github.com/katalvlaran/negcycle/internal/metrics"
	"github.com/katalvlaran/negcycle/market"
)

// Options selects how detection runs.
type Options struct {
	Source        int   // start vertex when VirtualSource is false
	MaxIterations int   // bellmanford.AutoIterations for min(V, 1000)
	VirtualSource bool  // relax from an implicit source joined to every vertex
	SampleSize    int   // edges examined when the graph is large; ≤ 0 keeps the default
	Seed          int64 // sampling seed
}

// DefaultOptions mirrors bellmanford.DefaultOptions with a virtual source.
func DefaultOptions() Options {
	return Options{
		MaxIterations: bellmanford.AutoIterations,
		VirtualSource: true,
		SampleSize:    bellmanford.DefaultSampleSize,
	}
}

// detectOptions translates o into bellmanford options.
func (o Options) detectOptions() []bellmanford.Option {
	opts := make([]bellmanford.Option, 0, 5)
	if o.VirtualSource {
		opts = append(opts, bellmanford.WithVirtualSource())
	} else {
		opts = append(opts, bellmanford.Source(o.Source))
	}
	if o.MaxIterations != bellmanford.AutoIterations {
		opts = append(opts, bellmanford.WithMaxIterations(o.MaxIterations))
	}
	if o.SampleSize > 0 {
		opts = append(opts, bellmanford.WithSampling(bellmanford.DefaultSampleThreshold, o.SampleSize))
	}
	if o.Seed != 0 {
		opts = append(opts, bellmanford.WithSeed(o.Seed))
	}

	return opts
}

// validate rejects values the option constructors would panic on.
func (o Options) validate() error {
	if o.Source < 0 {
		return fmt.Errorf("scan: %w: %d", bellmanford.ErrSourceOutOfRange, o.Source)
	}
	if o.MaxIterations < 0 && o.MaxIterations != bellmanford.AutoIterations {
		return fmt.Errorf("scan: %w: %d", bellmanford.ErrBadMaxIterations, o.MaxIterations)
	}

	return nil
}

// Outcome is one detection run over a market.
type Outcome struct {
	RunID  string
	Market *market.Market
	// Report is nil when no cycle was found.
	Report *bellmanford.Report
	Found  bool
	// Source is the start vertex, or -1 for a virtual-source run.
	Source int
	// Reachable counts the vertices relaxation could reach: all of them for
	// a virtual-source run. Cycles outside that set are never seen.
	Reachable int
	Passes int
	// Cap is the resolved iteration cap.
	Cap int
	// Stopped is true when cancellation cut relaxation short.
	Stopped bool
	// CapReached is true when relaxation ended without a fixed point, so a
	// cycle may have been out of reach.
	CapReached bool
	Elapsed    time.Duration
}

// Hop is one labelled step of a detected cycle.
type Hop struct {
	From   string
	To     string
	Rate   float64
	Weight float64
	Edge   int
}

// Path returns the labelled hops of the detected cycle, or nil.
func (o *Outcome) Path() []Hop {
	if o.Report == nil {
		return nil
	}
	hops := make([]Hop, len(o.Report.Edges))
	for i, e := range o.Report.Edges {
		hops[i] = Hop{
			From:   o.Market.Label(e.From),
			To:     o.Market.Label(e.To),
			Rate:   e.Rate,
			Weight: e.Weight,
			Edge:   e.Index,
		}
	}

	return hops
}

// Scanner runs detections. The zero value is usable: it logs nowhere,
// records nothing and uses zero Options (source 0, no iterations); prefer
// New.
type Scanner struct {
	Logger   zerolog.Logger
	Recorder metrics.Recorder // optional
	Options  Options
}

// New returns a Scanner with DefaultOptions.
func New(logger zerolog.Logger, rec metrics.Recorder) *Scanner {
	return &Scanner{Logger: logger, Recorder: rec, Options: DefaultOptions()}
}

// Scan runs detection over m with the scanner's options.
//
// Cancelling ctx stops relaxation after the current pass; detection then
// still runs on the tables reached so far and the outcome is returned with
// Stopped set and a nil error.
func (s *Scanner) Scan(ctx context.Context, m *market.Market) (*Outcome, error) {
	return s.scan(ctx, m, s.Options)
}

func (s *Scanner) scan(ctx context.Context, m *market.Market, o Options) (*Outcome, error) {
	if m == nil || m.Graph == nil {
		return nil, fmt.Errorf("scan: %w", bellmanford.ErrNilGraph)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	out := &Outcome{RunID: uuid.NewString(), Market: m, Source: -1}
	if !o.VirtualSource {
		out.Source = o.Source
	}
	log := s.Logger.With().Str("run_id", out.RunID).Logger()
	log.Debug().
		Int("vertices", m.Graph.VertexCount()).
		Int("edges", m.Graph.EdgeCount()).
		Int("source", out.Source).
		Int("max_iterations", o.MaxIterations).
		Msg("detection started")

	hook := func(pass, relaxed int) bool {
		log.Trace().Int("pass", pass).Int("relaxed", relaxed).Msg("relaxation pass")
		return ctx.Err() == nil
	}

	start := time.Now()
	d, err := bellmanford.Detect(m.Graph, append(o.detectOptions(), bellmanford.WithPassHook(hook))...)
	out.Elapsed = time.Since(start)
	if err != nil {
		s.record(metrics.OutcomeError, out)
		log.Error().Err(err).Msg("detection failed")
		return nil, fmt.Errorf("scan: %w", err)
	}

	out.Reachable = m.Graph.VertexCount()
	if !o.VirtualSource {
		if out.Reachable, err = bfs.Reachable(m.Graph, o.Source); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
	}

	res := d.Result
	out.Report = d.Report
	out.Found = d.Found()
	out.Passes = res.Passes
	out.Cap = res.MaxIterations
	out.Stopped = res.Stopped
	out.CapReached = res.CapReached

	ev := log.Info()
	if out.Stopped {
		ev = log.Warn().AnErr("cause", ctx.Err())
	}
	ev = ev.Int("passes", out.Passes).
		Int("reachable", out.Reachable).
		Int("cap", out.Cap).
		Bool("cap_reached", out.CapReached).
		Dur("elapsed", out.Elapsed).
		Bool("found", out.Found)
	if out.Found {
		s.recordProfit(out.Report.ProfitFactor)
		ev = ev.Int("cycle_len", len(out.Report.Edges)).
			Float64("total_weight", out.Report.TotalWeight).
			Float64("profit_factor", out.Report.ProfitFactor).
			Bool("sampled", out.Report.Sampled).
			Strs("cycle", m.Labels(out.Report.Vertices))
	}
	ev.Msg("detection finished")

	if out.Found {
		s.record(metrics.OutcomeFound, out)
	} else {
		s.record(metrics.OutcomeNotFound, out)
	}

	return out, nil
}

func (s *Scanner) record(outcome string, o *Outcome) {
	if s.Recorder == nil {
		return
	}
	s.Recorder.ObserveRun(outcome, o.Passes, o.Elapsed, o.CapReached)
}

func (s *Scanner) recordProfit(f float64) {
	if s.Recorder == nil {
		return
	}
	s.Recorder.ObserveProfit(f)
}
