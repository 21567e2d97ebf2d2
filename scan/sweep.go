// SPDX-License-Identifier: MIT

package scan

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/negcycle/bellmanford"
	"github.com/katalvlaran/negcycle/market"
)

// Sweep runs one single-source detection per entry of sources, at most
// parallelism at a time (≤ 0 means one per source). Each run owns its own
// tables; the graph is shared read-only. Outcomes are returned in the order
// of sources. The first error cancels the remaining runs.
func (s *Scanner) Sweep(ctx context.Context, m *market.Market, sources []int, parallelism int) ([]*Outcome, error) {
	if m == nil || m.Graph == nil {
		return nil, fmt.Errorf("scan: %w", bellmanford.ErrNilGraph)
	}
	for _, src := range sources {
		if !m.Graph.HasVertex(src) {
			return nil, fmt.Errorf("scan: sweep: %w: %d", bellmanford.ErrSourceOutOfRange, src)
		}
	}

	outs := make([]*Outcome, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, src := range sources {
		o := s.Options
		o.VirtualSource = false
		o.Source = src
		g.Go(func() error {
			out, err := s.scan(gctx, m, o)
			if err != nil {
				return err
			}
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outs, nil
}

// Best returns the outcome with the highest profit factor among those that
// found a cycle, or nil.
func Best(outs []*Outcome) *Outcome {
	var best *Outcome
	for _, o := range outs {
		if o == nil || !o.Found {
			continue
		}
		if best == nil || o.Report.ProfitFactor > best.Report.ProfitFactor {
			best = o
		}
	}

	return best
}
