// SPDX-License-Identifier: MIT

package market

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/negcycle/builder"
)

// Synthetic generates random markets with builder.RandomMarket.
type Synthetic struct {
	NumCurrencies   int
	NumTransactions int
	InsertCycle     bool
	// Seed fixes the generator; 0 draws one from the clock and logs it so
	// the run can be repeated.
	Seed   int64
	Logger zerolog.Logger
}

// FetchRates builds a fresh synthetic market.
func (s *Synthetic) FetchRates(ctx context.Context) (*Market, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := builder.RandomMarket(s.NumCurrencies, s.NumTransactions,
		builder.WithSeed(seed),
		builder.WithInsertedCycle(s.InsertCycle),
	)
	if err != nil {
		return nil, fmt.Errorf("market: synthetic: %w", err)
	}

	s.Logger.Info().
		Int("currencies", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Bool("inserted_cycle", s.InsertCycle).
		Int64("seed", seed).
		Msg("generated synthetic market")

	return &Market{Graph: g, Origin: "synthetic"}, nil
}
