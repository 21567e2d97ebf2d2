// SPDX-License-Identifier: MIT

package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/negcycle/builder"
	"github.com/katalvlaran/negcycle/ecb"
)

// RateSource resolves ECB snapshots; *ecb.Source implements it.
type RateSource interface {
	Fetch(ctx context.Context, kind ecb.Kind) (*ecb.Rates, error)
}

// Real builds cross-rate markets from ECB reference rates. EUR is always
// vertex 0; other currencies follow in order of first appearance.
type Real struct {
	Source     RateSource
	Historical bool // use the 90-day feed, producing one parallel edge per date
	// NumCurrencies limits the market to the first N codes; ≤ 0 keeps all.
	NumCurrencies int
	Logger        zerolog.Logger
}

// FetchRates resolves the rates and builds the cross-rate graph.
func (r *Real) FetchRates(ctx context.Context) (*Market, error) {
	kind := ecb.KindDaily
	if r.Historical {
		kind = ecb.KindHistorical
	}
	rates, err := r.Source.Fetch(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("market: real: %w", err)
	}
	if len(rates.Snapshots) == 0 {
		return nil, fmt.Errorf("market: real (%s): %w", kind, ErrNoData)
	}

	snaps := toBuilder(rates.Snapshots)
	codes := builder.CurrencyList(BaseCurrency, snaps, r.NumCurrencies)
	g, err := builder.CrossRates(codes, snaps)
	if err != nil {
		return nil, fmt.Errorf("market: real: %w", err)
	}

	r.Logger.Info().
		Str("origin", rates.Origin).
		Str("as_of", rates.Snapshots[0].Date).
		Int("dates", len(snaps)).
		Int("currencies", len(codes)).
		Int("edges", g.EdgeCount()).
		Str("codes", preview(codes, 10)).
		Msg("built market from exchange rates")

	return &Market{
		Graph:  g,
		Codes:  codes,
		AsOf:   rates.Snapshots[0].Date,
		Origin: rates.Origin,
	}, nil
}

func toBuilder(in []ecb.Snapshot) []builder.Snapshot {
	out := make([]builder.Snapshot, len(in))
	for i, s := range in {
		qs := make([]builder.RateQuote, len(s.Rates))
		for j, r := range s.Rates {
			qs[j] = builder.RateQuote{Currency: r.Currency, Rate: r.Rate}
		}
		out[i] = builder.Snapshot{Date: s.Date, Rates: qs}
	}

	return out
}

// preview joins at most n codes, appending "..." when truncated.
func preview(codes []string, n int) string {
	if len(codes) <= n {
		return strings.Join(codes, ",")
	}

	return strings.Join(codes[:n], ",") + ",..."
}
