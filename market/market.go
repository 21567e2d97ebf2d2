// SPDX-License-Identifier: MIT

// Package market defines the data-provider capability injected into the
// scanner, with a synthetic implementation and one backed by ECB reference
// rates.
package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/negcycle/core"
)

// BaseCurrency is the currency every ECB rate is quoted against.
const BaseCurrency = "EUR"

// ErrNoData indicates a provider that produced an empty market.
var ErrNoData = errors.New("market: provider returned no data")

// Market is a rate graph plus the labels needed to present it.
type Market struct {
	Graph  *core.Graph
	Codes  []string // Codes[v] labels vertex v; may be shorter than V or nil
	AsOf   string   // date of the newest rates, empty for synthetic data
	Origin string   // where the rates came from, e.g. "synthetic" or "ecb"
}

// Label returns the currency code for v, or "Currency v" when none is known.
func (m *Market) Label(v int) string {
	if v >= 0 && v < len(m.Codes) && m.Codes[v] != "" {
		return m.Codes[v]
	}

	return fmt.Sprintf("Currency %d", v)
}

// Labels maps a vertex sequence to labels.
func (m *Market) Labels(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = m.Label(v)
	}

	return out
}

// Provider supplies a market snapshot on demand.
type Provider interface {
	FetchRates(ctx context.Context) (*Market, error)
}
