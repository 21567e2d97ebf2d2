// SPDX-License-Identifier: MIT
// Package: negcycle/builder
//
// impl_cross_rates.go: cross-rate markets from reference-rate snapshots.
//
// A snapshot quotes each currency against an implicit base (1 base = Rate
// units of Currency). The cross rate From→To is Rate(To)/Rate(From), and the
// base itself always has rate 1.
//
// Determinism:
//   - Snapshots are processed in the given order.
//   - Within a snapshot, pairs follow the order of the codes list.

package builder

import "fmt"

// RateQuote is one currency's reference rate against the base.
type RateQuote struct {
	Currency string
	Rate     float64
}

// Snapshot is the set of reference rates published for one date.
type Snapshot struct {
	Date  string
	Rates []RateQuote
}

// Cross returns the rate for converting from into to under this snapshot.
// base is the snapshot's base currency. ErrUnknownCurrency is returned when
// either code is not quoted.
func (s Snapshot) Cross(base, from, to string) (float64, error) {
	rf, ok := s.rate(base, from)
	if !ok {
		return 0, fmt.Errorf("%s: %q on %s: %w", methodSnapshotQuotes, from, s.Date, ErrUnknownCurrency)
	}
	rt, ok := s.rate(base, to)
	if !ok {
		return 0, fmt.Errorf("%s: %q on %s: %w", methodSnapshotQuotes, to, s.Date, ErrUnknownCurrency)
	}

	return rt / rf, nil
}

// rate looks up code against base; the base always quotes 1.
func (s Snapshot) rate(base, code string) (float64, bool) {
	if code == base {
		return 1, true
	}
	for _, q := range s.Rates {
		if q.Currency == code {
			return q.Rate, true
		}
	}

	return 0, false
}

// CurrencyList returns base followed by every currency quoted in snapshots,
// in order of first appearance, truncated to limit entries when
// 0 < limit < total.
//
// Complexity: O(total quotes).
func CurrencyList(base string, snapshots []Snapshot, limit int) []string {
	codes := []string{base}
	seen := map[string]bool{base: true}
	for _, s := range snapshots {
		for _, q := range s.Rates {
			if seen[q.Currency] {
				continue
			}
			seen[q.Currency] = true
			codes = append(codes, q.Currency)
		}
	}
	if limit > 0 && limit < len(codes) {
		codes = codes[:limit]
	}

	return codes
}

// SnapshotQuotes returns a Constructor that, for every snapshot, adds an edge
// for every ordered pair of distinct codes the snapshot quotes. codes[0] is
// the base currency. Codes a snapshot does not quote are skipped for that
// snapshot only.
//
// Errors: ErrBadSize for an empty snapshot list, ErrUnknownCurrency for a
// duplicated code.
//
// Complexity: O(S · L²) for S snapshots and L listed codes.
func SnapshotQuotes(codes []string, snapshots []Snapshot) Constructor {
	return func(d *draft, _ builderConfig) error {
		if len(snapshots) == 0 {
			return fmt.Errorf("%s: no snapshots: %w", methodSnapshotQuotes, ErrBadSize)
		}
		index := make(map[string]int, len(codes))
		for i, c := range codes {
			if _, dup := index[c]; dup {
				return fmt.Errorf("%s: %q listed twice: %w", methodSnapshotQuotes, c, ErrUnknownCurrency)
			}
			index[c] = i
		}
		if len(codes) > d.n {
			return fmt.Errorf("%s: %d codes for %d vertices: %w", methodSnapshotQuotes, len(codes), d.n, ErrBadSize)
		}

		base := codes[0]
		rates := make([]float64, len(codes))
		quoted := make([]bool, len(codes))
		var i, j int
		for _, s := range snapshots {
			for i = range codes {
				rates[i], quoted[i] = s.rate(base, codes[i])
			}
			for i = range codes {
				if !quoted[i] {
					continue
				}
				for j = range codes {
					if i == j || !quoted[j] {
						continue
					}
					d.add(i, j, rates[j]/rates[i])
				}
			}
		}

		return nil
	}
}
