// SPDX-License-Identifier: MIT
//
// File: source.go
// Role: Cache-first rate source with request deduplication and a built-in
//       fallback table.

package ecb

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Origins reported by Source.Fetch.
const (
	OriginCache    = "cache"
	OriginNetwork  = "ecb"
	OriginFallback = "fallback"
)

// Fallback is the table used when no feed data is available.
var Fallback = []Rate{
	{Currency: "USD", Rate: 1.09},
	{Currency: "JPY", Rate: 164.7},
	{Currency: "GBP", Rate: 0.85},
	{Currency: "CHF", Rate: 0.97},
	{Currency: "CAD", Rate: 1.47},
	{Currency: "AUD", Rate: 1.65},
	{Currency: "CNY", Rate: 7.93},
}

// Rates is the outcome of a Source fetch.
type Rates struct {
	Kind      Kind
	Origin    string // OriginCache, OriginNetwork or OriginFallback
	Snapshots []Snapshot
}

// Fetcher is the network side of a Source; *Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, kind Kind) ([]Snapshot, error)
}

// Source resolves reference rates: cache first, then the network, then the
// fallback table. Concurrent calls for the same kind share one fetch.
type Source struct {
	Fetcher Fetcher
	Cache   *Cache // optional
	Logger  zerolog.Logger
	// OnError, when set, is told about each cache or network failure that
	// Fetch absorbed. origin is OriginCache or OriginNetwork.
	OnError func(origin string, err error)

	now   func() time.Time
	group singleflight.Group
}

// NewSource wires a Source; cache may be nil.
func NewSource(f Fetcher, cache *Cache, logger zerolog.Logger) *Source {
	return &Source{Fetcher: f, Cache: cache, Logger: logger, now: time.Now}
}

// Fetch returns rates for kind. Network and cache failures degrade to the
// fallback table and are only logged; the returned error is limited to
// ErrUnknownKind and cancellation of ctx.
//
// Callers sharing an in-flight fetch each wait on their own ctx. The shared
// fetch is detached from any one caller's cancellation and is bounded by the
// Fetcher's own timeout instead.
func (s *Source) Fetch(ctx context.Context, kind Kind) (*Rates, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(string(kind), func() (any, error) {
		return s.resolve(detached, kind)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.Logger.Debug().Str("kind", string(kind)).Msg("shared in-flight rate fetch")
		}

		return res.Val.(*Rates), nil
	}
}

func (s *Source) resolve(ctx context.Context, kind Kind) (*Rates, error) {
	log := s.Logger.With().Str("kind", string(kind)).Logger()

	if s.Cache != nil {
		snaps, fresh, err := s.Cache.Load(kind)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("ignoring unreadable rate cache")
			s.reportError(OriginCache, err)
		case fresh:
			log.Info().Int("snapshots", len(snaps)).Msg("using cached exchange rates")
			return &Rates{Kind: kind, Origin: OriginCache, Snapshots: snaps}, nil
		}
	}

	if s.Fetcher != nil {
		snaps, err := s.Fetcher.Fetch(ctx, kind)
		if err == nil && len(snaps) == 0 {
			err = ErrEmptyFeed
		}
		if err == nil {
			log.Info().Int("snapshots", len(snaps)).Str("latest", snaps[0].Date).Msg("fetched exchange rates")
			if s.Cache != nil {
				if cerr := s.Cache.Store(kind, snaps); cerr != nil {
					log.Warn().Err(cerr).Msg("could not update rate cache")
				}
			}
			return &Rates{Kind: kind, Origin: OriginNetwork, Snapshots: snaps}, nil
		}
		log.Error().Err(err).Msg("rate fetch failed")
		s.reportError(OriginNetwork, err)
	}

	log.Warn().Int("currencies", len(Fallback)).Msg("using built-in fallback rates")

	return &Rates{Kind: kind, Origin: OriginFallback, Snapshots: []Snapshot{s.fallback()}}, nil
}

func (s *Source) reportError(origin string, err error) {
	if s.OnError != nil {
		s.OnError(origin, err)
	}
}

func (s *Source) fallback() Snapshot {
	now := time.Now
	if s.now != nil {
		now = s.now
	}

	return Snapshot{Date: now().Format(dateLayout), Rates: append([]Rate(nil), Fallback...)}
}
