// SPDX-License-Identifier: MIT
//
// File: feed.go
// Role: Feed kinds, snapshot types and the eurofxref XML decoder.

package ecb

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors.
var (
	// ErrUnknownKind indicates a feed kind other than KindDaily/KindHistorical.
	ErrUnknownKind = errors.New("ecb: unknown feed kind")

	// ErrBadStatus indicates a non-2xx HTTP response.
	ErrBadStatus = errors.New("ecb: unexpected HTTP status")

	// ErrEmptyFeed indicates a well-formed document without any rate.
	ErrEmptyFeed = errors.New("ecb: feed contains no rates")

	// ErrMalformedFeed indicates a document that is not a eurofxref envelope.
	ErrMalformedFeed = errors.New("ecb: malformed feed")
)

// Kind selects a feed.
type Kind string

const (
	KindDaily      Kind = "daily"
	KindHistorical Kind = "hist-90d"
)

// Valid reports whether k names a supported feed.
func (k Kind) Valid() bool {
	return k == KindDaily || k == KindHistorical
}

// Rate is one currency's reference rate against EUR.
type Rate struct {
	Currency string  `yaml:"currency" json:"currency"`
	Rate     float64 `yaml:"rate" json:"rate"`
}

// Snapshot is the set of reference rates published for one date.
type Snapshot struct {
	Date  string `yaml:"date" json:"date"`
	Rates []Rate `yaml:"rates" json:"rates"`
}

// envelope mirrors gesmes:Envelope/Cube/Cube[@time]/Cube[@currency,@rate].
// Element names carry no namespace so both the gesmes and eurofxref
// namespaces match.
type envelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Cube    struct {
		Days []struct {
			Time  string `xml:"time,attr"`
			Rates []struct {
				Currency string  `xml:"currency,attr"`
				Rate     float64 `xml:"rate,attr"`
			} `xml:"Cube"`
		} `xml:"Cube"`
	} `xml:"Cube"`
}

// Decode parses a eurofxref document into snapshots, in document order
// (newest first for the historical feed). Days without rates are dropped.
func Decode(r io.Reader) ([]Snapshot, error) {
	var env envelope
	if err := xml.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	out := make([]Snapshot, 0, len(env.Cube.Days))
	for _, d := range env.Cube.Days {
		if len(d.Rates) == 0 {
			continue
		}
		s := Snapshot{Date: d.Time, Rates: make([]Rate, 0, len(d.Rates))}
		for _, r := range d.Rates {
			s.Rates = append(s.Rates, Rate{Currency: r.Currency, Rate: r.Rate})
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrEmptyFeed
	}

	return out, nil
}
