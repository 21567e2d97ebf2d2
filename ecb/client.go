// SPDX-License-Identifier: MIT
//
// File: client.go
// Role: HTTP client for the two ECB reference-rate feeds.

package ecb

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Public feed locations.
const (
	DailyURL      = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"
	HistoricalURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist-90d.xml"
)

// DefaultTimeout bounds a single feed request.
const DefaultTimeout = 10 * time.Second

// Client downloads and decodes ECB feeds.
type Client struct {
	HTTPClient    *http.Client
	DailyURL      string
	HistoricalURL string
}

// NewClient returns a Client pointed at the public feeds.
func NewClient() *Client {
	return &Client{
		HTTPClient:    newHTTPClient(DefaultTimeout),
		DailyURL:      DailyURL,
		HistoricalURL: HistoricalURL,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: tr, Timeout: timeout}
}

// Daily fetches the latest business day.
func (c *Client) Daily(ctx context.Context) ([]Snapshot, error) {
	return c.Fetch(ctx, KindDaily)
}

// Historical90d fetches the last 90 business days, newest first.
func (c *Client) Historical90d(ctx context.Context) ([]Snapshot, error) {
	return c.Fetch(ctx, KindHistorical)
}

// Fetch downloads and decodes the feed selected by kind.
func (c *Client) Fetch(ctx context.Context, kind Kind) ([]Snapshot, error) {
	var url string
	switch kind {
	case KindDaily:
		url = c.DailyURL
	case KindHistorical:
		url = c.HistoricalURL
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ecb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ecb: GET %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrBadStatus, url, resp.Status)
	}

	snaps, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ecb: GET %s: %w", url, err)
	}

	return snaps, nil
}
