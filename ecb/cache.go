// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: On-disk YAML cache of the last successful fetch.
//
// The cache holds one entry. It is fresh only when it was written on the
// current local date for the requested feed kind; anything else is a miss.

package ecb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheFile is the file name used inside the cache directory.
const CacheFile = "ecb_rates.yaml"

const dateLayout = "2006-01-02"

// cacheEntry is the persisted document.
type cacheEntry struct {
	Fetched   string     `yaml:"fetched"`
	Kind      Kind       `yaml:"kind"`
	Snapshots []Snapshot `yaml:"snapshots"`
}

// Cache persists fetched snapshots under Dir.
type Cache struct {
	Dir string

	now func() time.Time
}

// NewCache returns a cache rooted at dir.
func NewCache(dir string) *Cache {
	return &Cache{Dir: dir, now: time.Now}
}

func (c *Cache) path() string { return filepath.Join(c.Dir, CacheFile) }

func (c *Cache) today() string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}

	return now().Format(dateLayout)
}

// Load returns the cached snapshots for kind when they are fresh.
// A missing or stale file is (nil, false, nil); a corrupt file is an error.
func (c *Cache) Load(kind Kind) ([]Snapshot, bool, error) {
	raw, err := os.ReadFile(c.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ecb: read cache: %w", err)
	}

	var e cacheEntry
	if err = yaml.Unmarshal(raw, &e); err != nil {
		return nil, false, fmt.Errorf("ecb: parse cache %s: %w", c.path(), err)
	}
	if e.Kind != kind || e.Fetched != c.today() || len(e.Snapshots) == 0 {
		return nil, false, nil
	}

	return e.Snapshots, true, nil
}

// Store replaces the cache with snaps for kind, stamped with today's date.
// The file is written to a temporary name and renamed into place.
func (c *Cache) Store(kind Kind, snaps []Snapshot) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("ecb: create cache dir: %w", err)
	}
	raw, err := yaml.Marshal(cacheEntry{Fetched: c.today(), Kind: kind, Snapshots: snaps})
	if err != nil {
		return fmt.Errorf("ecb: encode cache: %w", err)
	}

	tmp, err := os.CreateTemp(c.Dir, CacheFile+".*")
	if err != nil {
		return fmt.Errorf("ecb: write cache: %w", err)
	}
	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("ecb: write cache: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("ecb: write cache: %w", err)
	}
	if err = os.Rename(tmp.Name(), c.path()); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("ecb: write cache: %w", err)
	}

	return nil
}
