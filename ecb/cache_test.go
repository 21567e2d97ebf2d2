// SPDX-License-Identifier: MIT

package ecb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock(date string) func() time.Time {
	ts, err := time.Parse(dateLayout, date)
	if err != nil {
		panic(err)
	}

	return func() time.Time { return ts.Add(12 * time.Hour) }
}

func sampleSnapshots() []Snapshot {
	return []Snapshot{{Date: "2024-03-01", Rates: []Rate{{Currency: "USD", Rate: 1.0834}, {Currency: "GBP", Rate: 0.85618}}}}
}

func TestCache_RoundTripAndFreshness(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	c := &Cache{Dir: dir, now: fixedClock("2024-03-01")}

	snaps, fresh, err := c.Load(KindDaily)
	require.NoError(t, err)
	require.False(t, fresh, "missing file is a miss")
	require.Nil(t, snaps)

	require.NoError(t, c.Store(KindDaily, sampleSnapshots()))

	snaps, fresh, err = c.Load(KindDaily)
	require.NoError(t, err)
	require.True(t, fresh)
	require.Equal(t, sampleSnapshots(), snaps)

	_, fresh, err = c.Load(KindHistorical)
	require.NoError(t, err)
	require.False(t, fresh, "other feed kind is a miss")

	c.now = fixedClock("2024-03-02")
	_, fresh, err = c.Load(KindDaily)
	require.NoError(t, err)
	require.False(t, fresh, "yesterday's file is stale")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	require.Equal(t, CacheFile, entries[0].Name())
}

func TestCache_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CacheFile), []byte("snapshots: [unclosed"), 0o644))

	_, fresh, err := NewCache(dir).Load(KindDaily)
	require.Error(t, err)
	require.False(t, fresh)
}
