// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negcycle/internal/config"
	"github.com/katalvlaran/negcycle/internal/metrics"
	"github.com/katalvlaran/negcycle/market"
	"github.com/katalvlaran/negcycle/scan"
)

const dailyFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube>
		<Cube time='2024-03-01'>
			<Cube currency='USD' rate='1.0834'/>
			<Cube currency='JPY' rate='162.45'/>
			<Cube currency='GBP' rate='0.85618'/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

// execute runs the CLI with args, returning stdout. Logs go to a buffer.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func decodeSummaries(t *testing.T, out string) []scan.Summary {
	t.Helper()
	var sums []scan.Summary
	dec := json.NewDecoder(strings.NewReader(out))
	for {
		var s scan.Summary
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return sums
		}
		require.NoError(t, err)
		sums = append(sums, s)
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestRoot_SyntheticJSON(t *testing.T) {
	out, err := execute(t, "--num-currencies", "8", "--num-transactions", "40", "--seed", "7", "--json")
	require.NoError(t, err)

	sums := decodeSummaries(t, out)
	require.Len(t, sums, 1)
	s := sums[0]
	assert.Equal(t, "synthetic", s.Origin)
	assert.Equal(t, 8, s.Vertices)
	assert.Equal(t, -1, s.Source)
	assert.NotEmpty(t, s.RunID)
	require.True(t, s.Found)
	require.NotNil(t, s.Cycle)
	assert.Greater(t, s.Cycle.ProfitFactor, 1.0)
	assert.True(t, s.Cycle.IsArbitrage)
	assert.InDelta(t, 1000*s.Cycle.ProfitFactor, s.Cycle.FinalAmount, 1e-9)
	assert.Equal(t, s.Cycle.Vertices[0], s.Cycle.Vertices[len(s.Cycle.Vertices)-1])
}

func TestRoot_NoCycleText(t *testing.T) {
	out, err := execute(t, "--num-currencies", "1", "--num-transactions", "0", "--insert-cycle=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Market:      synthetic, 1 currencies, 0 rates")
	assert.Contains(t, out, "No negative cycle detected")
}

func TestRoot_InsertedCycleText(t *testing.T) {
	out, err := execute(t, "--num-currencies", "6", "--num-transactions", "0", "--seed", "3", "--start-amount", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "ARBITRAGE OPPORTUNITY DETECTED")
	assert.Contains(t, out, "STEP  FROM")
	assert.Contains(t, out, "Profit factor:       1.081067 (+8.11% per full cycle)")
	assert.Contains(t, out, "100.00 units -> 108.11 units (+8.11)")
}

func TestRoot_Sweep(t *testing.T) {
	out, err := execute(t, "--num-currencies", "6", "--num-transactions", "0", "--seed", "1", "--sweep", "3", "--json")
	require.NoError(t, err)

	sums := decodeSummaries(t, out)
	require.Len(t, sums, 1)
	s := sums[0]
	require.True(t, s.Found)
	assert.GreaterOrEqual(t, s.Source, 0)
	assert.Less(t, s.Source, 3)
	assert.InDelta(t, 1.05*0.98*1.02*1.03, s.Cycle.ProfitFactor, 1e-9)
	assert.Len(t, s.Cycle.Hops, 4)
}

func TestRoot_ConfigFileAndFlags(t *testing.T) {
	path := writeFile(t, "negcycle.yaml", `
synthetic:
  num_currencies: 6
  num_transactions: 30
  insert_cycle: false
  seed: 3
detect:
  start_amount: 500
`)
	out, err := execute(t, "--config", path, "--num-currencies", "5", "--json")
	require.NoError(t, err)

	sums := decodeSummaries(t, out)
	require.Len(t, sums, 1)
	assert.Equal(t, 5, sums[0].Vertices)
	assert.LessOrEqual(t, sums[0].Edges, 30)
	if sums[0].Cycle != nil {
		assert.Equal(t, 500.0, sums[0].Cycle.StartAmount)
	}
}

func TestRoot_InvalidSettings(t *testing.T) {
	_, err := execute(t, "--max-iterations=-5")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "--config", writeFile(t, "negcycle.ini", "x=1"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "unexpected")
	require.Error(t, err)

	_, err = execute(t, "--insert-cycle", "--no-insert-cycle")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRoot_NoInsertCycleSpelling(t *testing.T) {
	out, err := execute(t, "--num-currencies=10", "--num-transactions=50", "--no-insert-cycle", "--seed", "3", "--json")
	require.NoError(t, err)
	sums := decodeSummaries(t, out)
	require.Len(t, sums, 1)
	assert.Equal(t, 10, sums[0].Vertices)
}

func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		env   map[string]string
		check func(t *testing.T, c config.Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c config.Config) {
				assert.Equal(t, config.Default(), c)
			},
		},
		{
			name: "source disables the virtual source",
			args: []string{"--source", "3"},
			check: func(t *testing.T, c config.Config) {
				assert.Equal(t, 3, c.Detect.Source)
				assert.False(t, c.Detect.VirtualSource)
			},
		},
		{
			name: "explicit virtual source wins",
			args: []string{"--source", "3", "--virtual-source"},
			check: func(t *testing.T, c config.Config) {
				assert.True(t, c.Detect.VirtualSource)
			},
		},
		{
			name: "seed feeds generation and sampling",
			args: []string{"--seed", "42"},
			check: func(t *testing.T, c config.Config) {
				assert.Equal(t, int64(42), c.Detect.Seed)
				assert.Equal(t, int64(42), c.Synthetic.Seed)
			},
		},
		{
			name: "no-insert-cycle turns the planted loop off",
			args: []string{"--no-insert-cycle"},
			check: func(t *testing.T, c config.Config) {
				assert.False(t, c.Synthetic.InsertCycle)
			},
		},
		{
			name: "insert-cycle=false",
			args: []string{"--insert-cycle=false"},
			check: func(t *testing.T, c config.Config) {
				assert.False(t, c.Synthetic.InsertCycle)
			},
		},
		{
			name: "timeout",
			args: []string{"--timeout", "1500ms"},
			check: func(t *testing.T, c config.Config) {
				d, err := c.DetectTimeout()
				require.NoError(t, err)
				assert.Equal(t, 1500*time.Millisecond, d)
			},
		},
		{
			name: "env applies without a flag",
			env:  map[string]string{"NEGCYCLE_MAX_ITERATIONS": "7"},
			check: func(t *testing.T, c config.Config) {
				assert.Equal(t, 7, c.Detect.MaxIterations)
			},
		},
		{
			name: "flag beats env",
			args: []string{"--max-iterations", "9"},
			env:  map[string]string{"NEGCYCLE_MAX_ITERATIONS": "7"},
			check: func(t *testing.T, c config.Config) {
				assert.Equal(t, 9, c.Detect.MaxIterations)
			},
		},
		{
			name: "real data switches",
			args: []string{"--use-real-data", "--use-historical", "--cache-dir", "/tmp/x"},
			check: func(t *testing.T, c config.Config) {
				assert.True(t, c.ECB.UseRealData)
				assert.True(t, c.ECB.UseHistorical)
				assert.Equal(t, "/tmp/x", c.ECB.CacheDir)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			f := &cliFlags{}
			cmd := newRootCmdWith(f)
			require.NoError(t, cmd.ParseFlags(tc.args))

			c, err := resolveConfig(cmd, f)
			require.NoError(t, err)
			tc.check(t, c)
		})
	}
}

func TestRoot_RealDataThenCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(dailyFeed))
	}))
	defer srv.Close()

	path := writeFile(t, "negcycle.yaml", fmt.Sprintf(`
ecb:
  cache_dir: %q
  daily_url: %q
  historical_url: %q
`, t.TempDir(), srv.URL+"/daily.xml", srv.URL+"/hist.xml"))

	for _, origin := range []string{"ecb", "cache"} {
		out, err := execute(t, "--config", path, "--use-real-data", "--json")
		require.NoError(t, err)

		sums := decodeSummaries(t, out)
		require.Len(t, sums, 1)
		assert.Equal(t, origin, sums[0].Origin)
		assert.Equal(t, 4, sums[0].Vertices)
		assert.Equal(t, 12, sums[0].Edges)
		assert.Equal(t, "2024-03-01", sums[0].AsOf)
	}
	require.Equal(t, int32(1), hits.Load())
}

func TestWatch_Synthetic(t *testing.T) {
	out, err := execute(t, "watch",
		"--use-real-data=false", "--count", "2", "--interval", "1ms", "--metrics-addr=",
		"--num-currencies", "5", "--num-transactions", "0", "--seed", "2", "--json")
	require.NoError(t, err)

	sums := decodeSummaries(t, out)
	require.Len(t, sums, 2)
	for _, s := range sums {
		assert.True(t, s.Found)
		assert.Equal(t, "synthetic", s.Origin)
	}
	assert.NotEqual(t, sums[0].RunID, sums[1].RunID)
}

type failingProvider struct{}

func (failingProvider) FetchRates(context.Context) (*market.Market, error) {
	return nil, errors.New("feed down")
}

func TestWatcher_FetchErrorKeepsGoing(t *testing.T) {
	var buf bytes.Buffer
	w := &watcher{
		provider: failingProvider{},
		scanner:  scan.New(zerolog.Nop(), nil),
		out:      &buf,
		logger:   zerolog.Nop(),
	}
	require.NoError(t, w.run(t.Context(), time.Millisecond, 3))
	assert.Empty(t, buf.String())
}

func TestMetricsMux(t *testing.T) {
	m, reg := metrics.Init(zerolog.Nop())
	m.ObserveRun(metrics.OutcomeFound, 3, time.Millisecond, false)
	srv := httptest.NewServer(metricsMux(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `negcycle_detection_runs_total{outcome="found"} 1`)

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
