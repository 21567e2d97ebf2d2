// SPDX-License-Identifier: MIT

// Package config loads negcycle settings from defaults, an optional YAML or
// TOML file, and NEGCYCLE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full settings tree. Field tags cover both file formats.
type Config struct {
	Logging struct {
		Level  string `yaml:"level" toml:"level"`
		Pretty bool   `yaml:"pretty" toml:"pretty"`
	} `yaml:"logging" toml:"logging"`
	Detect struct {
		MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"` // -1 = min(V, 1000)
		Source        int     `yaml:"source" toml:"source"`
		VirtualSource bool    `yaml:"virtual_source" toml:"virtual_source"`
		SampleSize    int     `yaml:"sample_size" toml:"sample_size"`
		Seed          int64   `yaml:"seed" toml:"seed"`
		StartAmount   float64 `yaml:"start_amount" toml:"start_amount"`
		Timeout       string  `yaml:"timeout" toml:"timeout"` // Go duration; empty = none
	} `yaml:"detect" toml:"detect"`
	Synthetic struct {
		NumCurrencies   int   `yaml:"num_currencies" toml:"num_currencies"`
		NumTransactions int   `yaml:"num_transactions" toml:"num_transactions"`
		InsertCycle     bool  `yaml:"insert_cycle" toml:"insert_cycle"`
		Seed            int64 `yaml:"seed" toml:"seed"` // 0 = from clock
	} `yaml:"synthetic" toml:"synthetic"`
	ECB struct {
		UseRealData   bool   `yaml:"use_real_data" toml:"use_real_data"`
		UseHistorical bool   `yaml:"use_historical" toml:"use_historical"`
		CacheDir      string `yaml:"cache_dir" toml:"cache_dir"`
		DailyURL      string `yaml:"daily_url" toml:"daily_url"`
		HistoricalURL string `yaml:"historical_url" toml:"historical_url"`
	} `yaml:"ecb" toml:"ecb"`
	Watch struct {
		Interval    string `yaml:"interval" toml:"interval"`
		MetricsAddr string `yaml:"metrics_addr" toml:"metrics_addr"`
	} `yaml:"watch" toml:"watch"`
}

// Default returns the documented defaults.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Detect.MaxIterations = -1
	c.Detect.VirtualSource = true
	c.Detect.SampleSize = 10000
	c.Detect.StartAmount = 1000
	c.Synthetic.NumCurrencies = 500
	c.Synthetic.NumTransactions = 100000
	c.Synthetic.InsertCycle = true
	c.ECB.CacheDir = "data_cache"
	c.ECB.DailyURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"
	c.ECB.HistoricalURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist-90d.xml"
	c.Watch.Interval = "1h"
	c.Watch.MetricsAddr = ":9464"

	return c
}

// Load builds a Config from defaults, the file at path (skipped when empty)
// and the environment, then validates it.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.readFile(path); err != nil {
			return c, err
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}

	return c, c.Validate()
}

// readFile decodes YAML (.yaml, .yml) or TOML (.toml) over c.
func (c *Config) readFile(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err = yaml.Unmarshal(b, c); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config extension %q", ErrInvalid, ext)
	}

	return nil
}

// applyEnv overrides c from NEGCYCLE_* variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("NEGCYCLE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("NEGCYCLE_LOG_PRETTY"); v != "" {
		c.Logging.Pretty = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("NEGCYCLE_MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NEGCYCLE_MAX_ITERATIONS: %w", err)
		}
		c.Detect.MaxIterations = n
	}
	if v := os.Getenv("NEGCYCLE_CACHE_DIR"); v != "" {
		c.ECB.CacheDir = v
	}
	if v := os.Getenv("NEGCYCLE_METRICS_ADDR"); v != "" {
		c.Watch.MetricsAddr = v
	}
	if v := os.Getenv("NEGCYCLE_WATCH_INTERVAL"); v != "" {
		c.Watch.Interval = v
	}

	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Detect.MaxIterations < -1:
		return fmt.Errorf("%w: detect.max_iterations=%d (use -1 for automatic)", ErrInvalid, c.Detect.MaxIterations)
	case c.Detect.Source < 0:
		return fmt.Errorf("%w: detect.source=%d", ErrInvalid, c.Detect.Source)
	case c.Detect.SampleSize <= 0:
		return fmt.Errorf("%w: detect.sample_size=%d", ErrInvalid, c.Detect.SampleSize)
	case !(c.Detect.StartAmount > 0):
		return fmt.Errorf("%w: detect.start_amount=%v", ErrInvalid, c.Detect.StartAmount)
	case c.Synthetic.NumCurrencies < 1:
		return fmt.Errorf("%w: synthetic.num_currencies=%d", ErrInvalid, c.Synthetic.NumCurrencies)
	case c.Synthetic.NumTransactions < 0:
		return fmt.Errorf("%w: synthetic.num_transactions=%d", ErrInvalid, c.Synthetic.NumTransactions)
	}
	if _, err := c.DetectTimeout(); err != nil {
		return err
	}
	if _, err := c.WatchInterval(); err != nil {
		return err
	}

	return nil
}

// DetectTimeout parses detect.timeout; empty means no limit (0).
func (c Config) DetectTimeout() (time.Duration, error) {
	return parseDuration("detect.timeout", c.Detect.Timeout, false)
}

// WatchInterval parses watch.interval, which must be positive.
func (c Config) WatchInterval() (time.Duration, error) {
	return parseDuration("watch.interval", c.Watch.Interval, true)
}

func parseDuration(key, v string, required bool) (time.Duration, error) {
	if v == "" && !required {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	if d < 0 || (required && d == 0) {
		return 0, fmt.Errorf("%w: %s=%s", ErrInvalid, key, v)
	}

	return d, nil
}
