// SPDX-License-Identifier: MIT

// Package metrics exposes detection runs to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Outcome labels for RunsTotal.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Recorder receives detection observations. A nil *Metrics is a valid
// no-op Recorder.
type Recorder interface {
	ObserveRun(outcome string, passes int, elapsed time.Duration, capReached bool)
	ObserveProfit(factor float64)
	ObserveFetchError(origin string)
}

// Metrics holds the collectors registered by Init.
type Metrics struct {
	RunsTotal        *prometheus.CounterVec
	Passes           prometheus.Histogram
	DetectSeconds    prometheus.Histogram
	CapReachedTotal  prometheus.Counter
	LastProfitFactor prometheus.Gauge
	FetchErrorsTotal *prometheus.CounterVec
}

// New creates the collectors without registering them.
func New() *Metrics {
	return &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "negcycle_detection_runs_total",
			Help: "Detection runs by outcome",
		}, []string{"outcome"}),
		Passes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "negcycle_relaxation_passes",
			Help:    "Relaxation passes per run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 11),
		}),
		DetectSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "negcycle_detection_seconds",
			Help:    "Wall-clock time of relaxation plus detection",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16),
		}),
		CapReachedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "negcycle_iteration_cap_reached_total",
			Help: "Runs that ended without a relaxation fixed point",
		}),
		LastProfitFactor: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "negcycle_last_profit_factor",
			Help: "Profit factor of the most recently detected cycle",
		}),
		FetchErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "negcycle_provider_fetch_errors_total",
			Help: "Rate provider failures by origin",
		}, []string{"origin"}),
	}
}

// Init registers a fresh Metrics plus Go and process collectors on a new
// registry.
func Init(logger zerolog.Logger) (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	m := New()
	toRegister := []prometheus.Collector{
		m.RunsTotal, m.Passes, m.DetectSeconds, m.CapReachedTotal, m.LastProfitFactor, m.FetchErrorsTotal,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		if err := reg.Register(c); err != nil {
			logger.Warn().Err(err).Msg("metric registration failed")
		}
	}
	logger.Debug().Msg("prometheus metrics initialized")

	return m, reg
}

// Handler serves reg in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveRun records one detection run.
func (m *Metrics) ObserveRun(outcome string, passes int, elapsed time.Duration, capReached bool) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.Passes.Observe(float64(passes))
	m.DetectSeconds.Observe(elapsed.Seconds())
	if capReached {
		m.CapReachedTotal.Inc()
	}
}

// ObserveProfit records the profit factor of a detected cycle.
func (m *Metrics) ObserveProfit(factor float64) {
	if m == nil {
		return
	}
	m.LastProfitFactor.Set(factor)
}

// ObserveFetchError counts a provider failure.
func (m *Metrics) ObserveFetchError(origin string) {
	if m == nil {
		return
	}
	m.FetchErrorsTotal.WithLabelValues(origin).Inc()
}
