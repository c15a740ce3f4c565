// Package metrics holds the Prometheus collectors of the feed.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketfeed"

// Metrics is the set of collectors updated by the tick loop.
type Metrics struct {
	registry *prometheus.Registry

	EntriesRead      *prometheus.CounterVec
	MalformedEntries *prometheus.CounterVec
	ReadErrors       *prometheus.CounterVec
	PublishErrors    *prometheus.CounterVec
	StoreErrors      *prometheus.CounterVec
	Instruments      prometheus.Gauge
	TickDuration     prometheus.Histogram
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		EntriesRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_entries_read_total",
			Help:      "Stream entries read per stream kind",
		}, []string{"stream"}),
		MalformedEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_entries_malformed_total",
			Help:      "Stream entries skipped because they could not be parsed",
		}, []string{"stream"}),
		ReadErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_read_errors_total",
			Help:      "Failed stream reads",
		}, []string{"stream"}),
		PublishErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Failed publications per channel kind",
		}, []string{"channel"}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Failed snapshot or archive writes",
		}, []string{"store"}),
		Instruments: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "instruments",
			Help:      "Number of instruments processed per tick",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Duration of one processing pass over all instruments",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
	}

	m.registry.MustRegister(
		m.EntriesRead,
		m.MalformedEntries,
		m.ReadErrors,
		m.PublishErrors,
		m.StoreErrors,
		m.Instruments,
		m.TickDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveTick records the duration of a tick that started at start.
func (m *Metrics) ObserveTick(start time.Time) {
	m.TickDuration.Observe(time.Since(start).Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
