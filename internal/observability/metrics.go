package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "oahu_surf"

// Fetch sources
const (
	SourceReport = "report"
	SourceTides  = "tides"
)

// Fetch outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeCached  = "cached"
)

// Metrics holds the Prometheus counters, histograms, and gauges for report loading.
type Metrics struct {
	FetchTotal    *prometheus.CounterVec   // labels: source={report,tides}, outcome={success,error,cached}
	FetchDuration *prometheus.HistogramVec // labels: source
	CacheTotal    *prometheus.CounterVec   // labels: result={store,hit,miss,error}
	ForecastDays  *prometheus.GaugeVec     // labels: shore
	LastLoad      prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Upstream fetches by source and outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Upstream fetch and parse duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"source"}),
		CacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_total",
			Help:      "Offline response cache operations by result.",
		}, []string{"result"}),
		ForecastDays: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "forecast_days",
			Help:      "Number of forecast days parsed for each shore in the last load.",
		}, []string{"shore"}),
		LastLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_load_timestamp_seconds",
			Help:      "Unix time of the last successful report load.",
		}),
	}

	prometheus.MustRegister(
		m.FetchTotal,
		m.FetchDuration,
		m.CacheTotal,
		m.ForecastDays,
		m.LastLoad,
	)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can create as many as they need.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchTotal:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "fetch_total"}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "fetch_duration_seconds"}, []string{"source"}),
		CacheTotal:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "cache_total"}, []string{"result"}),
		ForecastDays:  prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: "forecast_days"}, []string{"shore"}),
		LastLoad:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "last_load_timestamp_seconds"}),
	}
}
