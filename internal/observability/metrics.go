package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the service.
type Metrics struct {
	FeedFetches       *prometheus.CounterVec // labels: outcome={success,error}
	FeedFetchDuration prometheus.Histogram
	QuakesLoaded      prometheus.Gauge
	SessionReady      prometheus.Gauge

	// View serving metrics.
	ViewsComposed    prometheus.Counter
	WebsocketClients prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakewatch",
			Name:      "feed_fetches_total",
			Help:      "Feed fetch attempts by outcome.",
		}, []string{"outcome"}),
		FeedFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quakewatch",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of a complete feed fetch and normalization.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
		QuakesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakewatch",
			Name:      "quakes_loaded",
			Help:      "Number of quakes in the current snapshot.",
		}),
		SessionReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakewatch",
			Name:      "session_ready",
			Help:      "1 once the session holds a successfully loaded snapshot.",
		}),
		ViewsComposed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakewatch",
			Name:      "views_composed_total",
			Help:      "Total filtered views composed for API requests.",
		}),
		WebsocketClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakewatch",
			Name:      "websocket_clients",
			Help:      "Connected websocket clients.",
		}),
	}

	prometheus.MustRegister(
		m.FeedFetches,
		m.FeedFetchDuration,
		m.QuakesLoaded,
		m.SessionReady,
		m.ViewsComposed,
		m.WebsocketClients,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedFetches:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakewatch", Name: "feed_fetches_total"}, []string{"outcome"}),
		FeedFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quakewatch", Name: "feed_fetch_duration_seconds"}),
		QuakesLoaded:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakewatch", Name: "quakes_loaded"}),
		SessionReady:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakewatch", Name: "session_ready"}),
		ViewsComposed:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quakewatch", Name: "views_composed_total"}),
		WebsocketClients:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakewatch", Name: "websocket_clients"}),
	}
}
