package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for a generator run. Each Metrics
// carries its own registry, so the preview server's /metrics handler and the
// textfile export see exactly this run's collectors, and tests never hit
// "already registered" panics on the default registry.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal   prometheus.Counter
	RunFailures prometheus.Counter

	DatasetRows       prometheus.Gauge
	DistinctLocations prometheus.Gauge
	PaletteSize       prometheus.Gauge

	PrepareDuration prometheus.Histogram
	RenderDuration  *prometheus.HistogramVec // label: artifact={html,image}

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates all collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ejc_map",
			Name:      "runs_total",
			Help:      "Total generator runs started.",
		}),
		RunFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ejc_map",
			Name:      "run_failures_total",
			Help:      "Total generator runs that aborted with an error.",
		}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ejc_map",
			Name:      "dataset_rows",
			Help:      "Edition rows loaded from the dataset CSV.",
		}),
		DistinctLocations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ejc_map",
			Name:      "distinct_locations",
			Help:      "Distinct host locations after grouping.",
		}),
		PaletteSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ejc_map",
			Name:      "palette_size",
			Help:      "Color tokens loaded from the palette file.",
		}),
		PrepareDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ejc_map",
			Name:      "prepare_duration_seconds",
			Help:      "Duration of the group-join-color data preparation step.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ejc_map",
			Name:      "render_duration_seconds",
			Help:      "Duration of artifact rendering by artifact type.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"artifact"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ejc_map",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ejc_map",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.RunsTotal,
		m.RunFailures,
		m.DatasetRows,
		m.DistinctLocations,
		m.PaletteSize,
		m.PrepareDuration,
		m.RenderDuration,
		m.GeocodeRequests,
		m.GeocodeCache,
	)

	return m
}

// Handler returns an HTTP handler exposing this run's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteTextfile dumps the registry in the node_exporter textfile collector
// format, so one-shot runs can still be scraped.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
