package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes recorded by the display price usecase.
const (
	OutcomeOverride      = "override"
	OutcomeInvalidParent = "invalid_parent"
	OutcomeNoVariants    = "no_variants"
	OutcomeNotFound      = "not_found"
	OutcomeError         = "error"
)

// Metrics holds the service's collectors. They are registered on the
// Registerer passed to New so tests can use isolated registries.
type Metrics struct {
	Resolutions  *prometheus.CounterVec
	VariantCount prometheus.Histogram
	RPCs         *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Resolutions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "configurable_price_resolutions_total",
				Help: "Display price resolutions by outcome",
			},
			[]string{"outcome"},
		),
		VariantCount: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "configurable_price_variants",
				Help:    "Saleable variants considered per resolution",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		RPCs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grpc_server_handled_total",
				Help: "Total number of RPCs completed on the server",
			},
			[]string{"method", "code"},
		),
		RPCDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "grpc_server_handling_seconds",
				Help:    "RPC handling duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ObserveResolution records one display price resolution.
func (m *Metrics) ObserveResolution(outcome string, variants int) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(outcome).Inc()
	m.VariantCount.Observe(float64(variants))
}
