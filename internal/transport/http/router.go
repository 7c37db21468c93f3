package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/resolve_display_price"
	"github.com/murkotick/configurable-price-service/internal/pkg/metrics"
)

// NewRouter creates a chi router with the health, metrics and display price routes.
// gatherer backs /metrics; m may be nil.
func NewRouter(
	resolve *resolve_display_price.Interactor,
	gatherer prometheus.Gatherer,
	m *metrics.Metrics,
	logger *slog.Logger,
	defaultStore int64,
) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(RequestLogging(logger))
	r.Use(Metrics(m))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	h := NewDisplayPriceHandler(resolve, logger, defaultStore)
	r.Route("/v1/products", func(r chi.Router) {
		r.Get("/{productID}/display-price", h.GetDisplayPrice)
	})

	return r
}
