package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/resolve_display_price"
	"github.com/murkotick/configurable-price-service/internal/pkg/logger"
)

// DisplayPriceHandler serves display price lookups as JSON.
type DisplayPriceHandler struct {
	resolve      *resolve_display_price.Interactor
	logger       *slog.Logger
	defaultStore int64
}

func NewDisplayPriceHandler(resolve *resolve_display_price.Interactor, l *slog.Logger, defaultStore int64) *DisplayPriceHandler {
	return &DisplayPriceHandler{resolve: resolve, logger: l, defaultStore: defaultStore}
}

// DisplayPriceResponse is the JSON body of a display price lookup.
type DisplayPriceResponse struct {
	ProductID     string `json:"product_id"`
	StoreID       int64  `json:"store_id"`
	DisplayPrice  string `json:"display_price"`
	BaselinePrice string `json:"baseline_price"`
	Overridden    bool   `json:"overridden"`
	Reason        string `json:"reason,omitempty"`
	VariantCount  int    `json:"variant_count"`
}

type response struct {
	Data  any            `json:"data,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// GetDisplayPrice handles GET /v1/products/{productID}/display-price?store_id=.
func (h *DisplayPriceHandler) GetDisplayPrice(w http.ResponseWriter, r *http.Request) {
	storeID := h.defaultStore
	if raw := r.URL.Query().Get("store_id"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "INVALID_INPUT", "store_id must be a non-negative integer")
			return
		}
		storeID = n
	}

	out, err := h.resolve.Execute(r.Context(), resolve_display_price.Request{
		ProductID: chi.URLParam(r, "productID"),
		StoreID:   storeID,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			writeError(w, r, http.StatusGatewayTimeout, "TIMEOUT", "catalog lookup timed out")
			return
		}
		h.logger.ErrorContext(r.Context(), "resolve display price failed",
			slog.String("correlation_id", logger.CorrelationIDFromContext(r.Context())),
			slog.String("product_id", chi.URLParam(r, "productID")),
			slog.String("error", err.Error()),
		)
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, response{Data: toResponse(out)})
}

func toResponse(out *dto.DisplayPriceDTO) DisplayPriceResponse {
	return DisplayPriceResponse{
		ProductID:     out.ProductID,
		StoreID:       out.StoreID,
		DisplayPrice:  out.DisplayPrice,
		BaselinePrice: out.BaselinePrice,
		Overridden:    out.Overridden,
		Reason:        out.Reason,
		VariantCount:  out.VariantCount,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, response{Error: &errorResponse{
		Code:      code,
		Message:   message,
		RequestID: logger.CorrelationIDFromContext(r.Context()),
	}})
}
