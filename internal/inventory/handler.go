package inventory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vst-mis/vst-mis/internal/platform/httpx"
)

// Handler wires the inventory HTTP surface.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers inventory routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Patch("/inventory/{sku}/stock", h.AdjustStock)
}

type adjustStockRequest struct {
	Adjust *int `json:"adjust"`
}

type adjustStockResponse struct {
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

// AdjustStock applies a signed stock delta and returns the post-clamp level.
func (h *Handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	var req adjustStockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Adjust == nil {
		httpx.Error(w, http.StatusBadRequest, "adjust (number) required")
		return
	}
	item, err := h.service.AdjustStock(r.Context(), sku, *req.Adjust)
	if err != nil {
		if errors.Is(err, ErrUnknownSKU) {
			httpx.Error(w, http.StatusNotFound, "SKU not found")
			return
		}
		h.logger.Error("adjust stock", slog.String("sku", sku), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, adjustStockResponse{SKU: item.SKU, Stock: item.Stock})
}
