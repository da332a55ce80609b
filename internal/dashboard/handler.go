package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vst-mis/vst-mis/internal/platform/httpx"
)

// Handler serves the dashboard bundle.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers dashboard routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/data", h.Bundle)
}

// Bundle returns every collection plus derived KPI in one payload.
func (h *Handler) Bundle(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.service.Bundle(r.Context())
	if err != nil {
		h.logger.Error("assemble bundle", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bundle)
}
