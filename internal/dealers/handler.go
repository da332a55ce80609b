package dealers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vst-mis/vst-mis/internal/platform/httpx"
)

// Handler wires the dealer HTTP surface.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers dealer routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/dealers", h.Create)
}

// Create registers a new dealer and echoes the stored record.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDealerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Missing fields")
		return
	}
	dealer, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicateCode) {
			httpx.Error(w, http.StatusBadRequest, "Dealer code already exists")
			return
		}
		h.logger.Error("create dealer", slog.String("code", req.Code), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, dealer)
}
