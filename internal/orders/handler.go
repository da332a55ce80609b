package orders

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vst-mis/vst-mis/internal/platform/httpx"
)

// Handler wires the order HTTP surface.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers order routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/orders", h.Create)
	r.Patch("/orders/{id}/status", h.SetStatus)
	r.Get("/next-order-id", h.NextID)
}

// Create stores a submitted order and echoes it back.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Missing fields")
		return
	}
	order, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			httpx.Error(w, http.StatusBadRequest, "Order id already exists")
			return
		}
		h.logger.Error("create order", slog.String("id", req.ID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

// SetStatus transitions an order's status.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req SetStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Status == "" {
		httpx.Error(w, http.StatusBadRequest, "status required")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "status required")
		return
	}
	if err := h.service.SetStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, ErrUnknownOrder) {
			httpx.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("set order status", slog.String("id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, StatusResponse{ID: id, Status: req.Status})
}

// NextID returns the next free order id.
func (h *Handler) NextID(w http.ResponseWriter, r *http.Request) {
	nextID, err := h.service.NextID(r.Context())
	if err != nil {
		h.logger.Error("next order id", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, NextIDResponse{NextID: nextID})
}
