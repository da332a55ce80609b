package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vst-mis/vst-mis/internal/auth"
	"github.com/vst-mis/vst-mis/internal/dashboard"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
	"github.com/vst-mis/vst-mis/internal/platform/httpx"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Pool             *pgxpool.Pool
	AuthService      *auth.Service
	AuthHandler      *auth.Handler
	DashboardHandler *dashboard.Handler
	OrdersHandler    *orders.Handler
	InventoryHandler *inventory.Handler
	DealersHandler   *dealers.Handler
}

// NewRouter constructs the chi.Router with the MIS defaults. Health and the
// register/login endpoints stay public; everything else under /api requires a
// bearer token.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			if err := params.Pool.Ping(req.Context()); err != nil {
				httpx.JSON(w, http.StatusServiceUnavailable, map[string]any{
					"ok":    false,
					"error": err.Error(),
				})
				return
			}
			httpx.JSON(w, http.StatusOK, map[string]any{
				"ok":       true,
				"database": "connected",
			})
		})

		params.AuthHandler.MountRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(params.AuthService.RequireAuth)
			params.AuthHandler.MountProtectedRoutes(r)
			params.DashboardHandler.MountRoutes(r)
			params.OrdersHandler.MountRoutes(r)
			params.InventoryHandler.MountRoutes(r)
			params.DealersHandler.MountRoutes(r)
		})
	})

	return r
}
