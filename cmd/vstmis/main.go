package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vst-mis/vst-mis/internal/app"
	"github.com/vst-mis/vst-mis/internal/auth"
	"github.com/vst-mis/vst-mis/internal/catalog"
	"github.com/vst-mis/vst-mis/internal/dashboard"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
	"github.com/vst-mis/vst-mis/internal/platform/cache"
	"github.com/vst-mis/vst-mis/internal/platform/db"
	"github.com/vst-mis/vst-mis/internal/production"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Tokens live in redis, so the server cannot run without it.
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	bundleCache := dashboard.NewCache(redisClient, cfg.BundleCacheTTL)

	tokenStore := auth.NewTokenStore(redisClient, cfg.TokenTTL)
	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, tokenStore)
	authHandler := auth.NewHandler(logger, authService)

	orderRepo := orders.NewRepository(pool)
	orderService := orders.NewService(orderRepo, bundleCache)
	orderHandler := orders.NewHandler(logger, orderService)

	inventoryRepo := inventory.NewRepository(pool)
	inventoryService := inventory.NewService(inventoryRepo, bundleCache)
	inventoryHandler := inventory.NewHandler(logger, inventoryService)

	dealerRepo := dealers.NewRepository(pool)
	dealerService := dealers.NewService(dealerRepo, bundleCache)
	dealerHandler := dealers.NewHandler(logger, dealerService)

	catalogRepo := catalog.NewRepository(pool)
	productionRepo := production.NewRepository(pool)
	kpiRepo := dashboard.NewKPIRepository(pool)

	dashboardService := dashboard.NewService(
		orderService,
		dealerService,
		inventoryService,
		catalogRepo,
		productionRepo,
		kpiRepo,
		bundleCache,
	)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Pool:             pool,
		AuthService:      authService,
		AuthHandler:      authHandler,
		DashboardHandler: dashboardHandler,
		OrdersHandler:    orderHandler,
		InventoryHandler: inventoryHandler,
		DealersHandler:   dealerHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
