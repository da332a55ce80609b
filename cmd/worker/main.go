package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/vst-mis/vst-mis/internal/app"
	"github.com/vst-mis/vst-mis/internal/catalog"
	"github.com/vst-mis/vst-mis/internal/dashboard"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
	"github.com/vst-mis/vst-mis/internal/platform/cache"
	"github.com/vst-mis/vst-mis/internal/platform/db"
	"github.com/vst-mis/vst-mis/internal/production"
	"github.com/vst-mis/vst-mis/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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
	kpiRepo := dashboard.NewKPIRepository(pool)

	orderService := orders.NewService(orders.NewRepository(pool), bundleCache)
	dealerService := dealers.NewService(dealers.NewRepository(pool), bundleCache)
	inventoryService := inventory.NewService(inventory.NewRepository(pool), bundleCache)

	dashboardService := dashboard.NewService(
		orderService,
		dealerService,
		inventoryService,
		catalog.NewRepository(pool),
		production.NewRepository(pool),
		kpiRepo,
		bundleCache,
	)

	kpiJob := jobs.NewKPIRefresher(pool, kpiRepo, bundleCache, logger)
	warmupJob := jobs.NewDashboardWarmer(dashboardService, logger)

	kpiTask, err := jobs.NewKPIRefreshTask(time.Now())
	if err != nil {
		logger.Error("build kpi task", slog.Any("error", err))
		os.Exit(1)
	}
	warmupTask, err := jobs.NewDashboardWarmupTask(time.Now())
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskKPIRefresh, Handler: kpiJob.Handle},
			{Type: jobs.TaskDashboardWarmup, Handler: warmupJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 1 * * *", Task: kpiTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "*/10 * * * *", Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(1)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting worker")
	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
