package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vst-mis/vst-mis/internal/dashboard"
)

// KPIRefresher recomputes the stored KPI snapshot from the live collections.
type KPIRefresher struct {
	pool   *pgxpool.Pool
	kpi    *dashboard.KPIRepository
	cache  *dashboard.Cache
	logger *slog.Logger
}

// NewKPIRefresher constructs a KPIRefresher.
func NewKPIRefresher(pool *pgxpool.Pool, kpi *dashboard.KPIRepository, cache *dashboard.Cache, logger *slog.Logger) *KPIRefresher {
	return &KPIRefresher{pool: pool, kpi: kpi, cache: cache, logger: logger}
}

// Handle processes TaskKPIRefresh tasks. Revenue is stored in ₹ crore.
func (j *KPIRefresher) Handle(ctx context.Context, t *asynq.Task) error {
	var payload KPIRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	var totalAmount, totalUnits int64
	err := j.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(qty), 0) FROM orders`).
		Scan(&totalAmount, &totalUnits)
	if err != nil {
		return err
	}

	var planned, produced int64
	err = j.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(planned), 0), COALESCE(SUM(produced), 0) FROM production`).
		Scan(&planned, &produced)
	if err != nil {
		return err
	}

	revenueCr := totalAmount / 1e7
	var capacity int64
	if planned > 0 {
		capacity = produced * 100 / planned
	}

	for name, value := range map[string]int64{
		"revenue":         revenueCr,
		"unitsYTD":        totalUnits,
		"capacityPercent": capacity,
	} {
		if err := j.kpi.Store(ctx, name, value); err != nil {
			return err
		}
	}

	if err := j.cache.Bump(ctx); err != nil {
		return err
	}

	j.logger.Info("kpi refreshed",
		slog.Int64("revenue_cr", revenueCr),
		slog.Int64("units_ytd", totalUnits),
		slog.Int64("capacity_percent", capacity))
	return nil
}
