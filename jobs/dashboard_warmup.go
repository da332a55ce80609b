package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/vst-mis/vst-mis/internal/dashboard"
)

// DashboardWarmer pre-assembles the bundle so the first request after an
// invalidation does not pay the fan-out cost.
type DashboardWarmer struct {
	service *dashboard.Service
	logger  *slog.Logger
}

// NewDashboardWarmer constructs a DashboardWarmer.
func NewDashboardWarmer(service *dashboard.Service, logger *slog.Logger) *DashboardWarmer {
	return &DashboardWarmer{service: service, logger: logger}
}

// Handle processes TaskDashboardWarmup tasks.
func (j *DashboardWarmer) Handle(ctx context.Context, t *asynq.Task) error {
	var payload DashboardWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if err := j.service.Warm(ctx); err != nil {
		return err
	}
	j.logger.Info("dashboard cache warmed")
	return nil
}
