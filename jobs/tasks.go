package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskKPIRefresh recomputes the stored KPI snapshot from live collections.
	TaskKPIRefresh = "kpi:refresh"
	// TaskDashboardWarmup pre-populates the bundle cache.
	TaskDashboardWarmup = "dashboard:warmup"
)

// KPIRefreshPayload carries scheduling metadata.
type KPIRefreshPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewKPIRefreshTask constructs an Asynq task for the KPI recompute.
func NewKPIRefreshTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(KPIRefreshPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskKPIRefresh, body, asynq.Queue(QueueDefault)), nil
}

// DashboardWarmupPayload carries scheduling metadata.
type DashboardWarmupPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewDashboardWarmupTask constructs an Asynq task for the cache warmup.
func NewDashboardWarmupTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(DashboardWarmupPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, body, asynq.Queue(QueueDefault)), nil
}
