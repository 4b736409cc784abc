package bootstrap

import (
	"context"
	"time"

	"github.com/osse101/WorldLoot_Go/internal/config"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
	"github.com/osse101/WorldLoot_Go/internal/scheduler"
	"github.com/osse101/WorldLoot_Go/internal/worker"
)

// Maintenance job settings
const (
	maintenanceWorkers   = 1
	maintenanceQueueSize = 4
	// DropLogGaugeInterval is how often the drop log backlog gauge is refreshed
	DropLogGaugeInterval = 15 * time.Second

	JobNameGameDataReload = "gamedata_reload"
	JobNameDropLogGauge   = "droplog_gauge"
)

// Maintenance runs periodic background jobs on a small dedicated pool
type Maintenance struct {
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// InitializeMaintenance schedules game data polling (when configured) and
// drop log backlog reporting (when the drop log is enabled).
func InitializeMaintenance(ctx context.Context, cfg *config.Config, engine *Engine, dropLog *DropLog) *Maintenance {
	pool := worker.NewPool(maintenanceWorkers, maintenanceQueueSize)
	pool.Start(context.WithoutCancel(ctx))
	sched := scheduler.New(pool)

	if cfg.GameDataReloadEnabled() {
		// A failed reload keeps the previous tables. The store counts it and the worker logs the error
		sched.Schedule(JobNameGameDataReload, cfg.GameDataReload, worker.JobFunc(engine.GameData.Reload))
		logger.FromContext(ctx).Info(LogMsgGameDataPolling, "interval", cfg.GameDataReload)
	}

	if dropLog != nil && dropLog.Enabled() {
		workers := dropLog.Workers
		sched.Schedule(JobNameDropLogGauge, DropLogGaugeInterval, worker.JobFunc(func(context.Context) error {
			metrics.DropLogPending.Set(float64(workers.Pending()))
			return nil
		}))
	}

	return &Maintenance{pool: pool, scheduler: sched}
}

// Stop stops the tickers, then waits for any job already running
func (m *Maintenance) Stop() {
	m.scheduler.Stop()
	m.pool.Stop()
}
