package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WorldLoot_Go/internal/config"
	"github.com/osse101/WorldLoot_Go/internal/database"
	"github.com/osse101/WorldLoot_Go/internal/database/postgres"
	"github.com/osse101/WorldLoot_Go/internal/droplog"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/worker"
)

// DropLog holds the optional drop audit trail. Reader is nil and Recorder
// discards everything when no database is configured.
type DropLog struct {
	DB       *pgxpool.Pool
	Workers  *worker.Pool
	Recorder droplog.Recorder
	Reader   droplog.Reader
}

// InitializeDropLog connects and migrates the drop log database and starts
// its insert workers. The workers run on their own context so a shutdown
// signal does not abort inserts still in the queue.
func InitializeDropLog(ctx context.Context, cfg *config.Config) (*DropLog, error) {
	if !cfg.DropLogEnabled() {
		logger.FromContext(ctx).Info(LogMsgDropLogDisabled)
		return &DropLog{Recorder: droplog.NewNopRecorder()}, nil
	}

	db, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrateDatabase, err)
	}

	repo := postgres.NewDropLogRepository(db)
	workers := worker.NewPool(cfg.DropLogWorkers, cfg.DropLogQueueSize)
	workers.Start(context.WithoutCancel(ctx))

	logger.FromContext(ctx).Info(LogMsgDropLogReady,
		"workers", cfg.DropLogWorkers,
		"queue_size", cfg.DropLogQueueSize)

	return &DropLog{
		DB:       db,
		Workers:  workers,
		Recorder: droplog.NewRecorder(repo, workers),
		Reader:   repo,
	}, nil
}

// Enabled reports whether drops are persisted
func (d *DropLog) Enabled() bool {
	return d.DB != nil
}

// CheckHealth pings the database when the drop log is enabled
func (d *DropLog) CheckHealth(ctx context.Context) error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Ping(ctx)
}
