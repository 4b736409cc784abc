package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/WorldLoot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	Maintenance *Maintenance
	DropLog     *DropLog
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Maintenance jobs
// 3. Drop log workers (flush queued inserts)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Maintenance != nil {
		components.Maintenance.Stop()
	}

	if dl := components.DropLog; dl != nil && dl.Enabled() {
		slog.Info(LogMsgDrainingDropLog, "pending", dl.Workers.Pending())
		dl.Workers.Stop()
		dl.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
