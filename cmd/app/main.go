package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/WorldLoot_Go/internal/bootstrap"
	"github.com/osse101/WorldLoot_Go/internal/config"
	"github.com/osse101/WorldLoot_Go/internal/handler"
	"github.com/osse101/WorldLoot_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := bootstrap.InitializeEngine(ctx, cfg, nil)
	if err != nil {
		slog.Error("Failed to initialize drop engine", "error", err)
		os.Exit(1)
	}

	dropLog, err := bootstrap.InitializeDropLog(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize drop log", "error", err)
		os.Exit(1)
	}

	maintenance := bootstrap.InitializeMaintenance(ctx, cfg, engine, dropLog)

	checks := map[string]handler.HealthChecker{
		"gamedata": engine.GameData,
	}
	if dropLog.Enabled() {
		checks["database"] = dropLog
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, server.Dependencies{
		Drops:           engine.Drops,
		Boxes:           engine.GameData,
		Recorder:        dropLog.Recorder,
		Rates:           engine.Rates,
		GameData:        engine.GameData,
		DropLog:         dropLog.Reader,
		ReadinessChecks: checks,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		Maintenance: maintenance,
		DropLog:     dropLog,
	})
}
