package bootstrap

import (
	"log/slog"

	"github.com/osse101/WorldLoot_Go/internal/config"
	"github.com/osse101/WorldLoot_Go/internal/logger"
)

// SetupLogger initializes the default logger from the app configuration and
// reports any configuration warnings through it.
func SetupLogger(cfg *config.Config) *slog.Logger {
	// Source locations only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"gamedata_dir", cfg.GameDataDir,
		"rates", cfg.Rates,
		"drop_log", cfg.DropLogEnabled(),
		"trusted_proxies", cfg.TrustedProxies)

	for _, w := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "warning", w)
	}

	return l
}
