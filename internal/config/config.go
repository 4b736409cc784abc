package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/osse101/WorldLoot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for admin routes
	// TrustedProxies are peers whose X-Forwarded-For header is believed
	TrustedProxies []string

	GameDataDir string
	Rates       domain.Rates

	// DatabaseURL is optional; empty disables the drop log
	DatabaseURL       string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	DropLogWorkers   int
	DropLogQueueSize int
	StatsCacheSize   int
	StatsCacheTTL    time.Duration
	ShutdownTimeout  time.Duration
	// GameDataReload polls the game data directory; 0 disables polling
	GameDataReload time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Port:        env.int(EnvPort, DefaultPort),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		APIKey:      getEnv(EnvAPIKey, ""),
		TrustedProxies: splitList(getEnv(EnvTrustedProxies, "")),
		GameDataDir: getEnv(EnvGameDataDir, DefaultGameDataDir),
		Rates: domain.Rates{
			GlobalDropRate: env.rate(EnvGlobalDropRate),
			BossDropRate:   env.rate(EnvBossDropRate),
			RareDropRate:   env.rate(EnvRareDropRate),
			MesoDropRate:   env.rate(EnvMesoDropRate),
		},
		DatabaseURL:       getEnv(EnvDatabaseURL, ""),
		DBMaxConns:        env.int(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: env.duration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: env.duration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		DropLogWorkers:    env.int(EnvDropLogWorkers, DefaultDropLogWorkers),
		DropLogQueueSize:  env.int(EnvDropLogQueueSize, DefaultDropLogQueueSize),
		StatsCacheSize:    env.int(EnvStatsCacheSize, DefaultStatsCacheSize),
		StatsCacheTTL:     env.duration(EnvStatsCacheTTL, DefaultStatsCacheTTL),
		ShutdownTimeout:   env.duration(EnvShutdownTimeout, DefaultShutdownTimeout),
		GameDataReload:    env.duration(EnvGameDataReload, DefaultGameDataReload),
	}

	if err := env.err(); err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s environment variable must be set for security", EnvAPIKey)
	}

	return cfg, nil
}

// DropLogEnabled reports whether a database is configured for the drop log
func (c *Config) DropLogEnabled() bool {
	return c.DatabaseURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma separated list, dropping blank entries
func splitList(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
}

// envReader parses typed variables and collects every parse failure
type envReader struct {
	errs []error
}

func (r *envReader) int(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s value: %w", key, err))
		return defaultValue
	}
	return v
}

func (r *envReader) duration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s value: %w", key, err))
		return defaultValue
	}
	return v
}

// rate parses a multiplier, which must be finite and >= 0
func (r *envReader) rate(key string) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return DefaultDropRate
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s value: %w", key, err))
		return DefaultDropRate
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		r.errs = append(r.errs, fmt.Errorf("invalid %s value: %w", key, domain.ErrInvalidRate))
		return DefaultDropRate
	}
	return v
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}
