package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WorldLoot_Go/internal/domain"
)

var allEnvVars = []string{
	EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion, EnvAPIKey, EnvTrustedProxies,
	EnvGameDataDir, EnvGlobalDropRate, EnvBossDropRate, EnvRareDropRate, EnvMesoDropRate,
	EnvDatabaseURL, EnvDBMaxConns, EnvDBMaxConnIdleTime, EnvDBMaxConnLifetime,
	EnvDropLogWorkers, EnvDropLogQueueSize, EnvStatsCacheSize, EnvStatsCacheTTL, EnvShutdownTimeout, EnvGameDataReload,
}

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv(EnvAPIKey, "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "world-loot", cfg.ServiceName)
		assert.Equal(t, "configs/gamedata", cfg.GameDataDir)
		assert.Equal(t, domain.DefaultRates(), cfg.Rates)
		assert.False(t, cfg.DropLogEnabled())
		assert.Equal(t, 4, cfg.DropLogWorkers)
		assert.Equal(t, 1024, cfg.DropLogQueueSize)
		assert.Equal(t, 4096, cfg.StatsCacheSize)
		assert.Equal(t, 30*time.Minute, cfg.StatsCacheTTL)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Zero(t, cfg.GameDataReload, "polling is off by default")
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvGlobalDropRate, "1.5")
		t.Setenv(EnvBossDropRate, "2")
		t.Setenv(EnvRareDropRate, "0")
		t.Setenv(EnvMesoDropRate, "0.5")
		t.Setenv(EnvDatabaseURL, "postgres://loot:secret@db:5432/loot?sslmode=disable")
		t.Setenv(EnvDBMaxConns, "25")
		t.Setenv(EnvDBMaxConnIdleTime, "90s")
		t.Setenv(EnvDropLogQueueSize, "16")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, ,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, domain.Rates{GlobalDropRate: 1.5, BossDropRate: 2, RareDropRate: 0, MesoDropRate: 0.5}, cfg.Rates)
		assert.True(t, cfg.DropLogEnabled())
		assert.Equal(t, 25, cfg.DBMaxConns)
		assert.Equal(t, 90*time.Second, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 16, cfg.DropLogQueueSize)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("reports every invalid value", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvDropLogWorkers, "four")
		t.Setenv(EnvStatsCacheTTL, "10")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvDropLogWorkers)
		assert.Contains(t, err.Error(), EnvStatsCacheTTL)
	})
}

func TestLoad_Rates(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"zero is allowed", "0", false},
		{"fractional", "0.25", false},
		{"negative", "-1", true},
		{"not a number", "fast", true},
		{"NaN", "NaN", true},
		{"infinite", "+Inf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvAPIKey, "test-key")
			t.Setenv(EnvRareDropRate, tt.value)

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), EnvRareDropRate)
				return
			}
			require.NoError(t, err)
			assert.GreaterOrEqual(t, cfg.Rates.RareDropRate, 0.0)
		})
	}
}

func TestConfig_Warnings(t *testing.T) {
	t.Run("clean production config", func(t *testing.T) {
		cfg := &Config{
			APIKey:         "d3adb33f",
			Environment:    EnvironmentProduction,
			LogFormat:      "json",
			DatabaseURL:    "postgres://db/loot",
			DropLogWorkers: 4,
		}
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("flags insecure and degraded settings", func(t *testing.T) {
		cfg := &Config{
			APIKey:      ExampleAPIKey,
			Environment: EnvironmentProduction,
			LogFormat:   "text",
		}
		warnings := cfg.Warnings()
		require.Len(t, warnings, 4)
		assert.Contains(t, warnings[0], "API_KEY")
		assert.Contains(t, warnings[1], "drop log is disabled")
		assert.Contains(t, warnings[2], "LOG_FORMAT")
		assert.Contains(t, warnings[3], "DROPLOG_WORKERS")
	})

	t.Run("game data polling interval", func(t *testing.T) {
		tests := []struct {
			interval time.Duration
			enabled  bool
			warns    bool
		}{
			{0, false, false},
			{time.Second, false, true},
			{-time.Minute, false, true},
			{MinGameDataReload, true, false},
			{time.Hour, true, false},
		}
		for _, tt := range tests {
			cfg := &Config{APIKey: "k", DatabaseURL: "postgres://db/loot", DropLogWorkers: 1, GameDataReload: tt.interval}
			assert.Equal(t, tt.enabled, cfg.GameDataReloadEnabled(), tt.interval)
			assert.Equal(t, tt.warns, len(cfg.Warnings()) == 1, tt.interval)
		}
	})
}
