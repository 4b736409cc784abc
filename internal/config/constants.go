package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvGameDataDir       = "GAMEDATA_DIR"
	EnvGlobalDropRate    = "LOOT_GLOBAL_DROP_RATE"
	EnvBossDropRate      = "LOOT_BOSS_DROP_RATE"
	EnvRareDropRate      = "LOOT_RARE_DROP_RATE"
	EnvMesoDropRate      = "MESOS_DROP_RATE"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvDropLogWorkers    = "DROPLOG_WORKERS"
	EnvDropLogQueueSize  = "DROPLOG_QUEUE_SIZE"
	EnvStatsCacheSize    = "STATS_CACHE_SIZE"
	EnvStatsCacheTTL     = "STATS_CACHE_TTL"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvGameDataReload    = "GAMEDATA_RELOAD_INTERVAL"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "world-loot"
	DefaultVersion           = "dev"
	DefaultGameDataDir       = "configs/gamedata"
	DefaultDropRate          = 1.0
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
	DefaultDropLogWorkers    = 4
	DefaultDropLogQueueSize  = 1024
	DefaultStatsCacheSize    = 4096
	DefaultStatsCacheTTL     = 30 * time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultGameDataReload    = time.Duration(0)
)

// Placeholder values shipped in .env.example
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)

// MinGameDataReload is the shortest accepted game data polling interval
const MinGameDataReload = 10 * time.Second

// EnvironmentProduction is the ENVIRONMENT value used in production deployments
const EnvironmentProduction = "production"
