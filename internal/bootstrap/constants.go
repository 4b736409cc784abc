package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting drop service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Log messages for engine initialization
const (
	LogMsgEngineReady      = "Drop engine initialized"
	LogMsgStatsCachePurged = "Item stat cache purged after game data reload"
	LogMsgDropLogDisabled  = "DATABASE_URL not set, drop log disabled"
	LogMsgDropLogReady     = "Drop log initialized"
	LogMsgGameDataPolling  = "Game data polling enabled"
)

// Error contexts for initialization failures
const (
	ErrMsgResolveGameData = "failed to resolve game data directory"
	ErrMsgLoadGameData    = "failed to load game data"
	ErrMsgInitRates       = "invalid initial loot rates"
	ErrMsgConnectDatabase = "failed to connect to drop log database"
	ErrMsgMigrateDatabase = "failed to migrate drop log database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgDrainingDropLog      = "Draining drop log queue..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
