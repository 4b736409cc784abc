package handler

// Error messages for HTTP responses
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Operation error messages
	ErrMsgDropLogDisabled   = "Drop log is not enabled"
	ErrMsgEncodeFailed      = "Failed to encode JSON response"
	ErrMsgWriteBufferFailed = "Failed to write response buffer"
)

// Success messages
const (
	MsgGameDataReloaded = "Game data reloaded"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgRateChanged         = "Loot rate changed"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgRequestDecodeFailed = "Failed to decode %s request"
	LogMsgRequestDecoded      = "%s request decoded"
	LogMsgServiceError        = "%s failed"
)

// Action names used in logs
const (
	ActionResolveGlobal     = "Resolve global box"
	ActionResolveIndividual = "Resolve individual box"
	ActionResolveByRarity   = "Resolve box by rarity"
	ActionSetRate           = "Set rate"
	ActionReloadGameData    = "Reload game data"
	ActionListDrops         = "List drops"
)

// Query parameters
const (
	QueryParamCharacterID = "character_id"
	QueryParamLimit       = "limit"
)

// Request defaults and bounds
const (
	// NoSelection marks an absent index or group id
	NoSelection      = -1
	DefaultListLimit = 50
)
