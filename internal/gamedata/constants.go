package gamedata

// File names inside the game data directory
const (
	ItemsFile  = "items.json"
	DropsFile  = "drops.json"
	TablesFile = "tables.json"
)

// Schema paths, relative to the module root
const (
	ItemsSchemaPath  = "configs/schemas/items.schema.json"
	DropsSchemaPath  = "configs/schemas/drops.schema.json"
	TablesSchemaPath = "configs/schemas/tables.schema.json"
)

// Error context messages for wrapped errors during loading
const (
	ErrContextFailedToReadFile  = "failed to read game data file"
	ErrContextFailedToParseFile = "failed to parse game data file"
	ErrContextSchemaValidation  = "schema validation failed"
	ErrMsgNoItemsLoaded         = "no items loaded"
)

// Log messages
const (
	LogMsgGameDataLoaded   = "Game data loaded"
	LogMsgGameDataReloaded = "Game data reloaded"
	LogMsgUnknownDropItem  = "Drop entry references an unknown item"
)

// Log field keys
const (
	LogFieldBox    = "box"
	LogFieldGroup  = "group"
	LogFieldItem   = "item"
	LogFieldDir    = "dir"
	LogFieldCounts = "counts"
)
