package postgres

// Drop log queries
const (
	TableDropLog = "drop_log"

	QueryListDropsByCharacter = `
		SELECT item_uid, box_kind, box_id, character_id, item_id, rarity, amount, COALESCE(request_id, ''), created_at
		FROM drop_log
		WHERE character_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
)

// DefaultListLimit caps list queries when the caller passes no limit
const DefaultListLimit = 100

// Error Messages - Drop Log Operations
const (
	ErrMsgFailedToCopyDrops  = "failed to copy drop records"
	ErrMsgFailedToQueryDrops = "failed to query drop records"
	ErrMsgFailedToScanDrop   = "failed to scan drop record"
)
