package droplog

import "time"

// Insert retry policy
const (
	InsertAttempts = 3
	InsertDelay    = 50 * time.Millisecond
)

// Log messages
const (
	LogMsgQueueFull    = "Drop log queue full, discarding records"
	LogMsgInsertFailed = "Failed to persist drop records"
	LogMsgRetrying     = "Retrying drop record insert"
)

// Log field keys
const (
	LogFieldBox     = "box"
	LogFieldKind    = "kind"
	LogFieldRecords = "records"
	LogFieldAttempt = "attempt"
	LogFieldError   = "error"
)
