package itemdrop

// Log messages
const (
	LogMsgBoxNotFound          = "Drop box not found"
	LogMsgItemNotFound         = "Item metadata not found, skipping"
	LogMsgCurrencyScaledAway   = "Currency amount scaled to zero, skipping"
	LogMsgSelectionOutOfRange  = "Selection index out of range"
	LogMsgNoJobRecommendedItem = "No job-recommended entry in zero-weight group"
)

// Log field keys for structured logging
const (
	LogFieldBox    = "box"
	LogFieldGroup  = "group"
	LogFieldItem   = "item"
	LogFieldIndex  = "index"
	LogFieldKind   = "kind"
	LogFieldAmount = "amount"
)
