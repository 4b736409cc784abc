package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgBoxNotFound     = "drop box not found"
	ErrMsgItemNotFound    = "item not found"
	ErrMsgInvalidWeight   = "weight must be positive"
	ErrMsgInvalidRate     = "rate must be >= 0"
	ErrMsgUnknownRateKey  = "unknown rate key"
	ErrMsgInvalidGameData = "invalid game data"
	ErrMsgDatabaseError   = "database error"
	ErrMsgQueueFull       = "queue is full"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrBoxNotFound     = errors.New(ErrMsgBoxNotFound)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidWeight   = errors.New(ErrMsgInvalidWeight)
	ErrInvalidRate     = errors.New(ErrMsgInvalidRate)
	ErrUnknownRateKey  = errors.New(ErrMsgUnknownRateKey)
	ErrInvalidGameData = errors.New(ErrMsgInvalidGameData)
	ErrDatabaseError   = errors.New(ErrMsgDatabaseError)
	ErrQueueFull       = errors.New(ErrMsgQueueFull)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
