package domain

import (
	"time"

	"github.com/google/uuid"
)

// DropRecord is one audit row describing an item handed out by a resolution
type DropRecord struct {
	ItemUID     uuid.UUID `json:"item_uid"`
	BoxKind     BoxKind   `json:"box_kind"`
	BoxID       int       `json:"box_id"`
	CharacterID int64     `json:"character_id,omitempty"`
	ItemID      int       `json:"item_id"`
	Rarity      int       `json:"rarity"`
	Amount      int       `json:"amount"`
	RequestID   string    `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
