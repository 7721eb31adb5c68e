package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Board is the top-level retrospective entity. Settings is an opaque
// JSONB document persisted and echoed verbatim. A soft-deleted board
// keeps its row and stays addressable by id.
type Board struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	OwnerID    uuid.UUID       `json:"ownerId"`
	Settings   json.RawMessage `json:"settings,omitempty"`
	InviteCode *string         `json:"inviteCode,omitempty"`
	Timer      *Timer          `json:"timer"`
	Deleted    bool            `json:"deleted"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// BoardAccess grants a user visibility into a board beyond its owner.
type BoardAccess struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"boardId"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
