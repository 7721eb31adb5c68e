package models

import (
	"time"

	"github.com/google/uuid"
)

// Column is an ordered child of a board.
type Column struct {
	ID         uuid.UUID `json:"id"`
	BoardID    uuid.UUID `json:"boardId"`
	Title      string    `json:"title"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Card is an ordered child of a column.
type Card struct {
	ID         uuid.UUID `json:"id"`
	ColumnID   uuid.UUID `json:"columnId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Content    string    `json:"content"`
	Votes      int       `json:"votes"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ActionItem is a board-scoped follow-up captured during a retro.
type ActionItem struct {
	ID        uuid.UUID  `json:"id"`
	BoardID   uuid.UUID  `json:"boardId"`
	OwnerID   *uuid.UUID `json:"ownerId,omitempty"`
	Content   string     `json:"content"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
}
