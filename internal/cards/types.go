package cards

import "github.com/google/uuid"

// CreateCardRequest represents the data needed to create a card
type CreateCardRequest struct {
	ColumnID   uuid.UUID `json:"columnId" validate:"required"`
	Content    string    `json:"content" validate:"required"`
	OrderIndex int       `json:"orderIndex"`
}

// UpdateCardRequest represents a partial card update. ColumnID moves the
// card to another column of the same board.
type UpdateCardRequest struct {
	Content    *string    `json:"content"`
	ColumnID   *uuid.UUID `json:"columnId"`
	OrderIndex *int       `json:"orderIndex"`
}

// VoteRequest adjusts a card's vote count. Delta defaults to +1.
type VoteRequest struct {
	Delta int `json:"delta"`
}
