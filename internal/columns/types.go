package columns

import "github.com/google/uuid"

// CreateColumnRequest represents the data needed to create a column
type CreateColumnRequest struct {
	BoardID    uuid.UUID `json:"boardId" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	OrderIndex int       `json:"orderIndex"`
}

// UpdateColumnRequest represents a partial column update (rename and/or
// reorder)
type UpdateColumnRequest struct {
	Title      *string `json:"title"`
	OrderIndex *int    `json:"orderIndex"`
}
