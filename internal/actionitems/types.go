package actionitems

import "github.com/google/uuid"

// CreateActionItemRequest represents the data needed to create an
// action item. Owner is optional: follow-ups can be unassigned.
type CreateActionItemRequest struct {
	BoardID uuid.UUID  `json:"boardId" validate:"required"`
	OwnerID *uuid.UUID `json:"ownerId"`
	Content string     `json:"content" validate:"required"`
}

// UpdateActionItemRequest represents a partial action item update
type UpdateActionItemRequest struct {
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}
