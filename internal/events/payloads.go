package events

import (
	"github.com/retroboardhq/retroboard/internal/models"
)

// Event payload types shared between the API apps and the gateway.

// EventType identifies what changed on a board.
type EventType string

const (
	EventTypeBoardUpdated       EventType = "BOARD_UPDATED"
	EventTypeBoardDeleted       EventType = "BOARD_DELETED"
	EventTypeColumnsUpdated     EventType = "COLUMNS_UPDATED"
	EventTypeCardsUpdated       EventType = "CARDS_UPDATED"
	EventTypeActionItemsUpdated EventType = "ACTION_ITEMS_UPDATED"
)

// BoardUpdatedPayload carries the board after a successful mutation,
// including timer and ownership changes.
type BoardUpdatedPayload struct {
	Board *models.Board `json:"board"`
}

// BoardDeletedPayload is the payload for a BOARD_DELETED event.
type BoardDeletedPayload struct {
	BoardID string `json:"boardId"`
}

// ColumnsUpdatedPayload carries the full column set of a board after a
// column mutation, so clients replace rather than patch local state.
type ColumnsUpdatedPayload struct {
	BoardID string          `json:"boardId"`
	Columns []models.Column `json:"columns"`
}

// CardsUpdatedPayload carries the full card set of a column after a
// card mutation.
type CardsUpdatedPayload struct {
	BoardID  string        `json:"boardId"`
	ColumnID string        `json:"columnId"`
	Cards    []models.Card `json:"cards"`
}

// ActionItemsUpdatedPayload carries the full action item set of a board
// after an action item mutation.
type ActionItemsUpdatedPayload struct {
	BoardID string              `json:"boardId"`
	Items   []models.ActionItem `json:"items"`
}
