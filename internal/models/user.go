package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user. Nickname is the external identifier
// used for board ownership transfer.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}
