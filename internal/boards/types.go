package boards

import "encoding/json"

// CreateBoardRequest represents the data needed to create a new board
type CreateBoardRequest struct {
	Title    string          `json:"title" validate:"required"`
	Columns  []string        `json:"columns"`
	Settings json.RawMessage `json:"settings"`
}

// UpdateBoardRequest represents the partial update of a board. Nil/empty
// fields are left untouched.
type UpdateBoardRequest struct {
	Title    *string         `json:"title"`
	Settings json.RawMessage `json:"settings"`
}

// TransferOwnershipRequest names the new owner by nickname
type TransferOwnershipRequest struct {
	Nickname string `json:"nickname" validate:"required"`
}

// JoinBoardRequest carries an invite code
type JoinBoardRequest struct {
	InviteCode string `json:"inviteCode" validate:"required"`
}
