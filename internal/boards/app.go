package boards

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/rs/zerolog/log"
)

// BoardsRepository defines what the app layer needs from the repository
type BoardsRepository interface {
	CreateBoard(ctx context.Context, title string, ownerID uuid.UUID, settings json.RawMessage, inviteCode string) (*models.Board, error)
	GetBoard(ctx context.Context, id uuid.UUID) (*models.Board, error)
	GetBoardByInviteCode(ctx context.Context, inviteCode string) (*models.Board, error)
	ListBoardsForUser(ctx context.Context, userID uuid.UUID) ([]models.Board, error)
	UpdateBoard(ctx context.Context, id uuid.UUID, req UpdateBoardRequest) (*models.Board, error)
	SetTimer(ctx context.Context, id uuid.UUID, timer *models.Timer) (*models.Board, error)
	UpdateOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Board, error)
	UpdateInviteCode(ctx context.Context, id uuid.UUID, inviteCode string) (*models.Board, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*models.Board, error)
	GrantAccess(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) error
	HasAccess(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (bool, error)
}

// UserDirectory resolves users for ownership transfer
type UserDirectory interface {
	GetUserByNickname(ctx context.Context, nickname string) (*models.User, error)
}

// ColumnCreator seeds the initial columns of a fresh board. Implemented
// by the columns app and injected after construction to keep the
// dependency one-way at the package level.
type ColumnCreator interface {
	CreateInitialColumns(ctx context.Context, boardID uuid.UUID, titles []string) error
}

// App handles board business logic. Every successful mutation publishes
// exactly one event after the write; failed mutations publish nothing.
type App struct {
	repo          BoardsRepository
	users         UserDirectory
	publisher     events.Publisher
	columnCreator ColumnCreator
}

// NewApp creates a new boards App
func NewApp(repo BoardsRepository, users UserDirectory, publisher events.Publisher) *App {
	return &App{
		repo:      repo,
		users:     users,
		publisher: publisher,
	}
}

// SetColumnCreator wires the columns app in after both apps exist.
func (a *App) SetColumnCreator(creator ColumnCreator) {
	a.columnCreator = creator
}

// CreateBoard creates a board, grants the creator access and seeds the
// initial columns. No event: nobody can be subscribed to an id that did
// not exist yet.
func (a *App) CreateBoard(ctx context.Context, ownerID uuid.UUID, req CreateBoardRequest) (*models.Board, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	board, err := a.repo.CreateBoard(ctx, req.Title, ownerID, req.Settings, newInviteCode())
	if err != nil {
		return nil, err
	}

	if err := a.repo.GrantAccess(ctx, board.ID, ownerID); err != nil {
		return nil, err
	}

	if a.columnCreator != nil && len(req.Columns) > 0 {
		if err := a.columnCreator.CreateInitialColumns(ctx, board.ID, req.Columns); err != nil {
			return nil, fmt.Errorf("failed to seed columns: %w", err)
		}
	}

	log.Info().
		Str("board_id", board.ID.String()).
		Str("owner_id", ownerID.String()).
		Msg("created board")
	return board, nil
}

// GetBoard retrieves a board the viewer owns or was granted access to.
// Soft-deleted boards stay addressable.
func (a *App) GetBoard(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error) {
	return a.EnsureAccess(ctx, boardID, viewerID)
}

// ListBoards retrieves the viewer's non-deleted boards
func (a *App) ListBoards(ctx context.Context, viewerID uuid.UUID) ([]models.Board, error) {
	return a.repo.ListBoardsForUser(ctx, viewerID)
}

// UpdateBoard applies a partial title/settings update and announces it
func (a *App) UpdateBoard(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID, req UpdateBoardRequest) (*models.Board, error) {
	if req.Title == nil && len(req.Settings) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if req.Title != nil && *req.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	if _, err := a.EnsureAccess(ctx, boardID, viewerID); err != nil {
		return nil, err
	}

	board, err := a.repo.UpdateBoard(ctx, boardID, req)
	if err != nil {
		return nil, err
	}

	a.publisher.Publish(ctx, board.ID, events.EventTypeBoardUpdated, events.BoardUpdatedPayload{Board: board})
	return board, nil
}

// SetTimer runs the requested timer state through the transition rules,
// persists it and announces the board change.
func (a *App) SetTimer(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID, requested models.Timer) (*models.Board, error) {
	board, err := a.EnsureAccess(ctx, boardID, viewerID)
	if err != nil {
		return nil, err
	}

	next, err := ApplyTimerTransition(board.Timer, requested)
	if err != nil {
		return nil, err
	}

	updated, err := a.repo.SetTimer(ctx, boardID, next)
	if err != nil {
		return nil, err
	}

	a.publisher.Publish(ctx, updated.ID, events.EventTypeBoardUpdated, events.BoardUpdatedPayload{Board: updated})
	return updated, nil
}

// TransferOwnership reassigns the board to the user with the given
// nickname. The nickname is resolved on every call, so repeating the
// call is safe and still announces the result.
func (a *App) TransferOwnership(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID, nickname string) (*models.Board, error) {
	if nickname == "" {
		return nil, fmt.Errorf("%w: nickname is required", ErrValidation)
	}

	if _, err := a.EnsureAccess(ctx, boardID, viewerID); err != nil {
		return nil, err
	}

	newOwner, err := a.users.GetUserByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}

	board, err := a.repo.UpdateOwner(ctx, boardID, newOwner.ID)
	if err != nil {
		return nil, err
	}

	if err := a.repo.GrantAccess(ctx, board.ID, newOwner.ID); err != nil {
		return nil, err
	}

	a.publisher.Publish(ctx, board.ID, events.EventTypeBoardUpdated, events.BoardUpdatedPayload{Board: board})

	log.Info().
		Str("board_id", board.ID.String()).
		Str("new_owner_id", newOwner.ID.String()).
		Msg("transferred board ownership")
	return board, nil
}

// SoftDelete marks the board deleted. Owner only.
func (a *App) SoftDelete(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error) {
	board, err := a.repo.GetBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board.OwnerID != viewerID {
		return nil, ErrForbidden
	}

	deleted, err := a.repo.SoftDelete(ctx, boardID)
	if err != nil {
		return nil, err
	}

	a.publisher.Publish(ctx, deleted.ID, events.EventTypeBoardDeleted, events.BoardDeletedPayload{BoardID: deleted.ID.String()})
	return deleted, nil
}

// RegenerateInvite replaces the invite code, invalidating the old one
func (a *App) RegenerateInvite(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error) {
	if _, err := a.EnsureAccess(ctx, boardID, viewerID); err != nil {
		return nil, err
	}

	board, err := a.repo.UpdateInviteCode(ctx, boardID, newInviteCode())
	if err != nil {
		return nil, err
	}

	a.publisher.Publish(ctx, board.ID, events.EventTypeBoardUpdated, events.BoardUpdatedPayload{Board: board})
	return board, nil
}

// JoinByInvite grants the viewer access to the board behind the code
func (a *App) JoinByInvite(ctx context.Context, viewerID uuid.UUID, inviteCode string) (*models.Board, error) {
	if inviteCode == "" {
		return nil, fmt.Errorf("%w: inviteCode is required", ErrValidation)
	}

	board, err := a.repo.GetBoardByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}

	if err := a.repo.GrantAccess(ctx, board.ID, viewerID); err != nil {
		return nil, err
	}

	return board, nil
}

// EnsureAccess returns the board when the viewer owns it or holds an
// access row, ErrForbidden otherwise. Also serves the columns, cards
// and action items apps as their board guard.
func (a *App) EnsureAccess(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error) {
	board, err := a.repo.GetBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if board.OwnerID == viewerID {
		return board, nil
	}

	has, err := a.repo.HasAccess(ctx, boardID, viewerID)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrForbidden
	}
	return board, nil
}

// newInviteCode returns a short shareable code. The leading uuid segment
// is 8 hex chars, enough for the unique index to catch the rare clash.
func newInviteCode() string {
	return uuid.NewString()[:8]
}
