package columns

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/rs/zerolog/log"
)

// ColumnsRepository defines what the app layer needs from the repository
type ColumnsRepository interface {
	CreateColumn(ctx context.Context, boardID uuid.UUID, title string, orderIndex int) (*models.Column, error)
	GetColumn(ctx context.Context, id uuid.UUID) (*models.Column, error)
	ListColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]models.Column, error)
	UpdateColumn(ctx context.Context, id uuid.UUID, req UpdateColumnRequest) (*models.Column, error)
	DeleteColumn(ctx context.Context, id uuid.UUID) error
}

// BoardGuard checks board visibility for the viewer. Implemented by the
// boards app.
type BoardGuard interface {
	EnsureAccess(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error)
}

// App handles column business logic
type App struct {
	repo      ColumnsRepository
	guard     BoardGuard
	publisher events.Publisher
}

// NewApp creates a new columns App
func NewApp(repo ColumnsRepository, guard BoardGuard, publisher events.Publisher) *App {
	return &App{
		repo:      repo,
		guard:     guard,
		publisher: publisher,
	}
}

// CreateColumn adds a column to a board the viewer can see
func (a *App) CreateColumn(ctx context.Context, viewerID uuid.UUID, req CreateColumnRequest) (*models.Column, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	if _, err := a.guard.EnsureAccess(ctx, req.BoardID, viewerID); err != nil {
		return nil, err
	}

	column, err := a.repo.CreateColumn(ctx, req.BoardID, req.Title, req.OrderIndex)
	if err != nil {
		return nil, err
	}

	a.publishColumns(ctx, req.BoardID)
	return column, nil
}

// CreateInitialColumns seeds the columns of a freshly created board, in
// the order given. Called by the boards app before anyone can be
// subscribed, so no event is published.
func (a *App) CreateInitialColumns(ctx context.Context, boardID uuid.UUID, titles []string) error {
	for i, title := range titles {
		if title == "" {
			return fmt.Errorf("%w: column title cannot be empty", ErrValidation)
		}
		if _, err := a.repo.CreateColumn(ctx, boardID, title, i); err != nil {
			return err
		}
	}
	return nil
}

// GetColumn retrieves a column by id without access checks. Callers
// guard the parent board themselves; the cards app uses this to resolve
// a card's board.
func (a *App) GetColumn(ctx context.Context, id uuid.UUID) (*models.Column, error) {
	return a.repo.GetColumn(ctx, id)
}

// ListColumns retrieves the columns of a board the viewer can see
func (a *App) ListColumns(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) ([]models.Column, error) {
	if _, err := a.guard.EnsureAccess(ctx, boardID, viewerID); err != nil {
		return nil, err
	}
	return a.repo.ListColumnsByBoard(ctx, boardID)
}

// UpdateColumn renames and/or reorders a column
func (a *App) UpdateColumn(ctx context.Context, columnID uuid.UUID, viewerID uuid.UUID, req UpdateColumnRequest) (*models.Column, error) {
	if req.Title == nil && req.OrderIndex == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if req.Title != nil && *req.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	column, err := a.repo.GetColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}

	if _, err := a.guard.EnsureAccess(ctx, column.BoardID, viewerID); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateColumn(ctx, columnID, req)
	if err != nil {
		return nil, err
	}

	a.publishColumns(ctx, updated.BoardID)
	return updated, nil
}

// DeleteColumn removes a column and its cards
func (a *App) DeleteColumn(ctx context.Context, columnID uuid.UUID, viewerID uuid.UUID) error {
	column, err := a.repo.GetColumn(ctx, columnID)
	if err != nil {
		return err
	}

	if _, err := a.guard.EnsureAccess(ctx, column.BoardID, viewerID); err != nil {
		return err
	}

	if err := a.repo.DeleteColumn(ctx, columnID); err != nil {
		return err
	}

	a.publishColumns(ctx, column.BoardID)
	return nil
}

// publishColumns announces the board's full column set. Best effort:
// a failed list lookup only costs the notification, never the mutation.
func (a *App) publishColumns(ctx context.Context, boardID uuid.UUID) {
	columns, err := a.repo.ListColumnsByBoard(ctx, boardID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("board_id", boardID.String()).
			Msg("failed to load columns for broadcast, dropping event")
		return
	}

	a.publisher.Publish(ctx, boardID, events.EventTypeColumnsUpdated, events.ColumnsUpdatedPayload{
		BoardID: boardID.String(),
		Columns: columns,
	})
}
