package actionitems

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/rs/zerolog/log"
)

// ActionItemsRepository defines what the app layer needs from the repository
type ActionItemsRepository interface {
	CreateActionItem(ctx context.Context, boardID uuid.UUID, ownerID *uuid.UUID, content string) (*models.ActionItem, error)
	GetActionItem(ctx context.Context, id uuid.UUID) (*models.ActionItem, error)
	ListActionItemsByBoard(ctx context.Context, boardID uuid.UUID) ([]models.ActionItem, error)
	UpdateActionItem(ctx context.Context, id uuid.UUID, req UpdateActionItemRequest) (*models.ActionItem, error)
	DeleteActionItem(ctx context.Context, id uuid.UUID) error
}

// BoardGuard checks board visibility for the viewer. Implemented by the
// boards app.
type BoardGuard interface {
	EnsureAccess(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error)
}

// App handles action item business logic
type App struct {
	repo      ActionItemsRepository
	guard     BoardGuard
	publisher events.Publisher
}

// NewApp creates a new action items App
func NewApp(repo ActionItemsRepository, guard BoardGuard, publisher events.Publisher) *App {
	return &App{
		repo:      repo,
		guard:     guard,
		publisher: publisher,
	}
}

// CreateActionItem records a follow-up on a board the viewer can see
func (a *App) CreateActionItem(ctx context.Context, viewerID uuid.UUID, req CreateActionItemRequest) (*models.ActionItem, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	if _, err := a.guard.EnsureAccess(ctx, req.BoardID, viewerID); err != nil {
		return nil, err
	}

	item, err := a.repo.CreateActionItem(ctx, req.BoardID, req.OwnerID, req.Content)
	if err != nil {
		return nil, err
	}

	a.publishActionItems(ctx, req.BoardID)
	return item, nil
}

// ListActionItems retrieves the action items of a board the viewer can see
func (a *App) ListActionItems(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) ([]models.ActionItem, error) {
	if _, err := a.guard.EnsureAccess(ctx, boardID, viewerID); err != nil {
		return nil, err
	}
	return a.repo.ListActionItemsByBoard(ctx, boardID)
}

// UpdateActionItem edits content and/or toggles completion
func (a *App) UpdateActionItem(ctx context.Context, itemID uuid.UUID, viewerID uuid.UUID, req UpdateActionItemRequest) (*models.ActionItem, error) {
	if req.Content == nil && req.Completed == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if req.Content != nil && *req.Content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	item, err := a.repo.GetActionItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if _, err := a.guard.EnsureAccess(ctx, item.BoardID, viewerID); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateActionItem(ctx, itemID, req)
	if err != nil {
		return nil, err
	}

	a.publishActionItems(ctx, updated.BoardID)
	return updated, nil
}

// DeleteActionItem removes an action item
func (a *App) DeleteActionItem(ctx context.Context, itemID uuid.UUID, viewerID uuid.UUID) error {
	item, err := a.repo.GetActionItem(ctx, itemID)
	if err != nil {
		return err
	}

	if _, err := a.guard.EnsureAccess(ctx, item.BoardID, viewerID); err != nil {
		return err
	}

	if err := a.repo.DeleteActionItem(ctx, itemID); err != nil {
		return err
	}

	a.publishActionItems(ctx, item.BoardID)
	return nil
}

// publishActionItems announces the board's full action item set. Best
// effort.
func (a *App) publishActionItems(ctx context.Context, boardID uuid.UUID) {
	items, err := a.repo.ListActionItemsByBoard(ctx, boardID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("board_id", boardID.String()).
			Msg("failed to load action items for broadcast, dropping event")
		return
	}

	a.publisher.Publish(ctx, boardID, events.EventTypeActionItemsUpdated, events.ActionItemsUpdatedPayload{
		BoardID: boardID.String(),
		Items:   items,
	})
}
