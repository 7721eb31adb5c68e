package cards

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/rs/zerolog/log"
)

// CardsRepository defines what the app layer needs from the repository
type CardsRepository interface {
	CreateCard(ctx context.Context, columnID uuid.UUID, ownerID uuid.UUID, content string, orderIndex int) (*models.Card, error)
	GetCard(ctx context.Context, id uuid.UUID) (*models.Card, error)
	ListCardsByColumn(ctx context.Context, columnID uuid.UUID) ([]models.Card, error)
	UpdateCard(ctx context.Context, id uuid.UUID, req UpdateCardRequest) (*models.Card, error)
	AddVote(ctx context.Context, id uuid.UUID, delta int) (*models.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

// ColumnDirectory resolves a card's column to its board. Implemented by
// the columns app.
type ColumnDirectory interface {
	GetColumn(ctx context.Context, id uuid.UUID) (*models.Column, error)
}

// BoardGuard checks board visibility for the viewer. Implemented by the
// boards app.
type BoardGuard interface {
	EnsureAccess(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error)
}

// App handles card business logic
type App struct {
	repo      CardsRepository
	columns   ColumnDirectory
	guard     BoardGuard
	publisher events.Publisher
}

// NewApp creates a new cards App
func NewApp(repo CardsRepository, columns ColumnDirectory, guard BoardGuard, publisher events.Publisher) *App {
	return &App{
		repo:      repo,
		columns:   columns,
		guard:     guard,
		publisher: publisher,
	}
}

// CreateCard adds a card to a column on a board the viewer can see. The
// viewer becomes the card owner.
func (a *App) CreateCard(ctx context.Context, viewerID uuid.UUID, req CreateCardRequest) (*models.Card, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	column, err := a.columns.GetColumn(ctx, req.ColumnID)
	if err != nil {
		return nil, err
	}

	if _, err := a.guard.EnsureAccess(ctx, column.BoardID, viewerID); err != nil {
		return nil, err
	}

	card, err := a.repo.CreateCard(ctx, req.ColumnID, viewerID, req.Content, req.OrderIndex)
	if err != nil {
		return nil, err
	}

	a.publishCards(ctx, column.BoardID, req.ColumnID)
	return card, nil
}

// ListCards retrieves the cards of a column the viewer can see
func (a *App) ListCards(ctx context.Context, columnID uuid.UUID, viewerID uuid.UUID) ([]models.Card, error) {
	column, err := a.columns.GetColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}

	if _, err := a.guard.EnsureAccess(ctx, column.BoardID, viewerID); err != nil {
		return nil, err
	}

	return a.repo.ListCardsByColumn(ctx, columnID)
}

// UpdateCard edits content, reorders or moves a card. Moves are confined
// to columns of the same board.
func (a *App) UpdateCard(ctx context.Context, cardID uuid.UUID, viewerID uuid.UUID, req UpdateCardRequest) (*models.Card, error) {
	if req.Content == nil && req.ColumnID == nil && req.OrderIndex == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if req.Content != nil && *req.Content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	card, err := a.repo.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	column, err := a.columns.GetColumn(ctx, card.ColumnID)
	if err != nil {
		return nil, err
	}

	if _, err := a.guard.EnsureAccess(ctx, column.BoardID, viewerID); err != nil {
		return nil, err
	}

	if req.ColumnID != nil && *req.ColumnID != card.ColumnID {
		target, err := a.columns.GetColumn(ctx, *req.ColumnID)
		if err != nil {
			return nil, err
		}
		if target.BoardID != column.BoardID {
			return nil, fmt.Errorf("%w: cannot move card to another board", ErrValidation)
		}
	}

	updated, err := a.repo.UpdateCard(ctx, cardID, req)
	if err != nil {
		return nil, err
	}

	a.publishCards(ctx, column.BoardID, updated.ColumnID)
	if updated.ColumnID != card.ColumnID {
		// The source column shrank too.
		a.publishCards(ctx, column.BoardID, card.ColumnID)
	}
	return updated, nil
}

// Vote adjusts the card's vote counter. Delta defaults to +1; only
// single up/down votes are accepted.
func (a *App) Vote(ctx context.Context, cardID uuid.UUID, viewerID uuid.UUID, delta int) (*models.Card, error) {
	if delta == 0 {
		delta = 1
	}
	if delta != 1 && delta != -1 {
		return nil, fmt.Errorf("%w: delta must be 1 or -1", ErrValidation)
	}

	card, err := a.repo.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	column, err := a.columns.GetColumn(ctx, card.ColumnID)
	if err != nil {
		return nil, err
	}

	if _, err := a.guard.EnsureAccess(ctx, column.BoardID, viewerID); err != nil {
		return nil, err
	}

	updated, err := a.repo.AddVote(ctx, cardID, delta)
	if err != nil {
		return nil, err
	}

	a.publishCards(ctx, column.BoardID, updated.ColumnID)
	return updated, nil
}

// DeleteCard removes a card
func (a *App) DeleteCard(ctx context.Context, cardID uuid.UUID, viewerID uuid.UUID) error {
	card, err := a.repo.GetCard(ctx, cardID)
	if err != nil {
		return err
	}

	column, err := a.columns.GetColumn(ctx, card.ColumnID)
	if err != nil {
		return err
	}

	if _, err := a.guard.EnsureAccess(ctx, column.BoardID, viewerID); err != nil {
		return err
	}

	if err := a.repo.DeleteCard(ctx, cardID); err != nil {
		return err
	}

	a.publishCards(ctx, column.BoardID, card.ColumnID)
	return nil
}

// publishCards announces the column's full card set. Best effort.
func (a *App) publishCards(ctx context.Context, boardID uuid.UUID, columnID uuid.UUID) {
	cards, err := a.repo.ListCardsByColumn(ctx, columnID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("board_id", boardID.String()).
			Str("column_id", columnID.String()).
			Msg("failed to load cards for broadcast, dropping event")
		return
	}

	a.publisher.Publish(ctx, boardID, events.EventTypeCardsUpdated, events.CardsUpdatedPayload{
		BoardID:  boardID.String(),
		ColumnID: columnID.String(),
		Cards:    cards,
	})
}
