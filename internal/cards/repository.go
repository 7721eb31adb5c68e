package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/cards/db"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/retroboardhq/retroboard/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	AddCardVote(ctx context.Context, arg db.AddCardVoteParams) (db.Card, error)
	CreateCard(ctx context.Context, arg db.CreateCardParams) (db.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	GetCard(ctx context.Context, id uuid.UUID) (db.Card, error)
	ListCardsByColumn(ctx context.Context, columnID uuid.UUID) ([]db.Card, error)
	UpdateCard(ctx context.Context, arg db.UpdateCardParams) (db.Card, error)
}

// Repository implements card data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new cards repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateCard inserts a card row
func (r *Repository) CreateCard(ctx context.Context, columnID uuid.UUID, ownerID uuid.UUID, content string, orderIndex int) (*models.Card, error) {
	card, err := r.queries.CreateCard(ctx, db.CreateCardParams{
		ColumnID:   columnID,
		OwnerID:    ownerID,
		Content:    content,
		OrderIndex: int32(orderIndex),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return r.dbCardToModel(card), nil
}

// GetCard retrieves a card by ID
func (r *Repository) GetCard(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	card, err := r.queries.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return r.dbCardToModel(card), nil
}

// ListCardsByColumn retrieves the cards of a column in display order
func (r *Repository) ListCardsByColumn(ctx context.Context, columnID uuid.UUID) ([]models.Card, error) {
	rows, err := r.queries.ListCardsByColumn(ctx, columnID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	cards := make([]models.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, *r.dbCardToModel(row))
	}
	return cards, nil
}

// UpdateCard applies a partial content/move/reorder update
func (r *Repository) UpdateCard(ctx context.Context, id uuid.UUID, req UpdateCardRequest) (*models.Card, error) {
	var orderIndex sql.NullInt32
	if req.OrderIndex != nil {
		orderIndex = sql.NullInt32{Int32: int32(*req.OrderIndex), Valid: true}
	}

	card, err := r.queries.UpdateCard(ctx, db.UpdateCardParams{
		Content:    sqlutil.ToSqlString(req.Content),
		ColumnID:   sqlutil.ToNullUUID(req.ColumnID),
		OrderIndex: orderIndex,
		ID:         id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return r.dbCardToModel(card), nil
}

// AddVote adjusts the vote counter by delta
func (r *Repository) AddVote(ctx context.Context, id uuid.UUID, delta int) (*models.Card, error) {
	card, err := r.queries.AddCardVote(ctx, db.AddCardVoteParams{
		ID:    id,
		Votes: int32(delta),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to vote on card: %w", err)
	}

	return r.dbCardToModel(card), nil
}

// DeleteCard removes a card
func (r *Repository) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

// dbCardToModel converts a database card to domain model
func (r *Repository) dbCardToModel(dbCard db.Card) *models.Card {
	return &models.Card{
		ID:         dbCard.ID,
		ColumnID:   dbCard.ColumnID,
		OwnerID:    dbCard.OwnerID,
		Content:    dbCard.Content,
		Votes:      int(dbCard.Votes),
		OrderIndex: int(dbCard.OrderIndex),
		CreatedAt:  dbCard.CreatedAt,
	}
}
