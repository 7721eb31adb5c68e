package actionitems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/actionitems/db"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/retroboardhq/retroboard/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateActionItem(ctx context.Context, arg db.CreateActionItemParams) (db.ActionItem, error)
	DeleteActionItem(ctx context.Context, id uuid.UUID) error
	GetActionItem(ctx context.Context, id uuid.UUID) (db.ActionItem, error)
	ListActionItemsByBoard(ctx context.Context, boardID uuid.UUID) ([]db.ActionItem, error)
	UpdateActionItem(ctx context.Context, arg db.UpdateActionItemParams) (db.ActionItem, error)
}

// Repository implements action item data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new action items repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateActionItem inserts an action item row
func (r *Repository) CreateActionItem(ctx context.Context, boardID uuid.UUID, ownerID *uuid.UUID, content string) (*models.ActionItem, error) {
	item, err := r.queries.CreateActionItem(ctx, db.CreateActionItemParams{
		BoardID: boardID,
		OwnerID: sqlutil.ToNullUUID(ownerID),
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}

	return r.dbActionItemToModel(item), nil
}

// GetActionItem retrieves an action item by ID
func (r *Repository) GetActionItem(ctx context.Context, id uuid.UUID) (*models.ActionItem, error) {
	item, err := r.queries.GetActionItem(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}

	return r.dbActionItemToModel(item), nil
}

// ListActionItemsByBoard retrieves the action items of a board
func (r *Repository) ListActionItemsByBoard(ctx context.Context, boardID uuid.UUID) ([]models.ActionItem, error) {
	rows, err := r.queries.ListActionItemsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}

	items := make([]models.ActionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, *r.dbActionItemToModel(row))
	}
	return items, nil
}

// UpdateActionItem applies a partial content/completed update
func (r *Repository) UpdateActionItem(ctx context.Context, id uuid.UUID, req UpdateActionItemRequest) (*models.ActionItem, error) {
	var completed sql.NullBool
	if req.Completed != nil {
		completed = sql.NullBool{Bool: *req.Completed, Valid: true}
	}

	item, err := r.queries.UpdateActionItem(ctx, db.UpdateActionItemParams{
		Content:   sqlutil.ToSqlString(req.Content),
		Completed: completed,
		ID:        id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}

	return r.dbActionItemToModel(item), nil
}

// DeleteActionItem removes an action item
func (r *Repository) DeleteActionItem(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteActionItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	return nil
}

// dbActionItemToModel converts a database action item to domain model
func (r *Repository) dbActionItemToModel(dbItem db.ActionItem) *models.ActionItem {
	return &models.ActionItem{
		ID:        dbItem.ID,
		BoardID:   dbItem.BoardID,
		OwnerID:   sqlutil.FromNullUUID(dbItem.OwnerID),
		Content:   dbItem.Content,
		Completed: dbItem.Completed,
		CreatedAt: dbItem.CreatedAt,
	}
}
