package columns

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/columns/db"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/retroboardhq/retroboard/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateColumn(ctx context.Context, arg db.CreateColumnParams) (db.Column, error)
	DeleteColumn(ctx context.Context, id uuid.UUID) error
	GetColumn(ctx context.Context, id uuid.UUID) (db.Column, error)
	ListColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]db.Column, error)
	UpdateColumn(ctx context.Context, arg db.UpdateColumnParams) (db.Column, error)
}

// Repository implements column data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new columns repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateColumn inserts a column row
func (r *Repository) CreateColumn(ctx context.Context, boardID uuid.UUID, title string, orderIndex int) (*models.Column, error) {
	column, err := r.queries.CreateColumn(ctx, db.CreateColumnParams{
		BoardID:    boardID,
		Title:      title,
		OrderIndex: int32(orderIndex),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	return r.dbColumnToModel(column), nil
}

// GetColumn retrieves a column by ID
func (r *Repository) GetColumn(ctx context.Context, id uuid.UUID) (*models.Column, error) {
	column, err := r.queries.GetColumn(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		return nil, fmt.Errorf("failed to get column: %w", err)
	}

	return r.dbColumnToModel(column), nil
}

// ListColumnsByBoard retrieves the columns of a board in display order
func (r *Repository) ListColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]models.Column, error) {
	rows, err := r.queries.ListColumnsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	columns := make([]models.Column, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, *r.dbColumnToModel(row))
	}
	return columns, nil
}

// UpdateColumn applies a partial rename/reorder update
func (r *Repository) UpdateColumn(ctx context.Context, id uuid.UUID, req UpdateColumnRequest) (*models.Column, error) {
	var orderIndex sql.NullInt32
	if req.OrderIndex != nil {
		orderIndex = sql.NullInt32{Int32: int32(*req.OrderIndex), Valid: true}
	}

	column, err := r.queries.UpdateColumn(ctx, db.UpdateColumnParams{
		Title:      sqlutil.ToSqlString(req.Title),
		OrderIndex: orderIndex,
		ID:         id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		return nil, fmt.Errorf("failed to update column: %w", err)
	}

	return r.dbColumnToModel(column), nil
}

// DeleteColumn removes a column and, via the schema cascade, its cards
func (r *Repository) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteColumn(ctx, id); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	return nil
}

// dbColumnToModel converts a database column to domain model
func (r *Repository) dbColumnToModel(dbColumn db.Column) *models.Column {
	return &models.Column{
		ID:         dbColumn.ID,
		BoardID:    dbColumn.BoardID,
		Title:      dbColumn.Title,
		OrderIndex: int(dbColumn.OrderIndex),
		CreatedAt:  dbColumn.CreatedAt,
	}
}
