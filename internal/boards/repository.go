package boards

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/boards/db"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/retroboardhq/retroboard/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateBoard(ctx context.Context, arg db.CreateBoardParams) (db.Board, error)
	CreateBoardAccess(ctx context.Context, arg db.CreateBoardAccessParams) (db.BoardAccess, error)
	GetBoard(ctx context.Context, id uuid.UUID) (db.Board, error)
	GetBoardByInviteCode(ctx context.Context, inviteCode sql.NullString) (db.Board, error)
	HasBoardAccess(ctx context.Context, arg db.HasBoardAccessParams) (bool, error)
	ListBoardsForUser(ctx context.Context, ownerID uuid.UUID) ([]db.Board, error)
	SoftDeleteBoard(ctx context.Context, id uuid.UUID) (db.Board, error)
	UpdateBoard(ctx context.Context, arg db.UpdateBoardParams) (db.Board, error)
	UpdateBoardInviteCode(ctx context.Context, arg db.UpdateBoardInviteCodeParams) (db.Board, error)
	UpdateBoardOwner(ctx context.Context, arg db.UpdateBoardOwnerParams) (db.Board, error)
	UpdateBoardTimer(ctx context.Context, arg db.UpdateBoardTimerParams) (db.Board, error)
}

// Repository implements board data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new boards repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateBoard inserts a board row
func (r *Repository) CreateBoard(ctx context.Context, title string, ownerID uuid.UUID, settings json.RawMessage, inviteCode string) (*models.Board, error) {
	board, err := r.queries.CreateBoard(ctx, db.CreateBoardParams{
		Title:      title,
		OwnerID:    ownerID,
		Settings:   sqlutil.ToNullRawMessage(settings),
		InviteCode: sqlutil.ToSqlString(&inviteCode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return r.dbBoardToModel(board)
}

// GetBoard retrieves a board by ID, soft-deleted rows included
func (r *Repository) GetBoard(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	board, err := r.queries.GetBoard(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return r.dbBoardToModel(board)
}

// GetBoardByInviteCode retrieves a live board by its invite code
func (r *Repository) GetBoardByInviteCode(ctx context.Context, inviteCode string) (*models.Board, error) {
	board, err := r.queries.GetBoardByInviteCode(ctx, sqlutil.ToSqlString(&inviteCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board by invite code: %w", err)
	}

	return r.dbBoardToModel(board)
}

// ListBoardsForUser retrieves the non-deleted boards the user owns or
// was granted access to
func (r *Repository) ListBoardsForUser(ctx context.Context, userID uuid.UUID) ([]models.Board, error) {
	rows, err := r.queries.ListBoardsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	boards := make([]models.Board, 0, len(rows))
	for _, row := range rows {
		board, err := r.dbBoardToModel(row)
		if err != nil {
			return nil, err
		}
		boards = append(boards, *board)
	}
	return boards, nil
}

// UpdateBoard applies a partial title/settings update
func (r *Repository) UpdateBoard(ctx context.Context, id uuid.UUID, req UpdateBoardRequest) (*models.Board, error) {
	board, err := r.queries.UpdateBoard(ctx, db.UpdateBoardParams{
		Title:    sqlutil.ToSqlString(req.Title),
		Settings: sqlutil.ToNullRawMessage(req.Settings),
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return r.dbBoardToModel(board)
}

// SetTimer stores the timer JSONB, clearing it when timer is nil
func (r *Repository) SetTimer(ctx context.Context, id uuid.UUID, timer *models.Timer) (*models.Board, error) {
	var raw json.RawMessage
	if timer != nil {
		data, err := json.Marshal(timer)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal timer: %w", err)
		}
		raw = data
	}

	board, err := r.queries.UpdateBoardTimer(ctx, db.UpdateBoardTimerParams{
		ID:    id,
		Timer: sqlutil.ToNullRawMessage(raw),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to set board timer: %w", err)
	}

	return r.dbBoardToModel(board)
}

// UpdateOwner reassigns the board owner
func (r *Repository) UpdateOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Board, error) {
	board, err := r.queries.UpdateBoardOwner(ctx, db.UpdateBoardOwnerParams{
		ID:      id,
		OwnerID: ownerID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to update board owner: %w", err)
	}

	return r.dbBoardToModel(board)
}

// UpdateInviteCode replaces the invite code
func (r *Repository) UpdateInviteCode(ctx context.Context, id uuid.UUID, inviteCode string) (*models.Board, error) {
	board, err := r.queries.UpdateBoardInviteCode(ctx, db.UpdateBoardInviteCodeParams{
		ID:         id,
		InviteCode: sqlutil.ToSqlString(&inviteCode),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to update invite code: %w", err)
	}

	return r.dbBoardToModel(board)
}

// SoftDelete marks the board deleted, keeping the row addressable
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	board, err := r.queries.SoftDeleteBoard(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to soft delete board: %w", err)
	}

	return r.dbBoardToModel(board)
}

// GrantAccess upserts a board access row
func (r *Repository) GrantAccess(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) error {
	if _, err := r.queries.CreateBoardAccess(ctx, db.CreateBoardAccessParams{
		BoardID: boardID,
		UserID:  userID,
	}); err != nil {
		return fmt.Errorf("failed to grant board access: %w", err)
	}
	return nil
}

// HasAccess reports whether the user has an access row for the board
func (r *Repository) HasAccess(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (bool, error) {
	has, err := r.queries.HasBoardAccess(ctx, db.HasBoardAccessParams{
		BoardID: boardID,
		UserID:  userID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check board access: %w", err)
	}
	return has, nil
}

// dbBoardToModel converts a database board to domain model
func (r *Repository) dbBoardToModel(dbBoard db.Board) (*models.Board, error) {
	board := &models.Board{
		ID:         dbBoard.ID,
		Title:      dbBoard.Title,
		OwnerID:    dbBoard.OwnerID,
		Settings:   sqlutil.FromNullRawMessage(dbBoard.Settings),
		InviteCode: sqlutil.FromSqlStringPtr(dbBoard.InviteCode),
		Deleted:    dbBoard.Deleted,
		CreatedAt:  dbBoard.CreatedAt,
	}

	if dbBoard.Timer.Valid {
		var timer models.Timer
		if err := json.Unmarshal(dbBoard.Timer.RawMessage, &timer); err != nil {
			return nil, fmt.Errorf("failed to decode stored timer: %w", err)
		}
		board.Timer = &timer
	}

	return board, nil
}
