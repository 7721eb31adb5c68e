package columns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/boards"
	"github.com/retroboardhq/retroboard/internal/httpapi"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/rs/zerolog/log"
)

// ColumnsApp defines what the service layer needs from the app
type ColumnsApp interface {
	CreateColumn(ctx context.Context, viewerID uuid.UUID, req CreateColumnRequest) (*models.Column, error)
	ListColumns(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) ([]models.Column, error)
	UpdateColumn(ctx context.Context, columnID uuid.UUID, viewerID uuid.UUID, req UpdateColumnRequest) (*models.Column, error)
	DeleteColumn(ctx context.Context, columnID uuid.UUID, viewerID uuid.UUID) error
}

// Service exposes column operations over HTTP
type Service struct {
	app ColumnsApp
}

// NewService creates a new columns Service
func NewService(app ColumnsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers column routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/columns", s.handleCreateColumn)
	mux.HandleFunc("GET /api/boards/{id}/columns", s.handleListColumns)
	mux.HandleFunc("PATCH /api/columns/{id}", s.handleUpdateColumn)
	mux.HandleFunc("DELETE /api/columns/{id}", s.handleDeleteColumn)
}

func (s *Service) handleCreateColumn(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	var req CreateColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	column, err := s.app.CreateColumn(r.Context(), viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, column)
}

func (s *Service) handleListColumns(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	boardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid board id")
		return
	}

	columns, err := s.app.ListColumns(r.Context(), boardID, viewerID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, columns)
}

func (s *Service) handleUpdateColumn(w http.ResponseWriter, r *http.Request) {
	viewerID, columnID, ok := s.viewerAndColumn(w, r)
	if !ok {
		return
	}

	var req UpdateColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	column, err := s.app.UpdateColumn(r.Context(), columnID, viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, column)
}

func (s *Service) handleDeleteColumn(w http.ResponseWriter, r *http.Request) {
	viewerID, columnID, ok := s.viewerAndColumn(w, r)
	if !ok {
		return
	}

	if err := s.app.DeleteColumn(r.Context(), columnID, viewerID); err != nil {
		s.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) viewerAndColumn(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return uuid.Nil, uuid.Nil, false
	}

	columnID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid column id")
		return uuid.Nil, uuid.Nil, false
	}

	return viewerID, columnID, true
}

func (s *Service) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, boards.ErrValidation):
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, boards.ErrForbidden):
		httpapi.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrColumnNotFound), errors.Is(err, boards.ErrBoardNotFound):
		httpapi.RespondError(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("column request failed")
		httpapi.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
