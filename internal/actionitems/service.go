package actionitems

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

// ActionItemsApp defines what the service layer needs from the app
type ActionItemsApp interface {
	CreateActionItem(ctx context.Context, viewerID uuid.UUID, req CreateActionItemRequest) (*models.ActionItem, error)
	ListActionItems(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) ([]models.ActionItem, error)
	UpdateActionItem(ctx context.Context, itemID uuid.UUID, viewerID uuid.UUID, req UpdateActionItemRequest) (*models.ActionItem, error)
	DeleteActionItem(ctx context.Context, itemID uuid.UUID, viewerID uuid.UUID) error
}

// Service exposes action item operations over HTTP
type Service struct {
	app ActionItemsApp
}

// NewService creates a new action items Service
func NewService(app ActionItemsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers action item routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/action-items", s.handleCreateActionItem)
	mux.HandleFunc("GET /api/boards/{id}/action-items", s.handleListActionItems)
	mux.HandleFunc("PATCH /api/action-items/{id}", s.handleUpdateActionItem)
	mux.HandleFunc("DELETE /api/action-items/{id}", s.handleDeleteActionItem)
}

func (s *Service) handleCreateActionItem(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	var req CreateActionItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.app.CreateActionItem(r.Context(), viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, item)
}

func (s *Service) handleListActionItems(w http.ResponseWriter, r *http.Request) {
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

	items, err := s.app.ListActionItems(r.Context(), boardID, viewerID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, items)
}

func (s *Service) handleUpdateActionItem(w http.ResponseWriter, r *http.Request) {
	viewerID, itemID, ok := s.viewerAndItem(w, r)
	if !ok {
		return
	}

	var req UpdateActionItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.app.UpdateActionItem(r.Context(), itemID, viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, item)
}

func (s *Service) handleDeleteActionItem(w http.ResponseWriter, r *http.Request) {
	viewerID, itemID, ok := s.viewerAndItem(w, r)
	if !ok {
		return
	}

	if err := s.app.DeleteActionItem(r.Context(), itemID, viewerID); err != nil {
		s.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) viewerAndItem(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return uuid.Nil, uuid.Nil, false
	}

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid action item id")
		return uuid.Nil, uuid.Nil, false
	}

	return viewerID, itemID, true
}

func (s *Service) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, boards.ErrValidation):
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, boards.ErrForbidden):
		httpapi.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrActionItemNotFound), errors.Is(err, boards.ErrBoardNotFound):
		httpapi.RespondError(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("action item request failed")
		httpapi.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
