package cards

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/boards"
	"github.com/retroboardhq/retroboard/internal/columns"
	"github.com/retroboardhq/retroboard/internal/httpapi"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/rs/zerolog/log"
)

// CardsApp defines what the service layer needs from the app
type CardsApp interface {
	CreateCard(ctx context.Context, viewerID uuid.UUID, req CreateCardRequest) (*models.Card, error)
	ListCards(ctx context.Context, columnID uuid.UUID, viewerID uuid.UUID) ([]models.Card, error)
	UpdateCard(ctx context.Context, cardID uuid.UUID, viewerID uuid.UUID, req UpdateCardRequest) (*models.Card, error)
	Vote(ctx context.Context, cardID uuid.UUID, viewerID uuid.UUID, delta int) (*models.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID, viewerID uuid.UUID) error
}

// Service exposes card operations over HTTP
type Service struct {
	app CardsApp
}

// NewService creates a new cards Service
func NewService(app CardsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers card routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/cards", s.handleCreateCard)
	mux.HandleFunc("GET /api/columns/{id}/cards", s.handleListCards)
	mux.HandleFunc("PATCH /api/cards/{id}", s.handleUpdateCard)
	mux.HandleFunc("POST /api/cards/{id}/vote", s.handleVote)
	mux.HandleFunc("DELETE /api/cards/{id}", s.handleDeleteCard)
}

func (s *Service) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	var req CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := s.app.CreateCard(r.Context(), viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, card)
}

func (s *Service) handleListCards(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	columnID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid column id")
		return
	}

	cards, err := s.app.ListCards(r.Context(), columnID, viewerID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, cards)
}

func (s *Service) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	viewerID, cardID, ok := s.viewerAndCard(w, r)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := s.app.UpdateCard(r.Context(), cardID, viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, card)
}

func (s *Service) handleVote(w http.ResponseWriter, r *http.Request) {
	viewerID, cardID, ok := s.viewerAndCard(w, r)
	if !ok {
		return
	}

	// An empty body counts as a single upvote.
	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := s.app.Vote(r.Context(), cardID, viewerID, req.Delta)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, card)
}

func (s *Service) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	viewerID, cardID, ok := s.viewerAndCard(w, r)
	if !ok {
		return
	}

	if err := s.app.DeleteCard(r.Context(), cardID, viewerID); err != nil {
		s.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) viewerAndCard(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return uuid.Nil, uuid.Nil, false
	}

	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid card id")
		return uuid.Nil, uuid.Nil, false
	}

	return viewerID, cardID, true
}

func (s *Service) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, boards.ErrValidation), errors.Is(err, columns.ErrValidation):
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, boards.ErrForbidden):
		httpapi.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrCardNotFound),
		errors.Is(err, columns.ErrColumnNotFound),
		errors.Is(err, boards.ErrBoardNotFound):
		httpapi.RespondError(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("card request failed")
		httpapi.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
