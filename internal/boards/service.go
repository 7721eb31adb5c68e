package boards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/httpapi"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/retroboardhq/retroboard/internal/users"
	"github.com/rs/zerolog/log"
)

// BoardsApp defines what the service layer needs from the app
type BoardsApp interface {
	CreateBoard(ctx context.Context, ownerID uuid.UUID, req CreateBoardRequest) (*models.Board, error)
	GetBoard(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error)
	ListBoards(ctx context.Context, viewerID uuid.UUID) ([]models.Board, error)
	UpdateBoard(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID, req UpdateBoardRequest) (*models.Board, error)
	SetTimer(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID, requested models.Timer) (*models.Board, error)
	TransferOwnership(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID, nickname string) (*models.Board, error)
	SoftDelete(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error)
	RegenerateInvite(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error)
	JoinByInvite(ctx context.Context, viewerID uuid.UUID, inviteCode string) (*models.Board, error)
}

// Service exposes board operations over HTTP
type Service struct {
	app BoardsApp
}

// NewService creates a new boards Service
func NewService(app BoardsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers board routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/boards", s.handleListBoards)
	mux.HandleFunc("POST /api/boards", s.handleCreateBoard)
	mux.HandleFunc("POST /api/boards/join", s.handleJoinBoard)
	mux.HandleFunc("GET /api/boards/{id}", s.handleGetBoard)
	mux.HandleFunc("PATCH /api/boards/{id}", s.handleUpdateBoard)
	mux.HandleFunc("DELETE /api/boards/{id}", s.handleDeleteBoard)
	mux.HandleFunc("POST /api/boards/{id}/timers", s.handleSetTimer)
	mux.HandleFunc("POST /api/boards/{id}/transfer", s.handleTransferOwnership)
	mux.HandleFunc("POST /api/boards/{id}/invite", s.handleRegenerateInvite)
}

func (s *Service) handleListBoards(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	boards, err := s.app.ListBoards(r.Context(), viewerID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, boards)
}

func (s *Service) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	var req CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := s.app.CreateBoard(r.Context(), viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, board)
}

func (s *Service) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	viewerID, boardID, ok := s.viewerAndBoard(w, r)
	if !ok {
		return
	}

	board, err := s.app.GetBoard(r.Context(), boardID, viewerID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, board)
}

func (s *Service) handleUpdateBoard(w http.ResponseWriter, r *http.Request) {
	viewerID, boardID, ok := s.viewerAndBoard(w, r)
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := s.app.UpdateBoard(r.Context(), boardID, viewerID, req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, board)
}

func (s *Service) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	viewerID, boardID, ok := s.viewerAndBoard(w, r)
	if !ok {
		return
	}

	board, err := s.app.SoftDelete(r.Context(), boardID, viewerID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, board)
}

func (s *Service) handleSetTimer(w http.ResponseWriter, r *http.Request) {
	viewerID, boardID, ok := s.viewerAndBoard(w, r)
	if !ok {
		return
	}

	var timer models.Timer
	if err := json.NewDecoder(r.Body).Decode(&timer); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid timer body: "+err.Error())
		return
	}

	board, err := s.app.SetTimer(r.Context(), boardID, viewerID, timer)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, board)
}

func (s *Service) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	viewerID, boardID, ok := s.viewerAndBoard(w, r)
	if !ok {
		return
	}

	var req TransferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := s.app.TransferOwnership(r.Context(), boardID, viewerID, req.Nickname)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, board)
}

func (s *Service) handleRegenerateInvite(w http.ResponseWriter, r *http.Request) {
	viewerID, boardID, ok := s.viewerAndBoard(w, r)
	if !ok {
		return
	}

	board, err := s.app.RegenerateInvite(r.Context(), boardID, viewerID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, board)
}

func (s *Service) handleJoinBoard(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	var req JoinBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := s.app.JoinByInvite(r.Context(), viewerID, req.InviteCode)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, board)
}

func (s *Service) viewerAndBoard(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	viewerID, ok := httpapi.ViewerID(r)
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return uuid.Nil, uuid.Nil, false
	}

	boardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid board id")
		return uuid.Nil, uuid.Nil, false
	}

	return viewerID, boardID, true
}

func (s *Service) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		httpapi.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrBoardNotFound):
		httpapi.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, users.ErrUserNotFound):
		httpapi.RespondError(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("board request failed")
		httpapi.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
