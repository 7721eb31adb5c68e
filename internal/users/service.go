package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/httpapi"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/rs/zerolog/log"
)

// UsersApp defines what the service layer needs from the app
type UsersApp interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes user operations over HTTP
type Service struct {
	app UsersApp
}

// NewService creates a new users Service
func NewService(app UsersApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers user routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.HandleFunc("GET /api/users/{id}", s.handleGetUser)
}

func (s *Service) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.app.CreateUser(r.Context(), req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, user)
}

func (s *Service) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.app.GetUser(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, user)
}

func (s *Service) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserExists):
		httpapi.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUserNotFound):
		httpapi.RespondError(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("user request failed")
		httpapi.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
