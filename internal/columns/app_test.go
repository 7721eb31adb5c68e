package columns

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/boards"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateColumn(ctx context.Context, boardID uuid.UUID, title string, orderIndex int) (*models.Column, error) {
	args := m.Called(ctx, boardID, title, orderIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Column), args.Error(1)
}

func (m *mockRepository) GetColumn(ctx context.Context, id uuid.UUID) (*models.Column, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Column), args.Error(1)
}

func (m *mockRepository) ListColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]models.Column, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Column), args.Error(1)
}

func (m *mockRepository) UpdateColumn(ctx context.Context, id uuid.UUID, req UpdateColumnRequest) (*models.Column, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Column), args.Error(1)
}

func (m *mockRepository) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockGuard struct {
	mock.Mock
}

func (m *mockGuard) EnsureAccess(ctx context.Context, boardID uuid.UUID, viewerID uuid.UUID) (*models.Board, error) {
	args := m.Called(ctx, boardID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

type recordingPublisher struct {
	published []events.EventType
}

func (p *recordingPublisher) Publish(_ context.Context, _ uuid.UUID, eventType events.EventType, _ interface{}) {
	p.published = append(p.published, eventType)
}

func TestCreateColumnPublishesColumnSet(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()
	viewerID := uuid.New()
	column := &models.Column{ID: uuid.New(), BoardID: boardID, Title: "went well"}

	guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	repo.On("CreateColumn", mock.Anything, boardID, "went well", 0).Return(column, nil)
	repo.On("ListColumnsByBoard", mock.Anything, boardID).Return([]models.Column{*column}, nil)

	got, err := app.CreateColumn(context.Background(), viewerID, CreateColumnRequest{BoardID: boardID, Title: "went well"})
	require.NoError(t, err)
	assert.Equal(t, column.ID, got.ID)
	assert.Equal(t, []events.EventType{events.EventTypeColumnsUpdated}, pub.published)
	repo.AssertExpectations(t)
}

func TestCreateColumnForbiddenNoPublish(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()
	viewerID := uuid.New()

	guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(nil, boards.ErrForbidden)

	_, err := app.CreateColumn(context.Background(), viewerID, CreateColumnRequest{BoardID: boardID, Title: "went well"})
	require.ErrorIs(t, err, boards.ErrForbidden)
	assert.Empty(t, pub.published)
	repo.AssertNotCalled(t, "CreateColumn")
}

func TestCreateInitialColumnsNoPublish(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()

	repo.On("CreateColumn", mock.Anything, boardID, "went well", 0).
		Return(&models.Column{ID: uuid.New(), BoardID: boardID}, nil)
	repo.On("CreateColumn", mock.Anything, boardID, "to improve", 1).
		Return(&models.Column{ID: uuid.New(), BoardID: boardID}, nil)

	err := app.CreateInitialColumns(context.Background(), boardID, []string{"went well", "to improve"})
	require.NoError(t, err)
	assert.Empty(t, pub.published)
	repo.AssertExpectations(t)
}

func TestDeleteColumnPublishesAfterDelete(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()
	viewerID := uuid.New()
	column := &models.Column{ID: uuid.New(), BoardID: boardID}

	repo.On("GetColumn", mock.Anything, column.ID).Return(column, nil)
	guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	repo.On("DeleteColumn", mock.Anything, column.ID).Return(nil)
	repo.On("ListColumnsByBoard", mock.Anything, boardID).Return([]models.Column{}, nil)

	require.NoError(t, app.DeleteColumn(context.Background(), column.ID, viewerID))
	assert.Equal(t, []events.EventType{events.EventTypeColumnsUpdated}, pub.published)
}

func TestUpdateColumnFailureNoPublish(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()
	viewerID := uuid.New()
	column := &models.Column{ID: uuid.New(), BoardID: boardID}
	title := "renamed"

	repo.On("GetColumn", mock.Anything, column.ID).Return(column, nil)
	guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	repo.On("UpdateColumn", mock.Anything, column.ID, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := app.UpdateColumn(context.Background(), column.ID, viewerID, UpdateColumnRequest{Title: &title})
	require.Error(t, err)
	assert.Empty(t, pub.published)
}
