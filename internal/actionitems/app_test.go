package actionitems

import (
	"context"
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

func (m *mockRepository) CreateActionItem(ctx context.Context, boardID uuid.UUID, ownerID *uuid.UUID, content string) (*models.ActionItem, error) {
	args := m.Called(ctx, boardID, ownerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActionItem), args.Error(1)
}

func (m *mockRepository) GetActionItem(ctx context.Context, id uuid.UUID) (*models.ActionItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActionItem), args.Error(1)
}

func (m *mockRepository) ListActionItemsByBoard(ctx context.Context, boardID uuid.UUID) ([]models.ActionItem, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActionItem), args.Error(1)
}

func (m *mockRepository) UpdateActionItem(ctx context.Context, id uuid.UUID, req UpdateActionItemRequest) (*models.ActionItem, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActionItem), args.Error(1)
}

func (m *mockRepository) DeleteActionItem(ctx context.Context, id uuid.UUID) error {
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

func TestToggleCompletePublishesItemSet(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()
	viewerID := uuid.New()
	item := &models.ActionItem{ID: uuid.New(), BoardID: boardID, Content: "automate deploys"}
	done := *item
	done.Completed = true
	completed := true

	repo.On("GetActionItem", mock.Anything, item.ID).Return(item, nil)
	guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	repo.On("UpdateActionItem", mock.Anything, item.ID, UpdateActionItemRequest{Completed: &completed}).Return(&done, nil)
	repo.On("ListActionItemsByBoard", mock.Anything, boardID).Return([]models.ActionItem{done}, nil)

	got, err := app.UpdateActionItem(context.Background(), item.ID, viewerID, UpdateActionItemRequest{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, []events.EventType{events.EventTypeActionItemsUpdated}, pub.published)
}

func TestCreateActionItemForbiddenNoPublish(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()
	viewerID := uuid.New()

	guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(nil, boards.ErrForbidden)

	_, err := app.CreateActionItem(context.Background(), viewerID, CreateActionItemRequest{BoardID: boardID, Content: "follow up"})
	require.ErrorIs(t, err, boards.ErrForbidden)
	assert.Empty(t, pub.published)
	repo.AssertNotCalled(t, "CreateActionItem")
}

func TestCreateUnassignedActionItem(t *testing.T) {
	repo := new(mockRepository)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	app := NewApp(repo, guard, pub)

	boardID := uuid.New()
	viewerID := uuid.New()
	item := &models.ActionItem{ID: uuid.New(), BoardID: boardID, Content: "follow up"}

	guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	repo.On("CreateActionItem", mock.Anything, boardID, (*uuid.UUID)(nil), "follow up").Return(item, nil)
	repo.On("ListActionItemsByBoard", mock.Anything, boardID).Return([]models.ActionItem{*item}, nil)

	got, err := app.CreateActionItem(context.Background(), viewerID, CreateActionItemRequest{BoardID: boardID, Content: "follow up"})
	require.NoError(t, err)
	assert.Nil(t, got.OwnerID)
	assert.Equal(t, []events.EventType{events.EventTypeActionItemsUpdated}, pub.published)
}
