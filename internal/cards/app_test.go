package cards

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateCard(ctx context.Context, columnID uuid.UUID, ownerID uuid.UUID, content string, orderIndex int) (*models.Card, error) {
	args := m.Called(ctx, columnID, ownerID, content, orderIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *mockRepository) GetCard(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *mockRepository) ListCardsByColumn(ctx context.Context, columnID uuid.UUID) ([]models.Card, error) {
	args := m.Called(ctx, columnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *mockRepository) UpdateCard(ctx context.Context, id uuid.UUID, req UpdateCardRequest) (*models.Card, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *mockRepository) AddVote(ctx context.Context, id uuid.UUID, delta int) (*models.Card, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *mockRepository) DeleteCard(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockColumnDirectory struct {
	mock.Mock
}

func (m *mockColumnDirectory) GetColumn(ctx context.Context, id uuid.UUID) (*models.Column, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Column), args.Error(1)
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

type fixture struct {
	app     *App
	repo    *mockRepository
	columns *mockColumnDirectory
	guard   *mockGuard
	pub     *recordingPublisher
}

func newFixture() *fixture {
	repo := new(mockRepository)
	columns := new(mockColumnDirectory)
	guard := new(mockGuard)
	pub := &recordingPublisher{}
	return &fixture{
		app:     NewApp(repo, columns, guard, pub),
		repo:    repo,
		columns: columns,
		guard:   guard,
		pub:     pub,
	}
}

func TestVotePublishesCardSet(t *testing.T) {
	f := newFixture()
	boardID := uuid.New()
	viewerID := uuid.New()
	column := &models.Column{ID: uuid.New(), BoardID: boardID}
	card := &models.Card{ID: uuid.New(), ColumnID: column.ID, Votes: 2}
	voted := *card
	voted.Votes = 3

	f.repo.On("GetCard", mock.Anything, card.ID).Return(card, nil)
	f.columns.On("GetColumn", mock.Anything, column.ID).Return(column, nil)
	f.guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	f.repo.On("AddVote", mock.Anything, card.ID, 1).Return(&voted, nil)
	f.repo.On("ListCardsByColumn", mock.Anything, column.ID).Return([]models.Card{voted}, nil)

	got, err := f.app.Vote(context.Background(), card.ID, viewerID, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Votes)
	assert.Equal(t, []events.EventType{events.EventTypeCardsUpdated}, f.pub.published)
}

func TestVoteRejectsLargeDelta(t *testing.T) {
	f := newFixture()

	_, err := f.app.Vote(context.Background(), uuid.New(), uuid.New(), 5)
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.pub.published)
}

func TestUpdateCardMoveAcrossBoardsRejected(t *testing.T) {
	f := newFixture()
	boardID := uuid.New()
	otherBoardID := uuid.New()
	viewerID := uuid.New()
	source := &models.Column{ID: uuid.New(), BoardID: boardID}
	foreign := &models.Column{ID: uuid.New(), BoardID: otherBoardID}
	card := &models.Card{ID: uuid.New(), ColumnID: source.ID}

	f.repo.On("GetCard", mock.Anything, card.ID).Return(card, nil)
	f.columns.On("GetColumn", mock.Anything, source.ID).Return(source, nil)
	f.columns.On("GetColumn", mock.Anything, foreign.ID).Return(foreign, nil)
	f.guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)

	_, err := f.app.UpdateCard(context.Background(), card.ID, viewerID, UpdateCardRequest{ColumnID: &foreign.ID})
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.pub.published)
	f.repo.AssertNotCalled(t, "UpdateCard")
}

func TestUpdateCardMovePublishesBothColumns(t *testing.T) {
	f := newFixture()
	boardID := uuid.New()
	viewerID := uuid.New()
	source := &models.Column{ID: uuid.New(), BoardID: boardID}
	target := &models.Column{ID: uuid.New(), BoardID: boardID}
	card := &models.Card{ID: uuid.New(), ColumnID: source.ID}
	moved := *card
	moved.ColumnID = target.ID

	f.repo.On("GetCard", mock.Anything, card.ID).Return(card, nil)
	f.columns.On("GetColumn", mock.Anything, source.ID).Return(source, nil)
	f.columns.On("GetColumn", mock.Anything, target.ID).Return(target, nil)
	f.guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	f.repo.On("UpdateCard", mock.Anything, card.ID, mock.Anything).Return(&moved, nil)
	f.repo.On("ListCardsByColumn", mock.Anything, target.ID).Return([]models.Card{moved}, nil)
	f.repo.On("ListCardsByColumn", mock.Anything, source.ID).Return([]models.Card{}, nil)

	got, err := f.app.UpdateCard(context.Background(), card.ID, viewerID, UpdateCardRequest{ColumnID: &target.ID})
	require.NoError(t, err)
	assert.Equal(t, target.ID, got.ColumnID)
	assert.Equal(t, []events.EventType{events.EventTypeCardsUpdated, events.EventTypeCardsUpdated}, f.pub.published)
}

func TestCreateCardSetsViewerAsOwner(t *testing.T) {
	f := newFixture()
	boardID := uuid.New()
	viewerID := uuid.New()
	column := &models.Column{ID: uuid.New(), BoardID: boardID}
	card := &models.Card{ID: uuid.New(), ColumnID: column.ID, OwnerID: viewerID, Content: "ship it"}

	f.columns.On("GetColumn", mock.Anything, column.ID).Return(column, nil)
	f.guard.On("EnsureAccess", mock.Anything, boardID, viewerID).Return(&models.Board{ID: boardID}, nil)
	f.repo.On("CreateCard", mock.Anything, column.ID, viewerID, "ship it", 0).Return(card, nil)
	f.repo.On("ListCardsByColumn", mock.Anything, column.ID).Return([]models.Card{*card}, nil)

	got, err := f.app.CreateCard(context.Background(), viewerID, CreateCardRequest{ColumnID: column.ID, Content: "ship it"})
	require.NoError(t, err)
	assert.Equal(t, viewerID, got.OwnerID)
	assert.Equal(t, []events.EventType{events.EventTypeCardsUpdated}, f.pub.published)
}
