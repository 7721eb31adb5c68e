package boards

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/models"
	"github.com/retroboardhq/retroboard/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateBoard(ctx context.Context, title string, ownerID uuid.UUID, settings json.RawMessage, inviteCode string) (*models.Board, error) {
	args := m.Called(ctx, title, ownerID, settings, inviteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) GetBoard(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) GetBoardByInviteCode(ctx context.Context, inviteCode string) (*models.Board, error) {
	args := m.Called(ctx, inviteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) ListBoardsForUser(ctx context.Context, userID uuid.UUID) ([]models.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Board), args.Error(1)
}

func (m *mockRepository) UpdateBoard(ctx context.Context, id uuid.UUID, req UpdateBoardRequest) (*models.Board, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) SetTimer(ctx context.Context, id uuid.UUID, timer *models.Timer) (*models.Board, error) {
	args := m.Called(ctx, id, timer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) UpdateOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Board, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) UpdateInviteCode(ctx context.Context, id uuid.UUID, inviteCode string) (*models.Board, error) {
	args := m.Called(ctx, id, inviteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *mockRepository) GrantAccess(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) error {
	args := m.Called(ctx, boardID, userID)
	return args.Error(0)
}

func (m *mockRepository) HasAccess(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, boardID, userID)
	return args.Bool(0), args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) GetUserByNickname(ctx context.Context, nickname string) (*models.User, error) {
	args := m.Called(ctx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// recordingPublisher captures published events in order.
type recordingPublisher struct {
	published []publishedEvent
}

type publishedEvent struct {
	boardID   uuid.UUID
	eventType events.EventType
	payload   interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, boardID uuid.UUID, eventType events.EventType, payload interface{}) {
	p.published = append(p.published, publishedEvent{boardID: boardID, eventType: eventType, payload: payload})
}

func newTestApp(t *testing.T) (*App, *mockRepository, *mockDirectory, *recordingPublisher) {
	t.Helper()
	repo := new(mockRepository)
	dir := new(mockDirectory)
	pub := &recordingPublisher{}
	return NewApp(repo, dir, pub), repo, dir, pub
}

func ownedBoard(ownerID uuid.UUID) *models.Board {
	return &models.Board{ID: uuid.New(), Title: "sprint 42 retro", OwnerID: ownerID}
}

func TestUpdateBoardPublishesExactlyOnce(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)
	title := "renamed"
	updated := *board
	updated.Title = title

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	repo.On("UpdateBoard", mock.Anything, board.ID, UpdateBoardRequest{Title: &title}).Return(&updated, nil)

	got, err := app.UpdateBoard(context.Background(), board.ID, owner, UpdateBoardRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.EventTypeBoardUpdated, pub.published[0].eventType)
	assert.Equal(t, board.ID, pub.published[0].boardID)
	payload := pub.published[0].payload.(events.BoardUpdatedPayload)
	assert.Equal(t, "renamed", payload.Board.Title)
	repo.AssertExpectations(t)
}

func TestUpdateBoardDoesNotPublishOnFailure(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)
	title := "renamed"

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	repo.On("UpdateBoard", mock.Anything, board.ID, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := app.UpdateBoard(context.Background(), board.ID, owner, UpdateBoardRequest{Title: &title})
	require.Error(t, err)
	assert.Empty(t, pub.published)
}

func TestUpdateBoardEmptyPatchRejected(t *testing.T) {
	app, repo, _, pub := newTestApp(t)

	_, err := app.UpdateBoard(context.Background(), uuid.New(), uuid.New(), UpdateBoardRequest{})
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, pub.published)
	repo.AssertNotCalled(t, "UpdateBoard")
}

func TestUpdateBoardForbiddenForStranger(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	board := ownedBoard(uuid.New())
	stranger := uuid.New()
	title := "renamed"

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	repo.On("HasAccess", mock.Anything, board.ID, stranger).Return(false, nil)

	_, err := app.UpdateBoard(context.Background(), board.ID, stranger, UpdateBoardRequest{Title: &title})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, pub.published)
	repo.AssertNotCalled(t, "UpdateBoard")
}

func TestSetTimerStartWhileRunningRejected(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)
	running := startTimer(1000, 2000)
	board.Timer = &running

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)

	_, err := app.SetTimer(context.Background(), board.ID, owner, startTimer(3000, 4000))
	require.ErrorIs(t, err, ErrTimerAlreadyRunning)
	assert.Empty(t, pub.published)
	repo.AssertNotCalled(t, "SetTimer")
}

func TestSetTimerPersistsAndPublishes(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)
	requested := startTimer(1000, 2000)
	updated := *board
	updated.Timer = &requested

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	repo.On("SetTimer", mock.Anything, board.ID, &requested).Return(&updated, nil)

	got, err := app.SetTimer(context.Background(), board.ID, owner, requested)
	require.NoError(t, err)
	require.NotNil(t, got.Timer)
	assert.True(t, got.Timer.Running())

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.EventTypeBoardUpdated, pub.published[0].eventType)
	repo.AssertExpectations(t)
}

func TestTransferOwnershipUnknownNickname(t *testing.T) {
	app, repo, dir, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	dir.On("GetUserByNickname", mock.Anything, "ghost").Return(nil, users.ErrUserNotFound)

	_, err := app.TransferOwnership(context.Background(), board.ID, owner, "ghost")
	require.ErrorIs(t, err, users.ErrUserNotFound)
	assert.Empty(t, pub.published)
	repo.AssertNotCalled(t, "UpdateOwner")
}

func TestTransferOwnershipPublishesNewOwner(t *testing.T) {
	app, repo, dir, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)
	newOwner := &models.User{ID: uuid.New(), Nickname: "sam"}
	transferred := *board
	transferred.OwnerID = newOwner.ID

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	dir.On("GetUserByNickname", mock.Anything, "sam").Return(newOwner, nil)
	repo.On("UpdateOwner", mock.Anything, board.ID, newOwner.ID).Return(&transferred, nil)
	repo.On("GrantAccess", mock.Anything, board.ID, newOwner.ID).Return(nil)

	got, err := app.TransferOwnership(context.Background(), board.ID, owner, "sam")
	require.NoError(t, err)
	assert.Equal(t, newOwner.ID, got.OwnerID)

	require.Len(t, pub.published, 1)
	payload := pub.published[0].payload.(events.BoardUpdatedPayload)
	assert.Equal(t, newOwner.ID, payload.Board.OwnerID)
	repo.AssertExpectations(t)
}

func TestSoftDeleteOwnerOnly(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	board := ownedBoard(uuid.New())

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)

	_, err := app.SoftDelete(context.Background(), board.ID, uuid.New())
	require.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, pub.published)
	repo.AssertNotCalled(t, "SoftDelete")
}

func TestSoftDeleteKeepsRowAndPublishes(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)
	deleted := *board
	deleted.Deleted = true

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	repo.On("SoftDelete", mock.Anything, board.ID).Return(&deleted, nil)

	got, err := app.SoftDelete(context.Background(), board.ID, owner)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, board.ID, got.ID)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.EventTypeBoardDeleted, pub.published[0].eventType)
	repo.AssertExpectations(t)
}

func TestGetBoardAllowsGrantedViewer(t *testing.T) {
	app, repo, _, _ := newTestApp(t)
	board := ownedBoard(uuid.New())
	viewer := uuid.New()

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	repo.On("HasAccess", mock.Anything, board.ID, viewer).Return(true, nil)

	got, err := app.GetBoard(context.Background(), board.ID, viewer)
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
}

func TestGetBoardForbiddenWithoutAccess(t *testing.T) {
	app, repo, _, _ := newTestApp(t)
	board := ownedBoard(uuid.New())
	viewer := uuid.New()

	repo.On("GetBoard", mock.Anything, board.ID).Return(board, nil)
	repo.On("HasAccess", mock.Anything, board.ID, viewer).Return(false, nil)

	_, err := app.GetBoard(context.Background(), board.ID, viewer)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestJoinByInviteGrantsAccess(t *testing.T) {
	app, repo, _, _ := newTestApp(t)
	board := ownedBoard(uuid.New())
	joiner := uuid.New()

	repo.On("GetBoardByInviteCode", mock.Anything, "ab12cd34").Return(board, nil)
	repo.On("GrantAccess", mock.Anything, board.ID, joiner).Return(nil)

	got, err := app.JoinByInvite(context.Background(), joiner, "ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
	repo.AssertExpectations(t)
}

func TestJoinByInviteUnknownCode(t *testing.T) {
	app, repo, _, _ := newTestApp(t)

	repo.On("GetBoardByInviteCode", mock.Anything, "nope").Return(nil, ErrBoardNotFound)

	_, err := app.JoinByInvite(context.Background(), uuid.New(), "nope")
	require.ErrorIs(t, err, ErrBoardNotFound)
}

func TestCreateBoardSeedsColumnsAndAccess(t *testing.T) {
	app, repo, _, pub := newTestApp(t)
	owner := uuid.New()
	board := ownedBoard(owner)

	creator := new(mockColumnCreator)
	app.SetColumnCreator(creator)

	repo.On("CreateBoard", mock.Anything, "sprint 42 retro", owner, mock.Anything, mock.Anything).Return(board, nil)
	repo.On("GrantAccess", mock.Anything, board.ID, owner).Return(nil)
	creator.On("CreateInitialColumns", mock.Anything, board.ID, []string{"went well", "to improve"}).Return(nil)

	got, err := app.CreateBoard(context.Background(), owner, CreateBoardRequest{
		Title:   "sprint 42 retro",
		Columns: []string{"went well", "to improve"},
	})
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
	assert.Empty(t, pub.published)
	repo.AssertExpectations(t)
	creator.AssertExpectations(t)
}

type mockColumnCreator struct {
	mock.Mock
}

func (m *mockColumnCreator) CreateInitialColumns(ctx context.Context, boardID uuid.UUID, titles []string) error {
	args := m.Called(ctx, boardID, titles)
	return args.Error(0)
}
