package main

import (
	"database/sql"

	"github.com/retroboardhq/retroboard/internal/actionitems"
	actionitemsdb "github.com/retroboardhq/retroboard/internal/actionitems/db"
	"github.com/retroboardhq/retroboard/internal/boards"
	boardsdb "github.com/retroboardhq/retroboard/internal/boards/db"
	"github.com/retroboardhq/retroboard/internal/cards"
	cardsdb "github.com/retroboardhq/retroboard/internal/cards/db"
	"github.com/retroboardhq/retroboard/internal/columns"
	columnsdb "github.com/retroboardhq/retroboard/internal/columns/db"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/retroboardhq/retroboard/internal/users"
	usersdb "github.com/retroboardhq/retroboard/internal/users/db"
)

type Services struct {
	Users       *users.Service
	Boards      *boards.Service
	Columns     *columns.Service
	Cards       *cards.Service
	ActionItems *actionitems.Service
}

func setupServices(database *sql.DB, publisher events.Publisher) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	// Users
	userQueries := usersdb.New(database)
	userRepo := users.NewRepository(userQueries)
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp)

	// Boards
	boardQueries := boardsdb.New(database)
	boardRepo := boards.NewRepository(boardQueries)
	boardApp := boards.NewApp(boardRepo, userApp, publisher)
	boardService := boards.NewService(boardApp)

	// Columns
	columnQueries := columnsdb.New(database)
	columnRepo := columns.NewRepository(columnQueries)
	columnApp := columns.NewApp(columnRepo, boardApp, publisher)
	columnService := columns.NewService(columnApp)

	// Board create seeds its initial columns through the columns app
	boardApp.SetColumnCreator(columnApp)

	// Cards
	cardQueries := cardsdb.New(database)
	cardRepo := cards.NewRepository(cardQueries)
	cardApp := cards.NewApp(cardRepo, columnApp, boardApp, publisher)
	cardService := cards.NewService(cardApp)

	// Action items
	actionItemQueries := actionitemsdb.New(database)
	actionItemRepo := actionitems.NewRepository(actionItemQueries)
	actionItemApp := actionitems.NewApp(actionItemRepo, boardApp, publisher)
	actionItemService := actionitems.NewService(actionItemApp)

	return &Services{
		Users:       userService,
		Boards:      boardService,
		Columns:     columnService,
		Cards:       cardService,
		ActionItems: actionItemService,
	}
}
