// Package store defines the persistence interface of the server and the
// sentinel errors implementations report. The concrete implementation lives
// in the sqlite subpackage.
package store

import (
	"context"

	"github.com/neocare/neocare-server/internal/domain"
)

// Store is the full persistence surface used by the service layer.
//
// Methods return ErrNotFound for missing rows and ErrAlreadyExists for
// unique-constraint violations; everything else is an infrastructure error.
type Store interface {
	Close() error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Boards
	CreateBoard(ctx context.Context, board *domain.Board) error
	GetBoard(ctx context.Context, id int64) (*domain.Board, error)
	ListBoards(ctx context.Context, userID int64) ([]*domain.Board, error)

	// Lists
	CreateList(ctx context.Context, list *domain.List) error
	GetList(ctx context.Context, id int64) (*domain.List, error)
	ListLists(ctx context.Context, boardID int64) ([]*domain.List, error)
	// GetListByName matches the list name case-insensitively within a board.
	GetListByName(ctx context.Context, boardID int64, name string) (*domain.List, error)

	// Cards
	CreateCard(ctx context.Context, card *domain.Card) error
	GetCard(ctx context.Context, id int64) (*domain.Card, error)
	UpdateCard(ctx context.Context, card *domain.Card) error
	// DeleteCard removes the card together with its labels, subtasks, and
	// worklogs in one transaction.
	DeleteCard(ctx context.Context, id int64) error
	// ListCardSummaries returns a board's cards with logged-hours, label, and
	// subtask aggregates. A non-zero responsibleID filters by assignee.
	ListCardSummaries(ctx context.Context, boardID, responsibleID int64) ([]*domain.CardSummary, error)
	// SearchCards matches the query as a case-insensitive substring of the
	// card title or description. A non-zero responsibleID filters by assignee.
	SearchCards(ctx context.Context, boardID int64, query string, responsibleID int64) ([]*domain.Card, error)

	// Labels
	CreateLabel(ctx context.Context, label *domain.Label) error
	GetLabel(ctx context.Context, id int64) (*domain.Label, error)
	ListLabels(ctx context.Context, cardID int64) ([]*domain.Label, error)
	DeleteLabel(ctx context.Context, id int64) error

	// Subtasks
	CreateSubtask(ctx context.Context, subtask *domain.Subtask) error
	GetSubtask(ctx context.Context, id int64) (*domain.Subtask, error)
	ListSubtasks(ctx context.Context, cardID int64) ([]*domain.Subtask, error)
	UpdateSubtask(ctx context.Context, subtask *domain.Subtask) error
	DeleteSubtask(ctx context.Context, id int64) error

	// Worklogs
	CreateWorkLog(ctx context.Context, wl *domain.WorkLog) error
	GetWorkLog(ctx context.Context, id int64) (*domain.WorkLog, error)
	UpdateWorkLog(ctx context.Context, wl *domain.WorkLog) error
	DeleteWorkLog(ctx context.Context, id int64) error
	// ListCardWorkLogs returns a card's worklogs, most recent date first.
	ListCardWorkLogs(ctx context.Context, cardID int64) ([]*domain.WorkLog, error)
	// ListUserWorkLogs returns a user's worklogs with from <= date <= to,
	// ascending by date.
	ListUserWorkLogs(ctx context.Context, userID int64, from, to domain.Date) ([]*domain.WorkLog, error)

	// Weekly reports. All ranges are half-open: start <= day < end.
	ReportNewCards(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.ReportCard, error)
	ReportCompletedCards(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.ReportCard, error)
	ReportOverdueCards(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.ReportCard, error)
	ReportHoursByUser(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.UserHours, error)
	ReportHoursByCard(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.CardHours, error)
}
