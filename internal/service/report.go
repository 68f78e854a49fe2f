package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

// ReportService builds weekly board reports. Reports are owner-only and use
// the half-open Monday..next-Monday window, which differs from the inclusive
// range of the personal weekly views.
type ReportService struct {
	store  store.Store
	logger *slog.Logger
}

// NewReportService creates a new report service.
func NewReportService(st store.Store, logger *slog.Logger) *ReportService {
	return &ReportService{store: st, logger: logger}
}

// Summary is the weekly activity report of one board.
type Summary struct {
	Week           string              `json:"week"`
	NewCount       int                 `json:"new_count"`
	New            []domain.ReportCard `json:"new"`
	CompletedCount int                 `json:"completed_count"`
	Completed      []domain.ReportCard `json:"completed"`
	OverdueCount   int                 `json:"overdue_count"`
	Overdue        []domain.ReportCard `json:"overdue"`
}

// Summary reports the board's new, completed, and overdue cards for a week.
func (s *ReportService) Summary(ctx context.Context, userID, boardID int64, weekStr string) (*Summary, error) {
	w, err := parseWeek(weekStr)
	if err != nil {
		return nil, err
	}
	if _, err := ownedBoard(ctx, s.store, boardID, userID); err != nil {
		return nil, err
	}

	start, end := w.Range()

	newCards, err := s.store.ReportNewCards(ctx, boardID, start, end)
	if err != nil {
		return nil, fmt.Errorf("report new cards: %w", err)
	}
	completed, err := s.store.ReportCompletedCards(ctx, boardID, start, end)
	if err != nil {
		return nil, fmt.Errorf("report completed cards: %w", err)
	}
	overdue, err := s.store.ReportOverdueCards(ctx, boardID, start, end)
	if err != nil {
		return nil, fmt.Errorf("report overdue cards: %w", err)
	}

	if newCards == nil {
		newCards = []domain.ReportCard{}
	}
	if completed == nil {
		completed = []domain.ReportCard{}
	}
	if overdue == nil {
		overdue = []domain.ReportCard{}
	}

	return &Summary{
		Week:           weekStr,
		NewCount:       len(newCards),
		New:            newCards,
		CompletedCount: len(completed),
		Completed:      completed,
		OverdueCount:   len(overdue),
		Overdue:        overdue,
	}, nil
}

// HoursByUser reports logged hours per user on the board for a week.
// A week with no entries yields an empty list.
func (s *ReportService) HoursByUser(ctx context.Context, userID, boardID int64, weekStr string) ([]domain.UserHours, error) {
	w, err := parseWeek(weekStr)
	if err != nil {
		return nil, err
	}
	if _, err := ownedBoard(ctx, s.store, boardID, userID); err != nil {
		return nil, err
	}

	start, end := w.Range()
	rows, err := s.store.ReportHoursByUser(ctx, boardID, start, end)
	if err != nil {
		return nil, fmt.Errorf("report hours by user: %w", err)
	}
	if rows == nil {
		rows = []domain.UserHours{}
	}
	return rows, nil
}

// HoursByCard reports logged hours per card on the board for a week,
// highest totals first.
func (s *ReportService) HoursByCard(ctx context.Context, userID, boardID int64, weekStr string) ([]domain.CardHours, error) {
	w, err := parseWeek(weekStr)
	if err != nil {
		return nil, err
	}
	if _, err := ownedBoard(ctx, s.store, boardID, userID); err != nil {
		return nil, err
	}

	start, end := w.Range()
	rows, err := s.store.ReportHoursByCard(ctx, boardID, start, end)
	if err != nil {
		return nil, fmt.Errorf("report hours by card: %w", err)
	}
	if rows == nil {
		rows = []domain.CardHours{}
	}
	return rows, nil
}
