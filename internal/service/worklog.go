package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/store"
)

// WorkLogService manages time entries. Unlike cards, worklogs are not
// board-owner scoped: any authenticated user may log time on any card and
// read a card's log, but only the author may change or remove an entry.
type WorkLogService struct {
	store  store.Store
	logger *slog.Logger
}

// NewWorkLogService creates a new worklog service.
func NewWorkLogService(st store.Store, logger *slog.Logger) *WorkLogService {
	return &WorkLogService{store: st, logger: logger}
}

// CreateWorkLogRequest contains the data for a new worklog.
type CreateWorkLogRequest struct {
	Date  domain.Date `json:"date" validate:"required"`
	Hours float64     `json:"hours" validate:"required,gt=0"`
	Note  string      `json:"note"`
}

// Create records hours spent by the requesting user on a card.
// The date must not be in the future.
func (s *WorkLogService) Create(ctx context.Context, userID, cardID int64, req CreateWorkLogRequest) (*domain.WorkLog, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}
	if req.Date.After(domain.Today()) {
		return nil, domainerrors.Validation("date must not be in the future")
	}

	if _, err := s.store.GetCard(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("card not found")
		}
		return nil, fmt.Errorf("get card: %w", err)
	}

	now := time.Now()
	wl := &domain.WorkLog{
		CardID:    cardID,
		UserID:    userID,
		Date:      req.Date,
		Hours:     req.Hours,
		Note:      req.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateWorkLog(ctx, wl); err != nil {
		return nil, fmt.Errorf("create worklog: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("worklog created",
			"worklog_id", wl.ID,
			"card_id", cardID,
			"user_id", userID,
			"hours", wl.Hours,
		)
	}

	return wl, nil
}

// ListForCard returns a card's worklogs, most recent date first.
func (s *WorkLogService) ListForCard(ctx context.Context, cardID int64) ([]*domain.WorkLog, error) {
	if _, err := s.store.GetCard(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("card not found")
		}
		return nil, fmt.Errorf("get card: %w", err)
	}

	logs, err := s.store.ListCardWorkLogs(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("list worklogs: %w", err)
	}
	if logs == nil {
		logs = []*domain.WorkLog{}
	}
	return logs, nil
}

// Update applies a partial update to a worklog owned by the requester.
func (s *WorkLogService) Update(ctx context.Context, userID, worklogID int64, upd domain.WorkLogUpdate) (*domain.WorkLog, error) {
	wl, err := s.getAuthored(ctx, userID, worklogID)
	if err != nil {
		return nil, err
	}

	if upd.Hours != nil && *upd.Hours <= 0 {
		return nil, domainerrors.Validation("hours must be greater than 0")
	}

	upd.Apply(wl)
	if err := s.store.UpdateWorkLog(ctx, wl); err != nil {
		return nil, fmt.Errorf("update worklog: %w", err)
	}
	return wl, nil
}

// Delete removes a worklog owned by the requester.
func (s *WorkLogService) Delete(ctx context.Context, userID, worklogID int64) error {
	if _, err := s.getAuthored(ctx, userID, worklogID); err != nil {
		return err
	}

	if err := s.store.DeleteWorkLog(ctx, worklogID); err != nil {
		return fmt.Errorf("delete worklog: %w", err)
	}
	return nil
}

// getAuthored loads a worklog and checks that userID wrote it.
func (s *WorkLogService) getAuthored(ctx context.Context, userID, worklogID int64) (*domain.WorkLog, error) {
	wl, err := s.store.GetWorkLog(ctx, worklogID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("worklog not found")
		}
		return nil, fmt.Errorf("get worklog: %w", err)
	}
	if wl.UserID != userID {
		return nil, domainerrors.Forbidden("worklog belongs to another user")
	}
	return wl, nil
}

// UserWeek returns the requester's worklogs for one calendar week,
// Monday through Sunday inclusive, ascending by date.
func (s *WorkLogService) UserWeek(ctx context.Context, userID int64, weekStr string) ([]*domain.WorkLog, error) {
	w, err := parseWeek(weekStr)
	if err != nil {
		return nil, err
	}

	from, to := w.CalendarRange()
	logs, err := s.store.ListUserWorkLogs(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list user worklogs: %w", err)
	}
	if logs == nil {
		logs = []*domain.WorkLog{}
	}
	return logs, nil
}

// WeekSummary is a user's weekly time sheet: the total, a per-day
// breakdown of the days that have entries, and the entries themselves.
type WeekSummary struct {
	Week           string            `json:"week"`
	TotalWeekHours float64           `json:"total_week_hours"`
	ByDay          []domain.DayHours `json:"by_day"`
	WorkLogs       []*domain.WorkLog `json:"worklogs"`
}

// UserWeekSummary aggregates the requester's worklogs for one calendar week.
func (s *WorkLogService) UserWeekSummary(ctx context.Context, userID int64, weekStr string) (*WeekSummary, error) {
	logs, err := s.UserWeek(ctx, userID, weekStr)
	if err != nil {
		return nil, err
	}

	summary := &WeekSummary{
		Week:     weekStr,
		ByDay:    []domain.DayHours{},
		WorkLogs: logs,
	}
	for _, wl := range logs {
		summary.TotalWeekHours += wl.Hours
		// Logs arrive in ascending date order, so days can be folded in place.
		if n := len(summary.ByDay); n > 0 && summary.ByDay[n-1].Date == wl.Date {
			summary.ByDay[n-1].Hours += wl.Hours
			continue
		}
		summary.ByDay = append(summary.ByDay, domain.DayHours{Date: wl.Date, Hours: wl.Hours})
	}
	return summary, nil
}
