package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/service"
)

func (s *Server) registerWorkLogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createWorkLog",
		Method:        http.MethodPost,
		Path:          "/cards/{id}/worklogs",
		Summary:       "Log hours",
		Description:   "Records hours spent on a card; any authenticated user may log",
		Tags:          []string{"Worklogs"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateWorkLog)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCardWorkLogs",
		Method:      http.MethodGet,
		Path:        "/cards/{id}/worklogs",
		Summary:     "List card worklogs",
		Description: "Returns a card's worklogs, newest date first",
		Tags:        []string{"Worklogs"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListCardWorkLogs)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateWorkLog",
		Method:      http.MethodPatch,
		Path:        "/worklogs/{id}",
		Summary:     "Update worklog",
		Description: "Applies a partial update; only the author may edit",
		Tags:        []string{"Worklogs"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateWorkLog)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteWorkLog",
		Method:      http.MethodDelete,
		Path:        "/worklogs/{id}",
		Summary:     "Delete worklog",
		Description: "Removes a worklog; only the author may delete",
		Tags:        []string{"Worklogs"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteWorkLog)

	huma.Register(s.api, huma.Operation{
		OperationID: "listMyWorkLogs",
		Method:      http.MethodGet,
		Path:        "/users/me/worklogs",
		Summary:     "My week",
		Description: "Returns the requester's worklogs for one week, Monday through Sunday",
		Tags:        []string{"Worklogs"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListMyWorkLogs)

	huma.Register(s.api, huma.Operation{
		OperationID: "myWorkLogSummary",
		Method:      http.MethodGet,
		Path:        "/users/me/worklogs/summary",
		Summary:     "My week summary",
		Description: "Returns the requester's weekly total with a per-day breakdown",
		Tags:        []string{"Worklogs"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleMyWorkLogSummary)
}

// === DTOs ===

// CreateWorkLogRequest is the request body for logging hours.
type CreateWorkLogRequest struct {
	Date  string  `json:"date" doc:"Work date (YYYY-MM-DD), not in the future"`
	Hours float64 `json:"hours" doc:"Hours worked, greater than zero"`
	Note  string  `json:"note,omitempty" doc:"Free-form note"`
}

// CreateWorkLogInput wraps the create worklog request for Huma.
type CreateWorkLogInput struct {
	Authorization string `header:"Authorization"`
	CardID        int64  `path:"id" doc:"Card ID"`
	Body          CreateWorkLogRequest
}

// WorkLogResponse contains worklog data in API responses.
type WorkLogResponse struct {
	ID        int64     `json:"id" doc:"Worklog ID"`
	CardID    int64     `json:"card_id" doc:"Owning card ID"`
	UserID    int64     `json:"user_id" doc:"Author user ID"`
	Date      string    `json:"date" doc:"Work date (YYYY-MM-DD)"`
	Hours     float64   `json:"hours" doc:"Hours worked"`
	Note      string    `json:"note,omitempty" doc:"Free-form note"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update time"`
}

// WorkLogOutput wraps the worklog response for Huma.
type WorkLogOutput struct {
	Body WorkLogResponse
}

// ListCardWorkLogsInput contains parameters for listing a card's worklogs.
type ListCardWorkLogsInput struct {
	Authorization string `header:"Authorization"`
	CardID        int64  `path:"id" doc:"Card ID"`
}

// WorkLogsOutput wraps a worklog collection for Huma.
type WorkLogsOutput struct {
	Body []WorkLogResponse
}

// UpdateWorkLogRequest is the request body for updating a worklog.
type UpdateWorkLogRequest struct {
	Date  *string  `json:"date,omitempty" doc:"Work date (YYYY-MM-DD)"`
	Hours *float64 `json:"hours,omitempty" doc:"Hours worked, greater than zero"`
	Note  *string  `json:"note,omitempty" doc:"Free-form note"`
}

// UpdateWorkLogInput wraps the update worklog request for Huma.
type UpdateWorkLogInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Worklog ID"`
	Body          UpdateWorkLogRequest
}

// DeleteWorkLogInput contains parameters for deleting a worklog.
type DeleteWorkLogInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Worklog ID"`
}

// MyWorkLogsInput contains parameters for a user's weekly worklogs.
type MyWorkLogsInput struct {
	Authorization string `header:"Authorization"`
	Week          string `query:"week" required:"true" doc:"ISO week (YYYY-WW)"`
}

// DayHoursResponse is one day's total in a weekly summary.
type DayHoursResponse struct {
	Date  string  `json:"date" doc:"Work date (YYYY-MM-DD)"`
	Hours float64 `json:"hours" doc:"Hours logged that day"`
}

// WeekSummaryResponse is a user's weekly time sheet.
type WeekSummaryResponse struct {
	Week           string             `json:"week" doc:"ISO week (YYYY-WW)"`
	TotalWeekHours float64            `json:"total_week_hours" doc:"Total hours for the week"`
	ByDay          []DayHoursResponse `json:"by_day" doc:"Per-day totals for days with entries"`
	WorkLogs       []WorkLogResponse  `json:"worklogs" doc:"The week's entries, ascending by date"`
}

// WeekSummaryOutput wraps the weekly summary for Huma.
type WeekSummaryOutput struct {
	Body WeekSummaryResponse
}

// === Handlers ===

func workLogResponse(wl *domain.WorkLog) WorkLogResponse {
	return WorkLogResponse{
		ID:        wl.ID,
		CardID:    wl.CardID,
		UserID:    wl.UserID,
		Date:      wl.Date.String(),
		Hours:     wl.Hours,
		Note:      wl.Note,
		CreatedAt: wl.CreatedAt,
		UpdatedAt: wl.UpdatedAt,
	}
}

func workLogResponses(logs []*domain.WorkLog) []WorkLogResponse {
	resp := make([]WorkLogResponse, len(logs))
	for i, wl := range logs {
		resp[i] = workLogResponse(wl)
	}
	return resp
}

func (s *Server) handleCreateWorkLog(ctx context.Context, input *CreateWorkLogInput) (*WorkLogOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if input.Body.Date == "" {
		return nil, domainerrors.Validation("date is required")
	}
	date, err := parseDateField("date", input.Body.Date)
	if err != nil {
		return nil, err
	}

	wl, err := s.services.WorkLogs.Create(ctx, userID, input.CardID, service.CreateWorkLogRequest{
		Date:  date,
		Hours: input.Body.Hours,
		Note:  input.Body.Note,
	})
	if err != nil {
		return nil, err
	}

	return &WorkLogOutput{Body: workLogResponse(wl)}, nil
}

func (s *Server) handleListCardWorkLogs(ctx context.Context, input *ListCardWorkLogsInput) (*WorkLogsOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	logs, err := s.services.WorkLogs.ListForCard(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	return &WorkLogsOutput{Body: workLogResponses(logs)}, nil
}

func (s *Server) handleUpdateWorkLog(ctx context.Context, input *UpdateWorkLogInput) (*WorkLogOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	upd := domain.WorkLogUpdate{
		Hours: input.Body.Hours,
		Note:  input.Body.Note,
	}
	if input.Body.Date != nil {
		if *input.Body.Date == "" {
			return nil, domainerrors.Validation("date must not be empty")
		}
		date, err := parseDateField("date", *input.Body.Date)
		if err != nil {
			return nil, err
		}
		upd.Date = &date
	}

	wl, err := s.services.WorkLogs.Update(ctx, userID, input.ID, upd)
	if err != nil {
		return nil, err
	}

	return &WorkLogOutput{Body: workLogResponse(wl)}, nil
}

func (s *Server) handleDeleteWorkLog(ctx context.Context, input *DeleteWorkLogInput) (*MessageOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.WorkLogs.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Worklog deleted"}}, nil
}

func (s *Server) handleListMyWorkLogs(ctx context.Context, input *MyWorkLogsInput) (*WorkLogsOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	logs, err := s.services.WorkLogs.UserWeek(ctx, userID, input.Week)
	if err != nil {
		return nil, err
	}

	return &WorkLogsOutput{Body: workLogResponses(logs)}, nil
}

func (s *Server) handleMyWorkLogSummary(ctx context.Context, input *MyWorkLogsInput) (*WeekSummaryOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	summary, err := s.services.WorkLogs.UserWeekSummary(ctx, userID, input.Week)
	if err != nil {
		return nil, err
	}

	byDay := make([]DayHoursResponse, len(summary.ByDay))
	for i, d := range summary.ByDay {
		byDay[i] = DayHoursResponse{Date: d.Date.String(), Hours: d.Hours}
	}

	return &WeekSummaryOutput{
		Body: WeekSummaryResponse{
			Week:           summary.Week,
			TotalWeekHours: summary.TotalWeekHours,
			ByDay:          byDay,
			WorkLogs:       workLogResponses(summary.WorkLogs),
		},
	}, nil
}
