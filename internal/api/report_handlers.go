package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
)

func (s *Server) registerReportRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "reportSummary",
		Method:      http.MethodGet,
		Path:        "/report/{board_id}/summary",
		Summary:     "Weekly board summary",
		Description: "Counts and lists the week's new, completed, and overdue cards",
		Tags:        []string{"Reports"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleReportSummary)

	huma.Register(s.api, huma.Operation{
		OperationID: "reportHoursByUser",
		Method:      http.MethodGet,
		Path:        "/report/{board_id}/hours-by-user",
		Summary:     "Weekly hours by user",
		Description: "Aggregates the week's logged hours per user",
		Tags:        []string{"Reports"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleReportHoursByUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "reportHoursByCard",
		Method:      http.MethodGet,
		Path:        "/report/{board_id}/hours-by-card",
		Summary:     "Weekly hours by card",
		Description: "Aggregates the week's logged hours per card, highest first",
		Tags:        []string{"Reports"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleReportHoursByCard)
}

// === DTOs ===

// ReportInput contains the parameters shared by all report endpoints.
type ReportInput struct {
	Authorization string `header:"Authorization"`
	BoardID       int64  `path:"board_id" doc:"Board ID"`
	Week          string `query:"week" required:"true" doc:"ISO week (YYYY-WW)"`
}

// ReportCardResponse is the card projection used in weekly reports.
type ReportCardResponse struct {
	ID            int64  `json:"id" doc:"Card ID"`
	Title         string `json:"title" doc:"Card title"`
	ListID        int64  `json:"list_id" doc:"Current list ID"`
	ResponsibleID int64  `json:"responsible_id,omitempty" doc:"Responsible user ID"`
	DueDate       string `json:"due_date,omitempty" doc:"Due date (YYYY-MM-DD)"`
}

// ReportSummaryResponse is the weekly board activity report.
type ReportSummaryResponse struct {
	Week           string               `json:"week" doc:"ISO week (YYYY-WW)"`
	NewCount       int                  `json:"new_count" doc:"Cards created during the week"`
	New            []ReportCardResponse `json:"new" doc:"Cards created during the week"`
	CompletedCount int                  `json:"completed_count" doc:"Cards finished during the week"`
	Completed      []ReportCardResponse `json:"completed" doc:"Cards finished during the week"`
	OverdueCount   int                  `json:"overdue_count" doc:"Cards due during the week and not finished"`
	Overdue        []ReportCardResponse `json:"overdue" doc:"Cards due during the week and not finished"`
}

// ReportSummaryOutput wraps the weekly summary for Huma.
type ReportSummaryOutput struct {
	Body ReportSummaryResponse
}

// UserHoursResponse is one user's weekly total in a board report.
type UserHoursResponse struct {
	UserID     int64   `json:"user_id" doc:"User ID"`
	TotalHours float64 `json:"total_hours" doc:"Hours logged during the week"`
	TasksCount int     `json:"tasks_count" doc:"Distinct cards logged on"`
}

// HoursByUserOutput wraps the per-user aggregation for Huma.
type HoursByUserOutput struct {
	Body []UserHoursResponse
}

// CardHoursResponse is one card's weekly total in a board report.
type CardHoursResponse struct {
	CardID        int64   `json:"card_id" doc:"Card ID"`
	Title         string  `json:"title" doc:"Card title"`
	ResponsibleID int64   `json:"responsible_id,omitempty" doc:"Responsible user ID"`
	ListName      string  `json:"list_name" doc:"The card's current list"`
	TotalHours    float64 `json:"total_hours" doc:"Hours logged during the week"`
}

// HoursByCardOutput wraps the per-card aggregation for Huma.
type HoursByCardOutput struct {
	Body []CardHoursResponse
}

// === Handlers ===

func reportCardResponses(cards []domain.ReportCard) []ReportCardResponse {
	resp := make([]ReportCardResponse, len(cards))
	for i, c := range cards {
		resp[i] = ReportCardResponse{
			ID:            c.ID,
			Title:         c.Title,
			ListID:        c.ListID,
			ResponsibleID: c.ResponsibleID,
			DueDate:       dateString(c.DueDate),
		}
	}
	return resp
}

func (s *Server) handleReportSummary(ctx context.Context, input *ReportInput) (*ReportSummaryOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	summary, err := s.services.Reports.Summary(ctx, userID, input.BoardID, input.Week)
	if err != nil {
		return nil, err
	}

	return &ReportSummaryOutput{
		Body: ReportSummaryResponse{
			Week:           summary.Week,
			NewCount:       summary.NewCount,
			New:            reportCardResponses(summary.New),
			CompletedCount: summary.CompletedCount,
			Completed:      reportCardResponses(summary.Completed),
			OverdueCount:   summary.OverdueCount,
			Overdue:        reportCardResponses(summary.Overdue),
		},
	}, nil
}

func (s *Server) handleReportHoursByUser(ctx context.Context, input *ReportInput) (*HoursByUserOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rows, err := s.services.Reports.HoursByUser(ctx, userID, input.BoardID, input.Week)
	if err != nil {
		return nil, err
	}

	resp := make([]UserHoursResponse, len(rows))
	for i, r := range rows {
		resp[i] = UserHoursResponse{
			UserID:     r.UserID,
			TotalHours: r.TotalHours,
			TasksCount: r.TasksCount,
		}
	}

	return &HoursByUserOutput{Body: resp}, nil
}

func (s *Server) handleReportHoursByCard(ctx context.Context, input *ReportInput) (*HoursByCardOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rows, err := s.services.Reports.HoursByCard(ctx, userID, input.BoardID, input.Week)
	if err != nil {
		return nil, err
	}

	resp := make([]CardHoursResponse, len(rows))
	for i, r := range rows {
		resp[i] = CardHoursResponse{
			CardID:        r.CardID,
			Title:         r.Title,
			ResponsibleID: r.ResponsibleID,
			ListName:      r.ListName,
			TotalHours:    r.TotalHours,
		}
	}

	return &HoursByCardOutput{Body: resp}, nil
}
