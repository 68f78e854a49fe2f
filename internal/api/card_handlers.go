package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/service"
)

func (s *Server) registerCardRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createCard",
		Method:        http.MethodPost,
		Path:          "/cards/",
		Summary:       "Create card",
		Description:   "Creates a card on an owned board",
		Tags:          []string{"Cards"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCards",
		Method:      http.MethodGet,
		Path:        "/cards/",
		Summary:     "List cards",
		Description: "Returns a board's cards with hour, label, and subtask aggregates",
		Tags:        []string{"Cards"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListCards)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchCards",
		Method:      http.MethodGet,
		Path:        "/cards/search",
		Summary:     "Search cards",
		Description: "Case-insensitive substring match over title and description",
		Tags:        []string{"Cards"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSearchCards)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCard",
		Method:      http.MethodGet,
		Path:        "/cards/{id}",
		Summary:     "Get card",
		Description: "Returns a card by ID",
		Tags:        []string{"Cards"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCard",
		Method:      http.MethodPatch,
		Path:        "/cards/{id}",
		Summary:     "Update card",
		Description: "Applies a partial update; list moves must stay on the same board",
		Tags:        []string{"Cards"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteCard",
		Method:      http.MethodDelete,
		Path:        "/cards/{id}",
		Summary:     "Delete card",
		Description: "Deletes a card with its labels, subtasks, and worklogs",
		Tags:        []string{"Cards"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteCard)
}

// === DTOs ===

// CreateCardRequest is the request body for creating a card.
type CreateCardRequest struct {
	BoardID     int64  `json:"board_id" doc:"Board ID"`
	Title       string `json:"title" doc:"Card title"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
	DueDate     string `json:"due_date,omitempty" doc:"Due date (YYYY-MM-DD)"`
	ListID      int64  `json:"list_id,omitempty" doc:"Target list; defaults to the board's backlog column"`
}

// CreateCardInput wraps the create card request for Huma.
type CreateCardInput struct {
	Authorization string `header:"Authorization"`
	Body          CreateCardRequest
}

// CardResponse contains card data in API responses.
type CardResponse struct {
	ID          int64     `json:"id" doc:"Card ID"`
	BoardID     int64     `json:"board_id" doc:"Owning board ID"`
	ListID      int64     `json:"list_id" doc:"Current list ID"`
	UserID      int64     `json:"user_id,omitempty" doc:"Responsible user ID"`
	Title       string    `json:"title" doc:"Card title"`
	Description string    `json:"description,omitempty" doc:"Free-form description"`
	DueDate     string    `json:"due_date,omitempty" doc:"Due date (YYYY-MM-DD)"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt   time.Time `json:"updated_at" doc:"Last update time"`
}

// CardOutput wraps the card response for Huma.
type CardOutput struct {
	Body CardResponse
}

// ListCardsInput contains parameters for listing a board's cards.
type ListCardsInput struct {
	Authorization string `header:"Authorization"`
	BoardID       int64  `query:"board_id" required:"true" doc:"Board ID"`
	ResponsibleID int64  `query:"responsible_id" doc:"Narrow to one assignee"`
}

// CardSummaryResponse is a card with its board-view aggregates.
type CardSummaryResponse struct {
	CardResponse
	TotalHours        float64         `json:"total_hours" doc:"Total logged hours"`
	Labels            []LabelResponse `json:"labels" doc:"Attached labels"`
	SubtasksTotal     int             `json:"subtasks_total" doc:"Subtask count"`
	SubtasksCompleted int             `json:"subtasks_completed" doc:"Completed subtask count"`
}

// ListCardsOutput wraps the card summary collection for Huma.
type ListCardsOutput struct {
	Body []CardSummaryResponse
}

// SearchCardsInput contains parameters for searching cards.
type SearchCardsInput struct {
	Authorization string `header:"Authorization"`
	BoardID       int64  `query:"board_id" required:"true" doc:"Board ID"`
	Query         string `query:"q" doc:"Substring to match against title and description"`
	ResponsibleID int64  `query:"responsible_id" doc:"Narrow to one assignee"`
}

// SearchCardsOutput wraps the card search result for Huma.
type SearchCardsOutput struct {
	Body []CardResponse
}

// GetCardInput contains parameters for getting a card.
type GetCardInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Card ID"`
}

// UpdateCardRequest is the request body for updating a card.
// Absent fields are left untouched; an empty due_date clears it.
type UpdateCardRequest struct {
	Title       *string `json:"title,omitempty" doc:"Card title"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
	DueDate     *string `json:"due_date,omitempty" doc:"Due date (YYYY-MM-DD); \"\" clears"`
	ListID      *int64  `json:"list_id,omitempty" doc:"Target list on the same board"`
}

// UpdateCardInput wraps the update card request for Huma.
type UpdateCardInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Card ID"`
	Body          UpdateCardRequest
}

// DeleteCardInput contains parameters for deleting a card.
type DeleteCardInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Card ID"`
}

// === Handlers ===

func cardResponse(c *domain.Card) CardResponse {
	return CardResponse{
		ID:          c.ID,
		BoardID:     c.BoardID,
		ListID:      c.ListID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     dateString(c.DueDate),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func cardSummaryResponse(cs *domain.CardSummary) CardSummaryResponse {
	labels := make([]LabelResponse, len(cs.Labels))
	for i := range cs.Labels {
		labels[i] = labelResponse(&cs.Labels[i])
	}
	return CardSummaryResponse{
		CardResponse:      cardResponse(&cs.Card),
		TotalHours:        cs.TotalHours,
		Labels:            labels,
		SubtasksTotal:     cs.SubtasksTotal,
		SubtasksCompleted: cs.SubtasksCompleted,
	}
}

func (s *Server) handleCreateCard(ctx context.Context, input *CreateCardInput) (*CardOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDateField("due_date", input.Body.DueDate)
	if err != nil {
		return nil, err
	}

	card, err := s.services.Cards.Create(ctx, userID, service.CreateCardRequest{
		BoardID:     input.Body.BoardID,
		Title:       input.Body.Title,
		Description: input.Body.Description,
		DueDate:     dueDate,
		ListID:      input.Body.ListID,
	})
	if err != nil {
		return nil, err
	}

	return &CardOutput{Body: cardResponse(card)}, nil
}

func (s *Server) handleListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	summaries, err := s.services.Cards.ListSummaries(ctx, userID, input.BoardID, input.ResponsibleID)
	if err != nil {
		return nil, err
	}

	resp := make([]CardSummaryResponse, len(summaries))
	for i, cs := range summaries {
		resp[i] = cardSummaryResponse(cs)
	}

	return &ListCardsOutput{Body: resp}, nil
}

func (s *Server) handleSearchCards(ctx context.Context, input *SearchCardsInput) (*SearchCardsOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	cards, err := s.services.Cards.Search(ctx, userID, input.BoardID, input.Query, input.ResponsibleID)
	if err != nil {
		return nil, err
	}

	resp := make([]CardResponse, len(cards))
	for i, c := range cards {
		resp[i] = cardResponse(c)
	}

	return &SearchCardsOutput{Body: resp}, nil
}

func (s *Server) handleGetCard(ctx context.Context, input *GetCardInput) (*CardOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	card, err := s.services.Cards.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	return &CardOutput{Body: cardResponse(card)}, nil
}

func (s *Server) handleUpdateCard(ctx context.Context, input *UpdateCardInput) (*CardOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	upd := domain.CardUpdate{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		ListID:      input.Body.ListID,
	}
	if input.Body.DueDate != nil {
		dueDate, err := parseDateField("due_date", *input.Body.DueDate)
		if err != nil {
			return nil, err
		}
		upd.DueDate = &dueDate
	}

	card, err := s.services.Cards.Update(ctx, userID, input.ID, upd)
	if err != nil {
		return nil, err
	}

	return &CardOutput{Body: cardResponse(card)}, nil
}

func (s *Server) handleDeleteCard(ctx context.Context, input *DeleteCardInput) (*MessageOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.Cards.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Card deleted"}}, nil
}
