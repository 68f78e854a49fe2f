package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
)

func (s *Server) registerListRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listLists",
		Method:      http.MethodGet,
		Path:        "/lists/",
		Summary:     "List board columns",
		Description: "Returns the lists of an owned board in column order",
		Tags:        []string{"Lists"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListLists)
}

// === DTOs ===

// ListListsInput contains parameters for listing a board's columns.
type ListListsInput struct {
	Authorization string `header:"Authorization"`
	BoardID       int64  `query:"board_id" required:"true" doc:"Board ID"`
}

// ListResponse contains list data in API responses.
type ListResponse struct {
	ID      int64  `json:"id" doc:"List ID"`
	BoardID int64  `json:"board_id" doc:"Owning board ID"`
	Name    string `json:"name" doc:"List name"`
	Order   int    `json:"order" doc:"Column position"`
}

// ListListsOutput wraps the list collection for Huma.
type ListListsOutput struct {
	Body []ListResponse
}

// === Handlers ===

func listResponse(l *domain.List) ListResponse {
	return ListResponse{
		ID:      l.ID,
		BoardID: l.BoardID,
		Name:    l.Name,
		Order:   l.Order,
	}
}

func (s *Server) handleListLists(ctx context.Context, input *ListListsInput) (*ListListsOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	lists, err := s.services.Lists.ListsForBoard(ctx, userID, input.BoardID)
	if err != nil {
		return nil, err
	}

	resp := make([]ListResponse, len(lists))
	for i, l := range lists {
		resp[i] = listResponse(l)
	}

	return &ListListsOutput{Body: resp}, nil
}
