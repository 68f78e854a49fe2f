package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
)

func (s *Server) registerBoardRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBoards",
		Method:      http.MethodGet,
		Path:        "/boards/",
		Summary:     "List boards",
		Description: "Returns the current user's boards",
		Tags:        []string{"Boards"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListBoards)

	huma.Register(s.api, huma.Operation{
		OperationID: "pingBoards",
		Method:      http.MethodGet,
		Path:        "/boards/ping",
		Summary:     "Auth smoke check",
		Description: "Confirms the bearer token resolves to a user",
		Tags:        []string{"Boards"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handlePingBoards)
}

// === DTOs ===

// ListBoardsInput contains parameters for listing boards.
type ListBoardsInput struct {
	Authorization string `header:"Authorization"`
}

// BoardResponse contains board data in API responses.
type BoardResponse struct {
	ID     int64  `json:"id" doc:"Board ID"`
	Name   string `json:"name" doc:"Board name"`
	UserID int64  `json:"user_id" doc:"Owner user ID"`
}

// ListBoardsOutput wraps the board list for Huma.
type ListBoardsOutput struct {
	Body []BoardResponse
}

// PingInput contains parameters for the auth smoke check.
type PingInput struct {
	Authorization string `header:"Authorization"`
}

// PingResponse echoes the authenticated account.
type PingResponse struct {
	Message string `json:"message" doc:"Always \"pong\""`
	Email   string `json:"email" doc:"Authenticated user's email"`
}

// PingOutput wraps the ping response for Huma.
type PingOutput struct {
	Body PingResponse
}

// === Handlers ===

func boardResponse(b *domain.Board) BoardResponse {
	return BoardResponse{
		ID:     b.ID,
		Name:   b.Name,
		UserID: b.UserID,
	}
}

func (s *Server) handleListBoards(ctx context.Context, input *ListBoardsInput) (*ListBoardsOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	boards, err := s.services.Boards.ListBoards(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]BoardResponse, len(boards))
	for i, b := range boards {
		resp[i] = boardResponse(b)
	}

	return &ListBoardsOutput{Body: resp}, nil
}

func (s *Server) handlePingBoards(ctx context.Context, input *PingInput) (*PingOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, huma.Error401Unauthorized("User not found")
	}

	return &PingOutput{Body: PingResponse{Message: "pong", Email: user.Email}}, nil
}
