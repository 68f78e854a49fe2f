package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/service"
)

func (s *Server) registerSubtaskRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createSubtask",
		Method:        http.MethodPost,
		Path:          "/cards/{id}/subtasks",
		Summary:       "Create subtask",
		Description:   "Adds an uncompleted checklist entry to a card",
		Tags:          []string{"Subtasks"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateSubtask)

	huma.Register(s.api, huma.Operation{
		OperationID: "listSubtasks",
		Method:      http.MethodGet,
		Path:        "/cards/{id}/subtasks",
		Summary:     "List subtasks",
		Description: "Returns a card's checklist entries",
		Tags:        []string{"Subtasks"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListSubtasks)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateSubtask",
		Method:      http.MethodPatch,
		Path:        "/subtasks/{id}",
		Summary:     "Update subtask",
		Description: "Updates a subtask's title or completion flag",
		Tags:        []string{"Subtasks"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateSubtask)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteSubtask",
		Method:      http.MethodDelete,
		Path:        "/subtasks/{id}",
		Summary:     "Delete subtask",
		Description: "Removes a subtask from its card",
		Tags:        []string{"Subtasks"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteSubtask)
}

// === DTOs ===

// CreateSubtaskRequest is the request body for creating a subtask.
type CreateSubtaskRequest struct {
	Title string `json:"title" doc:"Subtask title"`
}

// CreateSubtaskInput wraps the create subtask request for Huma.
type CreateSubtaskInput struct {
	Authorization string `header:"Authorization"`
	CardID        int64  `path:"id" doc:"Card ID"`
	Body          CreateSubtaskRequest
}

// SubtaskResponse contains subtask data in API responses.
type SubtaskResponse struct {
	ID        int64  `json:"id" doc:"Subtask ID"`
	CardID    int64  `json:"card_id" doc:"Owning card ID"`
	Title     string `json:"title" doc:"Subtask title"`
	Completed bool   `json:"completed" doc:"Completion flag"`
}

// SubtaskOutput wraps the subtask response for Huma.
type SubtaskOutput struct {
	Body SubtaskResponse
}

// ListSubtasksInput contains parameters for listing a card's subtasks.
type ListSubtasksInput struct {
	Authorization string `header:"Authorization"`
	CardID        int64  `path:"id" doc:"Card ID"`
}

// ListSubtasksOutput wraps the subtask collection for Huma.
type ListSubtasksOutput struct {
	Body []SubtaskResponse
}

// UpdateSubtaskRequest is the request body for updating a subtask.
type UpdateSubtaskRequest struct {
	Title     *string `json:"title,omitempty" doc:"Subtask title"`
	Completed *bool   `json:"completed,omitempty" doc:"Completion flag"`
}

// UpdateSubtaskInput wraps the update subtask request for Huma.
type UpdateSubtaskInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Subtask ID"`
	Body          UpdateSubtaskRequest
}

// DeleteSubtaskInput contains parameters for deleting a subtask.
type DeleteSubtaskInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Subtask ID"`
}

// === Handlers ===

func subtaskResponse(st *domain.Subtask) SubtaskResponse {
	return SubtaskResponse{
		ID:        st.ID,
		CardID:    st.CardID,
		Title:     st.Title,
		Completed: st.Completed,
	}
}

func (s *Server) handleCreateSubtask(ctx context.Context, input *CreateSubtaskInput) (*SubtaskOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	subtask, err := s.services.Subtasks.Create(ctx, userID, input.CardID, service.CreateSubtaskRequest{
		Title: input.Body.Title,
	})
	if err != nil {
		return nil, err
	}

	return &SubtaskOutput{Body: subtaskResponse(subtask)}, nil
}

func (s *Server) handleListSubtasks(ctx context.Context, input *ListSubtasksInput) (*ListSubtasksOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	subtasks, err := s.services.Subtasks.List(ctx, userID, input.CardID)
	if err != nil {
		return nil, err
	}

	resp := make([]SubtaskResponse, len(subtasks))
	for i, st := range subtasks {
		resp[i] = subtaskResponse(st)
	}

	return &ListSubtasksOutput{Body: resp}, nil
}

func (s *Server) handleUpdateSubtask(ctx context.Context, input *UpdateSubtaskInput) (*SubtaskOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	subtask, err := s.services.Subtasks.Update(ctx, userID, input.ID, domain.SubtaskUpdate{
		Title:     input.Body.Title,
		Completed: input.Body.Completed,
	})
	if err != nil {
		return nil, err
	}

	return &SubtaskOutput{Body: subtaskResponse(subtask)}, nil
}

func (s *Server) handleDeleteSubtask(ctx context.Context, input *DeleteSubtaskInput) (*MessageOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.Subtasks.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Subtask deleted"}}, nil
}
