package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/service"
)

func (s *Server) registerLabelRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createLabel",
		Method:        http.MethodPost,
		Path:          "/cards/{id}/labels",
		Summary:       "Create label",
		Description:   "Attaches a label to a card",
		Tags:          []string{"Labels"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateLabel)

	huma.Register(s.api, huma.Operation{
		OperationID: "listLabels",
		Method:      http.MethodGet,
		Path:        "/cards/{id}/labels",
		Summary:     "List labels",
		Description: "Returns a card's labels",
		Tags:        []string{"Labels"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListLabels)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteLabel",
		Method:      http.MethodDelete,
		Path:        "/labels/{id}",
		Summary:     "Delete label",
		Description: "Removes a label from its card",
		Tags:        []string{"Labels"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteLabel)
}

// === DTOs ===

// CreateLabelRequest is the request body for creating a label.
type CreateLabelRequest struct {
	Name  string `json:"name" doc:"Label name"`
	Color string `json:"color" doc:"Display color"`
}

// CreateLabelInput wraps the create label request for Huma.
type CreateLabelInput struct {
	Authorization string `header:"Authorization"`
	CardID        int64  `path:"id" doc:"Card ID"`
	Body          CreateLabelRequest
}

// LabelResponse contains label data in API responses.
type LabelResponse struct {
	ID     int64  `json:"id" doc:"Label ID"`
	CardID int64  `json:"card_id" doc:"Owning card ID"`
	Name   string `json:"name" doc:"Label name"`
	Color  string `json:"color" doc:"Display color"`
}

// LabelOutput wraps the label response for Huma.
type LabelOutput struct {
	Body LabelResponse
}

// ListLabelsInput contains parameters for listing a card's labels.
type ListLabelsInput struct {
	Authorization string `header:"Authorization"`
	CardID        int64  `path:"id" doc:"Card ID"`
}

// ListLabelsOutput wraps the label collection for Huma.
type ListLabelsOutput struct {
	Body []LabelResponse
}

// DeleteLabelInput contains parameters for deleting a label.
type DeleteLabelInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Label ID"`
}

// === Handlers ===

func labelResponse(l *domain.Label) LabelResponse {
	return LabelResponse{
		ID:     l.ID,
		CardID: l.CardID,
		Name:   l.Name,
		Color:  l.Color,
	}
}

func (s *Server) handleCreateLabel(ctx context.Context, input *CreateLabelInput) (*LabelOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	label, err := s.services.Labels.Create(ctx, userID, input.CardID, service.CreateLabelRequest{
		Name:  input.Body.Name,
		Color: input.Body.Color,
	})
	if err != nil {
		return nil, err
	}

	return &LabelOutput{Body: labelResponse(label)}, nil
}

func (s *Server) handleListLabels(ctx context.Context, input *ListLabelsInput) (*ListLabelsOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	labels, err := s.services.Labels.List(ctx, userID, input.CardID)
	if err != nil {
		return nil, err
	}

	resp := make([]LabelResponse, len(labels))
	for i, l := range labels {
		resp[i] = labelResponse(l)
	}

	return &ListLabelsOutput{Body: resp}, nil
}

func (s *Server) handleDeleteLabel(ctx context.Context, input *DeleteLabelInput) (*MessageOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.Labels.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Label deleted"}}, nil
}
