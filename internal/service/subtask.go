package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/store"
)

// SubtaskService manages the checklist entries of cards.
type SubtaskService struct {
	store  store.Store
	logger *slog.Logger
}

// NewSubtaskService creates a new subtask service.
func NewSubtaskService(st store.Store, logger *slog.Logger) *SubtaskService {
	return &SubtaskService{store: st, logger: logger}
}

// CreateSubtaskRequest contains the data for a new subtask.
type CreateSubtaskRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

// Create adds a subtask to a card on a board the user owns.
// New subtasks start uncompleted.
func (s *SubtaskService) Create(ctx context.Context, userID, cardID int64, req CreateSubtaskRequest) (*domain.Subtask, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	card, err := ownedCard(ctx, s.store, cardID, userID)
	if err != nil {
		return nil, err
	}

	subtask := &domain.Subtask{CardID: card.ID, Title: req.Title}
	if err := s.store.CreateSubtask(ctx, subtask); err != nil {
		return nil, fmt.Errorf("create subtask: %w", err)
	}
	return subtask, nil
}

// List returns a card's subtasks.
func (s *SubtaskService) List(ctx context.Context, userID, cardID int64) ([]*domain.Subtask, error) {
	card, err := ownedCard(ctx, s.store, cardID, userID)
	if err != nil {
		return nil, err
	}

	subtasks, err := s.store.ListSubtasks(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	if subtasks == nil {
		subtasks = []*domain.Subtask{}
	}
	return subtasks, nil
}

// Update applies a partial update to a subtask.
func (s *SubtaskService) Update(ctx context.Context, userID, subtaskID int64, upd domain.SubtaskUpdate) (*domain.Subtask, error) {
	subtask, err := s.getOwned(ctx, userID, subtaskID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, domainerrors.Validation("title must not be empty")
		}
		upd.Title = &title
	}

	upd.Apply(subtask)
	if err := s.store.UpdateSubtask(ctx, subtask); err != nil {
		return nil, fmt.Errorf("update subtask: %w", err)
	}
	return subtask, nil
}

// Delete removes a subtask.
func (s *SubtaskService) Delete(ctx context.Context, userID, subtaskID int64) error {
	if _, err := s.getOwned(ctx, userID, subtaskID); err != nil {
		return err
	}

	if err := s.store.DeleteSubtask(ctx, subtaskID); err != nil {
		return fmt.Errorf("delete subtask: %w", err)
	}
	return nil
}

// getOwned loads a subtask and checks board ownership through its card.
func (s *SubtaskService) getOwned(ctx context.Context, userID, subtaskID int64) (*domain.Subtask, error) {
	subtask, err := s.store.GetSubtask(ctx, subtaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("subtask not found")
		}
		return nil, fmt.Errorf("get subtask: %w", err)
	}
	if _, err := ownedCard(ctx, s.store, subtask.CardID, userID); err != nil {
		return nil, err
	}
	return subtask, nil
}
