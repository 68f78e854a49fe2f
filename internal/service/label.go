package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/store"
)

// LabelService manages the labels attached to cards.
type LabelService struct {
	store  store.Store
	logger *slog.Logger
}

// NewLabelService creates a new label service.
func NewLabelService(st store.Store, logger *slog.Logger) *LabelService {
	return &LabelService{store: st, logger: logger}
}

// CreateLabelRequest contains the data for a new label.
type CreateLabelRequest struct {
	Name  string `json:"name" validate:"required,max=30"`
	Color string `json:"color" validate:"required,max=20"`
}

// Create attaches a label to a card on a board the user owns.
func (s *LabelService) Create(ctx context.Context, userID, cardID int64, req CreateLabelRequest) (*domain.Label, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	card, err := ownedCard(ctx, s.store, cardID, userID)
	if err != nil {
		return nil, err
	}

	label := &domain.Label{CardID: card.ID, Name: req.Name, Color: req.Color}
	if err := s.store.CreateLabel(ctx, label); err != nil {
		return nil, fmt.Errorf("create label: %w", err)
	}
	return label, nil
}

// List returns a card's labels.
func (s *LabelService) List(ctx context.Context, userID, cardID int64) ([]*domain.Label, error) {
	card, err := ownedCard(ctx, s.store, cardID, userID)
	if err != nil {
		return nil, err
	}

	labels, err := s.store.ListLabels(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	if labels == nil {
		labels = []*domain.Label{}
	}
	return labels, nil
}

// Delete removes a label from a card on a board the user owns.
func (s *LabelService) Delete(ctx context.Context, userID, labelID int64) error {
	label, err := s.store.GetLabel(ctx, labelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("label not found")
		}
		return fmt.Errorf("get label: %w", err)
	}
	if _, err := ownedCard(ctx, s.store, label.CardID, userID); err != nil {
		return err
	}

	if err := s.store.DeleteLabel(ctx, labelID); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	return nil
}
