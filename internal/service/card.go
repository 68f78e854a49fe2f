package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/store"
)

// CardService handles card creation, querying, updates, and deletion.
// Every operation requires ownership of the card's board.
type CardService struct {
	store  store.Store
	logger *slog.Logger
}

// NewCardService creates a new card service.
func NewCardService(st store.Store, logger *slog.Logger) *CardService {
	return &CardService{store: st, logger: logger}
}

// CreateCardRequest contains the data for a new card.
type CreateCardRequest struct {
	BoardID     int64       `json:"board_id" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	DueDate     domain.Date `json:"due_date"`
	ListID      int64       `json:"list_id"`
}

// Create adds a card to a board the user owns. Without an explicit list the
// card lands in the board's "Por hacer" list, matched case-insensitively;
// the creator becomes the responsible user.
func (s *CardService) Create(ctx context.Context, userID int64, req CreateCardRequest) (*domain.Card, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domainerrors.Validation("title must not be empty")
	}

	board, err := ownedBoard(ctx, s.store, req.BoardID, userID)
	if err != nil {
		return nil, err
	}

	var listID int64
	if req.ListID != 0 {
		list, err := s.store.GetList(ctx, req.ListID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, domainerrors.Validation("list does not belong to the board")
			}
			return nil, fmt.Errorf("get list: %w", err)
		}
		if list.BoardID != board.ID {
			return nil, domainerrors.Validation("list does not belong to the board")
		}
		listID = list.ID
	} else {
		list, err := s.store.GetListByName(ctx, board.ID, domain.ListNameTodo)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, domainerrors.Validationf("board has no %q list", domain.ListNameTodo)
			}
			return nil, fmt.Errorf("resolve default list: %w", err)
		}
		listID = list.ID
	}

	now := time.Now()
	card := &domain.Card{
		BoardID:     board.ID,
		ListID:      listID,
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("card created",
			"card_id", card.ID,
			"board_id", board.ID,
			"user_id", userID,
		)
	}

	return card, nil
}

// Get returns a single card from a board the user owns.
func (s *CardService) Get(ctx context.Context, userID, cardID int64) (*domain.Card, error) {
	return ownedCard(ctx, s.store, cardID, userID)
}

// ListSummaries returns a board's cards with their aggregates. A non-zero
// responsibleID narrows the result to one assignee.
func (s *CardService) ListSummaries(ctx context.Context, userID, boardID, responsibleID int64) ([]*domain.CardSummary, error) {
	if _, err := ownedBoard(ctx, s.store, boardID, userID); err != nil {
		return nil, err
	}

	summaries, err := s.store.ListCardSummaries(ctx, boardID, responsibleID)
	if err != nil {
		return nil, fmt.Errorf("list card summaries: %w", err)
	}
	if summaries == nil {
		summaries = []*domain.CardSummary{}
	}
	return summaries, nil
}

// Search matches cards by case-insensitive substring of title or description.
func (s *CardService) Search(ctx context.Context, userID, boardID int64, query string, responsibleID int64) ([]*domain.Card, error) {
	if _, err := ownedBoard(ctx, s.store, boardID, userID); err != nil {
		return nil, err
	}

	cards, err := s.store.SearchCards(ctx, boardID, query, responsibleID)
	if err != nil {
		return nil, fmt.Errorf("search cards: %w", err)
	}
	if cards == nil {
		cards = []*domain.Card{}
	}
	return cards, nil
}

// Update applies a partial update to a card. A list move must stay within
// the card's board.
func (s *CardService) Update(ctx context.Context, userID, cardID int64, upd domain.CardUpdate) (*domain.Card, error) {
	card, err := ownedCard(ctx, s.store, cardID, userID)
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
	if upd.ListID != nil {
		list, err := s.store.GetList(ctx, *upd.ListID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, domainerrors.Validation("list does not belong to the board")
			}
			return nil, fmt.Errorf("get list: %w", err)
		}
		if list.BoardID != card.BoardID {
			return nil, domainerrors.Validation("list does not belong to the board")
		}
	}

	upd.Apply(card)
	if err := s.store.UpdateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return card, nil
}

// Delete removes a card together with its labels, subtasks, and worklogs.
func (s *CardService) Delete(ctx context.Context, userID, cardID int64) error {
	if _, err := ownedCard(ctx, s.store, cardID, userID); err != nil {
		return err
	}

	if err := s.store.DeleteCard(ctx, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("card deleted", "card_id", cardID, "user_id", userID)
	}
	return nil
}
