package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

// ListService exposes the lists of a board.
type ListService struct {
	store  store.Store
	logger *slog.Logger
}

// NewListService creates a new list service.
func NewListService(st store.Store, logger *slog.Logger) *ListService {
	return &ListService{store: st, logger: logger}
}

// ListsForBoard returns a board's lists by position. The caller must own
// the board.
func (s *ListService) ListsForBoard(ctx context.Context, userID, boardID int64) ([]*domain.List, error) {
	if _, err := ownedBoard(ctx, s.store, boardID, userID); err != nil {
		return nil, err
	}

	lists, err := s.store.ListLists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	if lists == nil {
		lists = []*domain.List{}
	}
	return lists, nil
}
