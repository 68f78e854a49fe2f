package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

// BoardService exposes a user's boards.
type BoardService struct {
	store  store.Store
	logger *slog.Logger
}

// NewBoardService creates a new board service.
func NewBoardService(st store.Store, logger *slog.Logger) *BoardService {
	return &BoardService{store: st, logger: logger}
}

// ListBoards returns the boards owned by the user, oldest first.
func (s *BoardService) ListBoards(ctx context.Context, userID int64) ([]*domain.Board, error) {
	boards, err := s.store.ListBoards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	if boards == nil {
		boards = []*domain.Board{}
	}
	return boards, nil
}
