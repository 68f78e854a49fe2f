package sqlite

import (
	"context"
	"database/sql"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

const boardColumns = `id, name, user_id`

func scanBoard(scanner interface{ Scan(dest ...any) error }) (*domain.Board, error) {
	var b domain.Board
	if err := scanner.Scan(&b.ID, &b.Name, &b.UserID); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBoard inserts a new board and fills in the assigned ID.
func (s *Store) CreateBoard(ctx context.Context, board *domain.Board) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO boards (name, user_id) VALUES (?, ?)`,
		board.Name, board.UserID)
	if err != nil {
		return err
	}

	board.ID, err = res.LastInsertId()
	return err
}

// GetBoard retrieves a board by ID.
// Returns store.ErrNotFound if the board does not exist.
func (s *Store) GetBoard(ctx context.Context, id int64) (*domain.Board, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE id = ?`, id)

	b, err := scanBoard(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListBoards returns the boards owned by a user, oldest first.
func (s *Store) ListBoards(ctx context.Context, userID int64) ([]*domain.Board, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE user_id = ? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []*domain.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}
