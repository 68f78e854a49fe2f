package sqlite

import (
	"context"
	"database/sql"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

const listColumns = `id, board_id, name, ord`

func scanList(scanner interface{ Scan(dest ...any) error }) (*domain.List, error) {
	var l domain.List
	if err := scanner.Scan(&l.ID, &l.BoardID, &l.Name, &l.Order); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateList inserts a new list and fills in the assigned ID.
func (s *Store) CreateList(ctx context.Context, list *domain.List) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO lists (board_id, name, ord) VALUES (?, ?, ?)`,
		list.BoardID, list.Name, list.Order)
	if err != nil {
		return err
	}

	list.ID, err = res.LastInsertId()
	return err
}

// GetList retrieves a list by ID.
// Returns store.ErrNotFound if the list does not exist.
func (s *Store) GetList(ctx context.Context, id int64) (*domain.List, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+listColumns+` FROM lists WHERE id = ?`, id)

	l, err := scanList(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListLists returns a board's lists ordered by position.
func (s *Store) ListLists(ctx context.Context, boardID int64) ([]*domain.List, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+listColumns+` FROM lists WHERE board_id = ? ORDER BY ord ASC, id ASC`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*domain.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// GetListByName retrieves a board's list by case-insensitive name match.
// Returns store.ErrNotFound if no list matches.
func (s *Store) GetListByName(ctx context.Context, boardID int64, name string) (*domain.List, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+listColumns+` FROM lists
		WHERE board_id = ? AND LOWER(name) = LOWER(?)
		ORDER BY ord ASC, id ASC LIMIT 1`,
		boardID, name)

	l, err := scanList(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
