package sqlite

import (
	"context"
	"database/sql"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

const subtaskColumns = `id, card_id, title, completed`

func scanSubtask(scanner interface{ Scan(dest ...any) error }) (*domain.Subtask, error) {
	var st domain.Subtask
	var completed int

	if err := scanner.Scan(&st.ID, &st.CardID, &st.Title, &completed); err != nil {
		return nil, err
	}
	st.Completed = completed != 0
	return &st, nil
}

// CreateSubtask inserts a new subtask and fills in the assigned ID.
func (s *Store) CreateSubtask(ctx context.Context, subtask *domain.Subtask) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO subtasks (card_id, title, completed) VALUES (?, ?, ?)`,
		subtask.CardID, subtask.Title, boolToInt(subtask.Completed))
	if err != nil {
		return err
	}

	subtask.ID, err = res.LastInsertId()
	return err
}

// GetSubtask retrieves a subtask by ID.
// Returns store.ErrNotFound if the subtask does not exist.
func (s *Store) GetSubtask(ctx context.Context, id int64) (*domain.Subtask, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+subtaskColumns+` FROM subtasks WHERE id = ?`, id)

	st, err := scanSubtask(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// ListSubtasks returns a card's subtasks in creation order.
func (s *Store) ListSubtasks(ctx context.Context, cardID int64) ([]*domain.Subtask, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+subtaskColumns+` FROM subtasks WHERE card_id = ? ORDER BY id ASC`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []*domain.Subtask
	for rows.Next() {
		st, err := scanSubtask(rows)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, rows.Err()
}

// UpdateSubtask performs a full row update on an existing subtask.
// Returns store.ErrNotFound if the subtask does not exist.
func (s *Store) UpdateSubtask(ctx context.Context, subtask *domain.Subtask) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE subtasks SET title = ?, completed = ? WHERE id = ?`,
		subtask.Title, boolToInt(subtask.Completed), subtask.ID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteSubtask removes a subtask.
// Returns store.ErrNotFound if the subtask does not exist.
func (s *Store) DeleteSubtask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM subtasks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
