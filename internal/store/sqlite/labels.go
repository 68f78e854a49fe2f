package sqlite

import (
	"context"
	"database/sql"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

const labelColumns = `id, card_id, name, color`

func scanLabel(scanner interface{ Scan(dest ...any) error }) (*domain.Label, error) {
	var l domain.Label
	if err := scanner.Scan(&l.ID, &l.CardID, &l.Name, &l.Color); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLabel inserts a new label and fills in the assigned ID.
func (s *Store) CreateLabel(ctx context.Context, label *domain.Label) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO labels (card_id, name, color) VALUES (?, ?, ?)`,
		label.CardID, label.Name, label.Color)
	if err != nil {
		return err
	}

	label.ID, err = res.LastInsertId()
	return err
}

// GetLabel retrieves a label by ID.
// Returns store.ErrNotFound if the label does not exist.
func (s *Store) GetLabel(ctx context.Context, id int64) (*domain.Label, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+labelColumns+` FROM labels WHERE id = ?`, id)

	l, err := scanLabel(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListLabels returns a card's labels in creation order.
func (s *Store) ListLabels(ctx context.Context, cardID int64) ([]*domain.Label, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+labelColumns+` FROM labels WHERE card_id = ? ORDER BY id ASC`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []*domain.Label
	for rows.Next() {
		l, err := scanLabel(rows)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// DeleteLabel removes a label.
// Returns store.ErrNotFound if the label does not exist.
func (s *Store) DeleteLabel(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
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
