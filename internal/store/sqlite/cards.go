package sqlite

import (
	"context"
	"database/sql"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

// cardColumns is the ordered list of columns selected in card queries.
// Must match the scan order in scanCard.
const cardColumns = `id, board_id, list_id, user_id, title, description, due_date,
	created_at, updated_at`

// scanCard scans a sql.Row (or sql.Rows via its Scan method) into a domain.Card.
func scanCard(scanner interface{ Scan(dest ...any) error }) (*domain.Card, error) {
	var c domain.Card

	var (
		userID      sql.NullInt64
		description sql.NullString
		dueDate     sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := scanner.Scan(
		&c.ID,
		&c.BoardID,
		&c.ListID,
		&userID,
		&c.Title,
		&description,
		&dueDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		c.UserID = userID.Int64
	}
	if description.Valid {
		c.Description = description.String
	}
	c.DueDate, err = parseNullDate(dueDate)
	if err != nil {
		return nil, err
	}
	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	c.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCard inserts a new card and fills in the assigned ID.
func (s *Store) CreateCard(ctx context.Context, card *domain.Card) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO cards (board_id, list_id, user_id, title, description, due_date,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		card.BoardID,
		card.ListID,
		nullInt64(card.UserID),
		card.Title,
		nullString(card.Description),
		nullDate(card.DueDate),
		formatTime(card.CreatedAt),
		formatTime(card.UpdatedAt),
	)
	if err != nil {
		return err
	}

	card.ID, err = res.LastInsertId()
	return err
}

// GetCard retrieves a card by ID.
// Returns store.ErrNotFound if the card does not exist.
func (s *Store) GetCard(ctx context.Context, id int64) (*domain.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id)

	c, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCard performs a full row update on an existing card.
// Returns store.ErrNotFound if the card does not exist.
func (s *Store) UpdateCard(ctx context.Context, card *domain.Card) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE cards SET
			list_id = ?,
			user_id = ?,
			title = ?,
			description = ?,
			due_date = ?,
			updated_at = ?
		WHERE id = ?`,
		card.ListID,
		nullInt64(card.UserID),
		card.Title,
		nullString(card.Description),
		nullDate(card.DueDate),
		formatTime(card.UpdatedAt),
		card.ID,
	)
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

// DeleteCard removes a card and everything attached to it in one transaction:
// worklogs, subtasks, and labels go first, then the card row itself.
// Returns store.ErrNotFound if the card does not exist.
func (s *Store) DeleteCard(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM worklogs WHERE card_id = ?`,
		`DELETE FROM subtasks WHERE card_id = ?`,
		`DELETE FROM labels WHERE card_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
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

	return tx.Commit()
}

// ListCardSummaries returns a board's cards with their logged-hours total,
// labels, and subtask counts. A non-zero responsibleID filters by assignee.
func (s *Store) ListCardSummaries(ctx context.Context, boardID, responsibleID int64) ([]*domain.CardSummary, error) {
	query := `
		SELECT c.id, c.board_id, c.list_id, c.user_id, c.title, c.description,
			c.due_date, c.created_at, c.updated_at,
			COALESCE(w.total_hours, 0),
			COALESCE(st.total, 0),
			COALESCE(st.completed, 0)
		FROM cards c
		LEFT JOIN (
			SELECT card_id, SUM(hours) AS total_hours FROM worklogs GROUP BY card_id
		) w ON w.card_id = c.id
		LEFT JOIN (
			SELECT card_id, COUNT(*) AS total, SUM(completed) AS completed
			FROM subtasks GROUP BY card_id
		) st ON st.card_id = c.id
		WHERE c.board_id = ?`
	args := []any{boardID}
	if responsibleID != 0 {
		query += ` AND c.user_id = ?`
		args = append(args, responsibleID)
	}
	query += ` ORDER BY c.id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*domain.CardSummary
	byID := make(map[int64]*domain.CardSummary)
	for rows.Next() {
		var cs domain.CardSummary
		var (
			userID      sql.NullInt64
			description sql.NullString
			dueDate     sql.NullString
			createdAt   string
			updatedAt   string
		)
		err := rows.Scan(
			&cs.ID, &cs.BoardID, &cs.ListID, &userID, &cs.Title, &description,
			&dueDate, &createdAt, &updatedAt,
			&cs.TotalHours, &cs.SubtasksTotal, &cs.SubtasksCompleted,
		)
		if err != nil {
			return nil, err
		}
		if userID.Valid {
			cs.UserID = userID.Int64
		}
		if description.Valid {
			cs.Description = description.String
		}
		if cs.DueDate, err = parseNullDate(dueDate); err != nil {
			return nil, err
		}
		if cs.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if cs.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		cs.Labels = []domain.Label{}

		summaries = append(summaries, &cs)
		byID[cs.ID] = &cs
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach labels in a second pass to avoid multiplying the aggregate rows.
	labelRows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.card_id, l.name, l.color
		FROM labels l
		JOIN cards c ON c.id = l.card_id
		WHERE c.board_id = ?
		ORDER BY l.id ASC`, boardID)
	if err != nil {
		return nil, err
	}
	defer labelRows.Close()

	for labelRows.Next() {
		var l domain.Label
		if err := labelRows.Scan(&l.ID, &l.CardID, &l.Name, &l.Color); err != nil {
			return nil, err
		}
		if cs, ok := byID[l.CardID]; ok {
			cs.Labels = append(cs.Labels, l)
		}
	}
	if err := labelRows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// SearchCards matches the query as a case-insensitive substring of the title
// or description. A non-zero responsibleID filters by assignee.
func (s *Store) SearchCards(ctx context.Context, boardID int64, query string, responsibleID int64) ([]*domain.Card, error) {
	q := `
		SELECT ` + cardColumns + ` FROM cards
		WHERE board_id = ?
		AND (instr(LOWER(title), LOWER(?)) > 0
			OR instr(LOWER(COALESCE(description, '')), LOWER(?)) > 0)`
	args := []any{boardID, query, query}
	if responsibleID != 0 {
		q += ` AND user_id = ?`
		args = append(args, responsibleID)
	}
	q += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}
