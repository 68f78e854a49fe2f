package sqlite

import (
	"context"
	"database/sql"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

// worklogColumns is the ordered list of columns selected in worklog queries.
// Must match the scan order in scanWorkLog.
const worklogColumns = `id, card_id, user_id, date, hours, note, created_at, updated_at`

// scanWorkLog scans a sql.Row (or sql.Rows via its Scan method) into a domain.WorkLog.
func scanWorkLog(scanner interface{ Scan(dest ...any) error }) (*domain.WorkLog, error) {
	var w domain.WorkLog

	var (
		date      string
		note      sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&w.ID,
		&w.CardID,
		&w.UserID,
		&date,
		&w.Hours,
		&note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if w.Date, err = domain.ParseDate(date); err != nil {
		return nil, err
	}
	if note.Valid {
		w.Note = note.String
	}
	if w.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if w.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWorkLog inserts a new worklog and fills in the assigned ID.
func (s *Store) CreateWorkLog(ctx context.Context, wl *domain.WorkLog) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO worklogs (card_id, user_id, date, hours, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		wl.CardID,
		wl.UserID,
		wl.Date.String(),
		wl.Hours,
		nullString(wl.Note),
		formatTime(wl.CreatedAt),
		formatTime(wl.UpdatedAt),
	)
	if err != nil {
		return err
	}

	wl.ID, err = res.LastInsertId()
	return err
}

// GetWorkLog retrieves a worklog by ID.
// Returns store.ErrNotFound if the worklog does not exist.
func (s *Store) GetWorkLog(ctx context.Context, id int64) (*domain.WorkLog, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+worklogColumns+` FROM worklogs WHERE id = ?`, id)

	w, err := scanWorkLog(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// UpdateWorkLog performs a full row update on an existing worklog.
// Returns store.ErrNotFound if the worklog does not exist.
func (s *Store) UpdateWorkLog(ctx context.Context, wl *domain.WorkLog) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE worklogs SET date = ?, hours = ?, note = ?, updated_at = ?
		WHERE id = ?`,
		wl.Date.String(),
		wl.Hours,
		nullString(wl.Note),
		formatTime(wl.UpdatedAt),
		wl.ID,
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

// DeleteWorkLog removes a worklog.
// Returns store.ErrNotFound if the worklog does not exist.
func (s *Store) DeleteWorkLog(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM worklogs WHERE id = ?`, id)
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

// ListCardWorkLogs returns a card's worklogs, most recent date first.
func (s *Store) ListCardWorkLogs(ctx context.Context, cardID int64) ([]*domain.WorkLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+worklogColumns+` FROM worklogs WHERE card_id = ?
		ORDER BY date DESC, id DESC`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkLogs(rows)
}

// ListUserWorkLogs returns a user's worklogs with from <= date <= to,
// ascending by date. YYYY-MM-DD strings compare lexicographically.
func (s *Store) ListUserWorkLogs(ctx context.Context, userID int64, from, to domain.Date) ([]*domain.WorkLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+worklogColumns+` FROM worklogs
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, id ASC`,
		userID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkLogs(rows)
}

func collectWorkLogs(rows *sql.Rows) ([]*domain.WorkLog, error) {
	var worklogs []*domain.WorkLog
	for rows.Next() {
		w, err := scanWorkLog(rows)
		if err != nil {
			return nil, err
		}
		worklogs = append(worklogs, w)
	}
	return worklogs, rows.Err()
}
