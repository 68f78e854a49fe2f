package sqlite

import (
	"context"
	"database/sql"

	"github.com/neocare/neocare-server/internal/domain"
)

// Report queries aggregate one board over a half-open date window
// [start, end). Timestamps are reduced to their date part with substr so the
// comparison is a plain lexicographic range on YYYY-MM-DD.

const reportCardColumns = `c.id, c.title, c.list_id, c.user_id, c.due_date`

func scanReportCard(scanner interface{ Scan(dest ...any) error }) (domain.ReportCard, error) {
	var rc domain.ReportCard
	var (
		userID  sql.NullInt64
		dueDate sql.NullString
	)

	if err := scanner.Scan(&rc.ID, &rc.Title, &rc.ListID, &userID, &dueDate); err != nil {
		return domain.ReportCard{}, err
	}
	if userID.Valid {
		rc.ResponsibleID = userID.Int64
	}

	var err error
	rc.DueDate, err = parseNullDate(dueDate)
	if err != nil {
		return domain.ReportCard{}, err
	}
	return rc, nil
}

// ReportNewCards returns the board's cards created during the window.
func (s *Store) ReportNewCards(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.ReportCard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reportCardColumns+` FROM cards c
		WHERE c.board_id = ?
		AND substr(c.created_at, 1, 10) >= ? AND substr(c.created_at, 1, 10) < ?
		ORDER BY c.id ASC`,
		boardID, start.String(), end.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReportCards(rows)
}

// ReportCompletedCards returns cards sitting in the list named exactly
// "Hecho" whose last update falls in the window.
func (s *Store) ReportCompletedCards(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.ReportCard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reportCardColumns+` FROM cards c
		JOIN lists l ON l.id = c.list_id
		WHERE c.board_id = ? AND l.name = ?
		AND substr(c.updated_at, 1, 10) >= ? AND substr(c.updated_at, 1, 10) < ?
		ORDER BY c.id ASC`,
		boardID, domain.ListNameDone, start.String(), end.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReportCards(rows)
}

// ReportOverdueCards returns cards due during the window that are not in the
// "Hecho" list.
func (s *Store) ReportOverdueCards(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.ReportCard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reportCardColumns+` FROM cards c
		JOIN lists l ON l.id = c.list_id
		WHERE c.board_id = ? AND l.name != ?
		AND c.due_date IS NOT NULL AND c.due_date >= ? AND c.due_date < ?
		ORDER BY c.id ASC`,
		boardID, domain.ListNameDone, start.String(), end.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReportCards(rows)
}

func collectReportCards(rows *sql.Rows) ([]domain.ReportCard, error) {
	var cards []domain.ReportCard
	for rows.Next() {
		rc, err := scanReportCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, rc)
	}
	return cards, rows.Err()
}

// ReportHoursByUser sums logged hours per user on the board's cards during
// the window, with a distinct-card count, ordered by user ID.
func (s *Store) ReportHoursByUser(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.UserHours, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT w.user_id, SUM(w.hours), COUNT(DISTINCT w.card_id)
		FROM worklogs w
		JOIN cards c ON c.id = w.card_id
		WHERE c.board_id = ? AND w.date >= ? AND w.date < ?
		GROUP BY w.user_id
		ORDER BY w.user_id ASC`,
		boardID, start.String(), end.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.UserHours
	for rows.Next() {
		var uh domain.UserHours
		if err := rows.Scan(&uh.UserID, &uh.TotalHours, &uh.TasksCount); err != nil {
			return nil, err
		}
		result = append(result, uh)
	}
	return result, rows.Err()
}

// ReportHoursByCard sums logged hours per card during the window, tagging
// each row with the card's current list name, highest totals first.
func (s *Store) ReportHoursByCard(ctx context.Context, boardID int64, start, end domain.Date) ([]domain.CardHours, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.title, c.user_id, l.name, SUM(w.hours)
		FROM worklogs w
		JOIN cards c ON c.id = w.card_id
		JOIN lists l ON l.id = c.list_id
		WHERE c.board_id = ? AND w.date >= ? AND w.date < ?
		GROUP BY c.id, c.title, c.user_id, l.name
		ORDER BY SUM(w.hours) DESC, c.id ASC`,
		boardID, start.String(), end.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CardHours
	for rows.Next() {
		var ch domain.CardHours
		var userID sql.NullInt64
		if err := rows.Scan(&ch.CardID, &ch.Title, &userID, &ch.ListName, &ch.TotalHours); err != nil {
			return nil, err
		}
		if userID.Valid {
			ch.ResponsibleID = userID.Int64
		}
		result = append(result, ch)
	}
	return result, rows.Err()
}
