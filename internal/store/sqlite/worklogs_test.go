package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

func seedWorkLog(t *testing.T, s *Store, cardID, userID int64, date domain.Date, hours float64) *domain.WorkLog {
	t.Helper()
	now := time.Now()
	wl := &domain.WorkLog{
		CardID: cardID, UserID: userID,
		Date: date, Hours: hours,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.CreateWorkLog(context.Background(), wl); err != nil {
		t.Fatalf("seed worklog: %v", err)
	}
	return wl
}

func TestWorkLogRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	b := seedBoard(t, s, u.ID, "Tablero principal")
	l := seedList(t, s, b.ID, domain.ListNameTodo, 1)
	c := seedCard(t, s, b.ID, l.ID, u.ID, "Tarea")

	now := time.Now()
	wl := &domain.WorkLog{
		CardID: c.ID, UserID: u.ID,
		Date: domain.NewDate(2025, time.May, 20), Hours: 3.25, Note: "reunion",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.CreateWorkLog(ctx, wl); err != nil {
		t.Fatalf("CreateWorkLog: %v", err)
	}

	got, err := s.GetWorkLog(ctx, wl.ID)
	if err != nil {
		t.Fatalf("GetWorkLog: %v", err)
	}
	if got.Date != wl.Date || got.Hours != 3.25 || got.Note != "reunion" {
		t.Errorf("got %+v", got)
	}
}

func TestUpdateWorkLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	b := seedBoard(t, s, u.ID, "Tablero principal")
	l := seedList(t, s, b.ID, domain.ListNameTodo, 1)
	c := seedCard(t, s, b.ID, l.ID, u.ID, "Tarea")
	wl := seedWorkLog(t, s, c.ID, u.ID, domain.NewDate(2025, time.May, 20), 2)

	wl.Hours = 4
	wl.Note = "ajustado"
	if err := s.UpdateWorkLog(ctx, wl); err != nil {
		t.Fatalf("UpdateWorkLog: %v", err)
	}

	got, err := s.GetWorkLog(ctx, wl.ID)
	if err != nil {
		t.Fatalf("GetWorkLog: %v", err)
	}
	if got.Hours != 4 || got.Note != "ajustado" {
		t.Errorf("got %+v", got)
	}
}

func TestDeleteWorkLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	b := seedBoard(t, s, u.ID, "Tablero principal")
	l := seedList(t, s, b.ID, domain.ListNameTodo, 1)
	c := seedCard(t, s, b.ID, l.ID, u.ID, "Tarea")
	wl := seedWorkLog(t, s, c.ID, u.ID, domain.NewDate(2025, time.May, 20), 2)

	if err := s.DeleteWorkLog(ctx, wl.ID); err != nil {
		t.Fatalf("DeleteWorkLog: %v", err)
	}
	if err := s.DeleteWorkLog(ctx, wl.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestListCardWorkLogsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	b := seedBoard(t, s, u.ID, "Tablero principal")
	l := seedList(t, s, b.ID, domain.ListNameTodo, 1)
	c := seedCard(t, s, b.ID, l.ID, u.ID, "Tarea")

	seedWorkLog(t, s, c.ID, u.ID, domain.NewDate(2025, time.May, 19), 1)
	seedWorkLog(t, s, c.ID, u.ID, domain.NewDate(2025, time.May, 21), 2)
	seedWorkLog(t, s, c.ID, u.ID, domain.NewDate(2025, time.May, 20), 3)

	logs, err := s.ListCardWorkLogs(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListCardWorkLogs: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].Date.After(logs[i-1].Date) {
			t.Errorf("logs not descending at %d: %v before %v", i, logs[i-1].Date, logs[i].Date)
		}
	}
}

func TestListUserWorkLogsInclusiveRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ana := seedUser(t, s, "ana@example.com")
	bob := seedUser(t, s, "bob@example.com")
	b := seedBoard(t, s, ana.ID, "Tablero principal")
	l := seedList(t, s, b.ID, domain.ListNameTodo, 1)
	c := seedCard(t, s, b.ID, l.ID, ana.ID, "Tarea")

	monday := domain.NewDate(2025, time.May, 19)
	sunday := domain.NewDate(2025, time.May, 25)

	seedWorkLog(t, s, c.ID, ana.ID, monday, 1)           // boundary in
	seedWorkLog(t, s, c.ID, ana.ID, sunday, 2)           // boundary in
	seedWorkLog(t, s, c.ID, ana.ID, monday.AddDays(-1), 4) // before
	seedWorkLog(t, s, c.ID, ana.ID, sunday.AddDays(1), 8)  // after
	seedWorkLog(t, s, c.ID, bob.ID, monday, 16)            // other user

	logs, err := s.ListUserWorkLogs(ctx, ana.ID, monday, sunday)
	if err != nil {
		t.Fatalf("ListUserWorkLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].Date != monday || logs[1].Date != sunday {
		t.Errorf("got dates %v, %v", logs[0].Date, logs[1].Date)
	}
}
