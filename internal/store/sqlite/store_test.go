package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neocare/neocare-server/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := Open(dbPath, logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedUser inserts a user with a unique email and returns it.
func seedUser(t *testing.T, s *Store, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:        email,
		PasswordHash: "$argon2id$fake",
		CreatedAt:    time.Now(),
	}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

// seedBoard inserts a board owned by the given user.
func seedBoard(t *testing.T, s *Store, userID int64, name string) *domain.Board {
	t.Helper()
	b := &domain.Board{Name: name, UserID: userID}
	if err := s.CreateBoard(context.Background(), b); err != nil {
		t.Fatalf("seed board %s: %v", name, err)
	}
	return b
}

// seedList inserts a list on the given board.
func seedList(t *testing.T, s *Store, boardID int64, name string, ord int) *domain.List {
	t.Helper()
	l := &domain.List{BoardID: boardID, Name: name, Order: ord}
	if err := s.CreateList(context.Background(), l); err != nil {
		t.Fatalf("seed list %s: %v", name, err)
	}
	return l
}

// seedCard inserts a card on the given board and list.
func seedCard(t *testing.T, s *Store, boardID, listID, userID int64, title string) *domain.Card {
	t.Helper()
	now := time.Now()
	c := &domain.Card{
		BoardID:   boardID,
		ListID:    listID,
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateCard(context.Background(), c); err != nil {
		t.Fatalf("seed card %s: %v", title, err)
	}
	return c
}

func TestOpen(t *testing.T) {
	s := newTestStore(t)

	// Verify WAL mode is set.
	var journalMode string
	err := s.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
	if err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("expected wal, got %s", journalMode)
	}

	// Verify foreign keys are enabled.
	var fk int
	err = s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	if err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("expected foreign_keys=1, got %d", fk)
	}

	// Verify tables exist.
	tables := []string{"users", "boards", "lists", "cards", "labels", "subtasks", "worklogs"}
	for _, table := range tables {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestOpenClose(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := Open(dbPath, logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	// Re-open should work (schema is idempotent).
	s2, err := Open(dbPath, logger)
	if err != nil {
		t.Fatalf("re-open store: %v", err)
	}
	defer s2.Close()
}
