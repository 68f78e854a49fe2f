package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

func TestCreateUserAssignsID(t *testing.T) {
	s := newTestStore(t)

	u := seedUser(t, s, "ana@example.com")
	if u.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	got, err := s.GetUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "ana@example.com" {
		t.Errorf("Email: got %q", got.Email)
	}
	if got.PasswordHash != u.PasswordHash {
		t.Errorf("PasswordHash: got %q", got.PasswordHash)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should round-trip")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "ana@example.com")

	dup := &domain.User{Email: "ana@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	if err := s.CreateUser(context.Background(), dup); !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("got %v, want ErrAlreadyExists", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetUser(context.Background(), 999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetUser: got %v, want ErrNotFound", err)
	}
	if _, err := s.GetUserByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetUserByEmail: got %v, want ErrNotFound", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)

	u := seedUser(t, s, "bob@example.com")

	got, err := s.GetUserByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("ID: got %d, want %d", got.ID, u.ID)
	}
}
