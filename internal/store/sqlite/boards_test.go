package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store"
)

func TestCreateAndListBoards(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	other := seedUser(t, s, "bob@example.com")

	b1 := seedBoard(t, s, u.ID, "Tablero principal")
	b2 := seedBoard(t, s, u.ID, "Proyecto X")
	seedBoard(t, s, other.ID, "Ajeno")

	boards, err := s.ListBoards(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListBoards: %v", err)
	}
	if len(boards) != 2 {
		t.Fatalf("got %d boards, want 2", len(boards))
	}
	if boards[0].ID != b1.ID || boards[1].ID != b2.ID {
		t.Errorf("boards out of order: %d, %d", boards[0].ID, boards[1].ID)
	}
}

func TestGetBoardNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetBoard(context.Background(), 42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListListsOrderedByPosition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	b := seedBoard(t, s, u.ID, "Tablero principal")

	// Insert out of positional order.
	seedList(t, s, b.ID, domain.ListNameDone, 3)
	seedList(t, s, b.ID, domain.ListNameTodo, 1)
	seedList(t, s, b.ID, domain.ListNameInProgress, 2)

	lists, err := s.ListLists(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListLists: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("got %d lists, want 3", len(lists))
	}
	want := []string{domain.ListNameTodo, domain.ListNameInProgress, domain.ListNameDone}
	for i, name := range want {
		if lists[i].Name != name {
			t.Errorf("lists[%d]: got %q, want %q", i, lists[i].Name, name)
		}
	}
}

func TestGetListByNameCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	b := seedBoard(t, s, u.ID, "Tablero principal")
	todo := seedList(t, s, b.ID, "Por hacer", 1)

	for _, name := range []string{"Por hacer", "por hacer", "POR HACER"} {
		got, err := s.GetListByName(ctx, b.ID, name)
		if err != nil {
			t.Fatalf("GetListByName(%q): %v", name, err)
		}
		if got.ID != todo.ID {
			t.Errorf("GetListByName(%q): got list %d, want %d", name, got.ID, todo.ID)
		}
	}

	if _, err := s.GetListByName(ctx, b.ID, "Backlog"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestGetListByNameScopedToBoard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ana@example.com")
	b1 := seedBoard(t, s, u.ID, "Uno")
	b2 := seedBoard(t, s, u.ID, "Dos")
	seedList(t, s, b1.ID, "Por hacer", 1)

	if _, err := s.GetListByName(ctx, b2.ID, "Por hacer"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("list of another board should not match, got %v", err)
	}
}
