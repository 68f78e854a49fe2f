package service

import (
	"context"
	"encoding/hex"
	"path/filepath"
	"testing"
	"time"

	"github.com/neocare/neocare-server/internal/auth"
	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/store/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestServices wires the full service bundle against a temp-dir SQLite
// store and a fresh token key.
func newTestServices(t *testing.T) *Services {
	t.Helper()

	dir := t.TempDir()
	st, err := sqlite.Open(filepath.Join(dir, "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	key, err := auth.LoadOrGenerateKey(dir)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(hex.EncodeToString(key), time.Hour)
	require.NoError(t, err)

	return NewServices(st, tokens, nil)
}

// registerUser registers an account through the service, seed board included.
func registerUser(t *testing.T, svcs *Services, email string) *domain.User {
	t.Helper()
	u, err := svcs.Auth.Register(context.Background(), RegisterRequest{
		Email:    email,
		Password: "correcthorse",
	})
	require.NoError(t, err)
	return u
}

// mainBoard returns the user's seeded default board.
func mainBoard(t *testing.T, svcs *Services, userID int64) *domain.Board {
	t.Helper()
	boards, err := svcs.Boards.ListBoards(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, boards)
	return boards[0]
}

// createCard adds a card on the user's board with default placement.
func createCard(t *testing.T, svcs *Services, userID, boardID int64, title string) *domain.Card {
	t.Helper()
	card, err := svcs.Cards.Create(context.Background(), userID, CreateCardRequest{
		BoardID: boardID,
		Title:   title,
	})
	require.NoError(t, err)
	return card
}
