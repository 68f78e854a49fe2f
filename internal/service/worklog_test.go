package service

import (
	"context"
	"testing"

	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/week"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkLogValidation(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	user := registerUser(t, svcs, "ana@example.com")
	board := mainBoard(t, svcs, user.ID)
	card := createCard(t, svcs, user.ID, board.ID, "Tarea")

	_, err := svcs.WorkLogs.Create(ctx, user.ID, card.ID, CreateWorkLogRequest{
		Date: domain.Today(), Hours: 0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation, "zero hours")

	_, err = svcs.WorkLogs.Create(ctx, user.ID, card.ID, CreateWorkLogRequest{
		Date: domain.Today(), Hours: -1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation, "negative hours")

	_, err = svcs.WorkLogs.Create(ctx, user.ID, card.ID, CreateWorkLogRequest{
		Date: domain.Today().AddDays(1), Hours: 2,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation, "future date")

	_, err = svcs.WorkLogs.Create(ctx, user.ID, 99999, CreateWorkLogRequest{
		Date: domain.Today(), Hours: 2,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound, "missing card")
}

func TestAnyUserMayLogOnForeignCard(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	ana := registerUser(t, svcs, "ana@example.com")
	bob := registerUser(t, svcs, "bob@example.com")
	board := mainBoard(t, svcs, ana.ID)
	card := createCard(t, svcs, ana.ID, board.ID, "Compartida")

	wl, err := svcs.WorkLogs.Create(ctx, bob.ID, card.ID, CreateWorkLogRequest{
		Date: domain.Today(), Hours: 3, Note: "ayuda externa",
	})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, wl.UserID)

	// And the card's log is visible to both.
	logs, err := svcs.WorkLogs.ListForCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestWorkLogAuthorOnlyMutation(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	ana := registerUser(t, svcs, "ana@example.com")
	bob := registerUser(t, svcs, "bob@example.com")
	board := mainBoard(t, svcs, ana.ID)
	card := createCard(t, svcs, ana.ID, board.ID, "Tarea")

	wl, err := svcs.WorkLogs.Create(ctx, ana.ID, card.ID, CreateWorkLogRequest{
		Date: domain.Today(), Hours: 2,
	})
	require.NoError(t, err)

	hours := 4.0
	_, err = svcs.WorkLogs.Update(ctx, bob.ID, wl.ID, domain.WorkLogUpdate{Hours: &hours})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = svcs.WorkLogs.Delete(ctx, bob.ID, wl.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// The author can do both.
	updated, err := svcs.WorkLogs.Update(ctx, ana.ID, wl.ID, domain.WorkLogUpdate{Hours: &hours})
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.Hours)

	bad := -1.0
	_, err = svcs.WorkLogs.Update(ctx, ana.ID, wl.ID, domain.WorkLogUpdate{Hours: &bad})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	require.NoError(t, svcs.WorkLogs.Delete(ctx, ana.ID, wl.ID))
	err = svcs.WorkLogs.Delete(ctx, ana.ID, wl.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserWeekIsCalendarInclusive(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	user := registerUser(t, svcs, "ana@example.com")
	board := mainBoard(t, svcs, user.ID)
	card := createCard(t, svcs, user.ID, board.ID, "Tarea")

	// Use last week so no date is in the future.
	thisWeek := week.Of(domain.Today())
	lastMonday := thisWeek.Monday().AddDays(-7)
	w := week.Of(lastMonday)

	sunday := lastMonday.AddDays(6)
	nextMonday := lastMonday.AddDays(7)

	for _, d := range []domain.Date{lastMonday, sunday, nextMonday} {
		_, err := svcs.WorkLogs.Create(ctx, user.ID, card.ID, CreateWorkLogRequest{
			Date: d, Hours: 1,
		})
		require.NoError(t, err)
	}

	logs, err := svcs.WorkLogs.UserWeek(ctx, user.ID, w.String())
	require.NoError(t, err)
	require.Len(t, logs, 2, "Monday and Sunday in, next Monday out")
	assert.Equal(t, lastMonday, logs[0].Date)
	assert.Equal(t, sunday, logs[1].Date)
}

func TestUserWeekSummary(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	user := registerUser(t, svcs, "ana@example.com")
	board := mainBoard(t, svcs, user.ID)
	card := createCard(t, svcs, user.ID, board.ID, "Tarea")

	thisWeek := week.Of(domain.Today())
	monday := thisWeek.Monday().AddDays(-7)
	w := week.Of(monday)

	// Two entries on Monday, one on Wednesday.
	for _, e := range []struct {
		date  domain.Date
		hours float64
	}{
		{monday, 2},
		{monday, 1.5},
		{monday.AddDays(2), 3},
	} {
		_, err := svcs.WorkLogs.Create(ctx, user.ID, card.ID, CreateWorkLogRequest{
			Date: e.date, Hours: e.hours,
		})
		require.NoError(t, err)
	}

	summary, err := svcs.WorkLogs.UserWeekSummary(ctx, user.ID, w.String())
	require.NoError(t, err)
	assert.Equal(t, w.String(), summary.Week)
	assert.Equal(t, 6.5, summary.TotalWeekHours)
	require.Len(t, summary.ByDay, 2)
	assert.Equal(t, domain.DayHours{Date: monday, Hours: 3.5}, summary.ByDay[0])
	assert.Equal(t, domain.DayHours{Date: monday.AddDays(2), Hours: 3}, summary.ByDay[1])
	assert.Len(t, summary.WorkLogs, 3)
}

func TestUserWeekRejectsBadWeek(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	user := registerUser(t, svcs, "ana@example.com")

	_, err := svcs.WorkLogs.UserWeek(ctx, user.ID, "2025-W21")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svcs.WorkLogs.UserWeek(ctx, user.ID, "2025-54")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestUserWeekEmpty(t *testing.T) {
	svcs := newTestServices(t)

	user := registerUser(t, svcs, "ana@example.com")

	logs, err := svcs.WorkLogs.UserWeek(context.Background(), user.ID, "2020-01")
	require.NoError(t, err)
	assert.Empty(t, logs)

	summary, err := svcs.WorkLogs.UserWeekSummary(context.Background(), user.ID, "2020-01")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalWeekHours)
	assert.Empty(t, summary.ByDay)
	assert.Empty(t, summary.WorkLogs)
}
