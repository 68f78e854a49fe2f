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

func currentWeek() string {
	return week.Of(domain.Today()).String()
}

func TestReportWeekValidation(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	user := registerUser(t, svcs, "ana@example.com")
	board := mainBoard(t, svcs, user.ID)

	for _, bad := range []string{"2025W21", "2025-5", "2025-99"} {
		_, err := svcs.Reports.Summary(ctx, user.ID, board.ID, bad)
		assert.ErrorIs(t, err, domainerrors.ErrValidation, "week %q", bad)
	}
}

func TestReportOwnerOnly(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	ana := registerUser(t, svcs, "ana@example.com")
	bob := registerUser(t, svcs, "bob@example.com")
	board := mainBoard(t, svcs, ana.ID)

	_, err := svcs.Reports.Summary(ctx, bob.ID, board.ID, currentWeek())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// Missing board reports not found before ownership.
	_, err = svcs.Reports.Summary(ctx, bob.ID, 99999, currentWeek())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = svcs.Reports.HoursByUser(ctx, bob.ID, board.ID, currentWeek())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = svcs.Reports.HoursByCard(ctx, bob.ID, board.ID, currentWeek())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReportSummaryCounts(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	user := registerUser(t, svcs, "ana@example.com")
	board := mainBoard(t, svcs, user.ID)
	lists, err := svcs.Lists.ListsForBoard(ctx, user.ID, board.ID)
	require.NoError(t, err)
	done := lists[2]

	// Created this week, still pending.
	fresh := createCard(t, svcs, user.ID, board.ID, "Nueva")

	// Created and immediately finished this week.
	finished := createCard(t, svcs, user.ID, board.ID, "Terminada")
	_, err = svcs.Cards.Update(ctx, user.ID, finished.ID, domain.CardUpdate{ListID: &done.ID})
	require.NoError(t, err)

	// Due today and not done: overdue for this week's report.
	today := domain.Today()
	_, err = svcs.Cards.Update(ctx, user.ID, fresh.ID, domain.CardUpdate{DueDate: &today})
	require.NoError(t, err)

	summary, err := svcs.Reports.Summary(ctx, user.ID, board.ID, currentWeek())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.NewCount)
	require.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, finished.ID, summary.Completed[0].ID)
	require.Equal(t, 1, summary.OverdueCount)
	assert.Equal(t, fresh.ID, summary.Overdue[0].ID)
}

func TestReportHours(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	ana := registerUser(t, svcs, "ana@example.com")
	bob := registerUser(t, svcs, "bob@example.com")
	board := mainBoard(t, svcs, ana.ID)
	c1 := createCard(t, svcs, ana.ID, board.ID, "Uno")
	c2 := createCard(t, svcs, ana.ID, board.ID, "Dos")

	today := domain.Today()
	for _, e := range []struct {
		user  int64
		card  int64
		hours float64
	}{
		{ana.ID, c1.ID, 2},
		{ana.ID, c2.ID, 3},
		{bob.ID, c1.ID, 1.5},
	} {
		_, err := svcs.WorkLogs.Create(ctx, e.user, e.card, CreateWorkLogRequest{
			Date: today, Hours: e.hours,
		})
		require.NoError(t, err)
	}

	byUser, err := svcs.Reports.HoursByUser(ctx, ana.ID, board.ID, currentWeek())
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, domain.UserHours{UserID: ana.ID, TotalHours: 5, TasksCount: 2}, byUser[0])
	assert.Equal(t, domain.UserHours{UserID: bob.ID, TotalHours: 1.5, TasksCount: 1}, byUser[1])

	byCard, err := svcs.Reports.HoursByCard(ctx, ana.ID, board.ID, currentWeek())
	require.NoError(t, err)
	require.Len(t, byCard, 2)
	assert.Equal(t, c1.ID, byCard[0].CardID, "highest total first")
	assert.Equal(t, 3.5, byCard[0].TotalHours)
	assert.Equal(t, domain.ListNameTodo, byCard[0].ListName)
}

func TestReportHoursEmptyWeek(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	user := registerUser(t, svcs, "ana@example.com")
	board := mainBoard(t, svcs, user.ID)

	rows, err := svcs.Reports.HoursByUser(ctx, user.ID, board.ID, "2020-01")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
