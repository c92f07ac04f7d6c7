package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmerino90/wellness-tracker/internal/app"
	"github.com/mmerino90/wellness-tracker/internal/service"
	"github.com/mmerino90/wellness-tracker/internal/store"
)

func firstHabitID(t *testing.T, ctx *Context) int64 {
	t.Helper()
	user, err := ctx.authenticate()
	require.NoError(t, err)
	habits, err := ctx.Services.HabitService.ListAll(context.Background(), user.UserID)
	require.NoError(t, err)
	require.NotEmpty(t, habits)
	return habits[0].HabitID
}

func TestHabitLifecycle(t *testing.T) {
	ctx, out := setupTestContext(t)
	registerAs(t, ctx, out, "alice")

	require.NoError(t, (&HabitAddCmd{Name: "Meditate", Category: "mind", Frequency: "daily"}).Run(ctx))
	assert.Contains(t, out.String(), "added")
	id := firstHabitID(t, ctx)

	out.Reset()
	require.NoError(t, (&HabitListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Meditate")
	assert.Contains(t, out.String(), "mind")

	out.Reset()
	require.NoError(t, (&HabitDoneCmd{ID: id}).Run(ctx))
	assert.Contains(t, out.String(), "Meditate done, streak 1")

	out.Reset()
	require.NoError(t, (&HabitDoneCmd{ID: id}).Run(ctx))
	assert.Contains(t, out.String(), app.MsgHabitAlreadyDone)

	out.Reset()
	require.NoError(t, (&HabitHistoryCmd{ID: id, Days: 7}).Run(ctx))
	assert.Contains(t, out.String(), "MEDITATE HISTORY")

	out.Reset()
	require.NoError(t, (&HabitRateCmd{ID: id, Days: 10}).Run(ctx))
	assert.Contains(t, out.String(), "10.0%")

	out.Reset()
	require.NoError(t, (&HabitResetCmd{ID: id}).Run(ctx))
	habit, err := ctx.Services.HabitService.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, habit.StreakCount)

	name := "Meditate 20 min"
	require.NoError(t, (&HabitEditCmd{ID: id, Name: &name}).Run(ctx))
	habit, err = ctx.Services.HabitService.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, name, habit.HabitName)

	require.NoError(t, (&HabitDeleteCmd{ID: id}).Run(ctx))
	out.Reset()
	require.NoError(t, (&HabitListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No habits found")

	out.Reset()
	require.NoError(t, (&HabitListCmd{All: true}).Run(ctx))
	assert.Contains(t, out.String(), "inactive")

	require.NoError(t, (&HabitPurgeCmd{ID: id}).Run(ctx))
	_, err = ctx.Services.HabitService.Get(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrHabitNotFound)
}

func TestHabitAddCmd_EmptyName(t *testing.T) {
	ctx, out := setupTestContext(t)
	registerAs(t, ctx, out, "alice")

	err := (&HabitAddCmd{Name: "  ", Frequency: "daily"}).Run(ctx)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestHabitCommands_ForeignHabit(t *testing.T) {
	ctx, out := setupTestContext(t)
	registerAs(t, ctx, out, "alice")
	require.NoError(t, (&HabitAddCmd{Name: "Run", Frequency: "weekly"}).Run(ctx))
	id := firstHabitID(t, ctx)

	registerAs(t, ctx, out, "bob")

	name := "Stolen"
	assert.ErrorIs(t, (&HabitEditCmd{ID: id, Name: &name}).Run(ctx), ErrAccessDenied)
	assert.ErrorIs(t, (&HabitDoneCmd{ID: id}).Run(ctx), ErrAccessDenied)
	assert.ErrorIs(t, (&HabitResetCmd{ID: id}).Run(ctx), ErrAccessDenied)
	assert.ErrorIs(t, (&HabitDeleteCmd{ID: id}).Run(ctx), ErrAccessDenied)
	assert.ErrorIs(t, (&HabitPurgeCmd{ID: id}).Run(ctx), ErrAccessDenied)
	assert.ErrorIs(t, (&HabitRateCmd{ID: id, Days: 7}).Run(ctx), ErrAccessDenied)

	assert.ErrorIs(t, (&HabitDoneCmd{ID: 999}).Run(ctx), store.ErrHabitNotFound)
}
