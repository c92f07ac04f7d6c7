package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmerino90/wellness-tracker/models"
)

func TestCreateHabit_Defaults(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	u := createTestUser(t, s, "habits")

	id, err := s.HabitRepository.CreateHabit(ctx, models.Habit{
		UserID:      u.UserID,
		HabitName:   "Meditate",
		Description: "10 minutes",
		Frequency:   models.FrequencyWeekly,
		StreakCount: 99, // ignored on create
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	h, err := s.HabitRepository.GetHabit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, h.UserID)
	assert.Equal(t, "Meditate", h.HabitName)
	assert.Equal(t, "10 minutes", h.Description)
	assert.Empty(t, h.Category)
	assert.Equal(t, models.FrequencyWeekly, h.Frequency)
	assert.Zero(t, h.StreakCount)
	assert.True(t, h.IsActive)
}

func TestCreateHabit_UnknownUser(t *testing.T) {
	s := newTestStorages(t)

	_, err := s.HabitRepository.CreateHabit(context.Background(), models.Habit{
		UserID: 777, HabitName: "Orphan", Frequency: models.FrequencyDaily,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestListHabits_OrderAndSoftDelete(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	u := createTestUser(t, s, "lister")
	other := createTestUser(t, s, "someone")

	first := createTestHabit(t, s, u.UserID, "First")
	second := createTestHabit(t, s, u.UserID, "Second")
	third := createTestHabit(t, s, u.UserID, "Third")
	createTestHabit(t, s, other.UserID, "Not mine")

	require.NoError(t, s.HabitRepository.SoftDeleteHabit(ctx, second))

	active, err := s.HabitRepository.ListHabits(ctx, u.UserID, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, third, active[0].HabitID)
	assert.Equal(t, first, active[1].HabitID)

	all, err := s.HabitRepository.ListHabits(ctx, u.UserID, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{third, second, first}, []int64{all[0].HabitID, all[1].HabitID, all[2].HabitID})
	assert.False(t, all[1].IsActive)

	// the row is still reachable by id
	h, err := s.HabitRepository.GetHabit(ctx, second)
	require.NoError(t, err)
	assert.False(t, h.IsActive)
}

func TestListHabits_EmptyIsNotNil(t *testing.T) {
	s := newTestStorages(t)
	u := createTestUser(t, s, "empty")

	habits, err := s.HabitRepository.ListHabits(context.Background(), u.UserID, true)
	require.NoError(t, err)
	assert.NotNil(t, habits)
	assert.Empty(t, habits)
}

func TestUpdateHabit_KeepsStreakAndActive(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	u := createTestUser(t, s, "updater")
	id := createTestHabit(t, s, u.UserID, "Run")

	ok, err := s.HabitRepository.IncrementStreak(ctx, id, "2026-05-01")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.HabitRepository.UpdateHabit(ctx, models.Habit{
		HabitID:     id,
		HabitName:   "Run 5k",
		Category:    "fitness",
		Frequency:   models.FrequencyMonthly,
		StreakCount: 0,
		IsActive:    false,
	}))

	h, err := s.HabitRepository.GetHabit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", h.HabitName)
	assert.Equal(t, "fitness", h.Category)
	assert.Equal(t, models.FrequencyMonthly, h.Frequency)
	assert.Equal(t, 1, h.StreakCount)
	assert.True(t, h.IsActive)

	assert.ErrorIs(t, s.HabitRepository.UpdateHabit(ctx, models.Habit{HabitID: 9999, HabitName: "x", Frequency: models.FrequencyDaily}), ErrHabitNotFound)
}

func TestIncrementStreak_Lifecycle(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	u := createTestUser(t, s, "streaker")
	id := createTestHabit(t, s, u.UserID, "Stretch")
	repo := s.HabitRepository

	ok, err := repo.IncrementStreak(ctx, id, "2026-06-01")
	require.NoError(t, err)
	assert.True(t, ok)

	// same day again is a no-op
	ok, err = repo.IncrementStreak(ctx, id, "2026-06-01")
	require.NoError(t, err)
	assert.False(t, ok)

	h, err := repo.GetHabit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, h.StreakCount)

	ok, err = repo.IncrementStreak(ctx, id, "2026-06-02")
	require.NoError(t, err)
	assert.True(t, ok)

	h, err = repo.GetHabit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, h.StreakCount)

	require.NoError(t, repo.ResetStreak(ctx, id))
	h, err = repo.GetHabit(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, h.StreakCount)

	// history survives the reset
	completions, err := repo.ListCompletions(ctx, id, "", "")
	require.NoError(t, err)
	require.Len(t, completions, 2)
	assert.Equal(t, "2026-06-01", completions[0].CompletionDate)
	assert.Equal(t, "2026-06-02", completions[1].CompletionDate)
	assert.True(t, completions[0].IsCompleted)
}

func TestIncrementStreak_UnknownHabit(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	ok, err := s.HabitRepository.IncrementStreak(ctx, 4242, "2026-06-01")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrHabitNotFound)

	n, err := s.HabitRepository.CountCompletions(ctx, 4242, "2000-01-01", "2100-01-01")
	require.NoError(t, err)
	assert.Zero(t, n, "the failed increment must not leave a completion behind")

	assert.ErrorIs(t, s.HabitRepository.ResetStreak(ctx, 4242), ErrHabitNotFound)
}

func TestCountAndListCompletions_Range(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	u := createTestUser(t, s, "counter")
	id := createTestHabit(t, s, u.UserID, "Journal")

	for _, day := range []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-10"} {
		_, err := s.HabitRepository.IncrementStreak(ctx, id, day)
		require.NoError(t, err)
	}

	n, err := s.HabitRepository.CountCompletions(ctx, id, "2026-01-31", "2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := s.HabitRepository.ListCompletions(ctx, id, "2026-02-01", "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-02-10", list[1].CompletionDate)
}

func TestHardDeleteHabit(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	u := createTestUser(t, s, "purger")
	id := createTestHabit(t, s, u.UserID, "Gone")
	_, err := s.HabitRepository.IncrementStreak(ctx, id, "2026-06-01")
	require.NoError(t, err)

	require.NoError(t, s.HabitRepository.HardDeleteHabit(ctx, id))

	_, err = s.HabitRepository.GetHabit(ctx, id)
	assert.ErrorIs(t, err, ErrHabitNotFound)
	list, err := s.HabitRepository.ListCompletions(ctx, id, "", "")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, s.HabitRepository.HardDeleteHabit(ctx, id), ErrHabitNotFound)
	assert.ErrorIs(t, s.HabitRepository.SoftDeleteHabit(ctx, id), ErrHabitNotFound)
}
