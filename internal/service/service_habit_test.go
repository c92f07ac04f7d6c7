package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/mock"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/internal/validators"
	"github.com/mmerino90/wellness-tracker/models"
)

func TestHabitService_Create(t *testing.T) {
	clock := newFakeClock("2026-06-01 08:30:00")
	s, _ := newTestServices(t, clock.Now)
	ctx := context.Background()
	u := registerTestUser(t, s, "habits")

	h, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Meditate", Category: "mind"})
	require.NoError(t, err)
	assert.Positive(t, h.HabitID)
	assert.Equal(t, models.FrequencyDaily, h.Frequency)
	assert.True(t, h.IsActive)
	assert.Zero(t, h.StreakCount)
	assert.True(t, clock.Now().Equal(h.CreatedAt))

	t.Run("validation", func(t *testing.T) {
		_, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyHabitName)

		_, err = s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Run", Frequency: "yearly"})
		assert.ErrorIs(t, err, validators.ErrInvalidFrequency)

		_, err = s.HabitService.Create(ctx, models.Habit{HabitName: "Run"})
		assert.ErrorIs(t, err, validators.ErrInvalidUserID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := s.HabitService.Create(ctx, models.Habit{UserID: 999, HabitName: "Run"})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestHabitService_StreakLifecycle(t *testing.T) {
	clock := newFakeClock("2026-06-01 08:00:00")
	s, _ := newTestServices(t, clock.Now)
	ctx := context.Background()
	u := registerTestUser(t, s, "streaker")

	h, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Read"})
	require.NoError(t, err)

	ok, err := s.HabitService.IncrementStreak(ctx, h.HabitID)
	require.NoError(t, err)
	assert.True(t, ok)

	// same day again is a no-op
	ok, err = s.HabitService.IncrementStreak(ctx, h.HabitID)
	require.NoError(t, err)
	assert.False(t, ok)

	clock.AddDays(1)
	ok, err = s.HabitService.IncrementStreak(ctx, h.HabitID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.HabitService.Get(ctx, h.HabitID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.StreakCount)

	require.NoError(t, s.HabitService.ResetStreak(ctx, h.HabitID))
	got, err = s.HabitService.Get(ctx, h.HabitID)
	require.NoError(t, err)
	assert.Zero(t, got.StreakCount)

	// history survives a reset
	completions, err := s.HabitService.Completions(ctx, h.HabitID, 7)
	require.NoError(t, err)
	assert.Len(t, completions, 2)

	_, err = s.HabitService.IncrementStreak(ctx, 999)
	assert.ErrorIs(t, err, store.ErrHabitNotFound)
}

func TestHabitService_CompletionRate(t *testing.T) {
	clock := newFakeClock("2026-06-01 09:00:00")
	s, _ := newTestServices(t, clock.Now)
	ctx := context.Background()
	u := registerTestUser(t, s, "rater")

	h, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Walk"})
	require.NoError(t, err)

	// completed on 10 of the last 30 days, today included
	for i := 0; i < 10; i++ {
		if i > 0 {
			clock.AddDays(1)
		}
		ok, err := s.HabitService.IncrementStreak(ctx, h.HabitID)
		require.NoError(t, err)
		require.True(t, ok)
	}

	rate, err := s.HabitService.CompletionRate(ctx, h.HabitID, 30)
	require.NoError(t, err)
	assert.InDelta(t, 33.33, rate, 0.01)

	rate, err = s.HabitService.CompletionRate(ctx, h.HabitID, 5)
	require.NoError(t, err)
	assert.InDelta(t, 100, rate, 1e-9)

	rate, err = s.HabitService.CompletionRate(ctx, h.HabitID, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100, rate, 1e-9)

	// a window far in the future contains nothing
	clock.AddDays(100)
	rate, err = s.HabitService.CompletionRate(ctx, h.HabitID, 30)
	require.NoError(t, err)
	assert.Zero(t, rate)

	for _, days := range []int{0, -3} {
		_, err = s.HabitService.CompletionRate(ctx, h.HabitID, days)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	}
}

func TestHabitService_FrequencyAwareCompletionRate(t *testing.T) {
	clock := newFakeClock("2026-06-01 09:00:00")
	s, _ := newTestServices(t, clock.Now)
	ctx := context.Background()
	u := registerTestUser(t, s, "weekly")

	h, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Long run", Frequency: models.FrequencyWeekly})
	require.NoError(t, err)

	// two completions a week apart
	_, err = s.HabitService.IncrementStreak(ctx, h.HabitID)
	require.NoError(t, err)
	clock.AddDays(7)
	_, err = s.HabitService.IncrementStreak(ctx, h.HabitID)
	require.NoError(t, err)

	// ceil(14/7) = 2 expected
	rate, err := s.HabitService.FrequencyAwareCompletionRate(ctx, h.HabitID, 14)
	require.NoError(t, err)
	assert.InDelta(t, 100, rate, 1e-9)

	// ceil(30/7) = 5 expected
	rate, err = s.HabitService.FrequencyAwareCompletionRate(ctx, h.HabitID, 30)
	require.NoError(t, err)
	assert.InDelta(t, 40, rate, 1e-9)

	// the calendar-day rate judges the same history against 30 days
	rate, err = s.HabitService.CompletionRate(ctx, h.HabitID, 30)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/30*100, rate, 1e-9)

	_, err = s.HabitService.FrequencyAwareCompletionRate(ctx, 999, 30)
	assert.ErrorIs(t, err, store.ErrHabitNotFound)
}

func TestHabitService_SoftDeleteVisibility(t *testing.T) {
	s, _ := newTestServices(t, newFakeClock("2026-06-01 09:00:00").Now)
	ctx := context.Background()
	u := registerTestUser(t, s, "tidy")

	keep, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Keep"})
	require.NoError(t, err)
	drop, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Drop"})
	require.NoError(t, err)

	require.NoError(t, s.HabitService.SoftDelete(ctx, drop.HabitID))

	active, err := s.HabitService.ListActive(ctx, u.UserID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.HabitID, active[0].HabitID)

	all, err := s.HabitService.ListAll(ctx, u.UserID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := s.HabitService.Get(ctx, drop.HabitID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, s.HabitService.HardDelete(ctx, drop.HabitID))
	_, err = s.HabitService.Get(ctx, drop.HabitID)
	assert.ErrorIs(t, err, store.ErrHabitNotFound)
}

func TestHabitService_UpdateKeepsStreak(t *testing.T) {
	clock := newFakeClock("2026-06-01 09:00:00")
	s, _ := newTestServices(t, clock.Now)
	ctx := context.Background()
	u := registerTestUser(t, s, "updater")

	h, err := s.HabitService.Create(ctx, models.Habit{UserID: u.UserID, HabitName: "Stretch"})
	require.NoError(t, err)
	_, err = s.HabitService.IncrementStreak(ctx, h.HabitID)
	require.NoError(t, err)

	clock.AddDays(1)
	h.HabitName = "Stretch more"
	h.Frequency = models.FrequencyMonthly
	h.StreakCount = 99
	h.IsActive = false
	require.NoError(t, s.HabitService.Update(ctx, h))

	got, err := s.HabitService.Get(ctx, h.HabitID)
	require.NoError(t, err)
	assert.Equal(t, "Stretch more", got.HabitName)
	assert.Equal(t, models.FrequencyMonthly, got.Frequency)
	assert.Equal(t, 1, got.StreakCount)
	assert.True(t, got.IsActive)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	assert.ErrorIs(t, s.HabitService.Update(ctx, models.Habit{HabitID: 999, HabitName: "x", Frequency: models.FrequencyDaily}), store.ErrHabitNotFound)
	assert.ErrorIs(t, s.HabitService.Update(ctx, models.Habit{HabitID: h.HabitID, HabitName: "x"}), ErrInvalidDataProvided)
}

func TestHabitService_RejectsBadIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHabitRepository(ctrl)
	svc := NewHabitService(repo, validators.NewWellnessValidator(), newFakeClock("2026-06-01 00:00:00").Now, logger.Nop())
	ctx := context.Background()

	// no repository call is expected
	_, err := svc.Get(ctx, 0)
	assert.ErrorIs(t, err, validators.ErrInvalidHabitID)
	assert.ErrorIs(t, svc.SoftDelete(ctx, 0), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.HardDelete(ctx, -1), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.ResetStreak(ctx, 0), ErrInvalidDataProvided)
	_, err = svc.IncrementStreak(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.ListActive(ctx, 0)
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
}

func TestHabitService_CompletionWindowBoundaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHabitRepository(ctrl)
	// the window ends on the UTC date of the clock
	svc := NewHabitService(repo, validators.NewWellnessValidator(), newFakeClock("2026-03-10 23:30:00").Now, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().CountCompletions(ctx, int64(4), "2026-03-04", "2026-03-10").Return(14, nil)

	// more completions than days is clamped
	rate, err := svc.CompletionRate(ctx, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rate)
}
