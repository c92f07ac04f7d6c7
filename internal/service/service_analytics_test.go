package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/mock"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/models"
)

func newTestAnalyticsSvc(t *testing.T, ctrl *gomock.Controller, clock *fakeClock) (AnalyticsService, *mock.MockMoodRepository, *mock.MockHabitRepository) {
	t.Helper()
	moods := mock.NewMockMoodRepository(ctrl)
	habits := mock.NewMockHabitRepository(ctrl)
	return NewAnalyticsService(moods, habits, 30, clock.Now, logger.Nop()), moods, habits
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := newFakeClock("2026-06-30 18:00:00")
	svc, moods, habits := newTestAnalyticsSvc(t, ctrl, clock)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2026, 6, d, 9, 0, 0, 0, time.UTC) }
	entries := []models.MoodEntry{
		{MoodLevel: "8", EnergyLevel: models.EnergyHigh, EmotionalContext: "happy", Timestamp: day(2)},
		{MoodLevel: "4", EnergyLevel: models.EnergyLow, EmotionalContext: "tired", Timestamp: day(1)},
		{MoodLevel: "6", EmotionalContext: "happy", Timestamp: day(1)},
		{MoodLevel: "n/a", Timestamp: day(1)},
	}
	active := []models.Habit{
		{HabitID: 1, HabitName: "Run", IsActive: true},
		{HabitID: 2, HabitName: "Read", IsActive: true},
	}

	moods.EXPECT().ListMoodEntries(ctx, int64(5)).Return(entries, nil)
	habits.EXPECT().ListHabits(ctx, int64(5), true).Return(active, nil)
	habits.EXPECT().CountCompletions(ctx, int64(1), "2026-06-01", "2026-06-30").Return(15, nil)
	habits.EXPECT().CountCompletions(ctx, int64(2), "2026-06-01", "2026-06-30").Return(10, nil)

	d, err := svc.Dashboard(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), d.UserID)
	assert.Equal(t, 30, d.CompletionWindowDays)
	assert.Equal(t, models.OverviewStats{Count: 4, Mean: 6, Max: 8, Min: 4}, d.Overview)
	assert.Equal(t, []models.Bucket{{Label: "4", Count: 1}, {Label: "6", Count: 1}, {Label: "8", Count: 1}, {Label: "n/a", Count: 1}}, d.MoodDistribution)

	require.Len(t, d.DailyMoodTrend, 2)
	assert.Equal(t, models.DailyAverage{Date: "2026-06-01", Average: 10.0 / 3}, d.DailyMoodTrend[0])
	assert.Equal(t, models.DailyAverage{Date: "2026-06-02", Average: 8}, d.DailyMoodTrend[1])

	require.Len(t, d.HabitCompletion, 2)
	assert.Equal(t, "Run", d.HabitCompletion[0].HabitName)
	assert.InDelta(t, 50, d.HabitCompletion[0].Rate, 1e-9)
	assert.InDelta(t, 33.33, d.HabitCompletion[1].Rate, 0.01)

	assert.Equal(t, []models.Bucket{{Label: "low", Count: 1}, {Label: "medium"}, {Label: "high", Count: 1}}, d.EnergyLevels)
	assert.Equal(t, []models.Bucket{{Label: "happy", Count: 2}, {Label: "tired", Count: 1}}, d.EmotionalContexts)
}

func TestAnalyticsService_Dashboard_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, moods, habits := newTestAnalyticsSvc(t, ctrl, newFakeClock("2026-06-30 18:00:00"))
	ctx := context.Background()

	moods.EXPECT().ListMoodEntries(ctx, int64(5)).Return([]models.MoodEntry{}, nil)
	habits.EXPECT().ListHabits(ctx, int64(5), true).Return([]models.Habit{}, nil)

	d, err := svc.Dashboard(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.OverviewStats{}, d.Overview)
	assert.Empty(t, d.MoodDistribution)
	assert.Empty(t, d.HabitCompletion)
	assert.Len(t, d.EnergyLevels, 3)
}

func TestAnalyticsService_Dashboard_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAnalyticsSvc(t, ctrl, newFakeClock("2026-06-30 18:00:00"))
		_, err := svc.Dashboard(ctx, 0)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("mood load fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, moods, _ := newTestAnalyticsSvc(t, ctrl, newFakeClock("2026-06-30 18:00:00"))
		moods.EXPECT().ListMoodEntries(ctx, int64(5)).Return(nil, store.ErrAccessFailure)

		_, err := svc.Dashboard(ctx, 5)
		assert.ErrorIs(t, err, store.ErrAccessFailure)
	})

	t.Run("rate fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, moods, habits := newTestAnalyticsSvc(t, ctrl, newFakeClock("2026-06-30 18:00:00"))
		moods.EXPECT().ListMoodEntries(ctx, int64(5)).Return(nil, nil)
		habits.EXPECT().ListHabits(ctx, int64(5), true).Return([]models.Habit{{HabitID: 1, IsActive: true}}, nil)
		habits.EXPECT().CountCompletions(ctx, int64(1), gomock.Any(), gomock.Any()).Return(0, store.ErrAccessFailure)

		_, err := svc.Dashboard(ctx, 5)
		assert.ErrorIs(t, err, store.ErrAccessFailure)
	})
}
