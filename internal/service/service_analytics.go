package service

import (
	"context"
	"fmt"

	"github.com/mmerino90/wellness-tracker/internal/analytics"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/models"
)

type analyticsService struct {
	moodRepository  store.MoodRepository
	habitRepository store.HabitRepository

	// completionWindow is the number of trailing days behind every habit
	// rate of the dashboard.
	completionWindow int
	clock            Clock

	logger *logger.Logger
}

// NewAnalyticsService constructs an AnalyticsService reading through the
// mood and habit repositories.
func NewAnalyticsService(moodRepository store.MoodRepository, habitRepository store.HabitRepository, completionWindow int, clock Clock, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		moodRepository:   moodRepository,
		habitRepository:  habitRepository,
		completionWindow: completionWindow,
		clock:            clock,
		logger:           logger,
	}
}

// Dashboard loads every mood entry and active habit of the user and runs
// the analytics aggregations over them.
func (s *analyticsService) Dashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	if err := validUserID(userID); err != nil {
		return models.Dashboard{}, err
	}

	entries, err := s.moodRepository.ListMoodEntries(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error loading mood entries for dashboard")
		return models.Dashboard{}, fmt.Errorf("error loading mood entries: %w", err)
	}

	habits, err := s.habitRepository.ListHabits(ctx, userID, true)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error loading habits for dashboard")
		return models.Dashboard{}, fmt.Errorf("error loading habits: %w", err)
	}

	now := s.clock()
	rates, err := analytics.HabitCompletionSeries(habits, func(h models.Habit) (float64, error) {
		return completionRate(ctx, s.habitRepository, h.HabitID, s.completionWindow, now)
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error computing habit completion")
		return models.Dashboard{}, err
	}

	return models.Dashboard{
		UserID:               userID,
		Overview:             analytics.Overview(entries),
		MoodDistribution:     analytics.MoodDistribution(entries),
		DailyMoodTrend:       analytics.DailyMoodTrend(entries),
		HabitCompletion:      rates,
		EnergyLevels:         analytics.EnergyHistogram(entries),
		EmotionalContexts:    analytics.EmotionFrequency(entries),
		CompletionWindowDays: s.completionWindow,
	}, nil
}
