package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mmerino90/wellness-tracker/internal/analytics"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/internal/validators"
	"github.com/mmerino90/wellness-tracker/models"
)

type habitService struct {
	habitRepository store.HabitRepository
	validator       validators.Validator
	clock           Clock

	logger *logger.Logger
}

// NewHabitService constructs a HabitService backed by habitRepository.
func NewHabitService(habitRepository store.HabitRepository, validator validators.Validator, clock Clock, logger *logger.Logger) HabitService {
	return &habitService{
		habitRepository: habitRepository,
		validator:       validator,
		clock:           clock,
		logger:          logger,
	}
}

// Create stores a new active habit with a zero streak. An empty frequency
// defaults to daily.
func (s *habitService) Create(ctx context.Context, habit models.Habit) (models.Habit, error) {
	err := s.validator.Validate(ctx, habit, validators.FieldUserID, validators.FieldHabitName, validators.FieldOptionalFrequency)
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if habit.Frequency == "" {
		habit.Frequency = models.FrequencyDaily
	}
	habit.CreatedAt = s.clock()

	id, err := s.habitRepository.CreateHabit(ctx, habit)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit creation failed: %w", err)
	}

	return s.habitRepository.GetHabit(ctx, id)
}

func (s *habitService) ListActive(ctx context.Context, userID int64) ([]models.Habit, error) {
	return s.list(ctx, userID, true)
}

func (s *habitService) ListAll(ctx context.Context, userID int64) ([]models.Habit, error) {
	return s.list(ctx, userID, false)
}

func (s *habitService) list(ctx context.Context, userID int64, activeOnly bool) ([]models.Habit, error) {
	if err := validUserID(userID); err != nil {
		return nil, err
	}
	return s.habitRepository.ListHabits(ctx, userID, activeOnly)
}

func (s *habitService) Get(ctx context.Context, habitID int64) (models.Habit, error) {
	if err := validHabitID(habitID); err != nil {
		return models.Habit{}, err
	}
	return s.habitRepository.GetHabit(ctx, habitID)
}

// Update rewrites name, description, category and frequency. The streak
// and the active flag cannot be changed this way.
func (s *habitService) Update(ctx context.Context, habit models.Habit) error {
	if err := s.validator.Validate(ctx, habit); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	habit.UpdatedAt = s.clock()
	if err := s.habitRepository.UpdateHabit(ctx, habit); err != nil {
		return fmt.Errorf("habit update failed: %w", err)
	}
	return nil
}

// SoftDelete deactivates the habit. It disappears from ListActive but
// keeps its history.
func (s *habitService) SoftDelete(ctx context.Context, habitID int64) error {
	if err := validHabitID(habitID); err != nil {
		return err
	}
	return s.habitRepository.SoftDeleteHabit(ctx, habitID)
}

// HardDelete removes the habit and its completion records.
func (s *habitService) HardDelete(ctx context.Context, habitID int64) error {
	if err := validHabitID(habitID); err != nil {
		return err
	}
	return s.habitRepository.HardDeleteHabit(ctx, habitID)
}

func (s *habitService) IncrementStreak(ctx context.Context, habitID int64) (bool, error) {
	if err := validHabitID(habitID); err != nil {
		return false, err
	}

	today := models.DateOf(s.clock())
	incremented, err := s.habitRepository.IncrementStreak(ctx, habitID, today)
	if err != nil {
		return false, fmt.Errorf("streak increment failed: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("habit_id", habitID).
		Str("day", today).
		Bool("incremented", incremented).
		Msg("habit completed")
	return incremented, nil
}

func (s *habitService) ResetStreak(ctx context.Context, habitID int64) error {
	if err := validHabitID(habitID); err != nil {
		return err
	}
	return s.habitRepository.ResetStreak(ctx, habitID)
}

func (s *habitService) Completions(ctx context.Context, habitID int64, days int) ([]models.HabitCompletion, error) {
	if err := validHabitID(habitID); err != nil {
		return nil, err
	}
	from, to, err := dayWindow(s.clock(), days)
	if err != nil {
		return nil, err
	}
	return s.habitRepository.ListCompletions(ctx, habitID, from, to)
}

func (s *habitService) CompletionRate(ctx context.Context, habitID int64, days int) (float64, error) {
	if err := validHabitID(habitID); err != nil {
		return 0, err
	}
	return completionRate(ctx, s.habitRepository, habitID, days, s.clock())
}

func (s *habitService) FrequencyAwareCompletionRate(ctx context.Context, habitID int64, days int) (float64, error) {
	if err := validHabitID(habitID); err != nil {
		return 0, err
	}
	from, to, err := dayWindow(s.clock(), days)
	if err != nil {
		return 0, err
	}

	habit, err := s.habitRepository.GetHabit(ctx, habitID)
	if err != nil {
		return 0, err
	}

	done, err := s.habitRepository.CountCompletions(ctx, habitID, from, to)
	if err != nil {
		return 0, err
	}

	expected := math.Ceil(float64(days) / float64(habit.Frequency.PeriodDays()))
	return analytics.ClampPercent(float64(done) / expected * 100), nil
}

// completionRate is the share of the days calendar days ending at now's
// UTC date on which habitID was completed, in percent.
func completionRate(ctx context.Context, repo store.HabitRepository, habitID int64, days int, now time.Time) (float64, error) {
	from, to, err := dayWindow(now, days)
	if err != nil {
		return 0, err
	}

	done, err := repo.CountCompletions(ctx, habitID, from, to)
	if err != nil {
		return 0, err
	}
	return analytics.ClampPercent(float64(done) / float64(days) * 100), nil
}

// dayWindow returns the first and last UTC calendar day of the days-long
// window ending at now, both inclusive.
func dayWindow(now time.Time, days int) (from, to string, err error) {
	if days <= 0 {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidWindow)
	}
	now = now.UTC()
	return models.DateOf(now.AddDate(0, 0, -(days - 1))), models.DateOf(now), nil
}

func validHabitID(habitID int64) error {
	if habitID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidHabitID)
	}
	return nil
}
