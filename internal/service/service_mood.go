package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/internal/validators"
	"github.com/mmerino90/wellness-tracker/models"
)

type moodService struct {
	moodRepository store.MoodRepository
	validator      validators.Validator
	clock          Clock

	logger *logger.Logger
}

// NewMoodService constructs a MoodService backed by moodRepository.
func NewMoodService(moodRepository store.MoodRepository, validator validators.Validator, clock Clock, logger *logger.Logger) MoodService {
	return &moodService{
		moodRepository: moodRepository,
		validator:      validator,
		clock:          clock,
		logger:         logger,
	}
}

// Create stores the entry. A zero timestamp is replaced by the current time.
func (s *moodService) Create(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	err := s.validator.Validate(ctx, entry, validators.FieldUserID, validators.FieldMoodLevel, validators.FieldEnergyLevel)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.clock()
	}

	id, err := s.moodRepository.CreateMoodEntry(ctx, entry)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("mood entry creation failed: %w", err)
	}
	return s.moodRepository.GetMoodEntry(ctx, id)
}

func (s *moodService) ListAll(ctx context.Context, userID int64) ([]models.MoodEntry, error) {
	if err := validUserID(userID); err != nil {
		return nil, err
	}
	return s.moodRepository.ListMoodEntries(ctx, userID)
}

// ListByDateRange returns entries whose UTC date lies in [startDay, endDay].
func (s *moodService) ListByDateRange(ctx context.Context, userID int64, startDay, endDay string) ([]models.MoodEntry, error) {
	if err := validUserID(userID); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, models.DateRange{Start: startDay, End: endDay}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.moodRepository.ListMoodEntriesByDateRange(ctx, userID, startDay, endDay)
}

func (s *moodService) Get(ctx context.Context, entryID int64) (models.MoodEntry, error) {
	if entryID <= 0 {
		return models.MoodEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidEntryID)
	}
	return s.moodRepository.GetMoodEntry(ctx, entryID)
}

func (s *moodService) Update(ctx context.Context, entry models.MoodEntry) error {
	if err := s.validator.Validate(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.moodRepository.UpdateMoodEntry(ctx, entry); err != nil {
		return fmt.Errorf("mood entry update failed: %w", err)
	}
	return nil
}

func (s *moodService) Delete(ctx context.Context, entryID int64) error {
	if entryID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidEntryID)
	}
	return s.moodRepository.DeleteMoodEntry(ctx, entryID)
}

// AverageMood is the mean level over the trailing window, non-numeric
// levels counting as 0. An empty window yields ErrNoMoodData.
func (s *moodService) AverageMood(ctx context.Context, userID int64, days int) (float64, error) {
	since, until, err := s.window(userID, days)
	if err != nil {
		return 0, err
	}
	return s.moodRepository.AverageMood(ctx, userID, since, until)
}

func (s *moodService) EntryCount(ctx context.Context, userID int64, days int) (int, error) {
	since, until, err := s.window(userID, days)
	if err != nil {
		return 0, err
	}
	return s.moodRepository.CountMoodEntries(ctx, userID, since, until)
}

// MostCommonMood is the most frequent raw level over the trailing window;
// ties go to the lexicographically smallest level.
func (s *moodService) MostCommonMood(ctx context.Context, userID int64, days int) (string, error) {
	since, until, err := s.window(userID, days)
	if err != nil {
		return "", err
	}
	return s.moodRepository.MostCommonMood(ctx, userID, since, until)
}

func (s *moodService) window(userID int64, days int) (since, until time.Time, err error) {
	if err := validUserID(userID); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if days <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidWindow)
	}
	until = s.clock()
	return until.Add(-time.Duration(days) * 24 * time.Hour), until, nil
}

func validUserID(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return nil
}
