package store

import (
	"context"
	"time"

	"github.com/mmerino90/wellness-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts. Uniqueness of username and e-mail is
// checked inside the same transaction as the insert.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) error
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// HabitRepository persists habits and their completion records.
// Days are UTC calendar dates in [models.DateLayout].
type HabitRepository interface {
	CreateHabit(ctx context.Context, habit models.Habit) (int64, error)
	GetHabit(ctx context.Context, habitID int64) (models.Habit, error)
	ListHabits(ctx context.Context, userID int64, activeOnly bool) ([]models.Habit, error)
	UpdateHabit(ctx context.Context, habit models.Habit) error
	SoftDeleteHabit(ctx context.Context, habitID int64) error
	HardDeleteHabit(ctx context.Context, habitID int64) error

	// IncrementStreak records a completion for day and bumps the streak.
	// It returns false without error when day is already completed.
	IncrementStreak(ctx context.Context, habitID int64, day string) (bool, error)
	ResetStreak(ctx context.Context, habitID int64) error
	CountCompletions(ctx context.Context, habitID int64, fromDay, toDay string) (int, error)
	ListCompletions(ctx context.Context, habitID int64, fromDay, toDay string) ([]models.HabitCompletion, error)
}

// MoodRepository persists mood entries and computes windowed aggregates
// over [since, until].
type MoodRepository interface {
	CreateMoodEntry(ctx context.Context, entry models.MoodEntry) (int64, error)
	GetMoodEntry(ctx context.Context, entryID int64) (models.MoodEntry, error)
	ListMoodEntries(ctx context.Context, userID int64) ([]models.MoodEntry, error)
	ListMoodEntriesByDateRange(ctx context.Context, userID int64, startDay, endDay string) ([]models.MoodEntry, error)
	UpdateMoodEntry(ctx context.Context, entry models.MoodEntry) error
	DeleteMoodEntry(ctx context.Context, entryID int64) error
	AverageMood(ctx context.Context, userID int64, since, until time.Time) (float64, error)
	CountMoodEntries(ctx context.Context, userID int64, since, until time.Time) (int, error)
	MostCommonMood(ctx context.Context, userID int64, since, until time.Time) (string, error)
}

// ChallengeFilter narrows [ChallengeRepository.ListChallenges]. Zero fields
// do not filter.
type ChallengeFilter struct {
	Difficulty models.Difficulty
	Category   string
}

// ChallengeRepository persists the challenge catalog and enrollments.
type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, challenge models.Challenge) (int64, error)
	GetChallenge(ctx context.Context, challengeID int64) (models.Challenge, error)
	ListChallenges(ctx context.Context, filter ChallengeFilter) ([]models.Challenge, error)
	Enroll(ctx context.Context, userID, challengeID int64) (models.UserChallenge, error)
	ListUserChallenges(ctx context.Context, userID int64) ([]models.UserChallenge, error)
	UpdateProgress(ctx context.Context, userID, challengeID int64, progress int, status models.ChallengeStatus) error
}
