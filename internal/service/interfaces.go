package service

import (
	"context"

	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/models"
)

// UserService manages accounts and credentials.
type UserService interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	GetByID(ctx context.Context, userID int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Delete(ctx context.Context, userID int64) error
}

// HabitService manages habits, their streaks and completion statistics.
// "Today" is taken from the service clock in UTC.
type HabitService interface {
	Create(ctx context.Context, habit models.Habit) (models.Habit, error)
	ListActive(ctx context.Context, userID int64) ([]models.Habit, error)
	ListAll(ctx context.Context, userID int64) ([]models.Habit, error)
	Get(ctx context.Context, habitID int64) (models.Habit, error)
	Update(ctx context.Context, habit models.Habit) error
	SoftDelete(ctx context.Context, habitID int64) error
	HardDelete(ctx context.Context, habitID int64) error

	// IncrementStreak completes the habit for today. It reports false when
	// today was already completed.
	IncrementStreak(ctx context.Context, habitID int64) (bool, error)
	ResetStreak(ctx context.Context, habitID int64) error

	// Completions lists the completion records of the last days calendar
	// days, today included.
	Completions(ctx context.Context, habitID int64, days int) ([]models.HabitCompletion, error)

	// CompletionRate is the percentage of the last days calendar days,
	// today included, on which the habit was completed.
	CompletionRate(ctx context.Context, habitID int64, days int) (float64, error)

	// FrequencyAwareCompletionRate judges completions against the number
	// of periods of the habit's frequency that fit in the window.
	FrequencyAwareCompletionRate(ctx context.Context, habitID int64, days int) (float64, error)
}

// MoodService manages mood entries and trailing-window mood statistics.
// A window of days covers [now - days*24h, now].
type MoodService interface {
	Create(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error)
	ListAll(ctx context.Context, userID int64) ([]models.MoodEntry, error)
	ListByDateRange(ctx context.Context, userID int64, startDay, endDay string) ([]models.MoodEntry, error)
	Get(ctx context.Context, entryID int64) (models.MoodEntry, error)
	Update(ctx context.Context, entry models.MoodEntry) error
	Delete(ctx context.Context, entryID int64) error
	AverageMood(ctx context.Context, userID int64, days int) (float64, error)
	EntryCount(ctx context.Context, userID int64, days int) (int, error)
	MostCommonMood(ctx context.Context, userID int64, days int) (string, error)
}

// AnalyticsService assembles the dashboard of a user.
type AnalyticsService interface {
	Dashboard(ctx context.Context, userID int64) (models.Dashboard, error)
}

// ChallengeService manages the challenge catalog and enrollments.
type ChallengeService interface {
	Create(ctx context.Context, challenge models.Challenge) (models.Challenge, error)
	Get(ctx context.Context, challengeID int64) (models.Challenge, error)
	List(ctx context.Context, filter store.ChallengeFilter) ([]models.Challenge, error)
	Join(ctx context.Context, userID, challengeID int64) (models.UserChallenge, error)
	ListEnrollments(ctx context.Context, userID int64) ([]models.UserChallenge, error)
	UpdateProgress(ctx context.Context, userID, challengeID int64, progress int, status models.ChallengeStatus) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
