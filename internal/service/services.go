package service

import (
	"fmt"
	"time"

	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/crypto"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/internal/validators"
	"github.com/mmerino90/wellness-tracker/models"
)

// Clock returns the current instant. Services read "now" and "today"
// through it only.
type Clock func() time.Time

// Services bundles every service of the application.
type Services struct {
	UserService      UserService
	HabitService     HabitService
	MoodService      MoodService
	AnalyticsService AnalyticsService
	ChallengeService ChallengeService
	AppInfoService   AppInfoService
}

// NewServices wires all services to the repositories of storages. It fails
// when the configured password hash algorithm is unknown.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	return newServices(storages, cfg, buildInfo, time.Now, logger)
}

func newServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, clock Clock, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.PasswordHashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	validator := validators.NewWellnessValidator()
	window := cfg.CompletionWindowDays
	if window <= 0 {
		window = config.DefaultCompletionWindowDays
	}

	return &Services{
		UserService:      NewUserService(storages.UserRepository, hasher, validator, logger),
		HabitService:     NewHabitService(storages.HabitRepository, validator, clock, logger),
		MoodService:      NewMoodService(storages.MoodRepository, validator, clock, logger),
		AnalyticsService: NewAnalyticsService(storages.MoodRepository, storages.HabitRepository, window, clock, logger),
		ChallengeService: NewChallengeService(storages.ChallengeRepository, validator, clock, logger),
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}, nil
}
