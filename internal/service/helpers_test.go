package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/models"
)

// fakeClock is a settable Clock for tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock(ts string) *fakeClock {
	t, err := time.Parse(models.TimestampLayout, ts)
	if err != nil {
		panic(err)
	}
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AddDays(n int) { c.now = c.now.AddDate(0, 0, n) }

// newTestServices wires every service to a fresh SQLite file.
func newTestServices(t *testing.T, clock Clock) (*Services, *store.Storages) {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB: config.DB{
			Path:        filepath.Join(t.TempDir(), "wellness_test.db"),
			BusyTimeout: time.Second,
		},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := newServices(storages, config.App{
		PasswordHashAlgorithm: "sha256",
		CompletionWindowDays:  30,
	}, models.NewAppBuildInfo("test", "", ""), clock, logger.Nop())
	require.NoError(t, err)

	return services, storages
}

func registerTestUser(t *testing.T, s *Services, username string) models.User {
	t.Helper()
	u, err := s.UserService.Register(context.Background(), models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password-" + username,
	})
	require.NoError(t, err)
	return u
}
