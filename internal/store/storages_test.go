package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func testStorageConfig(t *testing.T) config.Storage {
	t.Helper()
	return config.Storage{DB: config.DB{
		Path:        filepath.Join(t.TempDir(), "data", "wellness.db"),
		BusyTimeout: time.Second,
		MaxRetries:  2,
	}}
}

func newTestStorages(t *testing.T) *Storages {
	t.Helper()
	s, err := NewStorages(context.Background(), testStorageConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createTestUser(t *testing.T, s *Storages, username string) models.User {
	t.Helper()
	u, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash-" + username,
	})
	require.NoError(t, err)
	return u
}

func createTestHabit(t *testing.T, s *Storages, userID int64, name string) int64 {
	t.Helper()
	id, err := s.HabitRepository.CreateHabit(context.Background(), models.Habit{
		UserID:    userID,
		HabitName: name,
		Frequency: models.FrequencyDaily,
	})
	require.NoError(t, err)
	return id
}

// ── NewStorages ───────────────────────────────────────────────────────────────

func TestNewStorages_WiresRepositories(t *testing.T) {
	s := newTestStorages(t)

	assert.NotNil(t, s.DB)
	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.HabitRepository)
	assert.NotNil(t, s.MoodRepository)
	assert.NotNil(t, s.ChallengeRepository)
}

func TestNewStorages_CreatesDirectory(t *testing.T) {
	cfg := testStorageConfig(t)

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, cfg.DB.Path)
}

func TestStorages_CloseTwice(t *testing.T) {
	s := newTestStorages(t)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())

	var nilStorages *Storages
	assert.NoError(t, nilStorages.Close())
}

// TestStorages_ReopenKeepsData verifies that data written through one
// process lifetime is visible after closing and opening the file again.
func TestStorages_ReopenKeepsData(t *testing.T) {
	cfg := testStorageConfig(t)
	ctx := context.Background()

	first, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	created := createTestUser(t, first, "persisted")
	require.NoError(t, first.Close())

	second, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	found, err := second.UserRepository.FindUserByUsername(ctx, "persisted")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
}
