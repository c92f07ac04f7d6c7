package store

import (
	"context"
	"fmt"

	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/logger"
)

// Storages groups the database gateway and every repository built on it
// into a single value that is passed to the service layer. It is created
// once at process start and closed once at shutdown.
type Storages struct {
	DB *DB

	UserRepository      UserRepository
	HabitRepository     HabitRepository
	MoodRepository      MoodRepository
	ChallengeRepository ChallengeRepository
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the SQLite file at cfg.DB.Path, creating its directory if it
//     does not yet exist.
//  2. Applies the embedded schema migrations.
//  3. Wires every repository to the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		HabitRepository:     NewHabitRepository(db, log),
		MoodRepository:      NewMoodRepository(db, log),
		ChallengeRepository: NewChallengeRepository(db, log),
	}
}

// Close releases the database handle. Safe to call more than once.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
