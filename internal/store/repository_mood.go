package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/models"
)

// moodRepository is the SQLite-backed implementation of [MoodRepository].
type moodRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMoodRepository constructs a [MoodRepository] backed by db.
func NewMoodRepository(db *DB, logger *logger.Logger) MoodRepository {
	logger.Debug().Msg("creating mood repository")
	return &moodRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMoodEntry inserts the entry and returns its id. A zero Timestamp
// is stamped with the current time; an empty energy level is stored as NULL.
func (r *moodRepository) CreateMoodEntry(ctx context.Context, entry models.MoodEntry) (int64, error) {
	id, err := r.db.Insert(ctx, createMoodEntry,
		entry.UserID,
		entry.MoodLevel,
		nullable(entry.EmotionalContext),
		nullable(entry.Notes),
		nullable(entry.Activities),
		nullable(string(entry.EnergyLevel)),
		timestamp(entry.Timestamp),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*moodRepository.CreateMoodEntry").
			Int64("user_id", entry.UserID).
			Msg("error creating mood entry")
		return 0, err
	}
	return id, nil
}

func (r *moodRepository) GetMoodEntry(ctx context.Context, entryID int64) (models.MoodEntry, error) {
	query, args, err := builder.Select(moodColumns...).
		From("mood_entries").
		Where(sq.Eq{"entry_id": entryID}).
		ToSql()
	if err != nil {
		return models.MoodEntry{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var entry models.MoodEntry
	if err := r.db.QueryOne(ctx, &entry, query, args...); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.MoodEntry{}, errors.Join(ErrMoodEntryNotFound, err)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*moodRepository.GetMoodEntry").
			Int64("entry_id", entryID).
			Msg("error getting mood entry")
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// ListMoodEntries returns every entry of the user, newest first.
func (r *moodRepository) ListMoodEntries(ctx context.Context, userID int64) ([]models.MoodEntry, error) {
	return r.list(ctx, "*moodRepository.ListMoodEntries", sq.Eq{"user_id": userID})
}

// ListMoodEntriesByDateRange returns the user's entries whose calendar date
// lies in [startDay, endDay], newest first.
func (r *moodRepository) ListMoodEntriesByDateRange(ctx context.Context, userID int64, startDay, endDay string) ([]models.MoodEntry, error) {
	return r.list(ctx, "*moodRepository.ListMoodEntriesByDateRange", sq.And{
		sq.Eq{"user_id": userID},
		sq.GtOrEq{"DATE(timestamp)": startDay},
		sq.LtOrEq{"DATE(timestamp)": endDay},
	})
}

func (r *moodRepository) list(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.MoodEntry, error) {
	query, args, err := builder.Select(moodColumns...).
		From("mood_entries").
		Where(where).
		OrderBy("timestamp DESC", "entry_id DESC").
		ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	entries := make([]models.MoodEntry, 0)
	if err := r.db.Query(ctx, &entries, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error listing mood entries")
		return nil, err
	}
	return entries, nil
}

// UpdateMoodEntry rewrites the descriptive fields; the timestamp and the
// owner never change.
func (r *moodRepository) UpdateMoodEntry(ctx context.Context, entry models.MoodEntry) error {
	affected, err := r.db.Execute(ctx, updateMoodEntry,
		entry.MoodLevel,
		nullable(entry.EmotionalContext),
		nullable(entry.Notes),
		nullable(entry.Activities),
		nullable(string(entry.EnergyLevel)),
		entry.EntryID,
	)
	return r.checkAffected(ctx, "*moodRepository.UpdateMoodEntry", entry.EntryID, affected, err)
}

func (r *moodRepository) DeleteMoodEntry(ctx context.Context, entryID int64) error {
	affected, err := r.db.Execute(ctx, deleteMoodEntry, entryID)
	return r.checkAffected(ctx, "*moodRepository.DeleteMoodEntry", entryID, affected, err)
}

// AverageMood is the mean of CAST(mood_level AS REAL) over [since, until].
// An empty window yields [ErrNoMoodData].
func (r *moodRepository) AverageMood(ctx context.Context, userID int64, since, until time.Time) (float64, error) {
	var avg sql.NullFloat64
	if err := r.db.QueryOne(ctx, &avg, averageMood, userID, timestamp(since), timestamp(until)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*moodRepository.AverageMood").
			Int64("user_id", userID).
			Msg("error computing average mood")
		return 0, err
	}
	if !avg.Valid {
		return 0, ErrNoMoodData
	}
	return avg.Float64, nil
}

func (r *moodRepository) CountMoodEntries(ctx context.Context, userID int64, since, until time.Time) (int, error) {
	var count int
	if err := r.db.QueryOne(ctx, &count, countMoodEntries, userID, timestamp(since), timestamp(until)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*moodRepository.CountMoodEntries").
			Int64("user_id", userID).
			Msg("error counting mood entries")
		return 0, err
	}
	return count, nil
}

// MostCommonMood returns the most frequent raw mood level over
// [since, until]; ties go to the lexicographically smallest level.
// An empty window yields [ErrNoMoodData].
func (r *moodRepository) MostCommonMood(ctx context.Context, userID int64, since, until time.Time) (string, error) {
	var level string
	if err := r.db.QueryOne(ctx, &level, mostCommonMood, userID, timestamp(since), timestamp(until)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNoMoodData
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*moodRepository.MostCommonMood").
			Int64("user_id", userID).
			Msg("error computing most common mood")
		return "", err
	}
	return level, nil
}

func (r *moodRepository) checkAffected(ctx context.Context, funcName string, entryID, affected int64, err error) error {
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("entry_id", entryID).Msg("error writing mood entry")
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: entry_id=%d", ErrMoodEntryNotFound, entryID)
	}
	return nil
}
