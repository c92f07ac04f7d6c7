package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/models"
)

// habitRepository is the SQLite-backed implementation of [HabitRepository]
// over the "habits" and "habit_tracking" tables.
type habitRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHabitRepository constructs a [HabitRepository] backed by db.
func NewHabitRepository(db *DB, logger *logger.Logger) HabitRepository {
	logger.Debug().Msg("creating habit repository")
	return &habitRepository{
		db:     db,
		logger: logger,
	}
}

// CreateHabit inserts an active habit with a zero streak and returns its id.
// An unknown owner is reported as [ErrUserNotFound].
func (r *habitRepository) CreateHabit(ctx context.Context, habit models.Habit) (int64, error) {
	now := timestamp(habit.CreatedAt)
	id, err := r.db.Insert(ctx, createHabit,
		habit.UserID,
		habit.HabitName,
		nullable(habit.Description),
		nullable(habit.Category),
		string(habit.Frequency),
		now,
		now,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*habitRepository.CreateHabit").
			Int64("user_id", habit.UserID).
			Msg("error creating habit")
		if errors.Is(err, ErrConstraint) {
			return 0, errors.Join(ErrUserNotFound, err)
		}
		return 0, err
	}

	return id, nil
}

func (r *habitRepository) GetHabit(ctx context.Context, habitID int64) (models.Habit, error) {
	query, args, err := builder.Select(habitColumns...).
		From("habits").
		Where(sq.Eq{"habit_id": habitID}).
		ToSql()
	if err != nil {
		return models.Habit{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var habit models.Habit
	if err := r.db.QueryOne(ctx, &habit, query, args...); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Habit{}, errors.Join(ErrHabitNotFound, err)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*habitRepository.GetHabit").
			Int64("habit_id", habitID).
			Msg("error getting habit")
		return models.Habit{}, err
	}

	return habit, nil
}

// ListHabits returns the user's habits, newest first. With activeOnly set,
// soft-deleted habits are left out.
func (r *habitRepository) ListHabits(ctx context.Context, userID int64, activeOnly bool) ([]models.Habit, error) {
	qb := builder.Select(habitColumns...).
		From("habits").
		Where(sq.Eq{"user_id": userID})
	if activeOnly {
		qb = qb.Where(sq.Eq{"is_active": true})
	}

	query, args, err := qb.OrderBy("created_at DESC", "habit_id DESC").ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	habits := make([]models.Habit, 0)
	if err := r.db.Query(ctx, &habits, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*habitRepository.ListHabits").
			Int64("user_id", userID).
			Bool("active_only", activeOnly).
			Msg("error listing habits")
		return nil, err
	}

	return habits, nil
}

// UpdateHabit rewrites name, description, category and frequency. The
// streak and the active flag are not touched.
func (r *habitRepository) UpdateHabit(ctx context.Context, habit models.Habit) error {
	affected, err := r.db.Execute(ctx, updateHabit,
		habit.HabitName,
		nullable(habit.Description),
		nullable(habit.Category),
		string(habit.Frequency),
		timestamp(habit.UpdatedAt),
		habit.HabitID,
	)
	return r.checkAffected(ctx, "*habitRepository.UpdateHabit", habit.HabitID, affected, err)
}

// SoftDeleteHabit marks the habit inactive and keeps its row and history.
func (r *habitRepository) SoftDeleteHabit(ctx context.Context, habitID int64) error {
	affected, err := r.db.Execute(ctx, softDeleteHabit, nowStamp(), habitID)
	return r.checkAffected(ctx, "*habitRepository.SoftDeleteHabit", habitID, affected, err)
}

// HardDeleteHabit removes the habit and, by cascade, its completions.
func (r *habitRepository) HardDeleteHabit(ctx context.Context, habitID int64) error {
	affected, err := r.db.Execute(ctx, hardDeleteHabit, habitID)
	return r.checkAffected(ctx, "*habitRepository.HardDeleteHabit", habitID, affected, err)
}

// IncrementStreak records the completion of day and increments the streak
// in a single transaction.
//
//   - day already completed → (false, nil), nothing written.
//   - unknown habit → [ErrHabitNotFound], nothing written.
//   - otherwise → (true, nil).
func (r *habitRepository) IncrementStreak(ctx context.Context, habitID int64, day string) (bool, error) {
	log := logger.FromContext(ctx)

	incremented := false
	err := r.db.WithinTx(ctx, func(ctx context.Context, tx *DB) error {
		var done bool
		if err := tx.QueryOne(ctx, &done, completionExists, habitID, day); err != nil {
			return err
		}
		if done {
			return nil
		}

		if _, err := tx.Insert(ctx, createCompletion, habitID, day, nowStamp()); err != nil {
			switch {
			case errors.Is(err, ErrConflict):
				// completed concurrently
				return nil
			case errors.Is(err, ErrConstraint):
				return errors.Join(ErrHabitNotFound, err)
			}
			return err
		}

		affected, err := tx.Execute(ctx, incrementStreak, nowStamp(), habitID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: habit_id=%d", ErrHabitNotFound, habitID)
		}

		incremented = true
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*habitRepository.IncrementStreak").
			Int64("habit_id", habitID).
			Str("day", day).
			Msg("error incrementing streak")
		return false, err
	}

	if !incremented {
		log.Debug().Int64("habit_id", habitID).Str("day", day).Msg("habit already completed for the day")
	}
	return incremented, nil
}

// ResetStreak sets the streak to zero. Completion history is kept.
func (r *habitRepository) ResetStreak(ctx context.Context, habitID int64) error {
	affected, err := r.db.Execute(ctx, resetStreak, nowStamp(), habitID)
	return r.checkAffected(ctx, "*habitRepository.ResetStreak", habitID, affected, err)
}

// CountCompletions counts completions with fromDay <= date <= toDay.
func (r *habitRepository) CountCompletions(ctx context.Context, habitID int64, fromDay, toDay string) (int, error) {
	var count int
	if err := r.db.QueryOne(ctx, &count, countCompletions, habitID, fromDay, toDay); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*habitRepository.CountCompletions").
			Int64("habit_id", habitID).
			Msg("error counting completions")
		return 0, err
	}
	return count, nil
}

// ListCompletions returns completions ordered by date. Empty bounds leave
// that side of the range open.
func (r *habitRepository) ListCompletions(ctx context.Context, habitID int64, fromDay, toDay string) ([]models.HabitCompletion, error) {
	qb := builder.Select(completionColumns...).
		From("habit_tracking").
		Where(sq.Eq{"habit_id": habitID})
	if fromDay != "" {
		qb = qb.Where(sq.GtOrEq{"completion_date": fromDay})
	}
	if toDay != "" {
		qb = qb.Where(sq.LtOrEq{"completion_date": toDay})
	}

	query, args, err := qb.OrderBy("completion_date ASC").ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	completions := make([]models.HabitCompletion, 0)
	if err := r.db.Query(ctx, &completions, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*habitRepository.ListCompletions").
			Int64("habit_id", habitID).
			Msg("error listing completions")
		return nil, err
	}
	return completions, nil
}

func (r *habitRepository) checkAffected(ctx context.Context, funcName string, habitID, affected int64, err error) error {
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("habit_id", habitID).Msg("error writing habit")
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: habit_id=%d", ErrHabitNotFound, habitID)
	}
	return nil
}
