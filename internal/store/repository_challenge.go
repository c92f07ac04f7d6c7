package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/models"
)

// ErrChallengeFull is returned by Enroll when the challenge already has
// max_participants active or completed enrollments.
var ErrChallengeFull = errors.New("challenge has no free places")

type challengeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChallengeRepository constructs a [ChallengeRepository] backed by db.
func NewChallengeRepository(db *DB, logger *logger.Logger) ChallengeRepository {
	logger.Debug().Msg("creating challenge repository")
	return &challengeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *challengeRepository) CreateChallenge(ctx context.Context, c models.Challenge) (int64, error) {
	id, err := r.db.Insert(ctx, createChallenge,
		c.ChallengeName,
		nullable(c.Description),
		nullable(string(c.Difficulty)),
		c.DurationDays,
		nullable(c.Category),
		nullable(c.Reward),
		c.MaxParticipants,
		timestamp(c.CreatedAt),
		nullable(c.StartDate),
		nullable(c.EndDate),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*challengeRepository.CreateChallenge").
			Str("name", c.ChallengeName).
			Msg("error creating challenge")
		return 0, err
	}
	return id, nil
}

func (r *challengeRepository) GetChallenge(ctx context.Context, challengeID int64) (models.Challenge, error) {
	query, args, err := builder.Select(challengeColumns...).
		From("challenges").
		Where(sq.Eq{"challenge_id": challengeID}).
		ToSql()
	if err != nil {
		return models.Challenge{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var c models.Challenge
	if err := r.db.QueryOne(ctx, &c, query, args...); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Challenge{}, errors.Join(ErrChallengeNotFound, err)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*challengeRepository.GetChallenge").
			Int64("challenge_id", challengeID).
			Msg("error getting challenge")
		return models.Challenge{}, err
	}
	return c, nil
}

// ListChallenges returns the catalog ordered by name, narrowed by filter.
func (r *challengeRepository) ListChallenges(ctx context.Context, filter ChallengeFilter) ([]models.Challenge, error) {
	qb := builder.Select(challengeColumns...).From("challenges")
	if filter.Difficulty != "" {
		qb = qb.Where(sq.Eq{"difficulty": string(filter.Difficulty)})
	}
	if filter.Category != "" {
		qb = qb.Where(sq.Eq{"category": filter.Category})
	}

	query, args, err := qb.OrderBy("challenge_name ASC", "challenge_id ASC").ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	challenges := make([]models.Challenge, 0)
	if err := r.db.Query(ctx, &challenges, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*challengeRepository.ListChallenges").Msg("error listing challenges")
		return nil, err
	}
	return challenges, nil
}

// Enroll starts an active enrollment of the user in the challenge.
//
// Error handling:
//   - unknown challenge → [ErrChallengeNotFound].
//   - enrolled before → [ErrAlreadyEnrolled], even when the challenge is full.
//   - no free places → [ErrChallengeFull].
//   - unknown user → [ErrUserNotFound].
func (r *challengeRepository) Enroll(ctx context.Context, userID, challengeID int64) (models.UserChallenge, error) {
	log := logger.FromContext(ctx)

	var enrollment models.UserChallenge
	err := r.db.WithinTx(ctx, func(ctx context.Context, tx *DB) error {
		var maxParticipants int
		err := tx.QueryOne(ctx, &maxParticipants, challengeCapacity, challengeID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errors.Join(ErrChallengeNotFound, err)
			}
			return err
		}

		var enrolled bool
		if err := tx.QueryOne(ctx, &enrolled, enrollmentExists, userID, challengeID); err != nil {
			return err
		}
		if enrolled {
			return ErrAlreadyEnrolled
		}

		if maxParticipants > 0 {
			var participants int
			if err := tx.QueryOne(ctx, &participants, countParticipants, challengeID); err != nil {
				return err
			}
			if participants >= maxParticipants {
				return ErrChallengeFull
			}
		}

		if _, err := tx.Insert(ctx, enrollUser, userID, challengeID, nowStamp()); err != nil {
			switch {
			case errors.Is(err, ErrConflict):
				return errors.Join(ErrAlreadyEnrolled, err)
			case errors.Is(err, ErrConstraint):
				return errors.Join(ErrUserNotFound, err)
			}
			return err
		}

		query, args, err := selectUserChallenges().
			Where(sq.Eq{"uc.user_id": userID, "uc.challenge_id": challengeID}).
			ToSql()
		if err != nil {
			return errors.Join(ErrBuildingSQLQuery, err)
		}
		return tx.QueryOne(ctx, &enrollment, query, args...)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*challengeRepository.Enroll").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Msg("error enrolling user")
		return models.UserChallenge{}, err
	}

	return enrollment, nil
}

// ListUserChallenges returns the user's enrollments, most recent first.
func (r *challengeRepository) ListUserChallenges(ctx context.Context, userID int64) ([]models.UserChallenge, error) {
	query, args, err := selectUserChallenges().
		Where(sq.Eq{"uc.user_id": userID}).
		OrderBy("uc.started_at DESC", "uc.user_challenge_id DESC").
		ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	enrollments := make([]models.UserChallenge, 0)
	if err := r.db.Query(ctx, &enrollments, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*challengeRepository.ListUserChallenges").
			Int64("user_id", userID).
			Msg("error listing enrollments")
		return nil, err
	}
	return enrollments, nil
}

// UpdateProgress stores progress and status. completed_at is set when the
// status becomes completed and cleared otherwise.
func (r *challengeRepository) UpdateProgress(ctx context.Context, userID, challengeID int64, progress int, status models.ChallengeStatus) error {
	var completedAt any
	if status == models.ChallengeCompleted {
		completedAt = nowStamp()
	}

	affected, err := r.db.Execute(ctx, updateChallengeProgress, progress, string(status), completedAt, userID, challengeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*challengeRepository.UpdateProgress").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Msg("error updating progress")
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user_id=%d challenge_id=%d", ErrChallengeNotFound, userID, challengeID)
	}
	return nil
}
