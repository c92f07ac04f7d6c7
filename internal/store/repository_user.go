package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, lookup and maintenance against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, operation-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database gateway and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with store-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The username and e-mail lookups, the INSERT and the read-back run in one
// transaction, so two registrations cannot both pass the uniqueness checks.
//
// Error handling:
//   - username in use → [ErrUsernameTaken].
//   - e-mail in use → [ErrEmailTaken].
//   - UNIQUE constraint hit anyway → [ErrConflict] joined with the sentinel
//     of the violated column.
//   - anything else → wrapped gateway error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.WithinTx(ctx, func(ctx context.Context, tx *DB) error {
		var taken bool
		if err := tx.QueryOne(ctx, &taken, usernameExists, user.Username); err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}

		if err := tx.QueryOne(ctx, &taken, emailExists, user.Email); err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		now := timestamp(user.CreatedAt)
		id, err := tx.Insert(ctx, createUser,
			user.Username,
			user.Email,
			user.PasswordHash,
			nullable(user.FirstName),
			nullable(user.LastName),
			now,
			now,
		)
		if err != nil {
			return userConflict(err)
		}

		return tx.QueryOne(ctx, &created, findUserByID, id)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

// userConflict maps a UNIQUE violation on insert to the sentinel of the
// column named in the driver message. Other errors pass through.
func userConflict(err error) error {
	if !errors.Is(err, ErrConflict) {
		return err
	}
	if strings.Contains(err.Error(), "users.email") {
		return errors.Join(ErrEmailTaken, err)
	}
	return errors.Join(ErrUsernameTaken, err)
}

// FindUserByID retrieves a user by primary key. No match → [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByUsername retrieves a user by username. No match → [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmail retrieves a user by e-mail. No match → [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, key any) (models.User, error) {
	var user models.User
	if err := r.db.QueryOne(ctx, &user, query, key); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, errors.Join(ErrUserNotFound, err)
		}
		logger.FromContext(ctx).Err(err).Str("func", funcName).Any("key", key).Msg("error finding user")
		return models.User{}, err
	}
	return user, nil
}

// UpdateProfile rewrites names and e-mail and bumps updated_at.
// The e-mail must not belong to another account ([ErrEmailTaken]); an
// unknown id yields [ErrUserNotFound].
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	err := r.db.WithinTx(ctx, func(ctx context.Context, tx *DB) error {
		var taken bool
		if err := tx.QueryOne(ctx, &taken, emailUsedByOther, user.Email, user.UserID); err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		affected, err := tx.Execute(ctx, updateUserProfile,
			nullable(user.FirstName),
			nullable(user.LastName),
			user.Email,
			timestamp(user.UpdatedAt),
			user.UserID,
		)
		if err != nil {
			if errors.Is(err, ErrConflict) {
				return errors.Join(ErrEmailTaken, err)
			}
			return err
		}
		if affected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Int64("user_id", user.UserID).Msg("error updating profile")
		return err
	}

	return nil
}

// UpdatePasswordHash replaces the stored credential digest.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	affected, err := r.db.Execute(ctx, updateUserPassword, passwordHash, nowStamp(), userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdatePasswordHash").Int64("user_id", userID).Msg("error updating password")
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user_id=%d", ErrUserNotFound, userID)
	}
	return nil
}

// DeleteUser removes the account; habits, completions, mood entries and
// enrollments go with it through ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	affected, err := r.db.Execute(ctx, deleteUser, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user_id=%d", ErrUserNotFound, userID)
	}
	return nil
}
