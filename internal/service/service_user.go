package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmerino90/wellness-tracker/internal/crypto"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/internal/validators"
	"github.com/mmerino90/wellness-tracker/models"
)

// userService is the concrete implementation of UserService.
// Passwords only ever reach the repository as digests produced by hasher.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService backed by userRepository.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// Authenticate looks the user up by username and verifies the password.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty; the store
//     is not touched.
//   - ErrInvalidCredentials if the user does not exist or the password
//     does not match.
//   - a wrapped storage error for any other lookup failure.
func (s *userService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("empty credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("username", username).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Register validates req, hashes the password and creates the account.
// The returned user is the row as stored.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Str("algorithm", s.hasher.Algorithm()).Msg("user registered")
	return user, nil
}

// UpdateProfile rewrites names and e-mail of the user.
func (s *userService) UpdateProfile(ctx context.Context, user models.User) error {
	if err := s.validator.Validate(ctx, user, validators.FieldUserID, validators.FieldEmail); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.userRepository.UpdateProfile(ctx, user); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}
	return nil
}

// ChangePassword re-verifies oldPassword and stores a freshly salted hash of
// newPassword.
func (s *userService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	change := models.PasswordChange{UserID: userID, OldPassword: oldPassword, NewPassword: newPassword}
	if err := s.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		log.Info().Int64("user_id", userID).Msg("wrong current password on password change")
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	if err := s.userRepository.UpdatePasswordHash(ctx, userID, hash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return s.userRepository.FindUserByID(ctx, userID)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	return s.userRepository.FindUserByUsername(ctx, username)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	return s.userRepository.FindUserByEmail(ctx, email)
}

// Delete removes the user together with all owned records.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}
	return nil
}
