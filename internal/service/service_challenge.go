package service

import (
	"context"
	"fmt"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/internal/validators"
	"github.com/mmerino90/wellness-tracker/models"
)

type challengeService struct {
	challengeRepository store.ChallengeRepository
	validator           validators.Validator
	clock               Clock

	logger *logger.Logger
}

// NewChallengeService constructs a ChallengeService backed by challengeRepository.
func NewChallengeService(challengeRepository store.ChallengeRepository, validator validators.Validator, clock Clock, logger *logger.Logger) ChallengeService {
	return &challengeService{
		challengeRepository: challengeRepository,
		validator:           validator,
		clock:               clock,
		logger:              logger,
	}
}

func (s *challengeService) Create(ctx context.Context, challenge models.Challenge) (models.Challenge, error) {
	if err := s.validator.Validate(ctx, challenge); err != nil {
		return models.Challenge{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	challenge.CreatedAt = s.clock()
	id, err := s.challengeRepository.CreateChallenge(ctx, challenge)
	if err != nil {
		return models.Challenge{}, fmt.Errorf("challenge creation failed: %w", err)
	}
	return s.challengeRepository.GetChallenge(ctx, id)
}

func (s *challengeService) Get(ctx context.Context, challengeID int64) (models.Challenge, error) {
	if err := s.validator.Validate(ctx, models.Challenge{ChallengeID: challengeID}, validators.FieldChallengeID); err != nil {
		return models.Challenge{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.challengeRepository.GetChallenge(ctx, challengeID)
}

func (s *challengeService) List(ctx context.Context, filter store.ChallengeFilter) ([]models.Challenge, error) {
	if err := s.validator.Validate(ctx, models.Challenge{Difficulty: filter.Difficulty}, validators.FieldDifficulty); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.challengeRepository.ListChallenges(ctx, filter)
}

// Join enrolls the user as active with zero progress.
func (s *challengeService) Join(ctx context.Context, userID, challengeID int64) (models.UserChallenge, error) {
	enrollment := models.UserChallenge{UserID: userID, ChallengeID: challengeID}
	if err := s.validator.Validate(ctx, enrollment, validators.FieldUserID, validators.FieldChallengeID); err != nil {
		return models.UserChallenge{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	joined, err := s.challengeRepository.Enroll(ctx, userID, challengeID)
	if err != nil {
		return models.UserChallenge{}, fmt.Errorf("enrollment failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int64("challenge_id", challengeID).Msg("user joined challenge")
	return joined, nil
}

func (s *challengeService) ListEnrollments(ctx context.Context, userID int64) ([]models.UserChallenge, error) {
	if err := validUserID(userID); err != nil {
		return nil, err
	}
	return s.challengeRepository.ListUserChallenges(ctx, userID)
}

// UpdateProgress stores progress (0..100) and status of an enrollment.
func (s *challengeService) UpdateProgress(ctx context.Context, userID, challengeID int64, progress int, status models.ChallengeStatus) error {
	enrollment := models.UserChallenge{UserID: userID, ChallengeID: challengeID, Progress: progress, Status: status}
	if err := s.validator.Validate(ctx, enrollment); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.challengeRepository.UpdateProgress(ctx, userID, challengeID, progress, status)
}
