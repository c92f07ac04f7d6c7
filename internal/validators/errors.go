package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidUsername    = errors.New("username must be between 3 and 50 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email address format")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidHabitID     = errors.New("invalid habit ID")
	ErrEmptyHabitName     = errors.New("habit name is required")
	ErrInvalidFrequency   = errors.New("frequency must be daily, weekly or monthly")
	ErrInvalidEntryID     = errors.New("invalid mood entry ID")
	ErrEmptyMoodLevel     = errors.New("mood level is required")
	ErrInvalidEnergyLevel = errors.New("energy level must be low, medium or high")
	ErrInvalidChallengeID = errors.New("invalid challenge ID")
	ErrEmptyChallengeName = errors.New("challenge name is required")
	ErrInvalidDifficulty  = errors.New("difficulty must be easy, medium or hard")
	ErrInvalidDuration    = errors.New("duration must not be negative")
	ErrInvalidCapacity    = errors.New("max participants must not be negative")
	ErrInvalidStatus      = errors.New("status must be active, completed or abandoned")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)
