package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mmerino90/wellness-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID    = "user_id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldEmail     = "email"
	FieldHabitID   = "habit_id"
	FieldHabitName = "habit_name"
	FieldFrequency = "frequency"

	// FieldOptionalFrequency accepts an empty frequency, which the
	// service later defaults to daily.
	FieldOptionalFrequency = "optional_frequency"

	FieldEntryID         = "entry_id"
	FieldMoodLevel       = "mood_level"
	FieldEnergyLevel     = "energy_level"
	FieldChallengeID     = "challenge_id"
	FieldChallengeName   = "challenge_name"
	FieldDifficulty      = "difficulty"
	FieldDuration        = "duration_days"
	FieldMaxParticipants = "max_participants"
	FieldStatus          = "status"
	FieldProgress        = "progress"
	FieldOldPassword     = "old_password"
	FieldNewPassword     = "new_password"
	FieldDates           = "dates"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
	maxEmailLength    = 254
)

// WellnessValidator implements [Validator] for the wellness domain models:
// RegisterRequest, User, PasswordChange, Habit, MoodEntry, Challenge,
// UserChallenge and DateRange. Both values and pointers are accepted.
type WellnessValidator struct{}

// NewWellnessValidator constructs a WellnessValidator.
func NewWellnessValidator() Validator {
	return &WellnessValidator{}
}

// Validate dispatches on the dynamic type of obj. When no fields are given
// the full rule set of that type is applied.
func (v *WellnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	case models.Habit:
		return v.validateHabit(value, fields...)
	case *models.Habit:
		return v.validateHabit(*value, fields...)

	case models.MoodEntry:
		return v.validateMoodEntry(value, fields...)
	case *models.MoodEntry:
		return v.validateMoodEntry(*value, fields...)

	case models.Challenge:
		return v.validateChallenge(value, fields...)
	case *models.Challenge:
		return v.validateChallenge(*value, fields...)

	case models.UserChallenge:
		return v.validateUserChallenge(value, fields...)
	case *models.UserChallenge:
		return v.validateUserChallenge(*value, fields...)

	case models.DateRange:
		return v.validateDateRange(value, fields...)
	case *models.DateRange:
		return v.validateDateRange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WellnessValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(req.Username); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if err := validatePasswordLength(req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WellnessValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUsername:
			if err := validateUsername(user.Username); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(user.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WellnessValidator) validatePasswordChange(change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if change.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldOldPassword:
			if change.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if err := validatePasswordLength(change.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WellnessValidator) validateHabit(habit models.Habit, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHabitID, FieldHabitName, FieldFrequency}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if habit.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldHabitID:
			if habit.HabitID <= 0 {
				return ErrInvalidHabitID
			}
		case FieldHabitName:
			if strings.TrimSpace(habit.HabitName) == "" {
				return ErrEmptyHabitName
			}
		case FieldFrequency:
			if !habit.Frequency.Valid() {
				return ErrInvalidFrequency
			}
		case FieldOptionalFrequency:
			if habit.Frequency != "" && !habit.Frequency.Valid() {
				return ErrInvalidFrequency
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WellnessValidator) validateMoodEntry(entry models.MoodEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldMoodLevel, FieldEnergyLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if entry.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEntryID:
			if entry.EntryID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldMoodLevel:
			if strings.TrimSpace(entry.MoodLevel) == "" {
				return ErrEmptyMoodLevel
			}
		case FieldEnergyLevel:
			// empty means "not reported"
			if entry.EnergyLevel != "" && !entry.EnergyLevel.Valid() {
				return ErrInvalidEnergyLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WellnessValidator) validateChallenge(c models.Challenge, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChallengeName, FieldDifficulty, FieldDuration, FieldMaxParticipants, FieldDates}
	}

	for _, f := range fields {
		switch f {
		case FieldChallengeID:
			if c.ChallengeID <= 0 {
				return ErrInvalidChallengeID
			}
		case FieldChallengeName:
			if strings.TrimSpace(c.ChallengeName) == "" {
				return ErrEmptyChallengeName
			}
		case FieldDifficulty:
			if c.Difficulty != "" && !c.Difficulty.Valid() {
				return ErrInvalidDifficulty
			}
		case FieldDuration:
			if c.DurationDays < 0 {
				return ErrInvalidDuration
			}
		case FieldMaxParticipants:
			if c.MaxParticipants < 0 {
				return ErrInvalidCapacity
			}
		case FieldDates:
			if err := validateOptionalRange(c.StartDate, c.EndDate); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WellnessValidator) validateUserChallenge(uc models.UserChallenge, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldChallengeID, FieldProgress, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if uc.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldChallengeID:
			if uc.ChallengeID <= 0 {
				return ErrInvalidChallengeID
			}
		case FieldProgress:
			if uc.Progress < 0 || uc.Progress > 100 {
				return ErrInvalidProgress
			}
		case FieldStatus:
			if !uc.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WellnessValidator) validateDateRange(r models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDates}
	}

	for _, f := range fields {
		switch f {
		case FieldDates:
			if !isDate(r.Start) || !isDate(r.End) {
				return ErrInvalidDate
			}
			if r.Start > r.End {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return ErrInvalidUsername
	}
	return nil
}

func validatePasswordLength(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}

	// a bare address only: "Name <a@b.c>" parses but is not an email field
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

func validateOptionalRange(start, end string) error {
	if start != "" && !isDate(start) || end != "" && !isDate(end) {
		return ErrInvalidDate
	}
	if start != "" && end != "" && start > end {
		return ErrInvalidDateRange
	}
	return nil
}

func isDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
