package cli

import (
	"errors"

	"github.com/mmerino90/wellness-tracker/internal/app"
	"github.com/mmerino90/wellness-tracker/internal/service"
	"github.com/mmerino90/wellness-tracker/internal/store"
)

var (
	// ErrNoCredentials is returned by commands that need an account when
	// the username or the password is missing.
	ErrNoCredentials = errors.New("no credentials provided")

	// ErrAccessDenied is returned when a habit or mood entry belongs to
	// another account.
	ErrAccessDenied = errors.New("access denied")

	// ErrDeleteNotConfirmed is returned by profile delete without --yes.
	ErrDeleteNotConfirmed = errors.New("account deletion is not confirmed")
)

// errorMessages maps error kinds to the text printed for them. Order
// matters: the first match wins, specific kinds come before generic ones.
var errorMessages = []struct {
	err error
	msg string
}{
	{ErrNoCredentials, app.MsgNoCredentials},
	{ErrAccessDenied, app.MsgAccessDenied},
	{ErrDeleteNotConfirmed, app.MsgDeleteNotConfirmed},
	{service.ErrInvalidCredentials, app.MsgInvalidLoginPassword},
	{store.ErrUsernameTaken, app.MsgUsernameTaken},
	{store.ErrEmailTaken, app.MsgEmailTaken},
	{store.ErrUserNotFound, app.MsgUserNotFound},
	{store.ErrHabitNotFound, app.MsgHabitNotFound},
	{store.ErrMoodEntryNotFound, app.MsgMoodEntryNotFound},
	{store.ErrNoMoodData, app.MsgNoMoodData},
	{store.ErrChallengeFull, app.MsgChallengeFull},
	{store.ErrAlreadyEnrolled, app.MsgAlreadyEnrolled},
	{store.ErrChallengeNotFound, app.MsgChallengeNotFound},
	{store.ErrAccessFailure, app.MsgStorageUnavailable},
	{store.ErrDBClosed, app.MsgStorageUnavailable},
}

// Message returns the short text shown to the user for err.
//
// Validation failures keep their detail since it tells the user which
// field to fix. Unknown errors collapse into [app.MsgInternalError].
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return err.Error()
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	if errors.Is(err, store.ErrConstraint) || errors.Is(err, store.ErrConflict) {
		return app.MsgInvalidDataProvided
	}
	return app.MsgInternalError
}
