package store

import "errors"

// Error kinds attached to every failure that leaves the [DB] gateway.
// Callers should use [errors.Is] to match against these values; the
// underlying driver error stays reachable through the same chain.
var (
	// ErrNotFound is returned when a query expected to match a row produces
	// an empty result set.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a UNIQUE or PRIMARY KEY
	// constraint.
	ErrConflict = errors.New("record conflicts with an existing one")

	// ErrConstraint is returned when a write violates a CHECK, FOREIGN KEY
	// or NOT NULL constraint.
	ErrConstraint = errors.New("constraint violation")

	// ErrAccessFailure is returned for any other failure to reach or use the
	// database (I/O error, closed handle, exhausted retries, cancelled
	// context, ...).
	ErrAccessFailure = errors.New("database access failure")
)

// Domain errors returned by repository methods.
var (
	// ErrUsernameTaken is returned on registration when the username is
	// already used by another account.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned on registration or profile update when the
	// e-mail address is already used by another account.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("no user was found")

	// ErrHabitNotFound is returned when no habit matches the given id.
	ErrHabitNotFound = errors.New("habit was not found")

	// ErrMoodEntryNotFound is returned when no mood entry matches the given id.
	ErrMoodEntryNotFound = errors.New("mood entry was not found")

	// ErrNoMoodData is returned by mood aggregates over an empty window.
	ErrNoMoodData = errors.New("no mood data in the requested window")

	// ErrChallengeNotFound is returned when no challenge or enrollment
	// matches the given ids.
	ErrChallengeNotFound = errors.New("challenge was not found")

	// ErrAlreadyEnrolled is returned when a user joins the same challenge twice.
	ErrAlreadyEnrolled = errors.New("user is already enrolled in the challenge")
)

// Gateway lifecycle errors.
var (
	// ErrDBClosed is returned when an operation runs on a closed handle.
	ErrDBClosed = errors.New("database is closed")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrBuildingSQLQuery is returned when a squirrel builder cannot render
	// its query.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
