// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// wellness tracker front end.
//
// All Msg* constants are human-readable message strings printed to the user
// or written into log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is printed when user input fails validation
	// (e.g. an empty habit name or an unknown energy level).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is printed when the supplied username/password
	// combination does not match any existing account.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgNoCredentials is printed when a command needs an account but no
	// username or password was given.
	MsgNoCredentials = "username and password are required (--username/--password or WELLNESS_USERNAME/WELLNESS_PASSWORD)"

	// MsgDeleteNotConfirmed is printed when an account deletion is requested
	// without the confirmation flag.
	MsgDeleteNotConfirmed = "account deletion must be confirmed with --yes"

	// MsgInternalError is printed for unexpected failures the user cannot
	// resolve. Details go to the log file.
	MsgInternalError = "internal error, see the log for details"

	// MsgStorageUnavailable is printed when the database cannot be reached
	// or stays locked after the retries are exhausted.
	MsgStorageUnavailable = "storage is unavailable, try again"

	// MsgAccessDenied is printed when the authenticated user touches a
	// habit or mood entry owned by another account.
	MsgAccessDenied = "access denied"

	// MsgUsernameTaken is printed when registration is rejected because the
	// requested username is already in use.
	MsgUsernameTaken = "username already exists"

	// MsgEmailTaken is printed when an e-mail address is already in use by
	// another account.
	MsgEmailTaken = "email already exists"

	// MsgUserNotFound is printed when the account no longer exists.
	MsgUserNotFound = "user not found"

	// MsgHabitNotFound is printed when no habit matches the given id.
	MsgHabitNotFound = "habit not found"

	// MsgHabitAlreadyDone is printed when a habit is marked done twice on the
	// same day. It is informational, not an error.
	MsgHabitAlreadyDone = "habit is already completed today"

	// MsgMoodEntryNotFound is printed when no mood entry matches the given id.
	MsgMoodEntryNotFound = "mood entry not found"

	// MsgNoMoodData is printed by statistics over a window without entries.
	MsgNoMoodData = "no mood entries in the requested window"

	// MsgChallengeNotFound is printed when a challenge or an enrollment does
	// not exist.
	MsgChallengeNotFound = "challenge not found"

	// MsgAlreadyEnrolled is printed when a user joins a challenge twice.
	MsgAlreadyEnrolled = "already enrolled in this challenge"

	// MsgChallengeFull is printed when a challenge has no free places.
	MsgChallengeFull = "challenge is full"
)
