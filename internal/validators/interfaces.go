// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the store.
//
// A [Validator] receives a model value (a registration request, a habit, a
// mood entry, a challenge, an enrollment or a date range) and an optional
// list of field names. Without field names the full rule set of the type is
// applied; with them only the named rules run, which lets services validate
// partial updates such as a profile change or a password change.
//
// Validation stops at the first failing rule. Failures are sentinels from
// errors.go, so callers branch with errors.Is.
package validators

import "context"

// Validator validates model values, optionally restricted to named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
