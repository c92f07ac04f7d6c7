package models

import "time"

// User represents a registered account of the wellness tracker.
// It owns habits, mood entries and challenge enrollments; deleting a user
// cascades to all of them at the store level.
type User struct {
	// UserID is the store-generated identifier of the user.
	UserID int64 `db:"user_id" json:"user_id"`

	// Username is the unique login name (3 to 50 characters).
	Username string `db:"username" json:"username"`

	// Email is the unique e-mail address of the user.
	Email string `db:"email" json:"email"`

	// PasswordHash is the salted password digest produced by the credential
	// service. It is never the plaintext password and is never serialized.
	PasswordHash string `db:"password_hash" json:"-"`

	// FirstName is the optional given name.
	FirstName string `db:"first_name" json:"first_name,omitempty"`

	// LastName is the optional family name.
	LastName string `db:"last_name" json:"last_name,omitempty"`

	// CreatedAt is the registration instant (UTC).
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// UpdatedAt is bumped on every profile or password change (UTC).
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// RegisterRequest carries the input of a new account registration.
// Password is plaintext and only lives until it is hashed.
type RegisterRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// PasswordChange carries the input of a password change. Both passwords
// are plaintext.
type PasswordChange struct {
	UserID      int64
	OldPassword string
	NewPassword string
}
