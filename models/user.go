package models

import "time"

// User represents a registered account of the catalog.
// Email is the login identity; PasswordHash never leaves the server.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FirstName and LastName are display attributes validated against the
	// name pattern on registration and update.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the unique login identifier, stored lowercased.
	Email string `json:"email"`

	// Password carries the plain-text password on the way in
	// (registration, update, login). It is never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted in the database.
	PasswordHash string `json:"-"`

	// IsStaff marks catalog administrators.
	IsStaff bool `json:"is_staff"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// UserUpdate is a partial update of the authenticated user's profile.
// Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
