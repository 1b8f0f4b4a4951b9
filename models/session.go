package models

import "time"

// Session binds an opaque token to a user. Only the hash of Token is stored;
// the raw value exists in memory between login and the Set-Cookie header.
type Session struct {
	Token     string
	TokenHash string
	UserID    int64
	CreatedAt time.Time
}

// AuthContext is the resolved identity of a request. It is attached to the
// request context by the auth middleware and passed explicitly to services.
type AuthContext struct {
	UserID  int64
	Email   string
	IsStaff bool

	// Token is the raw session token the identity was resolved from.
	Token string
}

// IsAuthenticated reports whether the context carries a resolved user.
func (a AuthContext) IsAuthenticated() bool {
	return a.UserID != 0
}
