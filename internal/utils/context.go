// Package utils provides general-purpose helpers shared by the catalog
// packages: typed context keys, JSON request/response helpers, keyed
// hashing, session token generation, trace ids, and the HTTP client wrapper.
package utils

import (
	"context"

	"github.com/MKhiriev/go-film-catalog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AuthCtxKey is the key under which the auth middleware stores the
// resolved [models.AuthContext] of a request.
var AuthCtxKey = contextKey("auth")

// WithAuthContext returns a copy of ctx carrying auth.
func WithAuthContext(ctx context.Context, auth models.AuthContext) context.Context {
	return context.WithValue(ctx, AuthCtxKey, auth)
}

// GetAuthContext retrieves the identity stored by [WithAuthContext].
//
// ok is false when no identity was stored or the stored identity is
// anonymous.
func GetAuthContext(ctx context.Context) (models.AuthContext, bool) {
	auth, ok := ctx.Value(AuthCtxKey).(models.AuthContext)
	if !ok || !auth.IsAuthenticated() {
		return models.AuthContext{}, false
	}
	return auth, true
}
