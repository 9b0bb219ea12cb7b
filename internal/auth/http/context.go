// Package http provides HTTP middleware, handlers and utilities for authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/store/internal/auth/domain"
)

// identityKey is a context key type for storing the request identity.
type identityKey struct{}

// WithIdentity stores the request identity in the context.
// This is called once per request by AuthenticationMiddleware.
func WithIdentity(ctx context.Context, identity authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the request identity from the context.
// Returns (identity, true) if an identity was set, anonymous or not, or (Anonymous(), false) otherwise.
func GetIdentity(ctx context.Context) (authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(authDomain.Identity)
	if !ok {
		return authDomain.Anonymous(), false
	}
	return identity, true
}

// IdentityFrom returns the request identity, or an anonymous identity when none was set.
func IdentityFrom(ctx context.Context) authDomain.Identity {
	identity, _ := GetIdentity(ctx)
	return identity
}
