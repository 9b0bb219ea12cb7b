package domain

import (
	"github.com/allisson/store/internal/errors"
)

// Token errors returned by the token service.
var (
	// ErrTokenMalformed indicates the token could not be parsed or lacks required claims.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrTokenExpired indicates the token signature is valid but the expiry has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalidSignature indicates the token signature does not verify against the secret.
	ErrTokenInvalidSignature = errors.Wrap(errors.ErrUnauthorized, "invalid token signature")
)

// Authentication and authorization errors.
var (
	// ErrBanned indicates the username is on the deny-list.
	ErrBanned = errors.Wrap(errors.ErrUnauthorized, "user is banned")

	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// Both cases share this error to prevent user enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrLookupFailed indicates the identity directory could not be queried.
	// It wraps no sentinel so it surfaces as an internal error.
	ErrLookupFailed = errors.New("identity lookup failed")

	// ErrForbidden indicates the caller is not allowed to act on the resource.
	ErrForbidden = errors.Wrap(errors.ErrForbidden, "not the resource owner")

	// ErrPrincipalNotFound indicates the identity directory has no principal for the username.
	ErrPrincipalNotFound = errors.Wrap(errors.ErrNotFound, "principal not found")
)

// IsBanned reports whether err is ErrBanned.
func IsBanned(err error) bool {
	return errors.Is(err, ErrBanned)
}

// IsInvalidCredentials reports whether err is ErrInvalidCredentials.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsForbidden reports whether err is ErrForbidden.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
