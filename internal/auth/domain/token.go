package domain

import (
	"time"
)

// IssuedToken is a freshly signed token with its validity window.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthenticateInput contains the credentials presented to obtain a token.
type AuthenticateInput struct {
	Username string
	Password string //nolint:gosec // plaintext only in transit, never stored
}

// AuthenticateOutput contains the issued token.
type AuthenticateOutput struct {
	Token     string
	ExpiresAt time.Time
}
