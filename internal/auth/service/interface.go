// Package service provides technical services for authentication operations.
//
// This package implements the signed identity token codec, password hashing, the username
// deny-list and KMS-backed secret decryption used to bootstrap the token signing secret.
package service

import (
	"context"

	authDomain "github.com/allisson/store/internal/auth/domain"
)

// TokenService defines operations for signed, self-contained identity tokens.
// Tokens are never persisted; validity is derived from the signature and the embedded expiry.
type TokenService interface {
	// Issue signs a token for subject, valid from now until now plus the configured TTL.
	Issue(subject string) (*authDomain.IssuedToken, error)

	// Validate reports whether the token has a valid signature, is unexpired and was
	// issued for expectedSubject. It never returns an error; any failure yields false.
	Validate(token string, expectedSubject string) bool

	// ExtractSubject verifies the signature and returns the subject without enforcing expiry.
	// Expired tokens return the subject together with ErrTokenExpired so callers can log it,
	// but callers must treat any non-nil error as a failed extraction.
	ExtractSubject(token string) (string, error)
}

// PasswordService defines operations for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using Argon2id.
	HashPassword(plainPassword string) (string, error)

	// ComparePassword compares a plain text password against a stored hash.
	// Argon2id (PHC format) and legacy bcrypt hashes are both accepted.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// CredentialValidator runs pre-authentication checks on a username.
type CredentialValidator interface {
	// Validate returns ErrBanned when the username is denied.
	Validate(username string) error
}

// KeeperService encrypts and decrypts small secrets with a gocloud.dev/secrets keeper.
type KeeperService interface {
	// Encrypt encrypts plaintext with the keeper at keyURI and returns base64 ciphertext.
	Encrypt(ctx context.Context, keyURI string, plaintext []byte) (string, error)

	// Decrypt decrypts base64 ciphertext with the keeper at keyURI.
	Decrypt(ctx context.Context, keyURI string, ciphertext string) ([]byte, error)
}
