package usecase

import (
	"context"
	"fmt"

	authDomain "github.com/allisson/store/internal/auth/domain"
	authService "github.com/allisson/store/internal/auth/service"
	apperrors "github.com/allisson/store/internal/errors"
)

// directoryCredentialVerifier implements CredentialVerifier against the IdentityDirectory.
type directoryCredentialVerifier struct {
	directory       IdentityDirectory
	passwordService authService.PasswordService
}

// Verify resolves the principal and compares the password with its credential hash.
// Unknown users and wrong passwords share ErrInvalidCredentials to prevent enumeration.
func (d *directoryCredentialVerifier) Verify(ctx context.Context, username, password string) error {
	principal, err := d.directory.FindPrincipal(ctx, username)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrPrincipalNotFound) {
			return authDomain.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %w", authDomain.ErrLookupFailed, err)
	}

	if !d.passwordService.ComparePassword(password, principal.CredentialHash) {
		return authDomain.ErrInvalidCredentials
	}

	return nil
}

// NewCredentialVerifier creates a CredentialVerifier backed by the identity directory.
func NewCredentialVerifier(
	directory IdentityDirectory,
	passwordService authService.PasswordService,
) CredentialVerifier {
	return &directoryCredentialVerifier{
		directory:       directory,
		passwordService: passwordService,
	}
}
