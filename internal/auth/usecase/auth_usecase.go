// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"fmt"

	authDomain "github.com/allisson/store/internal/auth/domain"
	authService "github.com/allisson/store/internal/auth/service"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	credentialValidator authService.CredentialValidator
	credentialVerifier  CredentialVerifier
	directory           IdentityDirectory
	tokenService        authService.TokenService
}

// Authenticate exchanges a username and password for a signed token.
//
// This method:
// 1. Rejects banned usernames before any credential work
// 2. Verifies the credentials through the CredentialVerifier
// 3. Resolves the principal from the IdentityDirectory
// 4. Re-checks the deny-list against the resolved principal name
// 5. Issues a token whose subject is the principal username
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown users and wrong passwords
//   - Returns ErrLookupFailed when the directory cannot be queried
//   - The principal is resolved again after verification so a pluggable verifier
//     never decides the token subject
func (a *authUseCase) Authenticate(
	ctx context.Context,
	input *authDomain.AuthenticateInput,
) (*authDomain.AuthenticateOutput, error) {
	if err := a.credentialValidator.Validate(input.Username); err != nil {
		return nil, err
	}

	if err := a.credentialVerifier.Verify(ctx, input.Username, input.Password); err != nil {
		return nil, err
	}

	principal, err := a.directory.FindPrincipal(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", authDomain.ErrLookupFailed, err)
	}

	// The directory may match names the caller did not type exactly (collation padding).
	if err := a.credentialValidator.Validate(principal.Username); err != nil {
		return nil, err
	}
	if principal.Username != input.Username {
		return nil, authDomain.ErrInvalidCredentials
	}

	issued, err := a.tokenService.Issue(principal.Username)
	if err != nil {
		return nil, err
	}

	return &authDomain.AuthenticateOutput{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	credentialValidator authService.CredentialValidator,
	credentialVerifier CredentialVerifier,
	directory IdentityDirectory,
	tokenService authService.TokenService,
) AuthUseCase {
	return &authUseCase{
		credentialValidator: credentialValidator,
		credentialVerifier:  credentialVerifier,
		directory:           directory,
		tokenService:        tokenService,
	}
}
