// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/store/internal/auth/domain"
)

// IdentityDirectory resolves principals by username. It is implemented outside the auth
// module by whatever stores user accounts.
type IdentityDirectory interface {
	// FindPrincipal returns the principal for username.
	// Returns ErrPrincipalNotFound if no such principal exists; any other error is an
	// infrastructure failure.
	FindPrincipal(ctx context.Context, username string) (*authDomain.Principal, error)
}

// CredentialVerifier checks a username and password pair.
type CredentialVerifier interface {
	// Verify returns ErrInvalidCredentials for an unknown username or a wrong password,
	// and ErrLookupFailed if the directory could not be queried.
	Verify(ctx context.Context, username, password string) error
}

// AuthUseCase exchanges credentials for a signed identity token.
type AuthUseCase interface {
	// Authenticate checks the deny-list, verifies the credentials, resolves the principal
	// and issues a token for it. No session state is created.
	//
	// Returns ErrBanned, ErrInvalidCredentials or ErrLookupFailed.
	Authenticate(
		ctx context.Context,
		input *authDomain.AuthenticateInput,
	) (*authDomain.AuthenticateOutput, error)
}

// RequestAuthenticator turns the Authorization header of an inbound request into an identity.
type RequestAuthenticator interface {
	// Authenticate never fails because of the token: a missing, malformed, expired or forged
	// token and an unknown subject all yield an anonymous identity and a nil error.
	// Only an identity directory failure is returned, as ErrLookupFailed.
	Authenticate(ctx context.Context, authorizationHeader string) (authDomain.Identity, error)
}

// OwnershipAuthorizer decides whether an identity may act on an owned resource.
type OwnershipAuthorizer interface {
	// Authorize returns nil iff the identity is authenticated and owns the resource,
	// ErrForbidden otherwise.
	Authorize(identity authDomain.Identity, resource authDomain.OwnedResource) error
}
