// Package mocks provides mock implementations of the auth use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/store/internal/auth/domain"
)

// MockIdentityDirectory is a mock implementation of IdentityDirectory for testing.
type MockIdentityDirectory struct {
	mock.Mock
}

// FindPrincipal mocks the FindPrincipal method of IdentityDirectory.
func (m *MockIdentityDirectory) FindPrincipal(ctx context.Context, username string) (*authDomain.Principal, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

// MockCredentialVerifier is a mock implementation of CredentialVerifier for testing.
type MockCredentialVerifier struct {
	mock.Mock
}

// Verify mocks the Verify method of CredentialVerifier.
func (m *MockCredentialVerifier) Verify(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

// MockAuthUseCase is a mock implementation of AuthUseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method of AuthUseCase.
func (m *MockAuthUseCase) Authenticate(
	ctx context.Context,
	input *authDomain.AuthenticateInput,
) (*authDomain.AuthenticateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthenticateOutput), args.Error(1)
}

// MockRequestAuthenticator is a mock implementation of RequestAuthenticator for testing.
type MockRequestAuthenticator struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method of RequestAuthenticator.
func (m *MockRequestAuthenticator) Authenticate(
	ctx context.Context,
	authorizationHeader string,
) (authDomain.Identity, error) {
	args := m.Called(ctx, authorizationHeader)
	return args.Get(0).(authDomain.Identity), args.Error(1)
}

// MockOwnershipAuthorizer is a mock implementation of OwnershipAuthorizer for testing.
type MockOwnershipAuthorizer struct {
	mock.Mock
}

// Authorize mocks the Authorize method of OwnershipAuthorizer.
func (m *MockOwnershipAuthorizer) Authorize(
	identity authDomain.Identity,
	resource authDomain.OwnedResource,
) error {
	args := m.Called(identity, resource)
	return args.Error(0)
}
