package usecase

import (
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/store/internal/auth/domain"
)

// mockTokenService is a mock implementation of TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(subject string) (*authDomain.IssuedToken, error) {
	args := m.Called(subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}

func (m *mockTokenService) Validate(token string, expectedSubject string) bool {
	args := m.Called(token, expectedSubject)
	return args.Bool(0)
}

func (m *mockTokenService) ExtractSubject(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// mockPasswordService is a mock implementation of PasswordService for testing.
type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

// mockCredentialValidator is a mock implementation of CredentialValidator for testing.
type mockCredentialValidator struct {
	mock.Mock
}

func (m *mockCredentialValidator) Validate(username string) error {
	args := m.Called(username)
	return args.Error(0)
}
