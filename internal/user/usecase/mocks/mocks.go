// Package mocks provides mock implementations of the user use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/store/internal/user/domain"
	"github.com/allisson/store/internal/user/usecase"
)

// MockUseCase is a mock implementation of usecase.UseCase for testing.
type MockUseCase struct {
	mock.Mock
}

// Register mocks the Register method of UseCase.
func (m *MockUseCase) Register(ctx context.Context, input usecase.RegisterUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetByUsername mocks the GetByUsername method of UseCase.
func (m *MockUseCase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockUserRepository is a mock implementation of usecase.UserRepository for testing.
type MockUserRepository struct {
	mock.Mock
}

// Create mocks the Create method of UserRepository.
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByUsername mocks the GetByUsername method of UserRepository.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
