// Package mocks provides mock implementations of the product use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/store/internal/auth/domain"
	"github.com/allisson/store/internal/product/domain"
)

// MockTxManager is a mock implementation of database.TxManager that runs fn inline.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method of TxManager.
// When the expectation returns nil, fn is executed with the given context.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockProductRepository is a mock implementation of ProductRepository for testing.
type MockProductRepository struct {
	mock.Mock
}

// Create mocks the Create method of ProductRepository.
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// Get mocks the Get method of ProductRepository.
func (m *MockProductRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// GetForUpdate mocks the GetForUpdate method of ProductRepository.
func (m *MockProductRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// List mocks the List method of ProductRepository.
func (m *MockProductRepository) List(
	ctx context.Context,
	title string,
	offset, limit int,
) ([]*domain.Product, error) {
	args := m.Called(ctx, title, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

// Update mocks the Update method of ProductRepository.
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// Delete mocks the Delete method of ProductRepository.
func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUseCase is a mock implementation of the product UseCase for testing.
type MockUseCase struct {
	mock.Mock
}

// List mocks the List method of UseCase.
func (m *MockUseCase) List(ctx context.Context, title string, offset, limit int) ([]*domain.Product, error) {
	args := m.Called(ctx, title, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

// Get mocks the Get method of UseCase.
func (m *MockUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// Create mocks the Create method of UseCase.
func (m *MockUseCase) Create(
	ctx context.Context,
	identity authDomain.Identity,
	input domain.ProductInput,
) (*domain.Product, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// Update mocks the Update method of UseCase.
func (m *MockUseCase) Update(
	ctx context.Context,
	identity authDomain.Identity,
	id uuid.UUID,
	input domain.ProductInput,
) (*domain.Product, error) {
	args := m.Called(ctx, identity, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// Delete mocks the Delete method of UseCase.
func (m *MockUseCase) Delete(ctx context.Context, identity authDomain.Identity, id uuid.UUID) error {
	args := m.Called(ctx, identity, id)
	return args.Error(0)
}
