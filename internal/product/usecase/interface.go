// Package usecase implements the store product business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/store/internal/auth/domain"
	"github.com/allisson/store/internal/product/domain"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, title string, offset, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UseCase defines the store product operations.
// Reads are public; every mutation takes the caller identity.
type UseCase interface {
	// List returns products ordered by creation, filtered by a title substring when title is not empty.
	List(ctx context.Context, title string, offset, limit int) ([]*domain.Product, error)

	// Get returns a single product or ErrProductNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// Create stores a new product owned by the caller.
	Create(ctx context.Context, identity authDomain.Identity, input domain.ProductInput) (*domain.Product, error)

	// Update replaces the mutable fields of a product. The owner never changes.
	Update(
		ctx context.Context,
		identity authDomain.Identity,
		id uuid.UUID,
		input domain.ProductInput,
	) (*domain.Product, error)

	// Delete removes a product. Only its owner may delete it.
	Delete(ctx context.Context, identity authDomain.Identity, id uuid.UUID) error
}
