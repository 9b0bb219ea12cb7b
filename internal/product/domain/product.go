// Package domain defines the store product entity and its errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/store/internal/errors"
)

// Product is a store item published by a single owner.
type Product struct {
	ID          uuid.UUID
	Title       string
	Description string
	CoverImage  string
	Price       float64
	Quantity    int64
	Owner       string // Username of the publishing user, set at creation and never changed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerUsername returns the username that owns the product.
func (p *Product) OwnerUsername() string {
	return p.Owner
}

// ProductInput carries the mutable product fields for create and update.
type ProductInput struct {
	Title       string
	Description string
	CoverImage  string
	Price       float64
	Quantity    int64
}

var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")
)
