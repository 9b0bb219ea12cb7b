package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/store/internal/auth/domain"
	"github.com/allisson/store/internal/metrics"
	"github.com/allisson/store/internal/product/domain"
)

// productUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type productUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewProductUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewProductUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &productUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *productUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	switch {
	case err == nil:
	case authDomain.IsForbidden(err):
		status = "forbidden"
	default:
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "products", operation, status)
	p.metrics.RecordDuration(ctx, "products", operation, time.Since(start), status)
}

// List records metrics for product listing.
func (p *productUseCaseWithMetrics) List(
	ctx context.Context,
	title string,
	offset, limit int,
) ([]*domain.Product, error) {
	start := time.Now()
	products, err := p.next.List(ctx, title, offset, limit)
	p.record(ctx, "product_list", start, err)
	return products, err
}

// Get records metrics for product retrieval.
func (p *productUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Get(ctx, id)
	p.record(ctx, "product_get", start, err)
	return product, err
}

// Create records metrics for product creation.
func (p *productUseCaseWithMetrics) Create(
	ctx context.Context,
	identity authDomain.Identity,
	input domain.ProductInput,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Create(ctx, identity, input)
	p.record(ctx, "product_create", start, err)
	return product, err
}

// Update records metrics for product updates.
func (p *productUseCaseWithMetrics) Update(
	ctx context.Context,
	identity authDomain.Identity,
	id uuid.UUID,
	input domain.ProductInput,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Update(ctx, identity, id, input)
	p.record(ctx, "product_update", start, err)
	return product, err
}

// Delete records metrics for product deletion. Ownership rejections are counted as "forbidden".
func (p *productUseCaseWithMetrics) Delete(ctx context.Context, identity authDomain.Identity, id uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, identity, id)
	p.record(ctx, "product_delete", start, err)
	return err
}
