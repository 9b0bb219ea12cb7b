package usecase

import (
	"context"
	"time"

	"github.com/allisson/store/internal/metrics"
	"github.com/allisson/store/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for user registration.
func (u *userUseCaseWithMetrics) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "user_register", status)
	u.metrics.RecordDuration(ctx, "users", "user_register", time.Since(start), status)

	return user, err
}

// GetByUsername records metrics for user lookup.
func (u *userUseCaseWithMetrics) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByUsername(ctx, username)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", "user_get", status)
	u.metrics.RecordDuration(ctx, "users", "user_get", time.Since(start), status)

	return user, err
}
