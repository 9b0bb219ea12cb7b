package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/store/internal/auth/domain"
	"github.com/allisson/store/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for token issuance. Rejections are split by reason.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	input *authDomain.AuthenticateInput,
) (*authDomain.AuthenticateOutput, error) {
	start := time.Now()
	output, err := a.next.Authenticate(ctx, input)

	status := "success"
	switch {
	case err == nil:
	case authDomain.IsBanned(err):
		status = "banned"
	case authDomain.IsInvalidCredentials(err):
		status = "invalid_credentials"
	default:
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return output, err
}
