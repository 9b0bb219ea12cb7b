package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/store/internal/auth/domain"
	authService "github.com/allisson/store/internal/auth/service"
	apperrors "github.com/allisson/store/internal/errors"
)

// requestAuthenticator implements RequestAuthenticator.
type requestAuthenticator struct {
	tokenService authService.TokenService
	directory    IdentityDirectory
	logger       *slog.Logger
}

// Authenticate resolves the identity carried by an Authorization header value.
//
// The header must be exactly "Bearer <token>". The subject is extracted from the token,
// the principal is looked up and the token is validated against it. Any token problem
// yields an anonymous identity; only directory failures are returned.
func (r *requestAuthenticator) Authenticate(
	ctx context.Context,
	authorizationHeader string,
) (authDomain.Identity, error) {
	token, ok := strings.CutPrefix(authorizationHeader, authDomain.BearerPrefix)
	if !ok || token == "" {
		return authDomain.Anonymous(), nil
	}

	subject, err := r.tokenService.ExtractSubject(token)
	if err != nil {
		r.logger.Debug("token rejected",
			slog.String("subject", subject),
			slog.Any("error", err),
		)
		return authDomain.Anonymous(), nil
	}

	principal, err := r.directory.FindPrincipal(ctx, subject)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrPrincipalNotFound) {
			r.logger.Debug("token subject not found", slog.String("subject", subject))
			return authDomain.Anonymous(), nil
		}
		return authDomain.Anonymous(), fmt.Errorf("%w: %w", authDomain.ErrLookupFailed, err)
	}

	if !r.tokenService.Validate(token, principal.Username) {
		r.logger.Debug("token does not match principal", slog.String("subject", subject))
		return authDomain.Anonymous(), nil
	}

	return authDomain.Authenticated(*principal), nil
}

// NewRequestAuthenticator creates a new RequestAuthenticator.
func NewRequestAuthenticator(
	tokenService authService.TokenService,
	directory IdentityDirectory,
	logger *slog.Logger,
) RequestAuthenticator {
	return &requestAuthenticator{
		tokenService: tokenService,
		directory:    directory,
		logger:       logger,
	}
}
