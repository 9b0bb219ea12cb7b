package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/store/internal/auth/usecase"
	apperrors "github.com/allisson/store/internal/errors"
	"github.com/allisson/store/internal/httputil"
)

// AuthenticationMiddleware resolves the caller identity from the Authorization header.
//
// The middleware:
// 1. Skips all work if an identity is already present in the request context
// 2. Delegates header parsing, token checks and principal lookup to the RequestAuthenticator
// 3. Stores the resulting identity (authenticated or anonymous) in the request context
// 4. Always continues the chain; rejecting anonymous callers is the job of RequireAuthentication
//
// Authorization header format: "Bearer <token>"
//
// Error handling:
//   - Missing, malformed, expired or forged token → anonymous identity, request continues
//   - Identity directory failure → 500 Internal Server Error (ErrLookupFailed)
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(requestAuthenticator, logger))
//	router.DELETE("/store/:id", RequireAuthentication(logger), handler)
func AuthenticationMiddleware(
	authenticator authUseCase.RequestAuthenticator,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if _, ok := GetIdentity(ctx); ok {
			c.Next()
			return
		}

		identity, err := authenticator.Authenticate(ctx, c.GetHeader("Authorization"))
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(ctx, identity))
		c.Next()
	}
}

// RequireAuthentication rejects anonymous callers with 401 Unauthorized.
// Must run after AuthenticationMiddleware.
func RequireAuthentication(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IdentityFrom(c.Request.Context()).IsAuthenticated() {
			logger.Debug("authentication required",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
			)
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
