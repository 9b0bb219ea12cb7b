package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/store/internal/auth/domain"
	"github.com/allisson/store/internal/auth/http/dto"
	authUseCase "github.com/allisson/store/internal/auth/usecase"
	"github.com/allisson/store/internal/httputil"
	customValidation "github.com/allisson/store/internal/validation"
)

// InvalidCredentialsMessage is returned for both banned users and bad credentials.
const InvalidCredentialsMessage = "Invalid username or password"

// AuthHandler handles HTTP requests for token issuance.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// AuthenticateHandler exchanges a username and password for a signed token.
// POST /authenticate - No authentication required.
// Returns 200 OK with the raw token string as the body.
func (h *AuthHandler) AuthenticateHandler(c *gin.Context) {
	var req dto.AuthenticateRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Authenticate(c.Request.Context(), req.ToInput())
	if err != nil {
		if authDomain.IsBanned(err) || authDomain.IsInvalidCredentials(err) {
			h.logger.Info("authentication rejected",
				slog.String("username", req.Username),
				slog.Any("error", err),
			)
			c.JSON(http.StatusUnauthorized, httputil.ErrorResponse{
				Error: InvalidCredentialsMessage,
				Code:  "invalid_credentials",
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.String(http.StatusOK, output.Token)
}
