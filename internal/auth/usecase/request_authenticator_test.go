package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/store/internal/auth/domain"
	authService "github.com/allisson/store/internal/auth/service"
	usecaseMocks "github.com/allisson/store/internal/auth/usecase/mocks"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()
	principal := &authDomain.Principal{
		Username:    "alice",
		Authorities: []authDomain.Authority{authDomain.UserAuthority},
	}

	t.Run("Success_ValidBearerToken", func(t *testing.T) {
		mockTokenService := &mockTokenService{}
		mockDirectory := &usecaseMocks.MockIdentityDirectory{}

		mockTokenService.On("ExtractSubject", "tok").Return("alice", nil).Once()
		mockDirectory.On("FindPrincipal", ctx, "alice").Return(principal, nil).Once()
		mockTokenService.On("Validate", "tok", "alice").Return(true).Once()

		authenticator := NewRequestAuthenticator(mockTokenService, mockDirectory, newDiscardLogger())
		identity, err := authenticator.Authenticate(ctx, "Bearer tok")

		require.NoError(t, err)
		assert.True(t, identity.IsAuthenticated())
		assert.Equal(t, "alice", identity.Username())
		mockTokenService.AssertExpectations(t)
		mockDirectory.AssertExpectations(t)
	})

	t.Run("Success_AnonymousWithoutUsableHeader", func(t *testing.T) {
		headers := []string{"", "Bearer ", "Basic YWxpY2U6cHcx", "bearer tok", "Bearertok", "tok"}

		for _, header := range headers {
			mockTokenService := &mockTokenService{}
			mockDirectory := &usecaseMocks.MockIdentityDirectory{}

			authenticator := NewRequestAuthenticator(mockTokenService, mockDirectory, newDiscardLogger())
			identity, err := authenticator.Authenticate(ctx, header)

			require.NoError(t, err, header)
			assert.False(t, identity.IsAuthenticated(), header)
			mockTokenService.AssertNotCalled(t, "ExtractSubject", mock.Anything)
		}
	})

	t.Run("Success_AnonymousOnTokenErrors", func(t *testing.T) {
		tokenErrors := []error{
			authDomain.ErrTokenMalformed,
			authDomain.ErrTokenExpired,
			authDomain.ErrTokenInvalidSignature,
		}

		for _, tokenErr := range tokenErrors {
			mockTokenService := &mockTokenService{}
			mockDirectory := &usecaseMocks.MockIdentityDirectory{}

			mockTokenService.On("ExtractSubject", "tok").Return("alice", tokenErr).Once()

			authenticator := NewRequestAuthenticator(mockTokenService, mockDirectory, newDiscardLogger())
			identity, err := authenticator.Authenticate(ctx, "Bearer tok")

			require.NoError(t, err)
			assert.False(t, identity.IsAuthenticated())
			mockDirectory.AssertNotCalled(t, "FindPrincipal", mock.Anything, mock.Anything)
		}
	})

	t.Run("Success_AnonymousWhenPrincipalNotFound", func(t *testing.T) {
		mockTokenService := &mockTokenService{}
		mockDirectory := &usecaseMocks.MockIdentityDirectory{}

		mockTokenService.On("ExtractSubject", "tok").Return("ghost", nil).Once()
		mockDirectory.On("FindPrincipal", ctx, "ghost").Return(nil, authDomain.ErrPrincipalNotFound).Once()

		authenticator := NewRequestAuthenticator(mockTokenService, mockDirectory, newDiscardLogger())
		identity, err := authenticator.Authenticate(ctx, "Bearer tok")

		require.NoError(t, err)
		assert.False(t, identity.IsAuthenticated())
	})

	t.Run("Success_AnonymousWhenValidationFails", func(t *testing.T) {
		mockTokenService := &mockTokenService{}
		mockDirectory := &usecaseMocks.MockIdentityDirectory{}

		mockTokenService.On("ExtractSubject", "tok").Return("alice", nil).Once()
		mockDirectory.On("FindPrincipal", ctx, "alice").Return(principal, nil).Once()
		mockTokenService.On("Validate", "tok", "alice").Return(false).Once()

		authenticator := NewRequestAuthenticator(mockTokenService, mockDirectory, newDiscardLogger())
		identity, err := authenticator.Authenticate(ctx, "Bearer tok")

		require.NoError(t, err)
		assert.False(t, identity.IsAuthenticated())
	})

	t.Run("Error_LookupFailed", func(t *testing.T) {
		mockTokenService := &mockTokenService{}
		mockDirectory := &usecaseMocks.MockIdentityDirectory{}

		dbErr := errors.New("connection refused")
		mockTokenService.On("ExtractSubject", "tok").Return("alice", nil).Once()
		mockDirectory.On("FindPrincipal", ctx, "alice").Return(nil, dbErr).Once()

		authenticator := NewRequestAuthenticator(mockTokenService, mockDirectory, newDiscardLogger())
		identity, err := authenticator.Authenticate(ctx, "Bearer tok")

		assert.ErrorIs(t, err, authDomain.ErrLookupFailed)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, identity.IsAuthenticated())
	})
}

func TestRequestAuthenticator_WithTokenService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	tokenService, err := authService.NewTokenService(
		[]byte("0123456789abcdef0123456789abcdef"),
		time.Hour,
		authService.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)

	mockDirectory := &usecaseMocks.MockIdentityDirectory{}
	mockDirectory.On("FindPrincipal", ctx, "alice").
		Return(&authDomain.Principal{Username: "alice"}, nil)
	mockDirectory.On("FindPrincipal", ctx, "bob").
		Return(&authDomain.Principal{Username: "bob"}, nil)

	authenticator := NewRequestAuthenticator(tokenService, mockDirectory, newDiscardLogger())

	aliceToken, err := tokenService.Issue("alice")
	require.NoError(t, err)

	t.Run("Success_IssuedTokenAuthenticates", func(t *testing.T) {
		identity, err := authenticator.Authenticate(ctx, "Bearer "+aliceToken.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username())
	})

	t.Run("Success_TruncatedTokenIsAnonymous", func(t *testing.T) {
		truncated := aliceToken.Token[:len(aliceToken.Token)-5]
		identity, err := authenticator.Authenticate(ctx, "Bearer "+truncated)
		require.NoError(t, err)
		assert.False(t, identity.IsAuthenticated())
	})

	t.Run("Success_ExpiredTokenIsAnonymous", func(t *testing.T) {
		now = now.Add(2 * time.Hour)
		defer func() { now = now.Add(-2 * time.Hour) }()

		identity, err := authenticator.Authenticate(ctx, "Bearer "+aliceToken.Token)
		require.NoError(t, err)
		assert.False(t, identity.IsAuthenticated())
	})
}
