package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/store/internal/auth/domain"
	usecaseMocks "github.com/allisson/store/internal/auth/usecase/mocks"
	"github.com/allisson/store/internal/httputil"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// identityEcho writes the identity observed by the handler.
func identityEcho(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"set":           ok,
		"authenticated": identity.IsAuthenticated(),
		"username":      identity.Username(),
	})
}

type identityEchoResponse struct {
	Set           bool   `json:"set"`
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

func decodeIdentityEcho(t *testing.T, w *httptest.ResponseRecorder) identityEchoResponse {
	t.Helper()
	var resp identityEchoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthenticationMiddleware(t *testing.T) {
	alice := authDomain.Authenticated(authDomain.Principal{Username: "alice"})

	t.Run("Success_AuthenticatedIdentityStored", func(t *testing.T) {
		mockAuthenticator := &usecaseMocks.MockRequestAuthenticator{}
		mockAuthenticator.On("Authenticate", mock.Anything, "Bearer tok").Return(alice, nil).Once()

		router := gin.New()
		router.Use(AuthenticationMiddleware(mockAuthenticator, newTestLogger()))
		router.GET("/store", identityEcho)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/store", nil)
		req.Header.Set("Authorization", "Bearer tok")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeIdentityEcho(t, w)
		assert.True(t, resp.Set)
		assert.True(t, resp.Authenticated)
		assert.Equal(t, "alice", resp.Username)
		mockAuthenticator.AssertExpectations(t)
	})

	t.Run("Success_AnonymousContinuesChain", func(t *testing.T) {
		mockAuthenticator := &usecaseMocks.MockRequestAuthenticator{}
		mockAuthenticator.On("Authenticate", mock.Anything, "").Return(authDomain.Anonymous(), nil).Once()

		router := gin.New()
		router.Use(AuthenticationMiddleware(mockAuthenticator, newTestLogger()))
		router.GET("/store", identityEcho)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/store", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeIdentityEcho(t, w)
		assert.True(t, resp.Set)
		assert.False(t, resp.Authenticated)
	})

	t.Run("Success_RunsOncePerRequest", func(t *testing.T) {
		mockAuthenticator := &usecaseMocks.MockRequestAuthenticator{}
		mockAuthenticator.On("Authenticate", mock.Anything, "Bearer tok").Return(alice, nil).Once()

		middleware := AuthenticationMiddleware(mockAuthenticator, newTestLogger())
		router := gin.New()
		router.Use(middleware, middleware)
		router.GET("/store", identityEcho)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/store", nil)
		req.Header.Set("Authorization", "Bearer tok")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", decodeIdentityEcho(t, w).Username)
		mockAuthenticator.AssertNumberOfCalls(t, "Authenticate", 1)
	})

	t.Run("Success_ExistingIdentityIsKept", func(t *testing.T) {
		mockAuthenticator := &usecaseMocks.MockRequestAuthenticator{}

		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), alice))
			c.Next()
		})
		router.Use(AuthenticationMiddleware(mockAuthenticator, newTestLogger()))
		router.GET("/store", identityEcho)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/store", nil)
		req.Header.Set("Authorization", "Bearer someone-else")
		router.ServeHTTP(w, req)

		assert.Equal(t, "alice", decodeIdentityEcho(t, w).Username)
		mockAuthenticator.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("Error_LookupFailedAbortsRequest", func(t *testing.T) {
		mockAuthenticator := &usecaseMocks.MockRequestAuthenticator{}
		lookupErr := errors.Join(authDomain.ErrLookupFailed, errors.New("db down"))
		mockAuthenticator.On("Authenticate", mock.Anything, "Bearer tok").
			Return(authDomain.Anonymous(), lookupErr).
			Once()

		handlerCalled := false
		router := gin.New()
		router.Use(AuthenticationMiddleware(mockAuthenticator, newTestLogger()))
		router.GET("/store", func(c *gin.Context) {
			handlerCalled = true
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/store", nil)
		req.Header.Set("Authorization", "Bearer tok")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, handlerCalled)
		var resp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "internal_error", resp.Code)
	})
}

func TestRequireAuthentication(t *testing.T) {
	setIdentity := func(identity authDomain.Identity) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
			c.Next()
		}
	}

	t.Run("Success_AuthenticatedPasses", func(t *testing.T) {
		router := gin.New()
		router.Use(setIdentity(authDomain.Authenticated(authDomain.Principal{Username: "alice"})))
		router.POST("/store", RequireAuthentication(newTestLogger()), identityEcho)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/store", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_AnonymousRejected", func(t *testing.T) {
		router := gin.New()
		router.Use(setIdentity(authDomain.Anonymous()))
		router.POST("/store", RequireAuthentication(newTestLogger()), identityEcho)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/store", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unauthorized", resp.Code)
	})

	t.Run("Error_MissingIdentityRejected", func(t *testing.T) {
		router := gin.New()
		router.DELETE("/store/:id", RequireAuthentication(newTestLogger()), identityEcho)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/store/1", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
