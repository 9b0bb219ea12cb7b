// Package http provides the HTTP server, its router and the store route policy.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/store/internal/auth/http"
	authUseCase "github.com/allisson/store/internal/auth/usecase"
	"github.com/allisson/store/internal/config"
	"github.com/allisson/store/internal/metrics"
	productHTTP "github.com/allisson/store/internal/product/http"
	userHTTP "github.com/allisson/store/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router and applies the route policy:
//
//	POST   /authenticate   public, per-IP rate limited
//	POST   /register       public, per-IP rate limited
//	GET    /store          public
//	GET    /store/:id      public
//	POST   /store          authenticated
//	PUT    /store/:id      authenticated
//	DELETE /store/:id      authenticated, owner only (enforced by the product use case)
//
// The caller identity is resolved once per request for every API route.
// ctx bounds the lifetime of background goroutines started by middlewares.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	authHandler *authHTTP.AuthHandler,
	userHandler *userHTTP.UserHandler,
	productHandler *productHTTP.ProductHandler,
	requestAuthenticator authUseCase.RequestAuthenticator,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("")
	api.Use(authHTTP.AuthenticationMiddleware(requestAuthenticator, s.logger))

	credentials := api.Group("")
	if cfg.RateLimitAuthEnabled {
		credentials.Use(authHTTP.IPRateLimitMiddleware(
			ctx,
			cfg.RateLimitAuthRequestsPerSec,
			cfg.RateLimitAuthBurst,
			s.logger,
		))
	}
	credentials.POST("/authenticate", authHandler.AuthenticateHandler)
	credentials.POST("/register", userHandler.RegisterHandler)

	requireAuth := authHTTP.RequireAuthentication(s.logger)
	store := api.Group("/store")
	{
		store.GET("", productHandler.ListHandler)
		store.GET("/:id", productHandler.GetHandler)
		store.POST("", requireAuth, productHandler.CreateHandler)
		store.PUT("/:id", requireAuth, productHandler.UpdateHandler)
		store.DELETE("/:id", requireAuth, productHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database is reachable.
func (s *Server) readinessHandler(c *gin.Context) {
	databaseStatus := "ok"
	if s.db == nil {
		databaseStatus = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			databaseStatus = "error"
		}
	}

	status := http.StatusOK
	readiness := "ready"
	if databaseStatus != "ok" {
		status = http.StatusServiceUnavailable
		readiness = "not_ready"
	}

	c.JSON(status, gin.H{
		"status":     readiness,
		"components": gin.H{"database": databaseStatus},
	})
}
