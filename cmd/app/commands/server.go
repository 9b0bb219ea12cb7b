package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/store/internal/app"
	"github.com/allisson/store/internal/config"
)

// server is the part of the API and metrics servers RunServer drives.
type server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer starts the API server, plus the metrics server when enabled, and blocks until
// SIGINT/SIGTERM or a server failure. Shutdown is bounded by DBConnMaxLifetime.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	apiServer, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	servers := map[string]server{"api server": apiServer}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers["metrics server"] = metricsServer
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, logger, cfg, servers)
}

// serve runs every server until ctx is done or one of them fails, then shuts all of them down.
func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config, servers map[string]server) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for name, srv := range servers {
		group.Go(func() error {
			if err := srv.Start(groupCtx); err != nil {
				return fmt.Errorf("%s error: %w", name, err)
			}
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		} else {
			logger.Error("server error, initiating shutdown")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.DBConnMaxLifetime)
		defer shutdownCancel()

		var shutdownErrors []error
		for name, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("%s shutdown: %w", name, err))
			}
		}
		return errors.Join(shutdownErrors...)
	})

	return group.Wait()
}
