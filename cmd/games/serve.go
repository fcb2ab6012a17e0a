package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/games-api/internal/config"
	"github.com/deppfellow/games-api/internal/handler"
	"github.com/deppfellow/games-api/internal/logger"
	"github.com/deppfellow/games-api/internal/repository"
	"github.com/deppfellow/games-api/internal/router"
	"github.com/deppfellow/games-api/internal/server"
	"github.com/deppfellow/games-api/internal/service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long: `Connect to MongoDB, then serve the games API.

The process exits with a non-zero status if the store cannot be reached at
startup; the listening port is only opened after a successful connection.
SIGINT and SIGTERM drain in-flight requests before exiting.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		// Listener failed before any shutdown was requested.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
		defer cancel()
		return errors.Join(err, srv.Shutdown(shutdownCtx))
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-serveErr; err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Server.ShutdownTimeout) * time.Second
}
