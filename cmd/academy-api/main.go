// main is the entry point of the academy-api service.
//
// Startup sequence:
//  1. Load configuration from the environment
//  2. Build the logger
//  3. Build the server container (job workers, mailer)
//  4. Wire middleware, services, handlers, and the router
//  5. Start the HTTP server in a separate goroutine
//  6. Block until SIGINT/SIGTERM
//  7. Gracefully shut down: finish in-flight requests, drain
//     background jobs, then exit
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushq/academy-api/internal/config"
	"github.com/campushq/academy-api/internal/handler"
	"github.com/campushq/academy-api/internal/logger"
	"github.com/campushq/academy-api/internal/middleware"
	"github.com/campushq/academy-api/internal/router"
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/service"
)

// shutdownTimeout bounds how long graceful shutdown may take before
// the process exits anyway.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config.Load logs fatally on its own failures; this covers
		// future error returns.
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		os.Exit(1)
	}

	middlewares := middleware.NewMiddlewares(srv)
	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server encountered an error")
			os.Exit(1)
		}
	}()

	// Block until an OS signal arrives.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info().Msg("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server gracefully")
		os.Exit(1)
	}

	log.Info().Msg("server stopped gracefully")
}
