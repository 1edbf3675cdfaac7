// Package server defines the core Server struct that composes the
// app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - background job dispatcher
//   - notification mailer
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/campushq/academy-api/internal/config"
	"github.com/campushq/academy-api/internal/lib/email"
	"github.com/campushq/academy-api/internal/lib/job"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds the config, the logger,
// the background job dispatcher, the mailer, and an internal
// *http.Server used to listen and serve requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// Jobs runs fire-and-forget background work after responses are
	// sent.
	Jobs *job.Service

	// Mailer delivers notification emails from background jobs.
	Mailer *email.Client

	// httpServer is the standard library HTTP server instance.
	// It is configured in SetupHTTPServer and started in Start().
	httpServer *http.Server
}

// jobQueueBuffer bounds how many dispatched jobs can wait for a
// worker before Dispatch blocks.
const jobQueueBuffer = 64

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server directly; that is done in
// SetupHTTPServer + Start. It does start the background job workers,
// so callers must pair New with Shutdown.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	jobs := job.NewService(logger, 10, jobQueueBuffer)
	jobs.Start()

	mailer := email.NewClient(cfg, logger)

	return &Server{
		Config: cfg,
		Logger: logger,
		Jobs:   jobs,
		Mailer: mailer,
	}, nil
}

// SetupHTTPServer configures the internal net/http server.
//
// The actual router is passed in as handler; echo's *Echo satisfies
// http.Handler directly.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Timeouts protect against slow clients and resource
		// exhaustion. Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be
// called first, and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// It stops the HTTP server first (finishing in-flight requests until
// the ctx deadline), then drains the background job workers so
// already-dispatched jobs still run to completion.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	s.Jobs.Stop()

	return nil
}
