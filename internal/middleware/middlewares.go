// Package middleware contains the HTTP middleware stack: CORS,
// request logging, panic recovery, secure headers, request IDs,
// request-scoped loggers, and the global error handler that turns
// every error into a consistent JSON payload.
package middleware

import (
	"github.com/campushq/academy-api/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server.
//
// It exists so middleware construction happens in one place, with
// shared dependencies (the *server.Server container) wired in once.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
