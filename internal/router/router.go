// Package router initializes the HTTP router (using echo).
//
// It registers the middleware stack, installs the global error
// handler, and maps paths to their corresponding handlers.
package router

import (
	"github.com/campushq/academy-api/internal/handler"
	"github.com/campushq/academy-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the echo instance with the full middleware stack and all
// routes registered. The returned *echo.Echo is handed to the server
// container as its http.Handler.
func New(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Every error from any route funnels through here.
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before the context
	// enhancer builds the request-scoped logger, and the logger must
	// exist before the request logger emits its line.
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())

	registerAPIRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
