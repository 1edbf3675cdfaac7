package router

import (
	"github.com/campushq/academy-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business surface.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by orchestrators/monitors).
	e.GET("/status", h.Health.CheckHealth)
}
