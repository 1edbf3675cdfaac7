package handler

import (
	"net/http"
	"time"

	"github.com/campushq/academy-api/internal/middleware"
	"github.com/campushq/academy-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that external systems can
// use to verify the service is alive.
//
// This service has no external dependencies to probe; the check
// reports the environment and the state of the background job queue.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns system health status.
//
// Response includes the overall status, a UTC timestamp, the
// environment from config, and a checks map with the job queue depth.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"jobs": map[string]interface{}{
				"status":      "healthy",
				"queue_depth": h.server.Jobs.QueueDepth(),
			},
		},
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
