package router

import (
	"net/http"

	"github.com/campushq/academy-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes maps the business endpoints to their handlers.
//
// Each registration pairs a path template with a typed handler wrapped
// by the generic pipeline; parameter schemas live on the request types
// next to the handlers.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	// Typed path parameter with automatic coercion.
	e.GET("/items/:item_id", handler.Handle(h.Catalog.Handler, h.Catalog.GetItem, http.StatusOK))

	// Enum path parameter plus required and defaulted query parameters.
	e.GET("/courses/:course", handler.Handle(h.Catalog.Handler, h.Catalog.GetCourse, http.StatusOK))

	// Body validation with field constraints and defaults.
	e.POST("/courses/", handler.Handle(h.Catalog.Handler, h.Catalog.CreateCourse, http.StatusOK))

	// Cookie and header reading.
	e.GET("/students/", handler.Handle(h.Students.Handler, h.Students.GetStudents, http.StatusOK))

	// Declared response shape, enforced before serialization.
	e.GET("/current_cart", handler.HandleShaped(h.Cart.Handler, h.Cart.GetCurrentCart, http.StatusOK))

	// Explicit handler errors.
	e.GET("/flights/:flight_id", handler.Handle(h.Flights.Handler, h.Flights.GetFlight, http.StatusOK))

	// Background task dispatch after the response is sent.
	e.GET("/send_email/:email", handler.HandleNoContent(h.Notifications.Handler, h.Notifications.SendEmail, http.StatusOK))
}
