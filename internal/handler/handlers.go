package handler

import (
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Catalog       *CatalogHandler      // items and courses
	Cart          *CartHandler         // current cart
	Students      *StudentHandler      // cookie/header echo
	Flights       *FlightHandler       // flight status with explicit errors
	Notifications *NotificationHandler // background email dispatch
	Health        *HealthHandler       // system health
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Catalog:       NewCatalogHandler(s, services.Catalog),
		Cart:          NewCartHandler(s, services.Cart),
		Students:      NewStudentHandler(s),
		Flights:       NewFlightHandler(s, services.Flights),
		Notifications: NewNotificationHandler(s),
		Health:        NewHealthHandler(s),
	}
}
