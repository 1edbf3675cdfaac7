package service

import (
	"github.com/campushq/academy-api/internal/server"
)

// Services is a container that groups all business services, so router
// and handler wiring passes one object around instead of many.
type Services struct {
	Catalog *CatalogService
	Cart    *CartService
	Flights *FlightService
}

// NewServices constructs the service container.
//
// The server container is accepted for parity with the handler and
// middleware constructors; services that later need config or the
// mailer can take them from it without changing the wiring.
func NewServices(s *server.Server) *Services {
	return &Services{
		Catalog: NewCatalogService(),
		Cart:    NewCartService(),
		Flights: NewFlightService(),
	}
}
