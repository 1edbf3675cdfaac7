package service

import (
	"github.com/campushq/academy-api/internal/errs"
)

// FlightService answers flight status lookups.
type FlightService struct {
	// known is the set of flight IDs the service can report on.
	known map[int]struct{}
}

// NewFlightService constructs a FlightService with the known flights.
func NewFlightService() *FlightService {
	return &FlightService{
		known: map[int]struct{}{
			1: {},
			2: {},
			3: {},
		},
	}
}

// Status returns the status message for a flight, or an explicit 404
// error for unknown IDs. The 404 is a handler-level decision about an
// otherwise well-formed request; a non-integer ID never gets this far.
func (s *FlightService) Status(flightID int) (string, error) {
	if _, ok := s.known[flightID]; !ok {
		return "", errs.NewNotFoundError("Flight not found")
	}
	return "Fly high!", nil
}
