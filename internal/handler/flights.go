package handler

import (
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/service"
	"github.com/campushq/academy-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// FlightHandler serves the flight status endpoint, which demonstrates
// explicit handler errors.
type FlightHandler struct {
	Handler
	flights *service.FlightService
}

// NewFlightHandler constructs a FlightHandler.
func NewFlightHandler(s *server.Server, flights *service.FlightService) *FlightHandler {
	return &FlightHandler{
		Handler: NewHandler(s),
		flights: flights,
	}
}

// GetFlightRequest declares the integer flight ID path segment.
// "abc" fails coercion as a 422 before the handler runs; the 404 below
// is reserved for well-formed IDs outside the known set.
type GetFlightRequest struct {
	FlightID int
}

func (r *GetFlightRequest) ParamSpecs() []validation.ParamSpec {
	return []validation.ParamSpec{
		{Name: "flight_id", Source: validation.SourcePath, Kind: validation.KindInt, Required: true},
	}
}

func (r *GetFlightRequest) ApplyParams(p validation.Params) {
	r.FlightID = p.Int("flight_id")
}

func (r *GetFlightRequest) Validate() error {
	return validation.Check(r)
}

// MessageResponse carries a single status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// GetFlight returns the flight status, or the service's explicit 404
// which short-circuits response shaping and goes straight to the
// global error handler.
func (h *FlightHandler) GetFlight(c echo.Context, req *GetFlightRequest) (*MessageResponse, error) {
	message, err := h.flights.Status(req.FlightID)
	if err != nil {
		return nil, err
	}

	return &MessageResponse{Message: message}, nil
}
